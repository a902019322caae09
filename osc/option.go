package osc

import (
	"time"

	"go.uber.org/zap"
)

// clientOptions holds the configuration for a Client.
type clientOptions struct {
	logger       *zap.Logger
	writeTimeout time.Duration // zero means no deadline
}

// ClientOption is a function that configures a Client.
type ClientOption func(*clientOptions)

// WithLogger returns a ClientOption that sets the logger.
// If not set, the package logger (see Logger) is used.
func WithLogger(l *zap.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithWriteTimeout returns a ClientOption that sets a deadline for every Send.
func WithWriteTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.writeTimeout = d
	}
}

// checkClientOptions sets default values for client options.
func checkClientOptions(o *clientOptions) {
	if o.logger == nil {
		o.logger = Logger()
	}
	if o.writeTimeout < 0 {
		o.writeTimeout = 0
	}
}
