package osc

import (
	"encoding"
	"net"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Packet is anything that can be sent as a single OSC datagram.
type Packet interface {
	encoding.BinaryMarshaler
}

// Client enables you to send OSC Packets to a specified server.
// It is safe for concurrent use.
type Client struct {
	conn *net.UDPConn
	opts clientOptions
}

// Dial creates a new OSC Client with a connection to the specified server.
func Dial(addr string, opts ...ClientOption) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	checkClientOptions(&o)

	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "osc: resolve %s", addr)
	}

	conn, err := net.DialUDP("udp", nil, a)
	if err != nil {
		return nil, errors.Wrapf(err, "osc: dial %s", addr)
	}
	return &Client{conn: conn, opts: o}, nil
}

// Send sends an OSC Packet to the server as one datagram. A *Message is
// written straight from its buffer.
func (c *Client) Send(packet Packet) error {
	var data []byte
	if m, ok := packet.(*Message); ok {
		data = m.Bytes()
	} else {
		var err error
		if data, err = packet.MarshalBinary(); err != nil {
			return errors.Wrap(err, "osc: marshal packet")
		}
	}

	if c.opts.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.opts.writeTimeout)); err != nil {
			return errors.Wrap(err, "osc: set write deadline")
		}
	}

	if _, err := c.conn.Write(data); err != nil {
		c.opts.logger.Warn("osc: send failed",
			zap.Stringer("remote", c.conn.RemoteAddr()),
			zap.Int("size", len(data)),
			zap.Error(err))
		return errors.Wrap(err, "osc: send")
	}

	c.opts.logger.Debug("osc: sent packet",
		zap.Stringer("remote", c.conn.RemoteAddr()),
		zap.Int("size", len(data)))
	return nil
}

// Close closes the connection to the server.
func (c *Client) Close() error {
	return c.conn.Close()
}
