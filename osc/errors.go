package osc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidMessage is returned when data handed to the decoder is not a
// well-formed OSC message.
var ErrInvalidMessage = errors.New("invalid OSC message")

// UnsupportedTypeError is returned when an argument has a type the encoder
// recognizes but cannot write, such as a Blob, or a Go type with no OSC
// mapping at all.
type UnsupportedTypeError struct {
	Tag   TypeTag
	Value interface{}
}

func (e *UnsupportedTypeError) Error() string {
	if e.Tag == TypeInvalid {
		return fmt.Sprintf("osc: unsupported argument type: %T", e.Value)
	}
	return fmt.Sprintf("osc: unsupported argument type: '%c'", e.Tag)
}

// EncodingError is returned when a string argument cannot be written as an
// OSC-string.
type EncodingError struct {
	Value  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("osc: cannot encode string %q: %s", e.Value, e.Reason)
}

// CapacityError is returned when an append would grow the message past Max bytes.
type CapacityError struct {
	Size int
	Max  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("osc: message too large: %d bytes (max %d)", e.Size, e.Max)
}
