package osc

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

////
// De/Encoding functions
////

const (
	bit32Size = 4

	// MaxPacketSize is the largest datagram a Message may grow to. It is the
	// largest payload a single UDP/IPv4 datagram can carry.
	MaxPacketSize = 65507
)

var zeros [bit32Size]byte

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

// pad appends zero bytes to b until its length is a multiple of 4.
func pad(b []byte) []byte {
	return append(b, zeros[:padBytesNeeded(len(b))]...)
}

// appendPaddedString appends str, its null terminator and the padding bytes to b.
func appendPaddedString(b []byte, str string) []byte {
	b = append(b, str...)
	b = append(b, 0)
	return pad(b)
}

// parsePaddedString reads a padded string from the given slice and returns the string and the number of bytes read.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, errors.Wrap(ErrInvalidMessage, "parsePaddedString: missing null terminator")
	}

	n := pos + 1 + padBytesNeeded(pos+1)
	if n > len(data) {
		return "", 0, errors.Wrap(ErrInvalidMessage, "parsePaddedString: missing padding")
	}
	for _, c := range data[pos+1 : n] {
		if c != 0 {
			return "", 0, errors.Wrap(ErrInvalidMessage, "parsePaddedString: non-zero padding")
		}
	}

	return string(data[:pos]), n, nil
}

// insertZeros inserts n zero bytes into b at offset at, shifting everything
// from at onwards towards the end. The returned slice may share b's backing
// array.
func insertZeros(b []byte, at, n int) []byte {
	end := len(b)
	for i := 0; i < n; i++ {
		b = append(b, 0)
	}
	copy(b[at+n:], b[at:end])
	clear(b[at : at+n])
	return b
}

// encodeArgument converts a single argument into its type tag and wire payload.
// Only int32, float32 and string can be encoded.
func encodeArgument(arg interface{}) (TypeTag, []byte, error) {
	switch t := arg.(type) {
	case int32:
		return TypeInt32, binary.BigEndian.AppendUint32(make([]byte, 0, bit32Size), uint32(t)), nil

	case float32:
		return TypeFloat32, binary.BigEndian.AppendUint32(make([]byte, 0, bit32Size), math.Float32bits(t)), nil

	case string:
		if err := checkString(t); err != nil {
			return TypeInvalid, nil, err
		}
		n := len(t) + 1
		return TypeString, appendPaddedString(make([]byte, 0, n+padBytesNeeded(n)), t), nil

	default:
		return TypeInvalid, nil, &UnsupportedTypeError{Tag: ToTypeTag(arg), Value: arg}
	}
}

// checkString reports whether s can be written as an OSC-string.
func checkString(s string) error {
	if !utf8.ValidString(s) {
		return &EncodingError{Value: s, Reason: "invalid UTF-8"}
	}
	if strings.IndexByte(s, 0) != -1 {
		return &EncodingError{Value: s, Reason: "embedded null byte"}
	}
	return nil
}
