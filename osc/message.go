package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
//
// A Message keeps its wire form in one buffer at all times: appending an
// argument writes its tag into the type tag string in place and its payload
// at the end, so Bytes never has to re-serialize anything. The address cannot
// be changed and arguments cannot be edited or removed once appended.
//
// A Message must not be mutated from more than one goroutine at a time.
//
// The zero value is a message with an empty address.
type Message struct {
	buf      []byte
	typeTags typeTagBlock
	argStart int
}

// Verify that Messages implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
// It should start with '/' and must not contain a null byte.
func NewMessage(addr string) *Message {
	m := &Message{}
	m.reset(addr)
	return m
}

// NewMessageFromData returns a new Message decoded from data.
func NewMessageFromData(data []byte) (*Message, error) {
	m := &Message{}
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message) reset(addr string) {
	n := len(addr) + 1
	m.buf = appendPaddedString(make([]byte, 0, n+padBytesNeeded(n)+4*bit32Size), addr)
	m.buf = m.typeTags.init(m.buf)
	m.argStart = len(m.buf)
}

func (m *Message) lazyInit() {
	if m.buf == nil {
		m.reset("")
	}
}

// Append appends the given arguments to the message. Supported argument
// types are int32, float32 and string.
//
// Either all arguments are appended or, if any of them can't be encoded or
// the message would exceed MaxPacketSize, none are and an error is returned.
func (m *Message) Append(args ...interface{}) error {
	m.lazyInit()

	if len(args) == 1 {
		return m.appendOne(args[0])
	}

	tags := make([]TypeTag, len(args))
	payloads := make([][]byte, len(args))
	size := 0
	for i, arg := range args {
		tag, p, err := encodeArgument(arg)
		if err != nil {
			return err
		}
		tags[i], payloads[i] = tag, p
		size += len(p)
	}

	if err := m.checkCapacity(len(args), size); err != nil {
		return err
	}

	for i := range tags {
		m.add(tags[i], payloads[i])
	}
	return nil
}

// AppendInt32 appends an int32 argument.
func (m *Message) AppendInt32(i int32) error {
	m.lazyInit()
	return m.appendOne(i)
}

// AppendFloat32 appends a float32 argument.
func (m *Message) AppendFloat32(f float32) error {
	m.lazyInit()
	return m.appendOne(f)
}

// AppendString appends a string argument. It fails with an *EncodingError if
// s is not valid UTF-8 or contains a null byte.
func (m *Message) AppendString(s string) error {
	m.lazyInit()
	return m.appendOne(s)
}

func (m *Message) appendOne(arg interface{}) error {
	tag, p, err := encodeArgument(arg)
	if err != nil {
		return err
	}
	if err = m.checkCapacity(1, len(p)); err != nil {
		return err
	}
	m.add(tag, p)
	return nil
}

func (m *Message) checkCapacity(tags, payload int) error {
	if n := len(m.buf) + m.typeTags.growth(tags) + payload; n > MaxPacketSize {
		return &CapacityError{Size: n, Max: MaxPacketSize}
	}
	return nil
}

// add writes an already encoded argument. It cannot fail.
func (m *Message) add(tag TypeTag, payload []byte) {
	var grown bool
	m.buf, grown = m.typeTags.appendTag(m.buf, tag)
	if grown {
		m.argStart += bit32Size
	}
	m.buf = append(m.buf, payload...)
}

// Bytes returns the message in its wire format. The returned slice is the
// message's own buffer, it must not be modified and is only valid until the
// next Append.
func (m *Message) Bytes() []byte {
	m.lazyInit()
	return m.buf[:len(m.buf):len(m.buf)]
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. Unlike
// Bytes, it returns a copy.
func (m *Message) MarshalBinary() ([]byte, error) {
	b := m.Bytes()
	return append(make([]byte, 0, len(b)), b...), nil
}

// Address returns the OSC address of the message.
func (m *Message) Address() string {
	m.lazyInit()
	return string(m.buf[:bytes.IndexByte(m.buf, 0)])
}

// TypeTags returns the type tag string, including the leading ','.
func (m *Message) TypeTags() string {
	m.lazyInit()
	return "," + string(m.typeTags.tags(m.buf))
}

// CountArguments returns the number of arguments.
func (m *Message) CountArguments() int {
	return m.typeTags.count
}

// Arguments decodes the arguments of the message, in order.
func (m *Message) Arguments() ([]interface{}, error) {
	m.lazyInit()
	args, _, err := decodeArguments(m.typeTags.tags(m.buf), m.buf[m.argStart:])
	return args, err
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.Address())
	sb.WriteByte(' ')
	sb.WriteString(m.TypeTags())

	args, _ := m.Arguments()
	for _, arg := range args {
		fmt.Fprintf(&sb, " %v", arg)
	}

	return sb.String()
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// data is validated and copied, further Appends continue from it. A message
// without a type tag string is accepted and given an empty one.
func (m *Message) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || data[0] != '/' {
		return errors.Wrap(ErrInvalidMessage, "UnmarshalBinary: missing address")
	}

	if (len(data) % bit32Size) != 0 {
		return errors.Wrap(ErrInvalidMessage, "UnmarshalBinary: data isn't mod 4")
	}

	if len(data) > MaxPacketSize {
		return &CapacityError{Size: len(data), Max: MaxPacketSize}
	}

	// First, read the OSC address
	_, n, err := parsePaddedString(data)
	if err != nil {
		return errors.Wrap(err, "UnmarshalBinary: address")
	}

	if n == len(data) {
		buf := append(make([]byte, 0, n+bit32Size), data...)
		m.buf = m.typeTags.init(buf)
		m.argStart = len(m.buf)
		return nil
	}

	// Read the type tag string
	typetags, k, err := parsePaddedString(data[n:])
	if err != nil {
		return errors.Wrap(err, "UnmarshalBinary: type tags")
	}

	// If the typetag doesn't start with ',', it's not valid
	if len(typetags) == 0 || typetags[0] != ',' {
		return errors.Wrapf(ErrInvalidMessage, "UnmarshalBinary: unsupported typetag string: %q", typetags)
	}

	_, used, err := decodeArguments([]byte(typetags[1:]), data[n+k:])
	if err != nil {
		return errors.Wrap(err, "UnmarshalBinary")
	}
	if used != len(data)-n-k {
		return errors.Wrapf(ErrInvalidMessage, "UnmarshalBinary: %d trailing bytes", len(data)-n-k-used)
	}

	m.buf = append(make([]byte, 0, len(data)), data...)
	m.typeTags = typeTagBlock{offset: n, count: len(typetags) - 1}
	m.argStart = n + k
	return nil
}

// decodeArguments reads one argument per tag from data and returns them along
// with the number of bytes consumed.
func decodeArguments(tags, data []byte) ([]interface{}, int, error) {
	args := make([]interface{}, 0, len(tags))
	n := 0

	for _, c := range tags {
		switch TypeTag(c) {
		default:
			return nil, 0, &UnsupportedTypeError{Tag: TypeTag(c)}

		case TypeInt32:
			if len(data)-n < bit32Size {
				return nil, 0, errors.Wrap(ErrInvalidMessage, "decodeArguments: not enough bytes for int32")
			}
			args = append(args, int32(binary.BigEndian.Uint32(data[n:])))
			n += bit32Size

		case TypeFloat32:
			if len(data)-n < bit32Size {
				return nil, 0, errors.Wrap(ErrInvalidMessage, "decodeArguments: not enough bytes for float32")
			}
			args = append(args, math.Float32frombits(binary.BigEndian.Uint32(data[n:])))
			n += bit32Size

		case TypeString:
			str, k, err := parsePaddedString(data[n:])
			if err != nil {
				return nil, 0, errors.Wrap(err, "decodeArguments")
			}
			if !utf8.ValidString(str) {
				return nil, 0, errors.Wrap(ErrInvalidMessage, "decodeArguments: string is not valid UTF-8")
			}
			args = append(args, str)
			n += k
		}
	}

	return args, n, nil
}
