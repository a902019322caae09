package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

// rebuild serializes addr and args from scratch. It is the reference the
// incremental buffer is checked against.
func rebuild(addr string, args []interface{}) ([]byte, error) {
	payload := new(bytes.Buffer)

	// Type tag string starts with ","
	typetags := []byte{','}

	for _, arg := range args {
		switch t := arg.(type) {
		default:
			return nil, fmt.Errorf("rebuild: unsupported type: %T", t)

		case int32:
			typetags = append(typetags, 'i')
			if err := binary.Write(payload, binary.BigEndian, t); err != nil {
				return nil, err
			}

		case float32:
			typetags = append(typetags, 'f')
			if err := binary.Write(payload, binary.BigEndian, t); err != nil {
				return nil, err
			}

		case string:
			typetags = append(typetags, 's')
			writeString(payload, t)
		}
	}

	data := new(bytes.Buffer)
	writeString(data, addr)
	writeString(data, string(typetags))
	data.Write(payload.Bytes())
	return data.Bytes(), nil
}

func writeString(b *bytes.Buffer, s string) {
	b.WriteString(s)
	b.WriteByte(0)
	for b.Len()%4 != 0 {
		b.WriteByte(0)
	}
}
