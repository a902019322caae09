package osc

// TypeTag is the wire character identifying an argument's type.
type TypeTag rune

const (
	TypeString  TypeTag = 's'
	TypeInt32   TypeTag = 'i'
	TypeFloat32 TypeTag = 'f'
	TypeBlob    TypeTag = 'b'
	TypeInvalid TypeTag = 0
)

// Blob is an OSC blob argument. The type is recognized but cannot be encoded;
// appending one fails with an *UnsupportedTypeError.
type Blob []byte

// ToTypeTag returns the OSC TypeTag for the given argument.
// Returns TypeInvalid if the argument type is unsupported.
func ToTypeTag(arg interface{}) TypeTag {
	switch arg.(type) {
	case int32:
		return TypeInt32
	case float32:
		return TypeFloat32
	case string:
		return TypeString
	case Blob, []byte:
		return TypeBlob
	default:
		return TypeInvalid
	}
}

func (t TypeTag) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float32"
	case TypeBlob:
		return "blob"
	default:
		return "invalid"
	}
}
