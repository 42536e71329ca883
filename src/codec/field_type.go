package codec

// FieldType identifies the declared protobuf scalar/message type of a
// field. It exists so that callers driving PackedRepeatedEach-style
// iteration can tell the codec which wire type to expect without needing
// a full descriptor.
type FieldType int8

const (
	FieldType_UNKNOWN FieldType = iota
	FieldType_DOUBLE
	FieldType_FLOAT
	FieldType_INT64
	FieldType_UINT64
	FieldType_INT32
	FieldType_FIXED64
	FieldType_FIXED32
	FieldType_BOOL
	FieldType_STRING
	FieldType_MESSAGE
	FieldType_BYTES
	FieldType_UINT32
	FieldType_ENUM
	FieldType_SFIXED32
	FieldType_SFIXED64
	FieldType_SINT32
	FieldType_SINT64
)

// WireType returns the wire type used to encode values of field type ft.
func (ft FieldType) WireType() (WireType, bool) {
	switch ft {
	case FieldType_INT32, FieldType_INT64, FieldType_UINT32, FieldType_UINT64,
		FieldType_SINT32, FieldType_SINT64, FieldType_BOOL, FieldType_ENUM:
		return WireVarint, true
	case FieldType_FIXED64, FieldType_SFIXED64, FieldType_DOUBLE:
		return WireFixed64, true
	case FieldType_FIXED32, FieldType_SFIXED32, FieldType_FLOAT:
		return WireFixed32, true
	case FieldType_STRING, FieldType_MESSAGE, FieldType_BYTES:
		return WireBytes, true
	default:
		return 0, false
	}
}

// IsZigZag reports whether values of this field type are zigzag-encoded
// on the wire (sint32/sint64).
func (ft FieldType) IsZigZag() bool {
	return ft == FieldType_SINT32 || ft == FieldType_SINT64
}
