package codec

// WireType is the 3-bit wire-format tag suffix that determines how a
// field's payload is shaped on the wire.
type WireType int8

const (
	// WireVarint is used for int32, int64, uint32, uint64, sint32, sint64,
	// bool, and enum fields.
	WireVarint WireType = 0
	// WireFixed64 is used for fixed64, sfixed64, and double fields.
	WireFixed64 WireType = 1
	// WireBytes is used for string, bytes, embedded messages, and packed
	// repeated fields.
	WireBytes WireType = 2
	// WireStartGroup opens a legacy group. Deprecated by the protobuf
	// language but still part of the wire format.
	WireStartGroup WireType = 3
	// WireEndGroup closes a legacy group opened by WireStartGroup.
	WireEndGroup WireType = 4
	// WireFixed32 is used for fixed32, sfixed32, and float fields.
	WireFixed32 WireType = 5
)

func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return "unknown"
	}
}

// Valid reports whether w is one of the six wire types defined by the
// protobuf wire format.
func (w WireType) Valid() bool {
	return w >= WireVarint && w <= WireFixed32
}
