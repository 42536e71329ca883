package protowire

import "github.com/kolesnikovae/protowire/src/codec"

// WireType re-exports the codec package's wire type so callers of the
// root package's field-aware API never need to import src/codec
// directly.
type WireType = codec.WireType

const (
	WireVarint     = codec.WireVarint
	WireFixed64    = codec.WireFixed64
	WireBytes      = codec.WireBytes
	WireStartGroup = codec.WireStartGroup
	WireEndGroup   = codec.WireEndGroup
	WireFixed32    = codec.WireFixed32
)

// FieldType re-exports the codec package's scalar field type enum.
type FieldType = codec.FieldType

const (
	FieldType_DOUBLE   = codec.FieldType_DOUBLE
	FieldType_FLOAT    = codec.FieldType_FLOAT
	FieldType_INT64    = codec.FieldType_INT64
	FieldType_UINT64   = codec.FieldType_UINT64
	FieldType_INT32    = codec.FieldType_INT32
	FieldType_FIXED64  = codec.FieldType_FIXED64
	FieldType_FIXED32  = codec.FieldType_FIXED32
	FieldType_BOOL     = codec.FieldType_BOOL
	FieldType_STRING   = codec.FieldType_STRING
	FieldType_MESSAGE  = codec.FieldType_MESSAGE
	FieldType_BYTES    = codec.FieldType_BYTES
	FieldType_UINT32   = codec.FieldType_UINT32
	FieldType_ENUM     = codec.FieldType_ENUM
	FieldType_SFIXED32 = codec.FieldType_SFIXED32
	FieldType_SFIXED64 = codec.FieldType_SFIXED64
	FieldType_SINT32   = codec.FieldType_SINT32
	FieldType_SINT64   = codec.FieldType_SINT64
)

// Value holds a single field's value as read off the wire, tagged with
// the wire type that determined how it was decoded. Exactly one of
// Number/Bytes is meaningful, chosen by WireType: the natural shape for a
// schema-less, callback-driven iteration API.
type Value struct {
	WireType WireType
	Number   uint64
	Bytes    []byte
}

// AsInt64 interprets Number as a signed 64-bit integer (int64/sint64/
// sfixed64 field types, depending on how the value was read).
func (v Value) AsInt64() int64 {
	return int64(v.Number)
}

// AsUint32 interprets Number as an unsigned 32-bit integer.
func (v Value) AsUint32() uint32 {
	return uint32(v.Number)
}

// AsFloat32 interprets Number (from a WireFixed32 read) as an IEEE-754
// float32.
func (v Value) AsFloat32() float32 {
	return JoinFloat32(Split64{Low: uint32(v.Number)})
}

// AsFloat64 interprets Number (from a WireFixed64 read) as an IEEE-754
// float64.
func (v Value) AsFloat64() float64 {
	return JoinFloat64(SplitUint64(v.Number))
}

// AsBool interprets Number as a protobuf bool (any nonzero varint is
// true, matching the wire format's tolerance for non-canonical bools).
func (v Value) AsBool() bool {
	return v.Number != 0
}

// AsSint32 interprets Number as a zigzag-encoded sint32.
func (v Value) AsSint32() int32 {
	return FromZigZag32(uint32(v.Number))
}

// AsSint64 interprets Number as a zigzag-encoded sint64.
func (v Value) AsSint64() int64 {
	return FromZigZag64(v.Number)
}

// AsBytes returns the raw bytes of a WireBytes value: a string, bytes,
// or embedded-message field's encoded payload.
func (v Value) AsBytes() []byte {
	return v.Bytes
}

// AsString interprets Bytes as UTF-8 text.
func (v Value) AsString() string {
	return string(v.Bytes)
}
