// This half of the codec mirrors the symmetric encode/decode pair used
// upstream by github.com/golang/protobuf's proto.Buffer, whose decode
// half is reflected by DecodeVarint et al. in decode.go.
package codec

import "math"

// EncodeVarint appends x to the Buffer as an unsigned varint: 7 bits at a
// time, LSB first, with the continuation bit (0x80) set on every
// non-final byte.
func (cb *Buffer) EncodeVarint(x uint64) {
	for x >= 0x80 {
		cb.appendByte(byte(x) | 0x80)
		x >>= 7
	}
	cb.appendByte(byte(x))
}

// EncodeVarint32Signed appends a signed 32-bit value as a varint. Per the
// protobuf wire format, negative values are not zigzag-encoded for int32
// fields; instead they are sign-extended to 64 bits, which always
// produces exactly 10 bytes.
func (cb *Buffer) EncodeVarint32Signed(x int32) {
	if x >= 0 {
		cb.EncodeVarint(uint64(x))
		return
	}
	// Sign-extend to 64 bits and encode as an unsigned 64-bit varint: nine
	// continuation bytes carrying the arithmetic-shifted value, then a
	// final byte of exactly 0x01.
	v := int64(x)
	for i := 0; i < maxVarintBytes-1; i++ {
		cb.appendByte(byte(v&0x7F) | 0x80)
		v >>= 7
	}
	cb.appendByte(0x01)
}

// EncodeZigZag32 appends the zigzag encoding of a signed 32-bit value.
func (cb *Buffer) EncodeZigZag32(x int32) {
	cb.EncodeVarint(uint64(ToZigZag32(x)))
}

// EncodeZigZag64 appends the zigzag encoding of a signed 64-bit value.
func (cb *Buffer) EncodeZigZag64(x int64) {
	cb.EncodeVarint(ToZigZag64(x))
}

// ToZigZag32 maps a signed 32-bit integer onto an unsigned 32-bit integer
// so that small-magnitude values (positive or negative) encode as a
// short varint.
func ToZigZag32(x int32) uint32 {
	return (uint32(x) << 1) ^ uint32(x>>31)
}

// ToZigZag64 is the 64-bit counterpart of ToZigZag32.
func ToZigZag64(x int64) uint64 {
	return (uint64(x) << 1) ^ uint64(x>>63)
}

// EncodeFixed32 appends a little-endian 32-bit integer. This is the
// format for the fixed32, sfixed32, and float protocol buffer types.
func (cb *Buffer) EncodeFixed32(x uint32) {
	cb.appendByte(byte(x))
	cb.appendByte(byte(x >> 8))
	cb.appendByte(byte(x >> 16))
	cb.appendByte(byte(x >> 24))
}

// EncodeFixed64 appends a little-endian 64-bit integer. This is the
// format for the fixed64, sfixed64, and double protocol buffer types.
func (cb *Buffer) EncodeFixed64(x uint64) {
	cb.appendByte(byte(x))
	cb.appendByte(byte(x >> 8))
	cb.appendByte(byte(x >> 16))
	cb.appendByte(byte(x >> 24))
	cb.appendByte(byte(x >> 32))
	cb.appendByte(byte(x >> 40))
	cb.appendByte(byte(x >> 48))
	cb.appendByte(byte(x >> 56))
}

// EncodeFloat appends the IEEE-754 little-endian representation of a
// float32.
func (cb *Buffer) EncodeFloat(f float32) {
	cb.EncodeFixed32(math.Float32bits(f))
}

// EncodeDouble appends the IEEE-754 little-endian representation of a
// float64.
func (cb *Buffer) EncodeDouble(f float64) {
	cb.EncodeFixed64(math.Float64bits(f))
}

// EncodeBool appends a single byte: 0x01 if b, else 0x00.
func (cb *Buffer) EncodeBool(b bool) {
	if b {
		cb.appendByte(1)
	} else {
		cb.appendByte(0)
	}
}

// EncodeInt8 appends x as a single raw byte, with no varint encoding.
func (cb *Buffer) EncodeInt8(x int8) {
	cb.appendByte(byte(x))
}

// EncodeInt16 appends a little-endian 16-bit raw value.
func (cb *Buffer) EncodeInt16(x int16) {
	u := uint16(x)
	cb.appendByte(byte(u))
	cb.appendByte(byte(u >> 8))
}

// EncodeTagAndWireType appends tag(fieldNumber, wireType) as a varint.
// The tag is computed by multiplication rather than shift so it remains
// a correct unsigned value even at fieldNumber == 2^29-1.
func (cb *Buffer) EncodeTagAndWireType(fieldNumber int32, wireType WireType) {
	cb.EncodeVarint(MakeTag(fieldNumber, wireType))
}

// MakeTag computes field_number*8 + wire_type as an unsigned 64-bit
// value.
func MakeTag(fieldNumber int32, wireType WireType) uint64 {
	return uint64(fieldNumber)*8 + uint64(wireType)
}

// IsReservedFieldNumber reports whether fieldNumber falls in the reserved
// range [19000, 19999]. Neither encoding nor decoding checks this range.
func IsReservedFieldNumber(fieldNumber int32) bool {
	return fieldNumber >= 19000 && fieldNumber <= 19999
}

// EncodeRawBytes appends b verbatim, in chunks no larger than 8KiB, so
// that encoding very large byte strings never hands a single oversized
// slice to append() in one call.
func (cb *Buffer) EncodeRawBytes(b []byte) {
	cb.appendBytes(b)
}

// EncodeLengthDelimited appends varint(len(b)) followed by b: the
// canonical framing for string, bytes, embedded-message, and
// packed-repeated fields.
func (cb *Buffer) EncodeLengthDelimited(b []byte) {
	cb.EncodeVarint(uint64(len(b)))
	cb.EncodeRawBytes(b)
}
