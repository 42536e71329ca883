package protowire

import "github.com/kolesnikovae/protowire/src/codec"

// ToZigZag32 maps a signed 32-bit integer onto an unsigned 32-bit
// integer so that small-magnitude values encode as a short varint
// regardless of sign: (x << 1) XOR (x >> 31).
func ToZigZag32(x int32) uint32 {
	return codec.ToZigZag32(x)
}

// FromZigZag32 is the inverse of ToZigZag32.
func FromZigZag32(z uint32) int32 {
	return codec.DecodeZigZag32(uint64(z))
}

// ToZigZag64 is the 64-bit counterpart of ToZigZag32, expressed as a
// single 64-bit shift-and-xor. ToZigZagSplit64 computes the same value
// one 32-bit half at a time, for callers who only hold a Split64.
func ToZigZag64(x int64) uint64 {
	return codec.ToZigZag64(x)
}

// FromZigZag64 is the inverse of ToZigZag64.
func FromZigZag64(z uint64) int64 {
	return codec.DecodeZigZag64(z)
}
