package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kolesnikovae/protowire/src/codec"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		buf := codec.NewWriterBuffer(0)
		buf.EncodeVarint(v)
		rb := codec.NewBuffer(buf.Bytes())
		got, err := rb.DecodeVarint()
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.True(t, rb.EOF())
	}
}

func TestNegativeInt32VarintIsTenBytes(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeVarint32Signed(-1)
	require.Len(t, buf.Bytes(), 10)

	rb := codec.NewBuffer(buf.Bytes())
	v, err := rb.DecodeVarint()
	require.NoError(t, err)
	require.Equal(t, int32(-1), int32(v))
}

func TestDecodeVarintTruncated(t *testing.T) {
	rb := codec.NewBuffer([]byte{0x80, 0x80})
	_, err := rb.DecodeVarint()
	require.Error(t, err)
	var cerr *codec.Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, codec.InvalidVarint, cerr.Kind)
}

func TestDecodeVarintOverlong(t *testing.T) {
	overlong := make([]byte, 11)
	for i := range overlong {
		overlong[i] = 0x80
	}
	overlong[10] = 0x01
	rb := codec.NewBuffer(overlong)
	_, err := rb.DecodeVarint()
	require.Error(t, err)
}

func TestZigZagInvolution(t *testing.T) {
	values := []int64{0, -1, 1, -2, 2, math.MinInt64, math.MaxInt64}
	for _, v := range values {
		z := codec.ToZigZag64(v)
		got := codec.DecodeZigZag64(z)
		require.Equal(t, v, got)
	}

	values32 := []int32{0, -1, 1, math.MinInt32, math.MaxInt32}
	for _, v := range values32 {
		z := codec.ToZigZag32(v)
		got := codec.DecodeZigZag32(uint64(z))
		require.Equal(t, v, got)
	}
}

func TestTagRoundTrip(t *testing.T) {
	cases := []struct {
		field int32
		wt    codec.WireType
	}{
		{1, codec.WireVarint},
		{15, codec.WireBytes},
		{16, codec.WireFixed64},
		{1<<29 - 1, codec.WireFixed32},
	}
	for _, c := range cases {
		buf := codec.NewWriterBuffer(0)
		buf.EncodeTagAndWireType(c.field, c.wt)
		rb := codec.NewBuffer(buf.Bytes())
		fn, wt, err := rb.DecodeTagAndWireType()
		require.NoError(t, err)
		require.Equal(t, c.field, fn)
		require.Equal(t, c.wt, wt)
	}
}

func TestDecodeTagAndWireTypeRejectsFieldZero(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeVarint(codec.MakeTag(0, codec.WireVarint))
	rb := codec.NewBuffer(buf.Bytes())
	_, _, err := rb.DecodeTagAndWireType()
	require.Error(t, err)
	var cerr *codec.Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, codec.InvalidTag, cerr.Kind)
}

func TestDecodeTagAndWireTypeRejectsBadWireType(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeVarint(uint64(1)*8 + 6) // wire type 6 does not exist
	rb := codec.NewBuffer(buf.Bytes())
	_, _, err := rb.DecodeTagAndWireType()
	require.Error(t, err)
}

func TestFixedRoundTrip(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeFixed32(0xDEADBEEF)
	buf.EncodeFixed64(0x0123456789ABCDEF)
	rb := codec.NewBuffer(buf.Bytes())
	v32, err := rb.DecodeFixed32()
	require.NoError(t, err)
	require.Equal(t, uint64(0xDEADBEEF), v32)
	v64, err := rb.DecodeFixed64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0123456789ABCDEF), v64)
}

func TestFloatRoundTrip(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeFloat(3.25)
	buf.EncodeDouble(-1.5e100)
	rb := codec.NewBuffer(buf.Bytes())
	v32, err := rb.DecodeFixed32()
	require.NoError(t, err)
	require.Equal(t, float32(3.25), math.Float32frombits(uint32(v32)))
	v64, err := rb.DecodeFixed64()
	require.NoError(t, err)
	require.Equal(t, -1.5e100, math.Float64frombits(v64))
}

func TestRawBytesRoundTrip(t *testing.T) {
	payload := []byte("hello, world")
	buf := codec.NewWriterBuffer(0)
	buf.EncodeLengthDelimited(payload)

	rb := codec.NewBuffer(buf.Bytes())
	got, err := rb.DecodeRawBytes(true)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.True(t, rb.EOF())
}

func TestDecodeRawBytesPastEnd(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeVarint(100)
	rb := codec.NewBuffer(buf.Bytes())
	_, err := rb.DecodeRawBytes(false)
	require.Error(t, err)
	var cerr *codec.Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, codec.ReadPastEnd, cerr.Kind)
}

func TestSkipGroupNested(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeTagAndWireType(1, codec.WireStartGroup)
	buf.EncodeTagAndWireType(2, codec.WireVarint)
	buf.EncodeVarint(7)
	buf.EncodeTagAndWireType(1, codec.WireStartGroup) // nested, same field number
	buf.EncodeTagAndWireType(3, codec.WireVarint)
	buf.EncodeVarint(9)
	buf.EncodeTagAndWireType(1, codec.WireEndGroup)
	buf.EncodeTagAndWireType(1, codec.WireEndGroup)
	buf.EncodeTagAndWireType(5, codec.WireVarint) // a field after the group
	buf.EncodeVarint(99)

	rb := codec.NewBuffer(buf.Bytes())
	_, wt, err := rb.DecodeTagAndWireType()
	require.NoError(t, err)
	require.Equal(t, codec.WireStartGroup, wt)

	require.NoError(t, rb.SkipGroup())

	fn, wt, err := rb.DecodeTagAndWireType()
	require.NoError(t, err)
	require.Equal(t, int32(5), fn)
	require.Equal(t, codec.WireVarint, wt)
	v, err := rb.DecodeVarint()
	require.NoError(t, err)
	require.Equal(t, uint64(99), v)
}

func TestEncodeBoolAndRaw8_16(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeBool(true)
	buf.EncodeBool(false)
	buf.EncodeInt8(-5)
	buf.EncodeInt16(-300)
	rb := codec.NewBuffer(buf.Bytes())
	require.Equal(t, []byte{1, 0}, rb.Bytes()[:2])
	rb.SetIndex(2)
	require.NoError(t, rb.Skip(3))
	require.True(t, rb.EOF())
}
