package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kolesnikovae/protowire/src/codec"
)

func TestCountVarints(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeVarint(1)
	buf.EncodeVarint(300)
	buf.EncodeVarint(0)
	require.Equal(t, 3, codec.CountVarints(buf.Bytes(), 0, len(buf.Bytes())))
}

func TestCountVarintFieldsStopsAtMismatch(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeTagAndWireType(3, codec.WireVarint)
	buf.EncodeVarint(10)
	buf.EncodeTagAndWireType(3, codec.WireVarint)
	buf.EncodeVarint(20)
	buf.EncodeTagAndWireType(4, codec.WireVarint)
	buf.EncodeVarint(30)

	b := buf.Bytes()
	n := codec.CountVarintFields(b, 0, len(b), 3)
	require.Equal(t, 2, n)
}

func TestCountDelimitedFields(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeTagAndWireType(7, codec.WireBytes)
	buf.EncodeLengthDelimited([]byte("a"))
	buf.EncodeTagAndWireType(7, codec.WireBytes)
	buf.EncodeLengthDelimited([]byte("bb"))

	b := buf.Bytes()
	n := codec.CountDelimitedFields(b, 0, len(b), 7)
	require.Equal(t, 2, n)
}

func TestCountFixed32And64Fields(t *testing.T) {
	buf := codec.NewWriterBuffer(0)
	buf.EncodeTagAndWireType(1, codec.WireFixed32)
	buf.EncodeFixed32(1)
	buf.EncodeTagAndWireType(1, codec.WireFixed32)
	buf.EncodeFixed32(2)

	b := buf.Bytes()
	require.Equal(t, 2, codec.CountFixed32Fields(b, 0, len(b), 1))

	buf2 := codec.NewWriterBuffer(0)
	buf2.EncodeTagAndWireType(2, codec.WireFixed64)
	buf2.EncodeFixed64(1)

	b2 := buf2.Bytes()
	require.Equal(t, 1, codec.CountFixed64Fields(b2, 0, len(b2), 2))
}
