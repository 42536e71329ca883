package protowire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kolesnikovae/protowire"
)

func TestFromBytesAliases(t *testing.T) {
	b := []byte{1, 2, 3}
	src := protowire.FromBytes(b)
	require.False(t, src.Immutable)
	b[0] = 99
	require.Equal(t, byte(99), src.Bytes[0])
}

func TestFromCopyIsIndependent(t *testing.T) {
	b := []byte{1, 2, 3}
	src := protowire.FromCopy(b)
	require.True(t, src.Immutable)
	b[0] = 99
	require.Equal(t, byte(1), src.Bytes[0])
}

func TestFromBase64(t *testing.T) {
	src, err := protowire.FromBase64("aGVsbG8=", true)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), src.Bytes)

	_, err = protowire.FromBase64("not base64!!", true)
	require.Error(t, err)
	require.True(t, protowire.IsKind(err, protowire.InvalidInput))
}

func TestByteStringEquality(t *testing.T) {
	a := protowire.NewByteString([]byte("abc"))
	b := protowire.NewByteString([]byte("abc"))
	c := protowire.NewByteString([]byte("abd"))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestByteStringEmpty(t *testing.T) {
	e := protowire.Empty()
	require.Equal(t, 0, e.Len())
	require.Equal(t, "", e.Base64())
}

func TestByteStringBase64Caching(t *testing.T) {
	bs := protowire.NewByteString([]byte("hello"))
	first := bs.Base64()
	second := bs.Base64()
	require.Equal(t, first, second)
	require.Equal(t, "aGVsbG8=", first)
}

func TestByteStringCopySharesCache(t *testing.T) {
	bs := protowire.NewByteString([]byte("shared"))
	cp := bs
	require.Equal(t, bs.Base64(), cp.Base64())
}

func TestFromByteStringIsImmutable(t *testing.T) {
	bs := protowire.NewByteString([]byte("x"))
	src := protowire.FromByteString(bs)
	require.True(t, src.Immutable)
	require.Equal(t, []byte("x"), src.Bytes)
}
