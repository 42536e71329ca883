package protowire

import (
	"encoding/base64"
	"sync"
)

// Source is the canonical byte view produced by the normalizer
// constructors below: a byte slice plus a flag recording whether callers
// may safely mutate it. One constructor per accepted input form is
// exposed instead of a runtime type switch over an empty interface.
type Source struct {
	Bytes     []byte
	Immutable bool
}

// FromBytes wraps a raw byte slice without copying it. The returned
// Source is mutable: callers that mutate b after this call will observe
// the mutation through any Reader built from the Source, which is the
// documented (if sharp) behavior inherited from the reference codec.
func FromBytes(b []byte) Source {
	return Source{Bytes: b, Immutable: false}
}

// FromCopy copies b and returns an immutable Source. Use this when the
// caller does not control b's future mutations, e.g. when b is a slice
// of a buffer that will be reused by its owner.
func FromCopy(b []byte) Source {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Source{Bytes: cp, Immutable: true}
}

// FromBase64 decodes standard base64 text into a Source. The decoded
// bytes are freshly allocated, so immutable controls only whether the
// Source advertises itself as safe to alias further (e.g. into a
// ByteString) rather than whether a copy was made.
func FromBase64(s string, immutable bool) (Source, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Source{}, newInvalidInputErrorf("invalid base64 input: %v", err)
	}
	return Source{Bytes: b, Immutable: immutable}, nil
}

// FromByteString returns a Source that aliases bs's bytes. Since
// ByteString is itself immutable, the returned Source is always marked
// immutable.
func FromByteString(bs ByteString) Source {
	return Source{Bytes: bs.bytes, Immutable: true}
}

// ByteString is an immutable, value-equal byte container. Construction
// from user-supplied bytes copies; the zero value is the same as
// Empty().
type ByteString struct {
	bytes []byte
	cache *base64Cache
}

// base64Cache lives behind a pointer so that copying a ByteString value
// (which Go programs do constantly — passing it to functions, storing it
// in slices) shares one lazily-computed cache instead of copying a
// sync.Once, which go vet rightly flags as unsafe.
type base64Cache struct {
	once sync.Once
	val  string
}

var emptyByteString = ByteString{bytes: []byte{}, cache: &base64Cache{}}

// Empty returns the shared empty ByteString.
func Empty() ByteString {
	return emptyByteString
}

// NewByteString copies b into a new ByteString. Use NewByteStringAlias
// to avoid the copy when the caller has exclusive, final ownership of b.
func NewByteString(b []byte) ByteString {
	if len(b) == 0 {
		return emptyByteString
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return ByteString{bytes: cp, cache: &base64Cache{}}
}

// NewByteStringAlias wraps b without copying. The caller must not mutate
// b afterward: this is the "don't mutate" contract for the
// token/producer path (e.g. a Reader handing out a length-delimited
// field's bytes directly from its backing array).
func NewByteStringAlias(b []byte) ByteString {
	if len(b) == 0 {
		return emptyByteString
	}
	return ByteString{bytes: b, cache: &base64Cache{}}
}

// Bytes returns the ByteString's contents. The returned slice must not
// be mutated.
func (b ByteString) Bytes() []byte {
	if b.bytes == nil {
		return emptyByteString.bytes
	}
	return b.bytes
}

// Len returns the number of bytes held.
func (b ByteString) Len() int {
	return len(b.bytes)
}

// Base64 returns the standard-base64 encoding of b's contents, computing
// and caching it on first use.
func (b ByteString) Base64() string {
	if b.cache == nil {
		return base64.StdEncoding.EncodeToString(b.bytes)
	}
	b.cache.once.Do(func() {
		b.cache.val = base64.StdEncoding.EncodeToString(b.bytes)
	})
	return b.cache.val
}

// Equal reports whether a and b hold identical byte content. ByteString
// equality is by value, not by identity of the underlying array.
func (a ByteString) Equal(b ByteString) bool {
	if len(a.bytes) != len(b.bytes) {
		return false
	}
	for i := range a.bytes {
		if a.bytes[i] != b.bytes[i] {
			return false
		}
	}
	return true
}
