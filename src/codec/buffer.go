package codec

// Buffer is a cursor over a byte slice that serves both the decode side
// (a fixed slice consumed from index 0 forward) and the encode side (a
// growable slice appended to from index 0 forward). Mirrors the
// upstream golang/protobuf proto.Buffer, which plays the same dual role.
type Buffer struct {
	buf   []byte
	index int
}

// NewBuffer wraps buf for reading. The returned Buffer does not copy buf;
// callers must not mutate buf while the Buffer is in use.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// NewWriterBuffer returns an empty Buffer ready for encoding, with an
// initial backing array of the given capacity.
func NewWriterBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// EOF reports whether the cursor has consumed the entire buffer.
func (cb *Buffer) EOF() bool {
	return cb.index >= len(cb.buf)
}

// Len returns the total number of bytes currently held by the buffer.
func (cb *Buffer) Len() int {
	return len(cb.buf)
}

// Index returns the cursor's current read/write position.
func (cb *Buffer) Index() int {
	return cb.index
}

// SetIndex repositions the cursor. Callers are responsible for keeping it
// within [0, Len()].
func (cb *Buffer) SetIndex(i int) {
	cb.index = i
}

// Remaining returns the number of unread bytes.
func (cb *Buffer) Remaining() int {
	return len(cb.buf) - cb.index
}

// Bytes returns the buffer's full backing slice. Mutating the returned
// slice mutates the buffer.
func (cb *Buffer) Bytes() []byte {
	return cb.buf
}

// Reset discards any encoded output and begins reading buf from index 0.
func (cb *Buffer) Reset(buf []byte) {
	cb.buf = buf
	cb.index = 0
}

// Skip advances the cursor by n bytes without interpreting them.
func (cb *Buffer) Skip(n int) error {
	if n < 0 {
		return newError(NegativeLength, "skip: negative length %d", n)
	}
	newIndex := cb.index + n
	if newIndex < cb.index || newIndex > len(cb.buf) {
		return newError(ReadPastEnd, "skip: %d bytes at index %d exceeds buffer of length %d", n, cb.index, len(cb.buf))
	}
	cb.index = newIndex
	return nil
}

// appendByte appends a single byte to the write side of the buffer.
func (cb *Buffer) appendByte(b byte) {
	cb.buf = append(cb.buf, b)
}

// appendBytes appends an arbitrary byte range, copying in maxAppendChunk
// chunks of 8KiB to avoid handing huge append() calls to the runtime in
// one shot.
const maxAppendChunk = 8 * 1024

func (cb *Buffer) appendBytes(b []byte) {
	for len(b) > maxAppendChunk {
		cb.buf = append(cb.buf, b[:maxAppendChunk]...)
		b = b[maxAppendChunk:]
	}
	cb.buf = append(cb.buf, b...)
}

// Truncate drops the write side back to length n, used by Writer's
// sub-message length patching to drop the one-byte length placeholder
// when a wider length varint replaces it.
func (cb *Buffer) Truncate(n int) {
	cb.buf = cb.buf[:n]
}

// InsertAt splices b into the buffer at position pos, shifting any bytes
// already written at or after pos to the right. Used to backfill a
// sub-message's length prefix once its payload length is known.
func (cb *Buffer) InsertAt(pos int, b []byte) {
	cb.buf = append(cb.buf, b...) // grow by len(b), garbage at the tail
	copy(cb.buf[pos+len(b):], cb.buf[pos:len(cb.buf)-len(b)])
	copy(cb.buf[pos:], b)
}

// Drain returns the bytes written so far and resets the buffer to empty,
// transferring ownership of the backing array to the caller in one step.
func (cb *Buffer) Drain() []byte {
	out := cb.buf
	cb.buf = nil
	cb.index = 0
	return out
}
