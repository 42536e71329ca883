package protowire

import (
	"github.com/kolesnikovae/protowire/src/codec"
)

// Writer is a field-aware, append-only encoder. It wraps a *codec.Buffer
// in write mode and tracks a stack of pending sub-message lengths so
// that a sub-message's varint length prefix, whose byte width isn't
// known until its payload is fully written, can be spliced in after the
// fact rather than requiring callers to pre-measure.
//
// A Writer is single-use and not safe for concurrent use.
type Writer struct {
	buf     *codec.Buffer
	pending []int
}

// NewWriter returns an empty Writer with an initial capacity hint.
func NewWriter(capacityHint int) *Writer {
	return &Writer{buf: codec.NewWriterBuffer(capacityHint)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the Writer's output. The returned slice aliases the
// Writer's backing array and must not be retained if the Writer will be
// reused.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Drain returns the Writer's output and resets it to empty, transferring
// ownership of the backing array to the caller.
func (w *Writer) Drain() []byte {
	return w.buf.Drain()
}

// Tag appends a field tag (field_number*8 + wire_type) as a varint.
func (w *Writer) Tag(fieldNumber int32, wireType WireType) {
	w.buf.EncodeTagAndWireType(fieldNumber, wireType)
}

// WriteVarint appends an unsigned varint value, with no preceding tag.
func (w *Writer) WriteVarint(v uint64) {
	w.buf.EncodeVarint(v)
}

// WriteVarintField appends a tag followed by v's unsigned varint encoding.
func (w *Writer) WriteVarintField(fieldNumber int32, v uint64) {
	w.Tag(fieldNumber, WireVarint)
	w.buf.EncodeVarint(v)
}

// WriteZigZagField appends a tag followed by v's zigzag varint encoding
// (the sint64/sint32 wire representation).
func (w *Writer) WriteZigZagField(fieldNumber int32, v int64) {
	w.Tag(fieldNumber, WireVarint)
	w.buf.EncodeZigZag64(v)
}

// WriteBoolField appends a tag followed by a single-byte bool.
func (w *Writer) WriteBoolField(fieldNumber int32, v bool) {
	w.Tag(fieldNumber, WireVarint)
	w.buf.EncodeBool(v)
}

// WriteFixed32Field appends a tag followed by v as a little-endian
// 32-bit value (fixed32/sfixed32).
func (w *Writer) WriteFixed32Field(fieldNumber int32, v uint32) {
	w.Tag(fieldNumber, WireFixed32)
	w.buf.EncodeFixed32(v)
}

// WriteFixed64Field appends a tag followed by v as a little-endian
// 64-bit value (fixed64/sfixed64).
func (w *Writer) WriteFixed64Field(fieldNumber int32, v uint64) {
	w.Tag(fieldNumber, WireFixed64)
	w.buf.EncodeFixed64(v)
}

// WriteFloatField appends a tag followed by f's IEEE-754 float32
// encoding.
func (w *Writer) WriteFloatField(fieldNumber int32, f float32) {
	w.Tag(fieldNumber, WireFixed32)
	w.buf.EncodeFloat(f)
}

// WriteDoubleField appends a tag followed by f's IEEE-754 float64
// encoding.
func (w *Writer) WriteDoubleField(fieldNumber int32, f float64) {
	w.Tag(fieldNumber, WireFixed64)
	w.buf.EncodeDouble(f)
}

// WriteBytesField appends a tag followed by a varint length and b's raw
// bytes: the framing shared by string, bytes, and (non-nested) message
// fields.
func (w *Writer) WriteBytesField(fieldNumber int32, b []byte) {
	w.Tag(fieldNumber, WireBytes)
	w.buf.EncodeLengthDelimited(b)
}

// WriteStringField appends a tag followed by a varint length and s's
// UTF-8 bytes.
func (w *Writer) WriteStringField(fieldNumber int32, s string) {
	w.WriteBytesField(fieldNumber, []byte(s))
}

// BeginSubMessage appends fieldNumber's tag and a placeholder length, and
// pushes the placeholder's offset onto the pending stack. The caller
// writes the sub-message's fields directly to this same Writer, then
// calls EndSubMessage to backfill the real length.
func (w *Writer) BeginSubMessage(fieldNumber int32) {
	w.Tag(fieldNumber, WireBytes)
	w.pending = append(w.pending, w.buf.Len())
	// Reserve one byte now; EndSubMessage widens this if the payload turns
	// out to need a longer varint, via InsertAt.
	w.buf.EncodeVarint(0)
}

// EndSubMessage closes the most recently opened BeginSubMessage, patching
// its placeholder with the actual payload length. It panics if no
// BeginSubMessage is currently open, mirroring a programmer error rather
// than a data error.
func (w *Writer) EndSubMessage() {
	n := len(w.pending)
	if n == 0 {
		panic("protowire: EndSubMessage with no matching BeginSubMessage")
	}
	start := w.pending[n-1]
	w.pending = w.pending[:n-1]

	payloadStart := start + 1 // the placeholder byte written by BeginSubMessage
	length := w.buf.Len() - payloadStart

	lengthVarint := encodeVarintBytes(uint64(length))
	if len(lengthVarint) == 1 {
		// Fast path: the reserved single byte already holds the right width.
		b := w.buf.Bytes()
		b[start] = lengthVarint[0]
		return
	}

	// The placeholder byte was too narrow for the payload's real length:
	// drop it and splice in the wider varint, shifting the payload right.
	b := w.buf.Bytes()
	copy(b[start:], b[payloadStart:])
	w.buf.Truncate(w.buf.Len() - 1)
	w.buf.InsertAt(start, lengthVarint)
}

func encodeVarintBytes(v uint64) []byte {
	var tmp codec.Buffer
	tmp.EncodeVarint(v)
	return tmp.Bytes()
}

// BeginGroup appends a START_GROUP tag for fieldNumber. The caller writes
// the group's fields directly to this Writer, then calls EndGroup.
func (w *Writer) BeginGroup(fieldNumber int32) {
	w.Tag(fieldNumber, WireStartGroup)
}

// EndGroup appends an END_GROUP tag for fieldNumber. It does not check
// fieldNumber against the field number of the open BeginGroup.
func (w *Writer) EndGroup(fieldNumber int32) {
	w.Tag(fieldNumber, WireEndGroup)
}

// WritePackedVarintField appends fieldNumber's tag, the varint-encoded
// total byte length of vs, and each value's unsigned varint encoding
// back-to-back: the packed-repeated framing for varint-wire scalar types.
func (w *Writer) WritePackedVarintField(fieldNumber int32, vs []uint64) {
	w.BeginSubMessage(fieldNumber)
	for _, v := range vs {
		w.buf.EncodeVarint(v)
	}
	w.EndSubMessage()
}

// WritePackedFixed32Field appends fieldNumber's tag and each value's
// little-endian 32-bit encoding, packed into a single length-delimited
// field.
func (w *Writer) WritePackedFixed32Field(fieldNumber int32, vs []uint32) {
	w.BeginSubMessage(fieldNumber)
	for _, v := range vs {
		w.buf.EncodeFixed32(v)
	}
	w.EndSubMessage()
}

// WritePackedFixed64Field appends fieldNumber's tag and each value's
// little-endian 64-bit encoding, packed into a single length-delimited
// field.
func (w *Writer) WritePackedFixed64Field(fieldNumber int32, vs []uint64) {
	w.BeginSubMessage(fieldNumber)
	for _, v := range vs {
		w.buf.EncodeFixed64(v)
	}
	w.EndSubMessage()
}
