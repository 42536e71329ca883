package protowire

import "github.com/kolesnikovae/protowire/src/codec"

// Reader is a cursor-oriented, field-aware scanner over a protobuf
// wire-format byte range. It wraps a *codec.Buffer with a field-iteration
// state machine — NextField, typed reads, sub-message descent, and group
// matching — none of which the bare codec.Buffer knows about on its own.
//
// A Reader is a single-use value: construct it around a byte range,
// drive NextField/typed-reads/Skip to exhaustion, then discard it. It is
// not safe for concurrent use by multiple goroutines.
type Reader struct {
	buf *codec.Buffer

	end              int
	fieldStart       int
	fieldNum         int32
	wireType         WireType
	hasTag           bool
	groupCloseCount  int
}

// NewReader constructs a Reader over b, starting at offset 0 and ending
// at len(b).
func NewReader(b []byte) *Reader {
	buf := codec.NewBuffer(b)
	return &Reader{buf: buf, end: len(b)}
}

func newSubReader(buf *codec.Buffer, end int) *Reader {
	return &Reader{buf: buf, end: end}
}

// Len returns the number of bytes between the cursor and the Reader's
// current end (message or group boundary).
func (r *Reader) Len() int {
	return r.end - r.buf.Index()
}

// Index returns the Reader's absolute cursor position in its backing
// array.
func (r *Reader) Index() int {
	return r.buf.Index()
}

// NextField does NOT automatically advance past the previously read
// field's value if the caller didn't already consume it: callers must
// issue exactly one typed read, Skip, ReadSubMessage, or ReadGroup per
// field before calling NextField again. NextField returns false, nil at
// end of input; it returns an error only for a malformed tag.
func (r *Reader) NextField() (bool, error) {
	if r.buf.Index() >= r.end {
		r.hasTag = false
		return false, nil
	}
	r.fieldStart = r.buf.Index()
	fn, wt, err := r.buf.DecodeTagAndWireType()
	if err != nil {
		r.hasTag = false
		return false, err
	}
	r.fieldNum = fn
	r.wireType = wt
	r.hasTag = true
	return true, nil
}

// FieldNumber returns the field number of the most recently parsed tag.
// Valid only after NextField has returned true.
func (r *Reader) FieldNumber() int32 {
	return r.fieldNum
}

// WireType returns the wire type of the most recently parsed tag. Valid
// only after NextField has returned true.
func (r *Reader) WireType() WireType {
	return r.wireType
}

// FieldStart returns the absolute offset of the most recently parsed
// tag's first byte, so callers can capture [FieldStart, cursor-after-
// read) to preserve an unknown field verbatim.
func (r *Reader) FieldStart() int {
	return r.fieldStart
}

func (r *Reader) checkWireType(want WireType) error {
	if r.wireType != want {
		return codec.NewError(WireTypeMismatch, "field %d: expected wire type %s, got %s", r.fieldNum, want, r.wireType)
	}
	return nil
}

// ReadVarint reads the current field's value as a raw (unsigned) varint.
// The caller is responsible for any zigzag decoding or sign
// reinterpretation its field type requires.
func (r *Reader) ReadVarint() (uint64, error) {
	if err := r.checkWireType(WireVarint); err != nil {
		return 0, err
	}
	return r.buf.DecodeVarint()
}

// ReadZigZagVarint reads the current field's value as a zigzag-encoded
// 64-bit signed integer (the sint64/sint32 protobuf types).
func (r *Reader) ReadZigZagVarint() (int64, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return codec.DecodeZigZag64(v), nil
}

// ReadBool reads the current field's value as a varint-encoded bool.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadFixed32 reads the current field's value as a little-endian 32-bit
// integer (fixed32/sfixed32/float).
func (r *Reader) ReadFixed32() (uint32, error) {
	if err := r.checkWireType(WireFixed32); err != nil {
		return 0, err
	}
	v, err := r.buf.DecodeFixed32()
	return uint32(v), err
}

// ReadFixed64 reads the current field's value as a little-endian 64-bit
// integer (fixed64/sfixed64/double).
func (r *Reader) ReadFixed64() (uint64, error) {
	if err := r.checkWireType(WireFixed64); err != nil {
		return 0, err
	}
	return r.buf.DecodeFixed64()
}

// ReadFloat reads the current field's value as an IEEE-754 float32.
func (r *Reader) ReadFloat() (float32, error) {
	v, err := r.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return JoinFloat32(Split64{Low: v}), nil
}

// ReadDouble reads the current field's value as an IEEE-754 float64.
func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return JoinFloat64(SplitUint64(v)), nil
}

// ReadBytes reads the current field's value as a length-delimited byte
// range (string/bytes/embedded-message). If alloc is false, the returned
// slice aliases the Reader's backing array and must not be retained past
// the Reader's lifetime if that array will be reused or mutated.
func (r *Reader) ReadBytes(alloc bool) ([]byte, error) {
	if err := r.checkWireType(WireBytes); err != nil {
		return nil, err
	}
	b, err := r.buf.DecodeRawBytes(alloc)
	if err != nil {
		return nil, err
	}
	if r.buf.Index() > r.end {
		return nil, codec.NewError(MessageLengthMismatch, "field %d: length-delimited value overruns enclosing end", r.fieldNum)
	}
	return b, nil
}

// ReadString reads the current field's value as a length-delimited UTF-8
// string.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes(true)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadSubMessage reads a length-delimited sub-message and invokes fn
// with a Reader scoped to exactly its payload. fn must iterate its
// Reader to exhaustion; if it stops early, ReadSubMessage reports
// MessageLengthMismatch.
func (r *Reader) ReadSubMessage(fn func(*Reader) error) error {
	if err := r.checkWireType(WireBytes); err != nil {
		return err
	}
	n, err := r.buf.DecodeVarint()
	if err != nil {
		return err
	}
	start := r.buf.Index()
	subEnd := start + int(n)
	if n > (1<<63-1) || subEnd < start || subEnd > r.end {
		return codec.NewError(MessageLengthMismatch, "field %d: sub-message length %d at %d exceeds enclosing end %d", r.fieldNum, n, start, r.end)
	}
	sub := newSubReader(r.buf, subEnd)
	if err := fn(sub); err != nil {
		return err
	}
	if r.buf.Index() != subEnd {
		return codec.NewError(MessageLengthMismatch, "field %d: sub-message handler stopped at %d, expected %d", r.fieldNum, r.buf.Index(), subEnd)
	}
	return nil
}

// ReadGroup invokes fn with this same Reader (groups have no length
// prefix, so there is no separate end offset to scope) and requires that
// fn drive its own NextField/IsEndGroup loop until it consumes the
// END_GROUP tag matching fieldNumber: any other
// END_GROUP fn observes is UnmatchedEndGroup (IsEndGroup reports that
// itself), reaching the Reader's end without a matching END_GROUP is
// UnmatchedStartGroupEof, and fn returning having read fields but never
// closed the group is GroupDidNotEnd. Nested groups sharing the same
// field number are legal because a nested START_GROUP's own recursive
// ReadGroup call consumes its own matching END_GROUP before returning
// control to the enclosing fn's loop.
func (r *Reader) ReadGroup(fieldNumber int32, fn func(*Reader) error) error {
	if err := r.checkWireType(WireStartGroup); err != nil {
		return err
	}
	before := r.groupCloseCount
	if err := fn(r); err != nil {
		return err
	}
	if r.groupCloseCount > before {
		r.groupCloseCount = before
		return nil
	}
	if r.buf.Index() >= r.end {
		return codec.NewError(UnmatchedStartGroupEof, "field %d: stream ended before matching end group", fieldNumber)
	}
	return codec.NewError(GroupDidNotEnd, "field %d: handler returned without consuming matching end group", fieldNumber)
}

// IsEndGroup reports whether the most recently parsed tag is an
// END_GROUP for fieldNumber, and consumes it if so. Generated code
// iterating a group's fields calls this to recognize its terminator;
// recursion into a nested START_GROUP of the same field number is legal
// and handled naturally because each level consumes its own matching
// END_GROUP before returning to its caller's NextField loop.
func (r *Reader) IsEndGroup(fieldNumber int32) (bool, error) {
	if !r.hasTag || r.wireType != WireEndGroup {
		return false, nil
	}
	if r.fieldNum != fieldNumber {
		return false, codec.NewError(UnmatchedEndGroup, "end group for field %d does not match open group field %d", r.fieldNum, fieldNumber)
	}
	r.hasTag = false
	r.groupCloseCount++
	return true, nil
}

// SkipField discards the current field's value according to its wire
// type (varint, fixed32/64, length-delimited, or a fully nested group),
// and returns the absolute byte range [FieldStart(), end-of-value) it
// consumed, so callers implementing unknown-field preservation can
// capture and re-emit it verbatim.
func (r *Reader) SkipField() (start, end int, err error) {
	start = r.fieldStart
	switch r.wireType {
	case WireVarint:
		if _, err = r.buf.DecodeVarint(); err != nil {
			return start, 0, err
		}
	case WireFixed32:
		if err = r.buf.Skip(4); err != nil {
			return start, 0, err
		}
	case WireFixed64:
		if err = r.buf.Skip(8); err != nil {
			return start, 0, err
		}
	case WireBytes:
		if _, err = r.buf.DecodeRawBytes(false); err != nil {
			return start, 0, err
		}
	case WireStartGroup:
		if err = r.buf.SkipGroup(); err != nil {
			return start, 0, err
		}
	case WireEndGroup:
		return start, 0, codec.NewError(UnmatchedEndGroup, "skip: unexpected end group for field %d", r.fieldNum)
	default:
		return start, 0, codec.NewError(InvalidTag, "skip: unknown wire type %d", r.wireType)
	}
	if r.buf.Index() > r.end {
		return start, 0, codec.NewError(MessageLengthMismatch, "field %d: skipped value overruns enclosing end", r.fieldNum)
	}
	return start, r.buf.Index(), nil
}

// CountField counts contiguous occurrences of (fieldNumber, wireType)
// starting at the Reader's current cursor, without consuming them. Used
// to presize a repeated field's backing array before a second,
// populating pass. wireType must be one of WireVarint,
// WireFixed32, WireFixed64, or WireBytes.
func (r *Reader) CountField(fieldNumber int32, wireType WireType) int {
	buf := r.buf.Bytes()
	start := r.buf.Index()
	switch wireType {
	case WireVarint:
		return codec.CountVarintFields(buf, start, r.end, fieldNumber)
	case WireFixed32:
		return codec.CountFixed32Fields(buf, start, r.end, fieldNumber)
	case WireFixed64:
		return codec.CountFixed64Fields(buf, start, r.end, fieldNumber)
	case WireBytes:
		return codec.CountDelimitedFields(buf, start, r.end, fieldNumber)
	default:
		return 0
	}
}
