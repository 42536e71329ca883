package protowire

import (
	"fmt"

	"github.com/kolesnikovae/protowire/src/codec"
)

// MessageEachFn is called for each top-level field encountered by
// MessageEach. Returning false, nil stops iteration early without error.
type MessageEachFn func(fieldNum int32, value Value) (bool, error)

// MessageEach iterates over each top-level field of the message r is
// scoped to (the whole input for a root Reader, or a sub-message's
// payload for a Reader handed to ReadSubMessage's callback) and calls fn
// on each one. It is the schema-less counterpart to the typed Read*
// methods, kept from the reference codec's own top-level entry point.
func MessageEach(r *Reader, fn MessageEachFn) error {
	for {
		ok, err := r.NextField()
		if err != nil {
			return fmt.Errorf("MessageEach: error reading tag: %w", err)
		}
		if !ok {
			return nil
		}
		value, err := r.readValue()
		if err != nil {
			return fmt.Errorf("MessageEach: error reading value from buffer: %w", err)
		}
		if shouldContinue, err := fn(r.fieldNum, value); err != nil || !shouldContinue {
			return err
		}
	}
}

// PackedRepeatedEachFn is called for each value in a packed repeated
// field.
type PackedRepeatedEachFn func(value Value) (bool, error)

// PackedRepeatedEach iterates over each value in a packed repeated
// field's payload and calls fn on each one. r must be scoped to exactly
// that field's length-delimited payload (e.g. the Reader obtained by
// wrapping the result of ReadBytes with NewReader). fieldType selects the
// wire type used to decode each element; unlike MessageEach, no tag
// precedes each value, since packed encoding stores a single tag for the
// whole field.
func PackedRepeatedEach(r *Reader, fieldType FieldType, fn PackedRepeatedEachFn) error {
	wireType, ok := fieldType.WireType()
	if !ok {
		return fmt.Errorf("PackedRepeatedEach: unknown field type: %v", fieldType)
	}
	if wireType == WireStartGroup || wireType == WireEndGroup {
		return fmt.Errorf("PackedRepeatedEach: field type %v is not packable", fieldType)
	}

	zigzag := fieldType.IsZigZag()

	r.wireType = wireType
	for r.buf.Index() < r.end {
		value, err := r.readValue()
		if err != nil {
			return fmt.Errorf("PackedRepeatedEach: error reading value from buffer: %w", err)
		}
		if zigzag {
			// fieldType told us this varint is zigzag-encoded (sint32/
			// sint64): un-zigzag it here, while the field type is still in
			// hand, so fn can read Number with AsInt64 uniformly instead of
			// having to know to call AsSint32/AsSint64 itself.
			value.Number = uint64(codec.DecodeZigZag64(value.Number))
		}
		if shouldContinue, err := fn(value); err != nil || !shouldContinue {
			return err
		}
	}
	return nil
}

// readValue decodes the current field's value according to r.wireType,
// as set by the most recent NextField (for MessageEach) or forced
// directly (for PackedRepeatedEach, which has no per-value tag).
func (r *Reader) readValue() (Value, error) {
	value := Value{WireType: r.wireType}
	switch r.wireType {
	case WireVarint:
		v, err := r.buf.DecodeVarint()
		if err != nil {
			return Value{}, fmt.Errorf("error decoding varint: %w", err)
		}
		value.Number = v
	case WireFixed32:
		v, err := r.buf.DecodeFixed32()
		if err != nil {
			return Value{}, fmt.Errorf("error decoding fixed32: %w", err)
		}
		value.Number = v
	case WireFixed64:
		v, err := r.buf.DecodeFixed64()
		if err != nil {
			return Value{}, fmt.Errorf("error decoding fixed64: %w", err)
		}
		value.Number = v
	case WireBytes:
		b, err := r.buf.DecodeRawBytes(false)
		if err != nil {
			return Value{}, fmt.Errorf("error decoding raw bytes: %w", err)
		}
		value.Bytes = b
	case WireStartGroup, WireEndGroup:
		return Value{}, codec.NewError(InvalidTag, "encountered group wire type %d; use ReadGroup instead", r.wireType)
	default:
		return Value{}, codec.NewError(InvalidTag, "unknown wire type: %d", r.wireType)
	}
	if r.buf.Index() > r.end {
		return Value{}, codec.NewError(MessageLengthMismatch, "field %d: value overruns enclosing end", r.fieldNum)
	}
	return value, nil
}
