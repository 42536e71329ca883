package protowire

import (
	"errors"

	"github.com/kolesnikovae/protowire/src/codec"
)

// Kind classifies why a codec operation failed. See the Kind constants
// below for the full enumeration used throughout this module.
type Kind = codec.Kind

// Error is the concrete error type that carries a Kind. Codec and Reader
// operations return it directly; MessageEach and PackedRepeatedEach wrap
// it with context (see IsKind).
type Error = codec.Error

// The error kinds a Reader or Writer can report. Each corresponds to one
// row of the error table: a byte-source given an unsupported
// representation, a malformed tag, a truncated or oversized varint, a
// negative length prefix, a read that would run past the current end, a
// sub-message whose declared length disagrees with what was consumed, an
// unterminated or mismatched group, a message-set invariant violation,
// or a typed read whose wire type doesn't match the tag.
const (
	InvalidInput           = codec.InvalidInput
	InvalidTag             = codec.InvalidTag
	InvalidVarint          = codec.InvalidVarint
	NegativeLength         = codec.NegativeLength
	ReadPastEnd            = codec.ReadPastEnd
	MessageLengthMismatch  = codec.MessageLengthMismatch
	UnmatchedStartGroupEof = codec.UnmatchedStartGroupEof
	UnmatchedEndGroup      = codec.UnmatchedEndGroup
	GroupDidNotEnd         = codec.GroupDidNotEnd
	MalformedMessageSet    = codec.MalformedMessageSet
	WireTypeMismatch       = codec.WireTypeMismatch
)

// IsKind reports whether err is, or wraps, a *Error of the given Kind.
// It uses errors.As so a Kind survives any number of
// fmt.Errorf("...: %w", err) wrapping layers, matching the way
// MessageEach and PackedRepeatedEach annotate errors as they propagate.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func newInvalidInputErrorf(format string, args ...any) error {
	return codec.NewError(InvalidInput, format, args...)
}
