package codec

import "fmt"

// Kind classifies the ways decoding or encoding can fail. It mirrors the
// error table in the codec's design notes, rather than exposing only an
// opaque error value.
type Kind int8

const (
	// InvalidInput is returned when a byte-source normalizer is given an
	// unsupported representation.
	InvalidInput Kind = iota
	// InvalidTag is returned when a tag's wire type is greater than 5 or
	// its field number is 0.
	InvalidTag
	// InvalidVarint is returned when a varint is longer than 10 bytes or
	// the buffer ends before it terminates.
	InvalidVarint
	// NegativeLength is returned when a length prefix decodes to a
	// negative number.
	NegativeLength
	// ReadPastEnd is returned when a typed read would move the cursor
	// past the current end of buffer or message.
	ReadPastEnd
	// MessageLengthMismatch is returned when a sub-message's declared
	// length disagrees with the payload actually consumed.
	MessageLengthMismatch
	// UnmatchedStartGroupEof is returned when the stream ends inside an
	// open group.
	UnmatchedStartGroupEof
	// UnmatchedEndGroup is returned when an END_GROUP tag is seen with no
	// matching START_GROUP at the current depth.
	UnmatchedEndGroup
	// GroupDidNotEnd is returned when a group handler returns without
	// having consumed the matching END_GROUP tag.
	GroupDidNotEnd
	// MalformedMessageSet is returned when message-set parsing violates
	// its structural invariants.
	MalformedMessageSet
	// WireTypeMismatch is returned when a typed read's wire type
	// disagrees with the tag actually present.
	WireTypeMismatch
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InvalidTag:
		return "InvalidTag"
	case InvalidVarint:
		return "InvalidVarint"
	case NegativeLength:
		return "NegativeLength"
	case ReadPastEnd:
		return "ReadPastEnd"
	case MessageLengthMismatch:
		return "MessageLengthMismatch"
	case UnmatchedStartGroupEof:
		return "UnmatchedStartGroupEof"
	case UnmatchedEndGroup:
		return "UnmatchedEndGroup"
	case GroupDidNotEnd:
		return "GroupDidNotEnd"
	case MalformedMessageSet:
		return "MalformedMessageSet"
	case WireTypeMismatch:
		return "WireTypeMismatch"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every fallible operation
// in this package. Kind lets callers switch on the failure category
// without string matching; Msg carries the human-readable detail.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("protowire: %s: %s", e.Kind, e.Msg)
}

// Is allows errors.Is(err, SentinelForKind(k)) style comparisons based
// purely on Kind, ignoring Msg.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// NewError is the exported constructor for *Error, used by the root
// protowire package for the error kinds that originate above the
// low-level codec (e.g. byte-source normalization).
func NewError(k Kind, format string, args ...any) *Error {
	return newError(k, format, args...)
}

// SentinelForKind returns a bare *Error carrying only k, suitable for use
// as the target of errors.Is.
func SentinelForKind(k Kind) *Error {
	return &Error{Kind: k}
}
