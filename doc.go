// Package protowire provides a schema-less codec for the protocol buffer
// binary wire format.
//
// It is organized the way the reference codec it is grounded on is: a
// low-level src/codec package holding the raw varint/zigzag/fixed/
// length-delimited primitives and the growable/fixed Buffer they operate
// on, and a root package layering a field-aware Reader and Writer state
// machine, a Value type for schema-less field iteration (MessageEach,
// PackedRepeatedEach), and the split-64 arithmetic (Split64) used to move
// 64-bit integers and doubles through contexts that cannot carry a full
// 64-bit integer without loss.
//
// A Reader or Writer is built around a single byte range, driven to
// completion, and discarded; neither type is safe for concurrent use by
// multiple goroutines. Failures are reported as a *Error carrying a Kind
// from the enumeration in errors.go, which MessageEach and
// PackedRepeatedEach wrap with context (IsKind sees through the
// wrapping); PackedRepeatedEach's rejection of an unknown field type is a
// plain error with no Kind.
package protowire
