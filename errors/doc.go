// Package errors provides structured error types for the structpack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the context a caller needs to react programmatically:
// the offending character and its position in a format string, the value slot
// index, integer width and signedness, and expected/actual counts.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOverflow).
//		Index(3).
//		Type("int8").
//		Value(200).
//		Detail("value 200 overflows int8").
//		Build()
//
// Or use convenience constructors for the common patterns:
//
//	err := errors.InvalidCharacter('z', 1)
//	err := errors.BufferTooShort(4, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
// Comparing against a sentinel matches on Phase and Kind only:
//
//	if errors.Is(err, errors.ErrIntegerOverflow) { ... }
package errors
