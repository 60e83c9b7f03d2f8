package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // format string scanning and compilation
	PhaseEncode Phase = "encode" // values to bytes
	PhaseDecode Phase = "decode" // bytes to values
	PhaseMemory Phase = "memory" // linear memory access
	PhaseConfig Phase = "config" // registry loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidCharacter    Kind = "invalid_character"
	KindInvalidByteOrder    Kind = "invalid_byte_order"
	KindEmptyFormat         Kind = "empty_format"
	KindInvalidLengthPrefix Kind = "invalid_length_prefix"
	KindValueCountMismatch  Kind = "value_count_mismatch"
	KindOverflow            Kind = "overflow"
	KindTypeMismatch        Kind = "type_mismatch"
	KindBufferTooShort      Kind = "buffer_too_short"
	KindOutOfBounds         Kind = "out_of_bounds"
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
)

// Sentinels for errors.Is. Only Phase and Kind are compared.
var (
	ErrInvalidCharacter    = New(PhaseParse, KindInvalidCharacter).Build()
	ErrInvalidByteOrder    = New(PhaseParse, KindInvalidByteOrder).Build()
	ErrEmptyFormat         = New(PhaseParse, KindEmptyFormat).Build()
	ErrInvalidLengthPrefix = New(PhaseParse, KindInvalidLengthPrefix).Build()
	ErrValueCountMismatch  = New(PhaseEncode, KindValueCountMismatch).Build()
	ErrIntegerOverflow     = New(PhaseEncode, KindOverflow).Build()
	ErrTypeMismatch        = New(PhaseEncode, KindTypeMismatch).Build()
	ErrBufferTooShort      = New(PhaseDecode, KindBufferTooShort).Build()
)

// Error is the structured error type used throughout the library.
//
// Position, Index, Expected and Actual are -1 when not applicable.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Type     string // field type the error relates to, e.g. "int16" or "string[5]"
	Detail   string
	Char     rune
	Position int // byte offset in the format string
	Index    int // value slot index
	Width    int // integer width in bytes
	Signed   bool
	Expected int
	Actual   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	switch {
	case e.Index >= 0 && e.Phase != PhaseParse:
		b.WriteString(" at slot ")
		b.WriteString(strconv.Itoa(e.Index))
	case e.Position >= 0:
		b.WriteString(" at position ")
		b.WriteString(strconv.Itoa(e.Position))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:    phase,
			Kind:     kind,
			Position: -1,
			Index:    -1,
			Expected: -1,
			Actual:   -1,
		},
	}
}

// Position sets the format string offset and the character found there
func (b *Builder) Position(pos int, c rune) *Builder {
	b.err.Position = pos
	b.err.Char = c
	return b
}

// Index sets the value slot index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Type sets the field type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Integer sets the integer width and signedness
func (b *Builder) Integer(width int, signed bool) *Builder {
	b.err.Width = width
	b.err.Signed = signed
	return b
}

// Counts sets the expected and actual counts
func (b *Builder) Counts(expected, actual int) *Builder {
	b.err.Expected = expected
	b.err.Actual = actual
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	err := b.err
	return &err
}

// Convenience constructors for common error patterns

// InvalidCharacter reports a character outside the format alphabet
func InvalidCharacter(c rune, pos int) *Error {
	return New(PhaseParse, KindInvalidCharacter).
		Position(pos, c).
		Detail("unexpected character %q", c).
		Build()
}

// InvalidByteOrder reports a byte order marker that is not the first character
func InvalidByteOrder(c rune, pos int) *Error {
	return New(PhaseParse, KindInvalidByteOrder).
		Position(pos, c).
		Detail("byte order marker %q must be the first character", c).
		Build()
}

// EmptyFormat reports a format string with no fields
func EmptyFormat(format string) *Error {
	return New(PhaseParse, KindEmptyFormat).
		Value(format).
		Detail("format %q declares no fields", format).
		Build()
}

// InvalidLengthPrefix reports a malformed count or length prefix
func InvalidLengthPrefix(pos int, detail string) *Error {
	return New(PhaseParse, KindInvalidLengthPrefix).
		Position(pos, 0).
		Detail("%s", detail).
		Build()
}

// ValueCountMismatch reports a value sequence of the wrong length
func ValueCountMismatch(expected, actual int) *Error {
	return New(PhaseEncode, KindValueCountMismatch).
		Counts(expected, actual).
		Detail("expected %d values, got %d", expected, actual).
		Build()
}

// IntegerOverflow reports a value outside an integer field's range
func IntegerOverflow(index, width int, signed bool, value any, typeName string) *Error {
	return New(PhaseEncode, KindOverflow).
		Index(index).
		Integer(width, signed).
		Type(typeName).
		Value(value).
		Detail("value %v overflows %s", value, typeName).
		Build()
}

// TypeMismatch reports a value kind the field cannot accept
func TypeMismatch(index int, valueKind, typeName string) *Error {
	return New(PhaseEncode, KindTypeMismatch).
		Index(index).
		Type(typeName).
		Detail("cannot encode %s value", valueKind).
		Build()
}

// BufferTooShort reports an input buffer smaller than the layout
func BufferTooShort(needed, actual int) *Error {
	return New(PhaseDecode, KindBufferTooShort).
		Counts(needed, actual).
		Detail("need %d bytes, got %d", needed, actual).
		Build()
}

// OutOfBounds reports an access past the end of a buffer or linear memory
func OutOfBounds(phase Phase, offset, length, size int) *Error {
	return New(phase, KindOutOfBounds).
		Counts(offset+length, size).
		Detail("range [%d, %d) exceeds size %d", offset, offset+length, size).
		Build()
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return New(phase, KindNotFound).
		Detail("%s %q not found", what, name).
		Build()
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidInput).
		Detail("%s", detail).
		Build()
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).
		Cause(cause).
		Detail("%s", detail).
		Build()
}
