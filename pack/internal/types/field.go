package types

import "strconv"

// Field is one compiled token. Scalars use Repeat; strings and padding use
// Length and always have Repeat 1.
type Field struct {
	Kind   Kind
	Code   byte
	Repeat int
	Length int
	Offset int
}

// Size returns the encoded byte length of the whole field.
func (f Field) Size() int {
	if f.Kind.IsLengthBearing() {
		return f.Length
	}
	return f.Kind.Size() * f.Repeat
}

// Slots returns how many values the field consumes on encode.
func (f Field) Slots() int {
	switch f.Kind {
	case KindPadding:
		return 0
	case KindString:
		return 1
	default:
		return f.Repeat
	}
}

// TypeName names a single value slot of the field, e.g. "int16" or "string[5]".
func (f Field) TypeName() string {
	if f.Kind.IsLengthBearing() {
		return f.Kind.String() + "[" + strconv.Itoa(f.Length) + "]"
	}
	return f.Kind.String()
}

// Token renders the field back as a format token.
func (f Field) Token() string {
	n := f.Repeat
	if f.Kind.IsLengthBearing() {
		n = f.Length
	}
	if n == 1 {
		return string(f.Code)
	}
	return strconv.Itoa(n) + string(f.Code)
}
