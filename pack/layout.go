package pack

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/wippyai/structpack/pack/internal/abi"
)

// Layout is a compiled format string. It is never modified after Compile
// returns, so one Layout can serve any number of concurrent calls.
type Layout struct {
	endian    binary.ByteOrder
	format    string
	fields    []Field
	slotField []int
	size      int
	order     ByteOrder
}

// Format returns the string the layout was compiled from.
func (l *Layout) Format() string {
	return l.format
}

// Order returns the byte order mode selected by the format's marker.
func (l *Layout) Order() ByteOrder {
	return l.order
}

// Endian returns the concrete byte order used for multi-byte fields.
func (l *Layout) Endian() binary.ByteOrder {
	return l.endian
}

// Size returns the encoded length in bytes.
func (l *Layout) Size() int {
	return l.size
}

// Slots returns the number of values Encode consumes and Decode produces.
func (l *Layout) Slots() int {
	return len(l.slotField)
}

// NumFields returns the number of compiled fields, padding included.
func (l *Layout) NumFields() int {
	return len(l.fields)
}

// Field returns the i-th compiled field.
func (l *Layout) Field(i int) Field {
	return l.fields[i]
}

// Fields returns a copy of the compiled fields.
func (l *Layout) Fields() []Field {
	return slices.Clone(l.fields)
}

// SlotField returns the field that owns value slot i.
func (l *Layout) SlotField(i int) Field {
	return l.fields[l.slotField[i]]
}

// String returns the canonical form of the format: an explicit marker
// followed by each field token.
func (l *Layout) String() string {
	var b strings.Builder
	b.WriteByte(l.order.Marker())
	for _, f := range l.fields {
		b.WriteString(f.Token())
	}
	return b.String()
}

// Encode is shorthand for Encode(l, values).
func (l *Layout) Encode(values []Value) ([]byte, error) {
	return defaultEncoder.Encode(l, values)
}

// Decode is shorthand for Decode(l, data).
func (l *Layout) Decode(data []byte) ([]Value, error) {
	return defaultDecoder.Decode(l, data)
}

// Pack encodes native Go values, converting each with ValueOf.
func (l *Layout) Pack(args ...any) ([]byte, error) {
	if len(args) != l.Slots() {
		return nil, valueCountError(l.Slots(), len(args))
	}
	values := make([]Value, len(args))
	for i, arg := range args {
		v, ok := valueOf(arg)
		if !ok {
			return nil, typeMismatch(i, abi.TypeName(arg), l.SlotField(i))
		}
		values[i] = v
	}
	return l.Encode(values)
}

// Unpack decodes data into native Go values (see Value.Interface).
func (l *Layout) Unpack(data []byte) ([]any, error) {
	values, err := l.Decode(data)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.Interface()
	}
	return out, nil
}
