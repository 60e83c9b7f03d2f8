package pack

import (
	"bytes"
	"math"
	"strconv"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack/internal/abi"
)

type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueBytes
)

var valueKindNames = [...]string{
	ValueInvalid: "invalid",
	ValueBool:    "bool",
	ValueInt:     "int",
	ValueFloat:   "float",
	ValueBytes:   "bytes",
}

// String returns the kind name.
func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "unknown"
}

// Value is one slot of a value sequence.
//
// Integers keep their full 64-bit payload plus a signedness flag, so both
// int64 and uint64 ranges are representable. Scalars produced by Decode also
// carry the width of the field they came from; values built by the
// constructors have width 0. Equal ignores width.
type Value struct {
	bytes  []byte
	bits   uint64
	kind   ValueKind
	width  uint8
	signed bool
}

// Bool returns a bool value.
func Bool(b bool) Value {
	v := Value{kind: ValueBool}
	if b {
		v.bits = 1
	}
	return v
}

// Int returns a signed integer value.
func Int(i int64) Value {
	return Value{kind: ValueInt, bits: uint64(i), signed: true}
}

// Uint returns an unsigned integer value.
func Uint(u uint64) Value {
	return Value{kind: ValueInt, bits: u}
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{kind: ValueFloat, bits: math.Float64bits(f)}
}

// Float32 returns a float value tagged with 4-byte precision.
func Float32(f float32) Value {
	return Value{kind: ValueFloat, bits: math.Float64bits(float64(f)), width: 4}
}

// Bytes returns a bytes value. The slice is not copied.
func Bytes(b []byte) Value {
	return Value{kind: ValueBytes, bytes: b}
}

// String returns a bytes value holding a copy of s.
func String(s string) Value {
	return Value{kind: ValueBytes, bytes: []byte(s)}
}

// Kind returns the value's variant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsValid reports whether v holds a variant.
func (v Value) IsValid() bool {
	return v.kind != ValueInvalid
}

// Width returns the byte width of the field a decoded value came from, or 0.
func (v Value) Width() int {
	return int(v.width)
}

// Signed reports whether an integer value carries a signed payload.
func (v Value) Signed() bool {
	return v.signed
}

// Bool reports whether the scalar payload is nonzero.
func (v Value) Bool() bool {
	return v.bits != 0
}

// Int64 returns the integer payload. Unsigned payloads above math.MaxInt64
// wrap; check Signed first when that matters.
func (v Value) Int64() int64 {
	if v.kind == ValueFloat {
		return int64(v.Float64())
	}
	return int64(v.bits)
}

// Uint64 returns the integer payload, truncating floats.
func (v Value) Uint64() uint64 {
	if v.kind == ValueFloat {
		return uint64(v.Float64())
	}
	return v.bits
}

// Float64 returns the payload as a float64.
func (v Value) Float64() float64 {
	switch v.kind {
	case ValueFloat:
		return math.Float64frombits(v.bits)
	case ValueInt:
		if v.signed {
			return float64(int64(v.bits))
		}
		return float64(v.bits)
	case ValueBool:
		return float64(v.bits)
	}
	return 0
}

// Bytes returns the bytes payload without copying.
func (v Value) Bytes() []byte {
	return v.bytes
}

// negative reports whether an integer payload is below zero.
func (v Value) negative() bool {
	return v.kind == ValueInt && v.signed && int64(v.bits) < 0
}

// truthy follows the usual scripting rules: zero numbers, NaN and empty
// byte strings are false.
func (v Value) truthy() bool {
	switch v.kind {
	case ValueBool, ValueInt:
		return v.bits != 0
	case ValueFloat:
		f := v.Float64()
		return f != 0 && !math.IsNaN(f)
	case ValueBytes:
		return len(v.bytes) > 0
	}
	return false
}

// Equal compares kinds and payloads. Integers compare by numeric value
// regardless of signedness tag; NaN equals NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueInvalid:
		return true
	case ValueBool:
		return v.bits == o.bits
	case ValueInt:
		if v.negative() != o.negative() {
			return false
		}
		return v.bits == o.bits
	case ValueFloat:
		a, b := v.Float64(), o.Float64()
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	case ValueBytes:
		return bytes.Equal(v.bytes, o.bytes)
	}
	return false
}

// String formats the value for display. Bytes values are returned as is.
func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		return strconv.FormatBool(v.Bool())
	case ValueInt:
		if v.signed {
			return strconv.FormatInt(int64(v.bits), 10)
		}
		return strconv.FormatUint(v.bits, 10)
	case ValueFloat:
		bitSize := 64
		if v.width == 4 {
			bitSize = 32
		}
		return strconv.FormatFloat(v.Float64(), 'g', -1, bitSize)
	case ValueBytes:
		return string(v.bytes)
	}
	return "<invalid>"
}

// Interface converts the value back to a native Go value: bool, int64,
// uint64, float32 (4-byte floats), float64 or []byte.
func (v Value) Interface() any {
	switch v.kind {
	case ValueBool:
		return v.Bool()
	case ValueInt:
		if v.signed {
			return int64(v.bits)
		}
		return v.bits
	case ValueFloat:
		if v.width == 4 {
			return float32(v.Float64())
		}
		return v.Float64()
	case ValueBytes:
		return v.bytes
	}
	return nil
}

// ValueOf converts a native Go value: bool, any integer type, float32,
// float64, string, []byte, or a Value.
func ValueOf(x any) (Value, error) {
	v, ok := valueOf(x)
	if !ok {
		return Value{}, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Value(x).
			Detail("unsupported Go type %s", abi.TypeName(x)).
			Build()
	}
	return v, nil
}

func valueOf(x any) (Value, bool) {
	switch v := x.(type) {
	case Value:
		return v, v.IsValid()
	case bool:
		return Bool(v), true
	case string:
		return String(v), true
	case []byte:
		return Bytes(v), true
	case float32:
		return Float32(v), true
	case float64:
		return Float(v), true
	case int, int8, int16, int32, int64:
		i, ok := abi.CoerceToInt64(v)
		return Int(i), ok
	case uint, uint8, uint16, uint32, uint64:
		u, ok := abi.CoerceToUint64(v)
		return Uint(u), ok
	}
	return Value{}, false
}
