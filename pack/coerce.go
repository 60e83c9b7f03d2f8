package pack

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack/internal/abi"
)

func valueCountError(expected, actual int) error {
	return errors.ValueCountMismatch(expected, actual)
}

func typeMismatch(index int, valueKind string, f Field) error {
	return errors.TypeMismatch(index, valueKind, f.TypeName())
}

func overflow(index int, f Field, v Value) error {
	return errors.IntegerOverflow(index, f.Kind.Size(), f.Kind.IsSigned(), v.Interface(), f.TypeName())
}

// lowerScalar validates v against a scalar field and returns the bits to
// store in the low f.Kind.Size() bytes.
func lowerScalar(index int, f Field, v Value) (uint64, error) {
	switch {
	case f.Kind == KindBool:
		if !v.IsValid() {
			return 0, typeMismatch(index, v.kind.String(), f)
		}
		if v.truthy() {
			return 1, nil
		}
		return 0, nil
	case f.Kind == KindChar:
		return lowerChar(index, f, v)
	case f.Kind.IsInteger():
		return lowerInteger(index, f, v)
	case f.Kind == KindFloat32:
		fv, ok := floatPayload(v)
		if !ok {
			return 0, typeMismatch(index, v.kind.String(), f)
		}
		return uint64(math.Float32bits(float32(fv))), nil
	case f.Kind == KindFloat64:
		fv, ok := floatPayload(v)
		if !ok {
			return 0, typeMismatch(index, v.kind.String(), f)
		}
		return math.Float64bits(fv), nil
	}
	return 0, typeMismatch(index, v.kind.String(), f)
}

func floatPayload(v Value) (float64, bool) {
	switch v.kind {
	case ValueFloat, ValueInt:
		return v.Float64(), true
	}
	return 0, false
}

func lowerChar(index int, f Field, v Value) (uint64, error) {
	switch v.kind {
	case ValueBytes:
		if len(v.bytes) != 1 {
			return 0, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Index(index).
				Type(f.TypeName()).
				Value(len(v.bytes)).
				Detail("char requires exactly 1 byte, got %d", len(v.bytes)).
				Build()
		}
		return uint64(v.bytes[0]), nil
	case ValueInt:
		if v.negative() || !abi.UnsignedFits(v.bits, 1) {
			return 0, overflow(index, f, v)
		}
		return v.bits, nil
	}
	return 0, typeMismatch(index, v.kind.String(), f)
}

func lowerInteger(index int, f Field, v Value) (uint64, error) {
	width := f.Kind.Size()

	switch v.kind {
	case ValueBool:
		return v.bits, nil
	case ValueFloat:
		fv := v.Float64()
		if math.IsNaN(fv) || math.IsInf(fv, 0) || fv != math.Trunc(fv) {
			return 0, typeMismatch(index, "non-integral float", f)
		}
		if f.Kind.IsSigned() {
			i, ok := abi.CoerceToInt64(fv)
			if !ok || !abi.SignedFits(i, width) {
				return 0, overflow(index, f, v)
			}
			return uint64(i), nil
		}
		u, ok := abi.CoerceToUint64(fv)
		if !ok || !abi.UnsignedFits(u, width) {
			return 0, overflow(index, f, v)
		}
		return u, nil
	case ValueInt:
		if f.Kind.IsSigned() {
			if !v.signed && v.bits > math.MaxInt64 {
				return 0, overflow(index, f, v)
			}
			if !abi.SignedFits(int64(v.bits), width) {
				return 0, overflow(index, f, v)
			}
			return v.bits, nil
		}
		if v.negative() || !abi.UnsignedFits(v.bits, width) {
			return 0, overflow(index, f, v)
		}
		return v.bits, nil
	}
	return 0, typeMismatch(index, v.kind.String(), f)
}

func putScalar(dst []byte, order binary.ByteOrder, width int, raw uint64) {
	switch width {
	case 1:
		dst[0] = byte(raw)
	case 2:
		order.PutUint16(dst, uint16(raw))
	case 4:
		order.PutUint32(dst, uint32(raw))
	case 8:
		order.PutUint64(dst, raw)
	}
}

func readScalar(src []byte, order binary.ByteOrder, width int) uint64 {
	switch width {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(order.Uint16(src))
	case 4:
		return uint64(order.Uint32(src))
	case 8:
		return order.Uint64(src)
	}
	return 0
}

// liftScalar builds the decoded value for one scalar slot.
func liftScalar(f Field, raw uint64, src []byte, zeroCopy bool) Value {
	width := uint8(f.Kind.Size())

	switch {
	case f.Kind == KindBool:
		v := Bool(raw != 0)
		v.width = width
		return v
	case f.Kind == KindChar:
		b := src[:1:1]
		if !zeroCopy {
			b = []byte{src[0]}
		}
		return Value{kind: ValueBytes, bytes: b, width: width}
	case f.Kind.IsSigned():
		return Value{kind: ValueInt, bits: uint64(abi.SignExtend(raw, int(width))), signed: true, width: width}
	case f.Kind.IsInteger():
		return Value{kind: ValueInt, bits: raw, width: width}
	case f.Kind == KindFloat32:
		return Value{kind: ValueFloat, bits: math.Float64bits(float64(math.Float32frombits(uint32(raw)))), width: width}
	case f.Kind == KindFloat64:
		return Value{kind: ValueFloat, bits: raw, width: width}
	}
	return Value{}
}
