package witschema

import (
	"fmt"
	"strings"

	"github.com/wippyai/structpack/pack"
	"go.bytecodealliance.org/wit"
)

// SlotType returns the WIT type of one value slot of f, or nil for padding.
func SlotType(f pack.Field) wit.Type {
	switch f.Kind {
	case pack.KindBool:
		return wit.Bool{}
	case pack.KindChar, pack.KindUint8:
		return wit.U8{}
	case pack.KindInt8:
		return wit.S8{}
	case pack.KindInt16:
		return wit.S16{}
	case pack.KindUint16:
		return wit.U16{}
	case pack.KindInt32:
		return wit.S32{}
	case pack.KindUint32:
		return wit.U32{}
	case pack.KindInt64:
		return wit.S64{}
	case pack.KindUint64:
		return wit.U64{}
	case pack.KindFloat32:
		return wit.F32{}
	case pack.KindFloat64:
		return wit.F64{}
	case pack.KindString:
		return wit.String{}
	}
	return nil
}

// SlotTypes returns one WIT type per value slot of l.
func SlotTypes(l *pack.Layout) []wit.Type {
	types := make([]wit.Type, l.Slots())
	for i := range types {
		types[i] = SlotType(l.SlotField(i))
	}
	return types
}

// Tuple returns an anonymous WIT tuple of l's slot types.
func Tuple(l *pack.Layout) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Tuple{Types: SlotTypes(l)}}
}

// Signature is shorthand for TypeString(Tuple(l)).
func Signature(l *pack.Layout) string {
	return TypeString(Tuple(l))
}

// TypeString renders t in WIT syntax.
func TypeString(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch k := v.Kind.(type) {
		case *wit.Tuple:
			parts := make([]string, len(k.Types))
			for i, et := range k.Types {
				parts[i] = TypeString(et)
			}
			return "tuple<" + strings.Join(parts, ", ") + ">"
		case *wit.List:
			return "list<" + TypeString(k.Type) + ">"
		}
		return "typedef"
	case nil:
		return "_"
	default:
		return fmt.Sprintf("%T", t)
	}
}
