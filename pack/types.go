package pack

import (
	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack/internal/layout"
	"github.com/wippyai/structpack/pack/internal/scan"
	"github.com/wippyai/structpack/pack/internal/types"
)

// Kind identifies the type of a compiled field.
type Kind = types.Kind

const (
	KindBool    = types.KindBool
	KindChar    = types.KindChar
	KindInt8    = types.KindInt8
	KindUint8   = types.KindUint8
	KindInt16   = types.KindInt16
	KindUint16  = types.KindUint16
	KindInt32   = types.KindInt32
	KindUint32  = types.KindUint32
	KindInt64   = types.KindInt64
	KindUint64  = types.KindUint64
	KindFloat32 = types.KindFloat32
	KindFloat64 = types.KindFloat64
	KindString  = types.KindString
	KindPadding = types.KindPadding
)

// Field is one compiled format token with its byte offset.
type Field = types.Field

// ByteOrder is the byte order mode chosen by a format's marker.
type ByteOrder = layout.Order

const (
	Native  = layout.OrderNative
	Little  = layout.OrderLittle
	Big     = layout.OrderBig
	Network = layout.OrderNetwork
)

// MaxCount is the largest accepted count or length prefix.
const MaxCount = scan.MaxCount

// ParseByteOrder accepts an order name (native, little, big, network) or a
// marker character (@ = < > !).
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "native", "@", "=":
		return Native, nil
	case "little", "<":
		return Little, nil
	case "big", ">":
		return Big, nil
	case "network", "!":
		return Network, nil
	}
	return Native, errors.New(errors.PhaseParse, errors.KindInvalidByteOrder).
		Value(s).
		Detail("unknown byte order %q", s).
		Build()
}

// HasOrderMarker reports whether format starts with a byte order marker.
func HasOrderMarker(format string) bool {
	return len(format) > 0 && scan.IsOrder(format[0])
}
