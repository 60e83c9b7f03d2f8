package types

// Kind identifies the type a format code compiles to.
type Kind uint8

const (
	KindBool Kind = iota
	KindChar
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindPadding
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindChar:    "char",
	KindInt8:    "int8",
	KindUint8:   "uint8",
	KindInt16:   "int16",
	KindUint16:  "uint16",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindInt64:   "int64",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindPadding: "padding",
}

var kindSizes = [...]int{
	KindBool:    1,
	KindChar:    1,
	KindInt8:    1,
	KindUint8:   1,
	KindInt16:   2,
	KindUint16:  2,
	KindInt32:   4,
	KindUint32:  4,
	KindInt64:   8,
	KindUint64:  8,
	KindFloat32: 4,
	KindFloat64: 8,
	KindString:  1,
	KindPadding: 1,
}

// String returns the Go-style type name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Size is the element size in bytes. String and padding report 1: their
// field length is the byte count.
func (k Kind) Size() int {
	if int(k) < len(kindSizes) {
		return kindSizes[k]
	}
	return 0
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindInt8 && k <= KindUint64
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// IsFloat reports whether k is float32 or float64.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsLengthBearing reports whether the count prefix is a byte length rather
// than a repeat factor.
func (k Kind) IsLengthBearing() bool {
	return k == KindString || k == KindPadding
}

// IsMultiByte reports whether the byte order affects the encoding.
func (k Kind) IsMultiByte() bool {
	return !k.IsLengthBearing() && k.Size() > 1
}

// FromCode maps a format type code to its kind.
func FromCode(c byte) (Kind, bool) {
	switch c {
	case '?':
		return KindBool, true
	case 'c':
		return KindChar, true
	case 'b':
		return KindInt8, true
	case 'B':
		return KindUint8, true
	case 'h':
		return KindInt16, true
	case 'H':
		return KindUint16, true
	case 'i', 'l':
		return KindInt32, true
	case 'I', 'L':
		return KindUint32, true
	case 'q':
		return KindInt64, true
	case 'Q':
		return KindUint64, true
	case 'f':
		return KindFloat32, true
	case 'd':
		return KindFloat64, true
	case 's':
		return KindString, true
	case 'x':
		return KindPadding, true
	}
	return 0, false
}
