package abi

import (
	"math"
	"reflect"
)

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// SignedFits reports whether v is representable in a signed integer of
// width bytes.
func SignedFits(v int64, width int) bool {
	switch width {
	case 1:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 2:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 4:
		return v >= math.MinInt32 && v <= math.MaxInt32
	case 8:
		return true
	}
	return false
}

// UnsignedFits reports whether v is representable in an unsigned integer of
// width bytes.
func UnsignedFits(v uint64, width int) bool {
	switch width {
	case 1:
		return v <= math.MaxUint8
	case 2:
		return v <= math.MaxUint16
	case 4:
		return v <= math.MaxUint32
	case 8:
		return true
	}
	return false
}

// PutCString writes src into dst as a null-terminated fixed-length string.
// Shorter input is zero-filled, input of exactly len(dst) is copied as is,
// longer input keeps len(dst)-1 bytes and a terminator.
func PutCString(dst, src []byte) {
	n := copy(dst, src)
	if len(src) > len(dst) && len(dst) > 0 {
		n = len(dst) - 1
	}
	clear(dst[n:])
}

// CString returns the bytes of src before the first zero byte, or all of
// src when it has none.
func CString(src []byte) []byte {
	for i, b := range src {
		if b == 0 {
			return src[:i]
		}
	}
	return src
}

// Fill sets every byte of dst to b.
func Fill(dst []byte, b byte) {
	if b == 0 {
		clear(dst)
		return
	}
	for i := range dst {
		dst[i] = b
	}
}

// SignExtend widens the low width bytes of raw to int64.
func SignExtend(raw uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(raw))
	case 2:
		return int64(int16(raw))
	case 4:
		return int64(int32(raw))
	}
	return int64(raw)
}
