// Package pack compiles format strings into binary layouts and converts
// between value sequences and flat byte buffers.
//
// # Format Strings
//
// A format string is an optional byte order marker followed by type codes,
// each optionally prefixed by a decimal count:
//
//	Code    Type        Size    Count meaning
//	──────────────────────────────────────────
//	?       bool        1       repeat
//	c       char        1       repeat
//	b B     int8/uint8  1       repeat
//	h H     int16/u16   2       repeat
//	i I     int32/u32   4       repeat
//	l L     int32/u32   4       repeat
//	q Q     int64/u64   8       repeat
//	f       float32     4       repeat
//	d       float64     8       repeat
//	s       string      N       byte length (default 1)
//	x       padding     N       byte length (default 1)
//
// Byte order markers are only valid as the first character:
//
//	@ =     native (host) order
//	<       little-endian
//	> !     big-endian (! is network order)
//
// No alignment padding is inserted in any mode.
//
// # Key Types
//
//	Layout    - Immutable compiled format, safe for concurrent use
//	Compiler  - Caches layouts by format string
//	Value     - Tagged union of bool, integer, float and bytes
//	Encoder   - Values to bytes
//	Decoder   - Bytes to values
//
// # Encoding Flow
//
//  1. Compile(format) → *Layout
//  2. Encode(layout, values) → []byte
//     or EncodeToMemory(layout, values, mem, addr)
//
// # Decoding Flow
//
//  1. Compile(format) → *Layout
//  2. Decode(layout, data) → []Value
//     or DecodeFromMemory(layout, mem, addr)
//
// # Value Slots
//
// A layout consumes one value per scalar (after repeat expansion) and one
// per string field. Padding consumes none:
//
//	"<3hx5s"  →  int16, int16, int16, string[5]   (4 slots, 12 bytes)
//
// # Strings
//
// Fixed-length strings are null-terminated. Shorter input is zero-filled,
// longer input is truncated to length-1 bytes plus a terminator. Decoding
// stops at the first zero byte.
//
// # Thread Safety
//
// Layout, Compiler, Encoder and Decoder are safe for concurrent use.
// Decoded values own their bytes unless the decoder was created with
// WithZeroCopy, in which case string and char values alias the input buffer.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[parse] invalid_character at position 1 - unexpected character 'z'
//	[encode] overflow at slot 0: type int8 - value 200 overflows int8
//	[decode] buffer_too_short: need 4 bytes, got 2
package pack
