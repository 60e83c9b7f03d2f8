// Package scan tokenizes pack format strings.
//
// A format string is an optional leading byte order marker followed by
// tokens of the form [count]code:
//
//	<2h5sx?
//	│└┬┘└┤│└ bool
//	│ │  │└─ 1 byte padding
//	│ │  └── 5 byte string
//	│ └───── two int16 values
//	└─────── little-endian
//
// The scanner only checks the alphabet and count syntax. Resolving codes to
// sizes is done by the layout calculator.
//
// This package is internal to pack.
package scan
