// Package layout turns scanned tokens into compiled fields.
//
// It resolves each type code to its element size, assigns byte offsets,
// and accumulates the total encoded size. Fields are packed back to back:
//
//	Code        Size    Count meaning
//	──────────────────────────────────
//	? c b B     1       repeat
//	h H         2       repeat
//	i I l L f   4       repeat
//	q Q d       8       repeat
//	s x         1       byte length
//
// No alignment padding is ever inserted, whatever the byte order marker.
// The marker is resolved once into a concrete binary.ByteOrder.
//
// This package is internal to pack.
package layout
