package pack

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap64  = 1024 // max uint64 elements
	poolInitCap64 = 16
)

// Lowered scalar payloads, staged before any output byte is written.
var buf64Pool = sync.Pool{
	New: func() any {
		buf := make([]uint64, 0, poolInitCap64)
		return &buf
	},
}

func getBuf64() *[]uint64 {
	return buf64Pool.Get().(*[]uint64)
}

func putBuf64(buf *[]uint64) {
	if buf == nil || cap(*buf) > poolMaxCap64 {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	buf64Pool.Put(buf)
}
