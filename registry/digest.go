package registry

import (
	"encoding/hex"

	"github.com/wippyai/structpack/pack"
	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest of a layout's canonical format.
type Digest [32]byte

// layoutDomainKey keys the hash so layout digests never collide with
// digests of the same bytes computed for another purpose.
var layoutDomainKey = [32]byte{
	's', 't', 'r', 'u', 'c', 't', 'p', 'a', 'c', 'k', '.', 'l', 'a', 'y', 'o', 'u',
	't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// DigestOf hashes l.String(), so "=1h" and "@h" share a digest while "<h"
// and ">h" do not.
func DigestOf(l *pack.Layout) Digest {
	hasher, err := blake3.NewKeyed(layoutDomainKey[:])
	if err != nil {
		panic("registry: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(l.String()))
	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 12 hex characters, for display.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:6])
}
