package hasher

import (
	"github.com/cespare/xxhash/v2"
)

// xxhash64State chains columns through seeded XXH64: each column's 64-bit
// result seeds the next column's hash.
type xxhash64State struct {
	seed uint64
	h    uint64
	d    *xxhash.Digest
}

func newXXHash64State(seed uint64) *xxhash64State {
	return &xxhash64State{seed: seed, h: seed, d: xxhash.NewWithSeed(seed)}
}

func (s *xxhash64State) Reset() { s.h = s.seed }

func (s *xxhash64State) Update(p []byte) {
	s.d.ResetWithSeed(s.h)
	s.d.Write(p) //nolint:errcheck // Digest.Write never fails
	s.h = s.d.Sum64()
}

func (s *xxhash64State) Sum64() uint64 { return s.h }
