package hasher

import (
	spaolacci "github.com/spaolacci/murmur3"
	twmb "github.com/twmb/murmur3"
)

// murmur32State chains columns the way the reference row hasher does: the
// caller's seed hashes the first column and each column's 32-bit result
// seeds the next.
type murmur32State struct {
	seed uint32
	h    uint32
}

func (s *murmur32State) Reset() { s.h = s.seed }
func (s *murmur32State) Update(p []byte) { s.h = spaolacci.Sum32WithSeed(p, s.h) }
func (s *murmur32State) Sum32() uint32 { return s.h }

// sparkMurmur32State is the isolated Spark-parity variant. The chain is
// the same seeded MurmurHash3 x86 32 fold; what differs is the canonical
// encoding it is registered with (see the registry descriptor).
type sparkMurmur32State struct {
	seed uint32
	h    uint32
}

func (s *sparkMurmur32State) Reset() { s.h = s.seed }
func (s *sparkMurmur32State) Update(p []byte) { s.h = spaolacci.Sum32WithSeed(p, s.h) }
func (s *sparkMurmur32State) Sum32() uint32 { return s.h }

// murmur128State chains the full 128-bit state: both halves start from the
// caller's seed and each column's (h1, h2) output seeds the next column.
type murmur128State struct {
	seed   uint64
	h1, h2 uint64
}

func (s *murmur128State) Reset() {
	s.h1, s.h2 = s.seed, s.seed
}

func (s *murmur128State) Update(p []byte) {
	s.h1, s.h2 = twmb.SeedSum128(s.h1, s.h2, p)
}

func (s *murmur128State) Sum128() (uint64, uint64) { return s.h1, s.h2 }
