// Package hasher implements the per-row hash algorithms. Each Algorithm
// pairs a chainable row state with a fixed seed kind, output shape and
// null policy; adding an algorithm means adding one state implementation
// and one descriptor row, nothing else changes.
package hasher

import (
	"fmt"

	"github.com/hupe1980/rowhash/internal/encode"
)

// Algorithm identifies a row hash function.
type Algorithm uint8

const (
	// Identity returns the value's canonical 32-bit integer unchanged.
	// It is a passthrough, not a chaining algorithm: it is only defined
	// for single-column tables of 32-bit integer-representable types.
	Identity Algorithm = iota

	// Murmur32 is MurmurHash3 x86 32-bit.
	Murmur32

	// SparkMurmur32 is the Spark-compatible MurmurHash3 x86 32-bit
	// variant. The chain is identical to Murmur32; the divergence is the
	// Spark canonical encoding (normalized floats, big-endian decimals).
	SparkMurmur32

	// Murmur128 is MurmurHash3 x64 128-bit.
	Murmur128

	// MD5 is the 128-bit MD5 digest.
	MD5

	// SHA1 is the 160-bit SHA-1 digest.
	SHA1

	// SHA224 is the 224-bit SHA-2 digest.
	SHA224

	// SHA256 is the 256-bit SHA-2 digest.
	SHA256

	// SHA384 is the 384-bit SHA-2 digest.
	SHA384

	// SHA512 is the 512-bit SHA-2 digest.
	SHA512

	// XXHash64 is the seeded 64-bit xxHash (XXH64).
	XXHash64

	numAlgorithms // sentinel, keep last
)

// SeedKind is the seed width an algorithm requires.
type SeedKind uint8

const (
	// SeedNone means the algorithm takes no seed.
	SeedNone SeedKind = iota
	// Seed32 means the seed must fit in 32 bits.
	Seed32
	// Seed64 means the seed is a full 64-bit value.
	Seed64
)

// OutputShape is the shape of an algorithm's per-row result.
type OutputShape uint8

const (
	// ShapeWord32 is a single 32-bit word per row.
	ShapeWord32 OutputShape = iota
	// ShapeWord64 is a single 64-bit word per row.
	ShapeWord64
	// ShapeWord64x2 is two 64-bit words per row.
	ShapeWord64x2
	// ShapeDigest is a fixed-length byte digest per row.
	ShapeDigest
)

// NullPolicy is how an algorithm folds a null value into the row state.
type NullPolicy uint8

const (
	// NullSentinel substitutes a fixed byte pattern for the null value.
	NullSentinel NullPolicy = iota
	// NullSkip contributes no bytes; the chain advances with the state
	// unmodified.
	NullSkip
)

// descriptor is one registry row. The combiner consults it once per call;
// it never branches on the algorithm identity itself.
type descriptor struct {
	name       string
	seedKind   SeedKind
	shape      OutputShape
	digestSize int
	nulls      NullPolicy
	encoding   encode.Mode
}

var registry = [numAlgorithms]descriptor{
	Identity:      {name: "identity", seedKind: SeedNone, shape: ShapeWord32, nulls: NullSentinel},
	Murmur32:      {name: "murmur3_x86_32", seedKind: Seed32, shape: ShapeWord32, nulls: NullSentinel},
	SparkMurmur32: {name: "spark_murmur3_x86_32", seedKind: Seed32, shape: ShapeWord32, nulls: NullSentinel, encoding: encode.Spark},
	Murmur128:     {name: "murmur3_x64_128", seedKind: Seed64, shape: ShapeWord64x2, nulls: NullSentinel},
	MD5:           {name: "md5", seedKind: SeedNone, shape: ShapeDigest, digestSize: 16, nulls: NullSkip},
	SHA1:          {name: "sha1", seedKind: SeedNone, shape: ShapeDigest, digestSize: 20, nulls: NullSkip},
	SHA224:        {name: "sha224", seedKind: SeedNone, shape: ShapeDigest, digestSize: 28, nulls: NullSkip},
	SHA256:        {name: "sha256", seedKind: SeedNone, shape: ShapeDigest, digestSize: 32, nulls: NullSkip},
	SHA384:        {name: "sha384", seedKind: SeedNone, shape: ShapeDigest, digestSize: 48, nulls: NullSkip},
	SHA512:        {name: "sha512", seedKind: SeedNone, shape: ShapeDigest, digestSize: 64, nulls: NullSkip},
	XXHash64:      {name: "xxhash_64", seedKind: Seed64, shape: ShapeWord64, nulls: NullSentinel},
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool { return a < numAlgorithms }

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
	return registry[a].name
}

// SeedKind returns the seed width the algorithm requires.
func (a Algorithm) SeedKind() SeedKind { return registry[a].seedKind }

// Shape returns the per-row output shape.
func (a Algorithm) Shape() OutputShape { return registry[a].shape }

// DigestSize returns the digest byte length, 0 for word-shaped outputs.
func (a Algorithm) DigestSize() int { return registry[a].digestSize }

// NullPolicy returns how nulls contribute to the row state.
func (a Algorithm) NullPolicy() NullPolicy { return registry[a].nulls }

// Encoding returns the canonical encoding mode the algorithm hashes.
func (a Algorithm) Encoding() encode.Mode { return registry[a].encoding }

// RowState accumulates the columns of one row, visited strictly left to
// right. A state is reused across rows via Reset; it is not safe for
// concurrent use.
type RowState interface {
	// Reset restores the state to its seeded initial value.
	Reset()

	// Update folds the canonical bytes of the next column value into
	// the running state.
	Update(p []byte)
}

// State32 finalizes into a 32-bit word.
type State32 interface {
	RowState
	Sum32() uint32
}

// State64 finalizes into a 64-bit word.
type State64 interface {
	RowState
	Sum64() uint64
}

// State128 finalizes into two 64-bit words.
type State128 interface {
	RowState
	Sum128() (uint64, uint64)
}

// DigestState finalizes into a fixed-length byte digest appended to dst.
type DigestState interface {
	RowState
	Sum(dst []byte) []byte
}

// New creates a seeded row state for the algorithm. The concrete value
// implements the finalizer interface matching the algorithm's Shape.
func New(a Algorithm, seed uint64) (RowState, error) {
	switch a {
	case Identity:
		return &identityState{}, nil
	case Murmur32:
		return &murmur32State{seed: uint32(seed), h: uint32(seed)}, nil
	case SparkMurmur32:
		return &sparkMurmur32State{seed: uint32(seed), h: uint32(seed)}, nil
	case Murmur128:
		return &murmur128State{seed: seed, h1: seed, h2: seed}, nil
	case MD5, SHA1, SHA224, SHA256, SHA384, SHA512:
		return newDigestState(a), nil
	case XXHash64:
		return newXXHash64State(seed), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %s", a)
	}
}
