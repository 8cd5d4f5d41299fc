package rowhash

import (
	"context"

	"github.com/hupe1980/rowhash/column"
	"github.com/hupe1980/rowhash/hasher"
)

// Murmur32 hashes each row with MurmurHash3 x86 32-bit: the seed hashes
// the first column and each column's result seeds the next. The result is
// one UInt32 column.
func Murmur32(ctx context.Context, t *column.Table, seed uint32, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.Murmur32, uint64(seed), opts...)
}

// SparkMurmur32 hashes each row with the Spark-compatible MurmurHash3
// x86 32-bit variant. The result is one UInt32 column.
func SparkMurmur32(ctx context.Context, t *column.Table, seed uint32, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.SparkMurmur32, uint64(seed), opts...)
}

// Murmur128 hashes each row with MurmurHash3 x64 128-bit. The result is
// two UInt64 columns holding the low and high output words.
func Murmur128(ctx context.Context, t *column.Table, seed uint64, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.Murmur128, seed, opts...)
}

// XXHash64 hashes each row with seeded XXH64. The result is one UInt64
// column.
func XXHash64(ctx context.Context, t *column.Table, seed uint64, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.XXHash64, seed, opts...)
}

// MD5 digests each row's canonical bytes. The result is one 16-byte
// fixed-size binary column.
func MD5(ctx context.Context, t *column.Table, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.MD5, DefaultSeed, opts...)
}

// SHA1 digests each row's canonical bytes. The result is one 20-byte
// fixed-size binary column.
func SHA1(ctx context.Context, t *column.Table, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.SHA1, DefaultSeed, opts...)
}

// SHA224 digests each row's canonical bytes. The result is one 28-byte
// fixed-size binary column.
func SHA224(ctx context.Context, t *column.Table, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.SHA224, DefaultSeed, opts...)
}

// SHA256 digests each row's canonical bytes. The result is one 32-byte
// fixed-size binary column.
func SHA256(ctx context.Context, t *column.Table, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.SHA256, DefaultSeed, opts...)
}

// SHA384 digests each row's canonical bytes. The result is one 48-byte
// fixed-size binary column.
func SHA384(ctx context.Context, t *column.Table, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.SHA384, DefaultSeed, opts...)
}

// SHA512 digests each row's canonical bytes. The result is one 64-byte
// fixed-size binary column.
func SHA512(ctx context.Context, t *column.Table, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.SHA512, DefaultSeed, opts...)
}

// Identity passes a single 32-bit integer column through unchanged,
// nulls mapping to the null sentinel. The result is one UInt32 column.
func Identity(ctx context.Context, t *column.Table, opts ...Option) (*Result, error) {
	return Hash(ctx, t, hasher.Identity, DefaultSeed, opts...)
}
