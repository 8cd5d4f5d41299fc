// Package rowhash computes one hash value per row of a typed columnar
// table, with a selectable hash algorithm: fast non-cryptographic hashes
// for partitioning and joins, cryptographic digests for fingerprinting
// and deduplication.
//
// Each row is hashed independently: the columns' canonical byte
// representations are folded left to right into an algorithm-specific
// state seeded from the caller's seed, and the finalized state is the
// row's output. Column order matters; row order is preserved. Because
// rows share no state, the engine hashes them in parallel chunks, and
// the output is bit-identical for any level of parallelism.
//
// # Quick Start
//
// Hash a two-column table with MurmurHash3:
//
//	ids := column.NewInt32([]int32{1, 4}, nil)
//	scores := column.NewFloat64([]float64{0.5, 0.25}, nil)
//	table, err := column.NewTable(ids, scores)
//	if err != nil {
//	    panic(err)
//	}
//
//	res, err := rowhash.Murmur32(ctx, table, 0)
//	if err != nil {
//	    panic(err)
//	}
//	hashes := res.Column().UInt32s() // one uint32 per row
//
// Fingerprint rows with SHA-256:
//
//	res, err := rowhash.SHA256(ctx, table)
//	digests := res.HexStrings()
//
// # Algorithms
//
// Identity, MurmurHash3 x86 32 (plus the Spark-parity variant),
// MurmurHash3 x64 128, XXH64, MD5 and the SHA family. Output shape is
// fixed per algorithm: one uint32 column, one uint64 column, two uint64
// columns, or one fixed-length binary digest column.
//
// # Nulls
//
// Null handling is part of each algorithm's definition: the word-shaped
// algorithms substitute a fixed sentinel byte pattern for a null value,
// the digest family skips nulls entirely. Either way two null values in
// the same column always contribute identically, regardless of position.
//
// # Errors
//
// All validation (row counts, seed width, supported types, nesting
// depth) happens before any row is hashed; a non-nil error means no
// partial output was produced. See ErrTypeMismatch, ErrRowCountMismatch,
// ErrSeedMismatch and ErrNestingTooDeep.
package rowhash
