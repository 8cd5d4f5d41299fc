package rowhash

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rowhash/column"
	"github.com/hupe1980/rowhash/hasher"
)

var (
	// ErrNilTable is returned when the input table is nil.
	ErrNilTable = errors.New("table is nil")

	// ErrUnknownAlgorithm is returned for an algorithm value outside the
	// supported set.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// ErrTypeMismatch indicates that a column's element type (possibly a
// nested child) is not supported by the chosen algorithm.
type ErrTypeMismatch struct {
	Algorithm hasher.Algorithm
	Column    int
	DataType  column.DataType
	Reason    string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: column %d (%s) with algorithm %s: %s",
		e.Column, e.DataType, e.Algorithm, e.Reason)
}

// ErrRowCountMismatch indicates that the table's columns disagree on row
// count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrRowCountMismatch struct {
	Column   int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrRowCountMismatch) Error() string {
	return fmt.Sprintf("row count mismatch: column %d has %d rows, want %d",
		e.Column, e.Actual, e.Expected)
}

func (e *ErrRowCountMismatch) Unwrap() error { return e.cause }

// ErrSeedMismatch indicates that the seed does not fit the seed kind the
// algorithm requires.
type ErrSeedMismatch struct {
	Algorithm hasher.Algorithm
	Seed      uint64
}

func (e *ErrSeedMismatch) Error() string {
	switch e.Algorithm.SeedKind() {
	case hasher.SeedNone:
		return fmt.Sprintf("seed mismatch: algorithm %s takes no seed, got %d", e.Algorithm, e.Seed)
	case hasher.Seed32:
		return fmt.Sprintf("seed mismatch: algorithm %s takes a 32-bit seed, %d overflows", e.Algorithm, e.Seed)
	default:
		return fmt.Sprintf("seed mismatch: algorithm %s, seed %d", e.Algorithm, e.Seed)
	}
}

// ErrNestingTooDeep indicates that a nested column type exceeds the
// maximum supported nesting depth.
type ErrNestingTooDeep struct {
	Column int
	Depth  int
	Max    int
}

func (e *ErrNestingTooDeep) Error() string {
	return fmt.Sprintf("column %d nested %d levels deep, maximum is %d", e.Column, e.Depth, e.Max)
}
