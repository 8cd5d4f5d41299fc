package rowhash

import (
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rowhash/column"
	"github.com/hupe1980/rowhash/hasher"
	"github.com/hupe1980/rowhash/internal/encode"
)

// DefaultSeed is the seed used when the caller has no preference.
const DefaultSeed uint64 = 0

// cancelCheckRows is how many rows a worker hashes between context checks.
const cancelCheckRows = 1024

// Result holds the output column(s) of one hash call. Word-shaped
// algorithms produce one unsigned integer column (two for the 128-bit
// variant); digest algorithms produce one fixed-size binary column.
// The caller owns the result; it shares no storage with the input table.
type Result struct {
	algorithm hasher.Algorithm
	cols      []column.Column
}

// Algorithm returns the algorithm that produced the result.
func (r *Result) Algorithm() hasher.Algorithm { return r.algorithm }

// Columns returns the output columns in order.
func (r *Result) Columns() []column.Column { return r.cols }

// Column returns the first (for most algorithms, the only) output column.
func (r *Result) Column() column.Column { return r.cols[0] }

// HexStrings renders a digest result as lowercase hex strings, one per
// row. It returns nil for word-shaped results.
func (r *Result) HexStrings() []string {
	if r.algorithm.Shape() != hasher.ShapeDigest {
		return nil
	}
	c := r.cols[0]
	out := make([]string, c.Len())
	for i := range out {
		out[i] = hex.EncodeToString(c.Binary(i))
	}
	return out
}

// Hash computes one hash value per row of the table: for each row, the
// columns' canonical bytes are folded left to right into a row state
// seeded from seed, and the finalized state becomes the row's output.
// Column order is significant; row order is preserved in the output.
//
// Rows are hashed in parallel chunks; the output is identical for every
// degree of parallelism. Validation runs before any row work, so a
// non-nil error means no partial output was produced.
func Hash(ctx context.Context, t *column.Table, alg hasher.Algorithm, seed uint64, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	begin := time.Now()
	res, err := run(ctx, t, alg, seed, &o)

	rows, cols := 0, 0
	if t != nil {
		rows, cols = t.NumRows(), t.NumColumns()
	}
	o.metrics.RecordHash(rows, time.Since(begin), err)
	o.logger.LogHash(ctx, alg, rows, cols, time.Since(begin), err)

	return res, err
}

func run(ctx context.Context, t *column.Table, alg hasher.Algorithm, seed uint64, o *options) (*Result, error) {
	if err := validate(t, alg, seed, o); err != nil {
		return nil, err
	}

	rows := t.NumRows()
	out, err := newOutput(alg, rows)
	if err != nil {
		return nil, err
	}

	if rows > 0 {
		workers := o.parallelism
		if workers > rows {
			workers = rows
		}
		chunk := (rows + workers - 1) / workers

		g, gctx := errgroup.WithContext(ctx)
		for start := 0; start < rows; start += chunk {
			start := start
			end := start + chunk
			if end > rows {
				end = rows
			}
			g.Go(func() error {
				return hashRange(gctx, t, alg, seed, out, start, end)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return out.result(alg)
}

// validate runs every pre-flight check. It must reject all inputs the row
// workers cannot handle: after it passes, row work is infallible.
func validate(t *column.Table, alg hasher.Algorithm, seed uint64, o *options) error {
	if t == nil {
		return ErrNilTable
	}
	if !alg.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}

	switch alg.SeedKind() {
	case hasher.SeedNone:
		if seed != 0 {
			return &ErrSeedMismatch{Algorithm: alg, Seed: seed}
		}
	case hasher.Seed32:
		if seed > math.MaxUint32 {
			return &ErrSeedMismatch{Algorithm: alg, Seed: seed}
		}
	}

	rows := t.NumRows()
	for i := 0; i < t.NumColumns(); i++ {
		c := t.Column(i)
		if c.Len() != rows {
			return &ErrRowCountMismatch{Column: i, Expected: rows, Actual: c.Len()}
		}

		dt := c.DataType()
		if depth := column.Depth(dt); depth > o.maxDepth {
			return &ErrNestingTooDeep{Column: i, Depth: depth, Max: o.maxDepth}
		}
		if !encode.Supported(dt) {
			return &ErrTypeMismatch{Algorithm: alg, Column: i, DataType: dt,
				Reason: "type has no canonical byte representation"}
		}
	}

	if alg == hasher.Identity && t.NumColumns() > 0 {
		if t.NumColumns() != 1 {
			return &ErrTypeMismatch{Algorithm: alg, Column: 1, DataType: t.Column(1).DataType(),
				Reason: "identity is a passthrough and accepts exactly one column"}
		}
		if id := t.Column(0).DataType().ID(); id != column.TypeInt32 && id != column.TypeUInt32 {
			return &ErrTypeMismatch{Algorithm: alg, Column: 0, DataType: t.Column(0).DataType(),
				Reason: "identity requires a 32-bit integer column"}
		}
	}

	return nil
}

// hashRange hashes rows [start, end). Each worker owns its row state and
// scratch buffer and writes only its own output slots, so workers share
// nothing mutable.
func hashRange(ctx context.Context, t *column.Table, alg hasher.Algorithm, seed uint64, out *output, start, end int) error {
	st, err := hasher.New(alg, seed)
	if err != nil {
		return err
	}

	mode := alg.Encoding()
	var nullRep []byte
	if alg.NullPolicy() == hasher.NullSentinel {
		nullRep = encode.NullSentinel
	}

	cols := t.Columns()
	var buf []byte
	for r := start; r < end; r++ {
		if (r-start)%cancelCheckRows == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		st.Reset()
		for i := range cols {
			if cols[i].IsNull(r) {
				if nullRep == nil {
					continue // null contributes nothing, state carries over
				}
				st.Update(nullRep)
				continue
			}
			buf = encode.AppendValue(buf[:0], cols[i], r, mode, nullRep)
			st.Update(buf)
		}
		out.store(r, st)
	}

	return nil
}

// output is the pre-allocated result storage. Every slot is written by
// exactly one row.
type output struct {
	shape  hasher.OutputShape
	width  int
	w32    []uint32
	w64    []uint64
	w64a   []uint64
	w64b   []uint64
	digest []byte
}

func newOutput(alg hasher.Algorithm, rows int) (*output, error) {
	o := &output{shape: alg.Shape(), width: alg.DigestSize()}
	switch o.shape {
	case hasher.ShapeWord32:
		o.w32 = make([]uint32, rows)
	case hasher.ShapeWord64:
		o.w64 = make([]uint64, rows)
	case hasher.ShapeWord64x2:
		o.w64a = make([]uint64, rows)
		o.w64b = make([]uint64, rows)
	case hasher.ShapeDigest:
		o.digest = make([]byte, rows*o.width)
	default:
		return nil, fmt.Errorf("%w: unsupported output shape", ErrUnknownAlgorithm)
	}
	return o, nil
}

func (o *output) store(row int, st hasher.RowState) {
	switch o.shape {
	case hasher.ShapeWord32:
		o.w32[row] = st.(hasher.State32).Sum32()
	case hasher.ShapeWord64:
		o.w64[row] = st.(hasher.State64).Sum64()
	case hasher.ShapeWord64x2:
		o.w64a[row], o.w64b[row] = st.(hasher.State128).Sum128()
	case hasher.ShapeDigest:
		slot := o.digest[row*o.width : row*o.width : (row+1)*o.width]
		st.(hasher.DigestState).Sum(slot)
	}
}

func (o *output) result(alg hasher.Algorithm) (*Result, error) {
	switch o.shape {
	case hasher.ShapeWord32:
		return &Result{algorithm: alg, cols: []column.Column{column.NewUInt32(o.w32, nil)}}, nil
	case hasher.ShapeWord64:
		return &Result{algorithm: alg, cols: []column.Column{column.NewUInt64(o.w64, nil)}}, nil
	case hasher.ShapeWord64x2:
		return &Result{algorithm: alg, cols: []column.Column{
			column.NewUInt64(o.w64a, nil),
			column.NewUInt64(o.w64b, nil),
		}}, nil
	default:
		c, err := column.NewFixedSizeBinary(o.width, o.digest, nil)
		if err != nil {
			return nil, err
		}
		return &Result{algorithm: alg, cols: []column.Column{c}}, nil
	}
}
