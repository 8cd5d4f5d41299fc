package column

import "fmt"

// ErrLengthMismatch indicates that the columns passed to NewTable disagree
// on row count.
type ErrLengthMismatch struct {
	Column   int
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("column %d has %d rows, want %d", e.Column, e.Actual, e.Expected)
}

// Table is an ordered sequence of equal-length columns. It is immutable
// after construction and safe for concurrent reads.
type Table struct {
	cols []Column
}

// NewTable creates a table from the given columns. All columns must share
// the same row count.
func NewTable(cols ...Column) (*Table, error) {
	if len(cols) > 0 {
		rows := cols[0].Len()
		for i, c := range cols[1:] {
			if c.Len() != rows {
				return nil, &ErrLengthMismatch{Column: i + 1, Expected: rows, Actual: c.Len()}
			}
		}
	}
	return &Table{cols: cols}, nil
}

// NumRows returns the shared row count, 0 for a table with no columns.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.cols) }

// Column returns the column at position i.
func (t *Table) Column(i int) Column { return t.cols[i] }

// Columns returns the columns in table order.
func (t *Table) Columns() []Column { return t.cols }
