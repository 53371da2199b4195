package pascal

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// MaxRows is the largest row count Generate accepts.
// C(67, 33) fits in a uint64; C(68, 34) does not.
const MaxRows = 68

var (
	// ErrInvalidArgument is returned for a negative or otherwise unusable row count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is returned when a coefficient does not fit in a uint64.
	ErrOverflow = errors.New("coefficient overflow")
)

// Row is one row of the triangle: row i holds C(i, 0) through C(i, i).
type Row []uint64

// Triangle is an immutable sequence of rows. The zero value is an empty triangle.
type Triangle struct {
	rows []Row
}

// Len returns the number of rows.
func (t Triangle) Len() int {
	return len(t.rows)
}

// Row returns a copy of row i. It panics if i is out of range.
func (t Triangle) Row(i int) Row {
	row := make(Row, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// Rows returns a copy of every row in order.
func (t Triangle) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i := range t.rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Strings returns row i as decimal strings.
func (t Triangle) Strings(i int) []string {
	out := make([]string, len(t.rows[i]))
	for k, v := range t.rows[i] {
		out[k] = strconv.FormatUint(v, 10)
	}
	return out
}

// Generate returns the first n rows of Pascal's triangle.
//
// n must be in [0, MaxRows]. A negative n fails with ErrInvalidArgument and
// n > MaxRows fails with ErrOverflow; in both cases no rows are returned.
func Generate(n int) (Triangle, error) {
	if n < 0 {
		return Triangle{}, fmt.Errorf("%w: row count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	if n > MaxRows {
		return Triangle{}, fmt.Errorf("%w: %d rows requested, at most %d fit in 64 bits", ErrOverflow, n, MaxRows)
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		row := make(Row, i+1)
		row[0], row[i] = 1, 1
		for k := 1; k < i; k++ {
			prev := rows[i-1]
			sum, carry := bits.Add64(prev[k-1], prev[k], 0)
			if carry != 0 {
				return Triangle{}, fmt.Errorf("%w: C(%d, %d)", ErrOverflow, i, k)
			}
			row[k] = sum
		}
		rows = append(rows, row)
	}

	return Triangle{rows: rows}, nil
}
