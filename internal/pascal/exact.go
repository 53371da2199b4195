package pascal

import (
	"fmt"
	"math/big"
)

// MaxExactRows bounds GenerateExact; the triangle holds n(n+1)/2 big integers.
const MaxExactRows = 10000

// BigTriangle is an immutable sequence of rows of arbitrary-precision
// coefficients.
type BigTriangle struct {
	rows [][]*big.Int
}

// Len returns the number of rows.
func (t BigTriangle) Len() int {
	return len(t.rows)
}

// Row returns a deep copy of row i. It panics if i is out of range.
func (t BigTriangle) Row(i int) []*big.Int {
	row := make([]*big.Int, len(t.rows[i]))
	for k, v := range t.rows[i] {
		row[k] = new(big.Int).Set(v)
	}
	return row
}

// Rows returns a deep copy of every row in order.
func (t BigTriangle) Rows() [][]*big.Int {
	rows := make([][]*big.Int, len(t.rows))
	for i := range t.rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Strings returns row i as decimal strings.
func (t BigTriangle) Strings(i int) []string {
	out := make([]string, len(t.rows[i]))
	for k, v := range t.rows[i] {
		out[k] = v.String()
	}
	return out
}

// GenerateExact returns the first n rows using arbitrary-precision arithmetic.
func GenerateExact(n int) (BigTriangle, error) {
	if err := checkExactRows(n); err != nil {
		return BigTriangle{}, err
	}

	rows := make([][]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		row := make([]*big.Int, i+1)
		row[0] = big.NewInt(1)
		for k := 1; k < i; k++ {
			row[k] = new(big.Int).Add(rows[i-1][k-1], rows[i-1][k])
		}
		row[i] = big.NewInt(1)
		rows = append(rows, row)
	}

	return BigTriangle{rows: rows}, nil
}

// GenerateFactorial builds the same triangle as GenerateExact, computing each
// cell independently with Binomial.
func GenerateFactorial(n int) (BigTriangle, error) {
	if err := checkExactRows(n); err != nil {
		return BigTriangle{}, err
	}

	rows := make([][]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		row := make([]*big.Int, i+1)
		for k := 0; k <= i; k++ {
			c, err := Binomial(i, k)
			if err != nil {
				return BigTriangle{}, err
			}
			row[k] = c
		}
		rows = append(rows, row)
	}

	return BigTriangle{rows: rows}, nil
}

// Binomial returns C(n, k) = n! / (k! (n-k)!).
func Binomial(n, k int) (*big.Int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("%w: C(%d, %d) is undefined", ErrInvalidArgument, n, k)
	}

	num := factorial(n)
	den := new(big.Int).Mul(factorial(k), factorial(n-k))
	return num.Quo(num, den), nil
}

func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

func checkExactRows(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: row count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	if n > MaxExactRows {
		return fmt.Errorf("%w: %d rows requested, limit is %d", ErrInvalidArgument, n, MaxExactRows)
	}
	return nil
}
