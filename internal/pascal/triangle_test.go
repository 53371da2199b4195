package pascal

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FirstFiveRows(t *testing.T) {
	tri, err := Generate(5)
	require.NoError(t, err)

	want := []Row{
		{1},
		{1, 1},
		{1, 2, 1},
		{1, 3, 3, 1},
		{1, 4, 6, 4, 1},
	}
	assert.Equal(t, want, tri.Rows())
}

func TestGenerate_TwelfthRow(t *testing.T) {
	tri, err := Generate(12)
	require.NoError(t, err)
	require.Equal(t, 12, tri.Len())

	assert.Equal(t, Row{1, 11, 55, 165, 330, 462, 462, 330, 165, 55, 11, 1}, tri.Row(11))
}

func TestGenerate_Zero(t *testing.T) {
	tri, err := Generate(0)
	require.NoError(t, err)
	assert.Equal(t, 0, tri.Len())
	assert.Empty(t, tri.Rows())
}

func TestGenerate_InvalidArgument(t *testing.T) {
	for _, n := range []int{-1, -12} {
		tri, err := Generate(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		assert.Equal(t, 0, tri.Len())
	}
}

func TestGenerate_Overflow(t *testing.T) {
	tri, err := Generate(MaxRows + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, 0, tri.Len())
}

func TestGenerate_MaxRowsIsExact(t *testing.T) {
	tri, err := Generate(MaxRows)
	require.NoError(t, err)

	exact, err := GenerateExact(MaxRows)
	require.NoError(t, err)

	for i := 0; i < MaxRows; i++ {
		assert.Equal(t, exact.Strings(i), tri.Strings(i), "row %d", i)
	}

	// The centre of the last row is the largest value that fits.
	last := tri.Row(MaxRows - 1)
	assert.Equal(t, uint64(14226520737620288370), last[33])
}

func TestGenerate_Properties(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "single row", n: 1},
		{name: "two rows", n: 2},
		{name: "reference count", n: 12},
		{name: "thirty rows", n: 30},
		{name: "max rows", n: MaxRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := Generate(tt.n)
			require.NoError(t, err)
			require.Equal(t, tt.n, tri.Len())

			for i := 0; i < tri.Len(); i++ {
				row := tri.Row(i)
				require.Len(t, row, i+1)
				assert.Equal(t, uint64(1), row[0])
				assert.Equal(t, uint64(1), row[i])

				for k := 0; k <= i; k++ {
					assert.Equal(t, row[k], row[i-k], "row %d not symmetric at %d", i, k)
				}

				if i == 0 {
					continue
				}
				prev := tri.Row(i - 1)
				for k := 1; k < i; k++ {
					assert.Equal(t, prev[k-1]+prev[k], row[k], "recurrence broken at (%d, %d)", i, k)
				}
			}
		})
	}
}

func TestTriangle_RowIsCopy(t *testing.T) {
	tri, err := Generate(3)
	require.NoError(t, err)

	row := tri.Row(2)
	row[1] = 99

	assert.Equal(t, Row{1, 2, 1}, tri.Row(2))
}

func TestTriangle_Strings(t *testing.T) {
	tri, err := Generate(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "6", "4", "1"}, tri.Strings(4))
}

func TestGenerate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]Triangle, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tri, err := Generate(20)
			if err == nil {
				results[i] = tri
			}
		}(i)
	}
	wg.Wait()

	for _, tri := range results {
		require.Equal(t, 20, tri.Len())
		assert.Equal(t, results[0].Rows(), tri.Rows())
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Generate(MaxRows); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateFactorial(MaxRows); err != nil {
			b.Fatal(err)
		}
	}
}

// sanity check for the overflow boundary itself
func TestMaxRowsBoundary(t *testing.T) {
	limit := new(big.Int).SetUint64(^uint64(0))

	fits, err := Binomial(MaxRows-1, (MaxRows-1)/2)
	require.NoError(t, err)
	assert.True(t, fits.Cmp(limit) <= 0)

	spills, err := Binomial(MaxRows, MaxRows/2)
	require.NoError(t, err)
	assert.True(t, spills.Cmp(limit) > 0)
}
