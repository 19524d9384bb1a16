package special

import (
	"math/big"
	"testing"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigs(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestCountInversions(t *testing.T) {
	tests := []struct {
		vals []int64
		want int64
	}{
		{nil, 0},
		{[]int64{5}, 0},
		{[]int64{1, 3, 2}, 1},
		{[]int64{1, 2, 3, 4}, 0},
		{[]int64{4, 3, 2, 1}, 6},
		{[]int64{2, 2, 2}, 0},
		{[]int64{8, 4, 2, 1, 7, -3}, 12},
	}
	for _, tt := range tests {
		got, err := CountInversions(bigs(tt.vals...))
		require.NoError(t, err, "vals=%v", tt.vals)
		assert.Equal(t, tt.want, got, "vals=%v", tt.vals)
	}

	in := bigs(3, 1, 2)
	_, err := CountInversions(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, []string{in[0].String(), in[1].String(), in[2].String()})

	huge := []*big.Int{mustBig(t, "100000000000000000000000000000"), big.NewInt(1)}
	got, err := CountInversions(huge)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	_, err = CountInversions([]*big.Int{big.NewInt(1), nil})
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)
}

func TestCountInversionsMatchesPairwise(t *testing.T) {
	vals := make([]int64, 200)
	for i := range vals {
		vals[i] = int64((i * 7919) % 211)
	}
	var want int64
	for i := range vals {
		for j := i + 1; j < len(vals); j++ {
			if vals[i] > vals[j] {
				want++
			}
		}
	}
	got, err := CountInversions(bigs(vals...))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLargestWithDigitSum(t *testing.T) {
	tests := []struct {
		digits, sum int
		want        string
	}{
		{3, 15, "960"},
		{2, 9, "90"},
		{2, 18, "99"},
		{1, 0, "0"},
		{4, 0, "0"},
		{0, 0, "0"},
		{5, 1, "10000"},
	}
	for _, tt := range tests {
		got, err := LargestWithDigitSum(tt.digits, tt.sum)
		require.NoError(t, err, "digits=%d sum=%d", tt.digits, tt.sum)
		assert.Equal(t, tt.want, got.String(), "digits=%d sum=%d", tt.digits, tt.sum)
	}

	_, err := LargestWithDigitSum(2, 19)
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = LargestWithDigitSum(0, 1)
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = LargestWithDigitSum(-1, 3)
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)
	_, err = LargestWithDigitSum(3, -1)
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)
	_, err = LargestWithDigitSum(MaxDigitCount+1, 1)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)
}
