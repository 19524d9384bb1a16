package sequences

import (
	"math/big"
	"testing"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule1(t *testing.T) {
	got, err := Rule1(10)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 6, 9, 12, 15, 16, 20, 24, 28}, got)

	got, err = Rule1(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, got)

	long, err := Rule1(5000)
	require.NoError(t, err)
	require.Len(t, long, 5000)
	for i := 1; i < len(long); i++ {
		assert.Less(t, long[i-1], long[i])
	}

	for _, count := range []int{1, 0, -4} {
		_, err = Rule1(count)
		assert.ErrorIs(t, err, numerr.ErrInvalidInput, "count=%d", count)
	}
	_, err = Rule1(MaxCount + 1)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)
}

func strs(vals []*big.Int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

func TestRule2(t *testing.T) {
	got, err := Rule2(big.NewInt(2), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "4", "6", "8"}, strs(got))

	got, err = Rule2(big.NewInt(-3), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "-3", "-6"}, strs(got))

	_, err = Rule2(big.NewInt(2), -1)
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)
}

func TestRule3(t *testing.T) {
	got, err := Rule3(big.NewInt(2), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "8", "16"}, strs(got))

	got, err = Rule3(big.NewInt(10), 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Rule3(big.NewInt(3), MaxCount)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)

	_, err = Rule3(nil, 3)
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)
}
