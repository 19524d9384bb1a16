package factorization

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIroot(t *testing.T) {
	tests := []struct {
		n    int64
		k    int
		want int64
	}{
		{0, 3, 0},
		{1, 5, 1},
		{26, 3, 2},
		{27, 3, 3},
		{28, 3, 3},
		{1 << 40, 5, 256},
		{(1 << 40) - 1, 5, 255},
		{99, 2, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, iroot(big.NewInt(tt.n), tt.k).Int64(), "iroot(%d, %d)", tt.n, tt.k)
	}

	big7 := new(big.Int).Exp(big.NewInt(1000003), big.NewInt(7), nil)
	assert.Equal(t, int64(1000003), iroot(big7, 7).Int64())
	big7.Sub(big7, big.NewInt(1))
	assert.Equal(t, int64(1000002), iroot(big7, 7).Int64())
}

func TestPerfectPower(t *testing.T) {
	r, k := perfectPower(big.NewInt(1<<30), 40)
	assert.Equal(t, 2, k)
	assert.Equal(t, int64(1<<15), r.Int64())

	r, k = perfectPower(big.NewInt(3*3*3*3*3), 10)
	assert.Equal(t, 5, k)
	assert.Equal(t, int64(3), r.Int64())

	_, k = perfectPower(big.NewInt(3*3*3*3*3), 4)
	assert.Equal(t, 0, k, "exponent above maxK is not searched")

	_, k = perfectPower(big.NewInt(1000003*1000033), 10)
	assert.Equal(t, 0, k)
}
