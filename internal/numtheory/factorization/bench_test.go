package factorization

import (
	"math/big"
	"testing"
)

func BenchmarkFactorizeSmooth(b *testing.B) {
	n := big.NewInt(2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37)
	e := Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = e.Factorize(n)
	}
}

func BenchmarkFactorizeSemiprime(b *testing.B) {
	n := new(big.Int).Mul(mersenne(31), mersenne(61))
	e := Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = e.Factorize(n)
	}
}
