package factorization

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// fftBits is the operand size above which multiplication switches to FFT.
const fftBits = 1 << 18

// Product multiplies factors with a balanced product tree. The empty product
// is 1.
func Product(factors []*big.Int) *big.Int {
	switch len(factors) {
	case 0:
		return big.NewInt(1)
	case 1:
		return new(big.Int).Set(factors[0])
	}
	mid := len(factors) / 2
	return mul(Product(factors[:mid]), Product(factors[mid:]))
}

func mul(x, y *big.Int) *big.Int {
	if x.BitLen() > fftBits && y.BitLen() > fftBits {
		return bigfft.Mul(x, y)
	}
	return new(big.Int).Mul(x, y)
}

// Term is a prime with its exponent in a factorization.
type Term struct {
	Prime    *big.Int
	Exponent int
}

// Terms groups an ascending factor list into (prime, exponent) pairs.
func Terms(factors []*big.Int) []Term {
	var terms []Term
	for _, f := range factors {
		if n := len(terms); n > 0 && terms[n-1].Prime.Cmp(f) == 0 {
			terms[n-1].Exponent++
			continue
		}
		terms = append(terms, Term{Prime: new(big.Int).Set(f), Exponent: 1})
	}
	return terms
}

// Distinct returns the distinct primes of an ascending factor list.
func Distinct(factors []*big.Int) []*big.Int {
	terms := Terms(factors)
	out := make([]*big.Int, len(terms))
	for i, t := range terms {
		out[i] = t.Prime
	}
	return out
}
