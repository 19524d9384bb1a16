// Package divisors computes divisor sums, divisor and multiple lists, and the
// gcd and lcm of integer lists. Divisor functions work from the prime
// factorization instead of trial division up to n.
package divisors

import (
	"math/big"
	"slices"

	"github.com/GriffinCanCode/primecore/internal/numtheory/factorization"
	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
)

// MaxDivisors bounds the length of an enumerated divisor list.
const MaxDivisors = 1 << 20

var bigOne = big.NewInt(1)

// Factorer produces the ascending prime factorization of n > 1.
type Factorer interface {
	PrimeFactors(n *big.Int) ([]*big.Int, error)
}

func factorerOrDefault(f Factorer) Factorer {
	if f == nil {
		return factorization.Default()
	}
	return f
}

// terms factors |n| for n != 0. The unit 1 has no terms.
func terms(f Factorer, n *big.Int) ([]factorization.Term, error) {
	abs := new(big.Int).Abs(n)
	if abs.Cmp(bigOne) == 0 {
		return nil, nil
	}
	factors, err := factorerOrDefault(f).PrimeFactors(abs)
	if err != nil {
		return nil, err
	}
	return factorization.Terms(factors), nil
}

// Sigma returns the sum of all positive divisors of the number with the
// given prime terms, prod (p^(e+1) - 1) / (p - 1).
func Sigma(terms []factorization.Term) *big.Int {
	sum := big.NewInt(1)
	num, den := new(big.Int), new(big.Int)
	for _, t := range terms {
		num.Exp(t.Prime, big.NewInt(int64(t.Exponent+1)), nil)
		num.Sub(num, bigOne)
		den.Sub(t.Prime, bigOne)
		sum.Mul(sum, num.Quo(num, den))
	}
	return sum
}

// SumOfDivisors returns sigma(n), the sum of all positive divisors of n >= 1.
// A nil Factorer uses the default factorization engine.
func SumOfDivisors(f Factorer, n *big.Int) (*big.Int, error) {
	if n == nil {
		return nil, numerr.Invalid("divisors: nil integer")
	}
	if n.Sign() <= 0 {
		return nil, numerr.Domain("divisors: n = %s must be positive", n)
	}
	ts, err := terms(f, n)
	if err != nil {
		return nil, err
	}
	return Sigma(ts), nil
}

// SumOfProperDivisors returns sigma(n) - n, the sum of the divisors of n that
// are smaller than n.
func SumOfProperDivisors(f Factorer, n *big.Int) (*big.Int, error) {
	sigma, err := SumOfDivisors(f, n)
	if err != nil {
		return nil, err
	}
	return sigma.Sub(sigma, n), nil
}

// List returns the divisors of n != 0 in ascending order. With positiveOnly
// unset the negated divisors are included as well.
func List(f Factorer, n *big.Int, positiveOnly bool) ([]*big.Int, error) {
	if n == nil {
		return nil, numerr.Invalid("divisors: nil integer")
	}
	if n.Sign() == 0 {
		return nil, numerr.Invalid("divisors: zero has no finite divisor list")
	}
	ts, err := terms(f, n)
	if err != nil {
		return nil, err
	}

	count := 1
	for _, t := range ts {
		count *= t.Exponent + 1
		if count > MaxDivisors {
			return nil, numerr.OutOfRange("divisors: %s has more than %d divisors", n, MaxDivisors)
		}
	}

	out := make([]*big.Int, 1, 2*count)
	out[0] = big.NewInt(1)
	for _, t := range ts {
		size := len(out)
		pk := new(big.Int).Set(t.Prime)
		for e := 1; e <= t.Exponent; e++ {
			for _, d := range out[:size] {
				out = append(out, new(big.Int).Mul(d, pk))
			}
			pk = new(big.Int).Mul(pk, t.Prime)
		}
	}
	if !positiveOnly {
		for _, d := range out[:count] {
			out = append(out, new(big.Int).Neg(d))
		}
	}
	slices.SortFunc(out, (*big.Int).Cmp)
	return out, nil
}

// Multiples returns base*1 .. base*count. With positiveOnly unset it returns
// base*-count .. base*count in ascending order, zero included.
func Multiples(base *big.Int, count int, positiveOnly bool) ([]*big.Int, error) {
	if base == nil {
		return nil, numerr.Invalid("divisors: nil integer")
	}
	if base.Sign() == 0 {
		return nil, numerr.Invalid("divisors: base must be non-zero")
	}
	if count < 1 {
		return nil, numerr.Invalid("divisors: count = %d must be positive", count)
	}

	if positiveOnly {
		out := make([]*big.Int, count)
		for i := range out {
			out[i] = new(big.Int).Mul(base, big.NewInt(int64(i+1)))
		}
		return out, nil
	}

	out := make([]*big.Int, 0, 2*count+1)
	for i := -count; i <= count; i++ {
		out = append(out, new(big.Int).Mul(base, big.NewInt(int64(i))))
	}
	slices.SortFunc(out, (*big.Int).Cmp)
	return out, nil
}
