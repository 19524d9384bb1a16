package divisors

import (
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
)

func checkList(nums []*big.Int) error {
	for i, n := range nums {
		if n == nil {
			return numerr.Invalid("divisors: element %d is nil", i)
		}
	}
	return nil
}

// GCD returns the greatest common divisor of the non-zero elements of nums.
// At least two elements must be non-zero.
func GCD(nums []*big.Int) (*big.Int, error) {
	if err := checkList(nums); err != nil {
		return nil, err
	}
	var g *big.Int
	nonZero := 0
	for _, n := range nums {
		if n.Sign() == 0 {
			continue
		}
		nonZero++
		if g == nil {
			g = new(big.Int).Abs(n)
			continue
		}
		g.GCD(nil, nil, g, new(big.Int).Abs(n))
	}
	if nonZero < 2 {
		return nil, numerr.Domain("divisors: gcd needs at least 2 non-zero elements, got %d", nonZero)
	}
	return g, nil
}

// LCM returns the least common multiple of nums. Zero elements are rejected.
func LCM(nums []*big.Int) (*big.Int, error) {
	if err := checkList(nums); err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, numerr.Domain("divisors: lcm needs at least 2 elements, got %d", len(nums))
	}

	l := big.NewInt(1)
	g := new(big.Int)
	for _, n := range nums {
		if n.Sign() == 0 {
			return nil, numerr.Invalid("divisors: lcm of a list containing zero")
		}
		abs := new(big.Int).Abs(n)
		g.GCD(nil, nil, l, abs)
		l.Mul(l, abs.Quo(abs, g))
	}
	return l, nil
}

// Common returns the positive common divisors of the non-zero elements of
// nums in ascending order, i.e. the divisors of their gcd.
func Common(f Factorer, nums []*big.Int) ([]*big.Int, error) {
	g, err := GCD(nums)
	if err != nil {
		return nil, err
	}
	return List(f, g, true)
}
