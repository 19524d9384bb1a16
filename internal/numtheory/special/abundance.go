package special

import (
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/divisors"
)

// Abundance classifies n by comparing it to the sum of its proper divisors.
type Abundance int

// Abundance values match the sign of sigma(n) - 2n.
const (
	Deficient Abundance = iota - 1
	Perfect
	Abundant
)

// String returns the string representation of the class
func (a Abundance) String() string {
	switch a {
	case Deficient:
		return "deficient"
	case Perfect:
		return "perfect"
	default:
		return "abundant"
	}
}

// Classify compares n >= 1 to the sum of its proper divisors, computed from
// the prime factorization.
func (c *Checker) Classify(n *big.Int) (Abundance, error) {
	if err := atLeast("abundance", n, 1); err != nil {
		return 0, err
	}
	s, err := divisors.SumOfProperDivisors(c.engine, n)
	if err != nil {
		return 0, err
	}
	return Abundance(s.Cmp(n)), nil
}

// IsAbundantNumber reports whether the proper divisors of n sum to more than n.
func (c *Checker) IsAbundantNumber(n *big.Int) (bool, error) {
	a, err := c.Classify(n)
	return err == nil && a == Abundant, err
}

// IsPerfectNumber reports whether the proper divisors of n sum to n.
func (c *Checker) IsPerfectNumber(n *big.Int) (bool, error) {
	a, err := c.Classify(n)
	return err == nil && a == Perfect, err
}

// IsDeficientNumber reports whether the proper divisors of n sum to less than n.
func (c *Checker) IsDeficientNumber(n *big.Int) (bool, error) {
	a, err := c.Classify(n)
	return err == nil && a == Deficient, err
}

// AreAmicableNumbers reports whether a and b are distinct and each is the
// proper divisor sum of the other.
func (c *Checker) AreAmicableNumbers(a, b *big.Int) (bool, error) {
	if err := atLeast("amicable", a, 1); err != nil {
		return false, err
	}
	if err := atLeast("amicable", b, 1); err != nil {
		return false, err
	}
	if a.Cmp(b) == 0 {
		return false, nil
	}
	sa, err := divisors.SumOfProperDivisors(c.engine, a)
	if err != nil {
		return false, err
	}
	if sa.Cmp(b) != 0 {
		return false, nil
	}
	sb, err := divisors.SumOfProperDivisors(c.engine, b)
	if err != nil {
		return false, err
	}
	return sb.Cmp(a) == 0, nil
}

// AreFriendlyNumbers reports whether a and b share the abundancy index
// sigma(n)/n.
func (c *Checker) AreFriendlyNumbers(a, b *big.Int) (bool, error) {
	if err := atLeast("friendly", a, 1); err != nil {
		return false, err
	}
	if err := atLeast("friendly", b, 1); err != nil {
		return false, err
	}
	sa, err := divisors.SumOfDivisors(c.engine, a)
	if err != nil {
		return false, err
	}
	sb, err := divisors.SumOfDivisors(c.engine, b)
	if err != nil {
		return false, err
	}
	// sigma(a)/a == sigma(b)/b
	return sa.Mul(sa, b).Cmp(sb.Mul(sb, a)) == 0, nil
}

// properSums returns s[i] = sigma(i) - i for 0 <= i <= limit.
func properSums(limit int64) []int64 {
	sums := make([]int64, limit+1)
	for d := int64(1); d <= limit/2; d++ {
		for m := 2 * d; m <= limit; m += d {
			sums[m] += d
		}
	}
	return sums
}

func (c *Checker) abundanceList(op string, limit int64, want Abundance) ([]int64, error) {
	if err := c.checkLimit(op, limit, 1); err != nil {
		return nil, err
	}
	sums := properSums(limit)
	out := make([]int64, 0, 16)
	for i := int64(1); i <= limit; i++ {
		var a Abundance
		switch {
		case sums[i] < i:
			a = Deficient
		case sums[i] == i:
			a = Perfect
		default:
			a = Abundant
		}
		if a == want {
			out = append(out, i)
		}
	}
	return out, nil
}

// GenerateAbundantList returns the abundant numbers in [1, limit].
func (c *Checker) GenerateAbundantList(limit int64) ([]int64, error) {
	return c.abundanceList("abundant list", limit, Abundant)
}

// GeneratePerfectList returns the perfect numbers in [1, limit].
func (c *Checker) GeneratePerfectList(limit int64) ([]int64, error) {
	return c.abundanceList("perfect list", limit, Perfect)
}
