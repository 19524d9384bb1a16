package special

import "math/big"

// IsEmirp reports whether n is a prime whose decimal reversal is a different
// prime. Palindromic primes are not emirps. n < 2 is a domain error.
func (c *Checker) IsEmirp(n *big.Int) (bool, error) {
	if err := atLeast("emirp", n, 2); err != nil {
		return false, err
	}
	if !c.oracle.Test(n) {
		return false, nil
	}
	r := reverse(n)
	if r.Cmp(n) == 0 {
		return false, nil
	}
	return c.oracle.Test(r), nil
}

// IsTwinPrime reports whether n is prime and n-2 or n+2 is prime.
func (c *Checker) IsTwinPrime(n *big.Int) (bool, error) {
	if err := atLeast("twin prime", n, 0); err != nil {
		return false, err
	}
	if !c.oracle.Test(n) {
		return false, nil
	}
	if c.oracle.Test(new(big.Int).Sub(n, bigTwo)) {
		return true, nil
	}
	return c.oracle.Test(new(big.Int).Add(n, bigTwo)), nil
}

// GreatestCommonPrimeDivisor returns the largest prime dividing both a and b.
// Both must exceed 1. It fails with ErrNoCommonPrime, a domain error, when
// the numbers are coprime.
func (c *Checker) GreatestCommonPrimeDivisor(a, b *big.Int) (*big.Int, error) {
	if err := atLeast("greatest common prime divisor", a, 2); err != nil {
		return nil, err
	}
	if err := atLeast("greatest common prime divisor", b, 2); err != nil {
		return nil, err
	}

	// the common primes of a and b are exactly the primes of gcd(a, b)
	g := new(big.Int).GCD(nil, nil, a, b)
	if g.Cmp(bigOne) == 0 {
		return nil, ErrNoCommonPrime
	}
	factors, err := c.engine.PrimeFactors(g)
	if err != nil {
		return nil, err
	}
	return factors[len(factors)-1], nil
}

// GeneratePrimeList returns the primes in [0, limit] with a sieve of
// Eratosthenes. limit < 2 is invalid.
func (c *Checker) GeneratePrimeList(limit int64) ([]int64, error) {
	if err := c.checkLimit("prime list", limit, 2); err != nil {
		return nil, err
	}
	composite := sieve(limit)
	out := make([]int64, 0, primeCountEstimate(limit))
	for i := int64(2); i <= limit; i++ {
		if !composite[i] {
			out = append(out, i)
		}
	}
	return out, nil
}

// GenerateEmirpList returns the emirps in [2, limit].
func (c *Checker) GenerateEmirpList(limit int64) ([]int64, error) {
	if err := c.checkLimit("emirp list", limit, 2); err != nil {
		return nil, err
	}
	composite := sieve(limit)
	out := make([]int64, 0, 64)
	for i := int64(2); i <= limit; i++ {
		if composite[i] {
			continue
		}
		r := reverse64(uint64(i))
		if r == uint64(i) {
			continue
		}
		if c.oracle.Test64(r) {
			out = append(out, i)
		}
	}
	return out, nil
}

// GenerateTwinPrimeList returns the twin primes in [2, limit].
func (c *Checker) GenerateTwinPrimeList(limit int64) ([]int64, error) {
	if err := c.checkLimit("twin prime list", limit, 2); err != nil {
		return nil, err
	}
	composite := sieve(limit + 2)
	out := make([]int64, 0, 64)
	for i := int64(3); i <= limit; i++ {
		if composite[i] {
			continue
		}
		if !composite[i-2] || !composite[i+2] {
			out = append(out, i)
		}
	}
	return out, nil
}

// sieve returns a table where composite[i] is false exactly when i is prime.
func sieve(limit int64) []bool {
	composite := make([]bool, limit+1)
	composite[0] = true
	if limit >= 1 {
		composite[1] = true
	}
	for i := int64(2); i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return composite
}

// primeCountEstimate over-approximates pi(limit) for preallocation.
func primeCountEstimate(limit int64) int {
	switch {
	case limit < 100:
		return 25
	case limit < 1<<20:
		return int(limit / 5)
	default:
		return int(limit / 12)
	}
}

// reverse returns the decimal reversal of n >= 0. Trailing zeros are dropped.
func reverse(n *big.Int) *big.Int {
	digits := []byte(n.String())
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	r, _ := new(big.Int).SetString(string(digits), 10)
	return r
}

func reverse64(n uint64) uint64 {
	var r uint64
	for n > 0 {
		r = r*10 + n%10
		n /= 10
	}
	return r
}

// ReverseDigits returns the decimal reversal of n >= 0.
func ReverseDigits(n *big.Int) (*big.Int, error) {
	if err := atLeast("reverse digits", n, 0); err != nil {
		return nil, err
	}
	return reverse(n), nil
}

// SumOfDigits returns the sum of the decimal digits of |n|.
func SumOfDigits(n *big.Int) (*big.Int, error) {
	if err := nonNil("sum of digits", n); err != nil {
		return nil, err
	}
	var sum int64
	for _, d := range new(big.Int).Abs(n).String() {
		sum += int64(d - '0')
	}
	return big.NewInt(sum), nil
}
