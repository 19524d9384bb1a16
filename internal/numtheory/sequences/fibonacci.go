// Package sequences generates Fibonacci numbers and the rule-based integer
// sequences.
package sequences

import (
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
)

const (
	// MaxFibonacciIndex bounds the index accepted by Fibonacci.
	MaxFibonacciIndex = 1_000_000
	// MaxCachedIndex is the largest index a FibonacciCache stores.
	MaxCachedIndex = 10_000
)

// Fibonacci returns F(index) with F(0) = 0 and F(1) = 1 by fast doubling.
func Fibonacci(index int) (*big.Int, error) {
	if index < 0 {
		return nil, numerr.Invalid("sequences: index = %d must be non-negative", index)
	}
	if index > MaxFibonacciIndex {
		return nil, numerr.OutOfRange("sequences: index = %d exceeds %d", index, MaxFibonacciIndex)
	}

	// invariant: a = F(k), b = F(k+1) for k = the bits of index consumed so far
	a, b := big.NewInt(0), big.NewInt(1)
	t, u := new(big.Int), new(big.Int)
	for bit := bitLen(index) - 1; bit >= 0; bit-- {
		// F(2k) = F(k) (2F(k+1) - F(k)), F(2k+1) = F(k)^2 + F(k+1)^2
		t.Lsh(b, 1).Sub(t, a).Mul(t, a)
		u.Mul(a, a)
		b.Mul(b, b).Add(b, u)
		a.Set(t)
		if index>>bit&1 == 1 {
			a.Add(a, b)
			a, b = b, a
		}
	}
	return a, nil
}

func bitLen(n int) int {
	l := 0
	for ; n > 0; n >>= 1 {
		l++
	}
	return l
}

// FibonacciCache memoizes Fibonacci numbers up to MaxCachedIndex. It is owned
// by the caller and not safe for concurrent use.
type FibonacciCache struct {
	values []*big.Int
}

// NewFibonacciCache creates an empty cache.
func NewFibonacciCache() *FibonacciCache {
	return &FibonacciCache{values: []*big.Int{big.NewInt(0), big.NewInt(1)}}
}

// Len returns the number of cached values.
func (c *FibonacciCache) Len() int {
	return len(c.values)
}

// At returns F(index). Indices above MaxCachedIndex are computed without
// being stored.
func (c *FibonacciCache) At(index int) (*big.Int, error) {
	if index < 0 {
		return nil, numerr.Invalid("sequences: index = %d must be non-negative", index)
	}
	if index > MaxCachedIndex {
		return Fibonacci(index)
	}
	c.fill(index)
	return new(big.Int).Set(c.values[index]), nil
}

// List returns F(0) .. F(count-1).
func (c *FibonacciCache) List(count int) ([]*big.Int, error) {
	if count < 0 {
		return nil, numerr.Invalid("sequences: count = %d must be non-negative", count)
	}
	if count > MaxCachedIndex+1 {
		return nil, numerr.OutOfRange("sequences: count = %d exceeds %d", count, MaxCachedIndex+1)
	}
	if count > 0 {
		c.fill(count - 1)
	}
	out := make([]*big.Int, count)
	for i := range out {
		out[i] = new(big.Int).Set(c.values[i])
	}
	return out, nil
}

func (c *FibonacciCache) fill(index int) {
	for n := len(c.values); n <= index; n++ {
		c.values = append(c.values, new(big.Int).Add(c.values[n-1], c.values[n-2]))
	}
}
