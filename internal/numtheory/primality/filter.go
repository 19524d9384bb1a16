package primality

import (
	"math/big"

	"modernc.org/mathutil"
)

// Verdict is the outcome of the quick filter.
type Verdict int

const (
	// Inconclusive means the filter could not decide and Miller-Rabin must run.
	Inconclusive Verdict = iota
	// DefinitelyComposite means n is 0, 1, or has a trivial factor.
	DefinitelyComposite
	// DefinitelyPrime means n is 2 or 3.
	DefinitelyPrime
)

// String returns the string representation of the verdict
func (v Verdict) String() string {
	switch v {
	case DefinitelyComposite:
		return "composite"
	case DefinitelyPrime:
		return "prime"
	default:
		return "inconclusive"
	}
}

var (
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// QuickFilter eliminates trivial cases before Miller-Rabin. Values below 2,
// including negatives, are reported as composite.
func QuickFilter(n *big.Int) Verdict {
	if n.IsUint64() {
		return QuickFilter64(n.Uint64())
	}
	if n.Sign() < 0 {
		return DefinitelyComposite
	}
	if n.Bit(0) == 0 {
		return DefinitelyComposite
	}
	if new(big.Int).Mod(n, bigThree).Sign() == 0 {
		return DefinitelyComposite
	}
	r := new(big.Int).Sqrt(n)
	if r.Mul(r, r).Cmp(n) == 0 {
		return DefinitelyComposite
	}
	return Inconclusive
}

// QuickFilter64 is QuickFilter for word-sized operands.
func QuickFilter64(n uint64) Verdict {
	switch {
	case n < 2:
		return DefinitelyComposite
	case n%2 == 0:
		if n == 2 {
			return DefinitelyPrime
		}
		return DefinitelyComposite
	case n%3 == 0:
		if n == 3 {
			return DefinitelyPrime
		}
		return DefinitelyComposite
	}
	if r := uint64(mathutil.SqrtUint64(n)); r*r == n {
		return DefinitelyComposite
	}
	return Inconclusive
}
