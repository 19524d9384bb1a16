package sequences

import (
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
)

const (
	// MaxCount bounds the length of a generated sequence.
	MaxCount = 1_000_000
	// Rule1Window is the number of groups Rule1 searches.
	Rule1Window = 100_000
	// MaxSequenceBits bounds the total size of a Rule3 result.
	MaxSequenceBits = 1 << 26
)

func checkCount(count, min int) error {
	if count < min {
		return numerr.Invalid("sequences: count = %d must be at least %d", count, min)
	}
	if count > MaxCount {
		return numerr.OutOfRange("sequences: count = %d exceeds %d", count, MaxCount)
	}
	return nil
}

// Rule1 returns the first count terms of 1, then 2 multiples of 2, 3
// multiples of 3 and so on, each group continuing upward from the previous
// term: 1, 4, 6, 9, 12, 15, 16, 20, 24, 28, ... count must exceed 1. The
// search covers Rule1Window groups and fails with ErrOutOfRange beyond them.
func Rule1(count int) ([]int64, error) {
	if err := checkCount(count, 2); err != nil {
		return nil, err
	}

	out := make([]int64, 1, count)
	out[0] = 1
	// group 1 contributes a single term that the sequence replaces with 1
	term := int64(2)
	for k := int64(2); k < Rule1Window; k++ {
		term = (term/k + 1) * k
		for j := int64(0); j < k; j++ {
			if j > 0 {
				term += k
			}
			out = append(out, term)
			if len(out) == count {
				return out, nil
			}
		}
	}
	return nil, numerr.OutOfRange("sequences: rule 1 found %d of %d terms within %d groups", len(out), count, Rule1Window)
}

// Rule2 returns base*0 .. base*(count-1).
func Rule2(base *big.Int, count int) ([]*big.Int, error) {
	if base == nil {
		return nil, numerr.Invalid("sequences: nil base")
	}
	if err := checkCount(count, 0); err != nil {
		return nil, err
	}
	out := make([]*big.Int, count)
	for i := range out {
		out[i] = new(big.Int).Mul(base, big.NewInt(int64(i)))
	}
	return out, nil
}

// Rule3 returns base^0 .. base^(count-1).
func Rule3(base *big.Int, count int) ([]*big.Int, error) {
	if base == nil {
		return nil, numerr.Invalid("sequences: nil base")
	}
	if err := checkCount(count, 0); err != nil {
		return nil, err
	}
	// sum of the bit lengths is about bitlen(base) * count^2 / 2
	if bits := int64(base.BitLen()) * int64(count) * int64(count) / 2; bits > MaxSequenceBits {
		return nil, numerr.OutOfRange("sequences: rule 3 result of ~%d bits exceeds %d", bits, MaxSequenceBits)
	}
	out := make([]*big.Int, count)
	p := big.NewInt(1)
	for i := range out {
		out[i] = new(big.Int).Set(p)
		p.Mul(p, base)
	}
	return out, nil
}
