package special

import (
	"math/big"
	"strings"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
)

const (
	// MaxInversionInput bounds the length of a list passed to CountInversions.
	MaxInversionInput = 1_000_000
	// MaxDigitCount bounds the digit count of LargestWithDigitSum.
	MaxDigitCount = 1_000_000
)

// CountInversions returns the number of pairs i < j with vals[i] > vals[j].
// vals is not modified.
func CountInversions(vals []*big.Int) (int64, error) {
	if len(vals) > MaxInversionInput {
		return 0, numerr.OutOfRange("special: inversions: %d values exceed %d", len(vals), MaxInversionInput)
	}
	for i, v := range vals {
		if v == nil {
			return 0, numerr.Invalid("special: inversions: nil integer at index %d", i)
		}
	}
	work := make([]*big.Int, len(vals))
	copy(work, vals)
	return mergeCount(work, make([]*big.Int, len(vals))), nil
}

// mergeCount sorts a in place using buf as scratch space.
func mergeCount(a, buf []*big.Int) int64 {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	count := mergeCount(a[:mid], buf[:mid]) + mergeCount(a[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[j].Cmp(a[i]) < 0 {
			// every element left in the first half exceeds a[j]
			count += int64(mid - i)
			buf[k] = a[j]
			j++
		} else {
			buf[k] = a[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:])
	copy(a, buf)
	return count
}

// LargestWithDigitSum returns the largest number of at most digits decimal
// digits whose digits sum to sum, built greedily from the most significant
// place. A zero sum yields 0. It fails with ErrDomain when sum exceeds
// 9*digits.
func LargestWithDigitSum(digits, sum int) (*big.Int, error) {
	if digits < 0 || sum < 0 {
		return nil, numerr.Invalid("special: digit sum: digits = %d and sum = %d must be non-negative", digits, sum)
	}
	if digits > MaxDigitCount {
		return nil, numerr.OutOfRange("special: digit sum: digits = %d exceeds %d", digits, MaxDigitCount)
	}
	if sum > 9*digits {
		return nil, numerr.Domain("special: digit sum: no %d-digit number has digit sum %d", digits, sum)
	}
	if sum == 0 {
		return new(big.Int), nil
	}

	var b strings.Builder
	b.Grow(digits)
	for i := 0; i < digits; i++ {
		d := min(9, sum)
		b.WriteByte(byte('0' + d))
		sum -= d
	}
	n, _ := new(big.Int).SetString(b.String(), 10)
	return n, nil
}
