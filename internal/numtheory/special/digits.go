package special

import (
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
)

var digitFactorials = [10]int64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880}

// IsNarcissisticNumber reports whether n >= 0 equals the sum of its decimal
// digits each raised to the number of digits.
func (c *Checker) IsNarcissisticNumber(n *big.Int) (bool, error) {
	if err := atLeast("narcissistic", n, 0); err != nil {
		return false, err
	}
	return isNarcissistic(n.String(), n), nil
}

func isNarcissistic(digits string, n *big.Int) bool {
	k := big.NewInt(int64(len(digits)))
	var pow [10]*big.Int
	sum := new(big.Int)
	for _, r := range digits {
		d := r - '0'
		if pow[d] == nil {
			pow[d] = new(big.Int).Exp(big.NewInt(int64(d)), k, nil)
		}
		sum.Add(sum, pow[d])
		if sum.Cmp(n) > 0 {
			return false
		}
	}
	return sum.Cmp(n) == 0
}

// IsStrongNumber reports whether n >= 0 equals the sum of the factorials of
// its decimal digits. 0 is not strong.
func (c *Checker) IsStrongNumber(n *big.Int) (bool, error) {
	if err := atLeast("strong", n, 0); err != nil {
		return false, err
	}
	if n.Sign() == 0 {
		return false, nil
	}
	// a k-digit number is at least 10^(k-1) while its digit factorial sum is
	// at most k*9!, so nothing above 7 digits qualifies
	if n.BitLen() > 24 {
		return false, nil
	}
	var sum int64
	for _, r := range n.String() {
		sum += digitFactorials[r-'0']
	}
	return sum == n.Int64(), nil
}

// IsHappyNumber reports whether iterating the sum of squared digits from
// n >= 1 reaches 1.
func (c *Checker) IsHappyNumber(n *big.Int) (bool, error) {
	if err := atLeast("happy", n, 1); err != nil {
		return false, err
	}
	var v int64
	for _, r := range n.String() {
		d := int64(r - '0')
		v += d * d
	}
	return isHappy(v), nil
}

func isHappy(v int64) bool {
	seen := make(map[int64]struct{})
	for v != 1 {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		v = squareDigitSum(v)
	}
	return true
}

func squareDigitSum(v int64) int64 {
	var s int64
	for v > 0 {
		d := v % 10
		s += d * d
		v /= 10
	}
	return s
}

// IsSquareNumber reports whether n >= 0 is a perfect square.
func (c *Checker) IsSquareNumber(n *big.Int) (bool, error) {
	if err := atLeast("square", n, 0); err != nil {
		return false, err
	}
	r := new(big.Int).Sqrt(n)
	return r.Mul(r, r).Cmp(n) == 0, nil
}

// GenerateNarcissisticList returns the narcissistic numbers in [0, limit].
func (c *Checker) GenerateNarcissisticList(limit int64) ([]int64, error) {
	if err := c.checkLimit("narcissistic list", limit, 0); err != nil {
		return nil, err
	}
	out := make([]int64, 0, 16)
	for i := int64(0); i <= limit; i++ {
		if narcissistic64(i) {
			out = append(out, i)
		}
	}
	return out, nil
}

func narcissistic64(n int64) bool {
	var digits [19]int64
	k := 0
	for v := n; ; v /= 10 {
		digits[k] = v % 10
		k++
		if v < 10 {
			break
		}
	}
	var sum int64
	for _, d := range digits[:k] {
		p := int64(1)
		for j := 0; j < k; j++ {
			p *= d
		}
		sum += p
		if sum > n {
			return false
		}
	}
	return sum == n
}

// GenerateHappyList returns the happy numbers in [1, limit].
func (c *Checker) GenerateHappyList(limit int64) ([]int64, error) {
	if err := c.checkLimit("happy list", limit, 1); err != nil {
		return nil, err
	}
	// one step maps any int64 below 19*81
	var memo [19*81 + 1]int8
	happy := func(v int64) bool {
		if memo[v] == 0 {
			memo[v] = -1
			if isHappy(v) {
				memo[v] = 1
			}
		}
		return memo[v] == 1
	}

	out := make([]int64, 0, 64)
	for i := int64(1); i <= limit; i++ {
		v := i
		if v >= int64(len(memo)) {
			v = squareDigitSum(v)
		}
		if happy(v) {
			out = append(out, i)
		}
	}
	return out, nil
}

// GenerateSquareList returns the perfect squares in [0, limit].
func (c *Checker) GenerateSquareList(limit int64) ([]int64, error) {
	if limit < 0 {
		return nil, numerr.Invalid("special: square list: limit = %d must be at least 0", limit)
	}
	root := new(big.Int).Sqrt(big.NewInt(limit)).Int64()
	if root+1 > c.maxList {
		return nil, numerr.OutOfRange("special: square list: %d squares exceed %d", root+1, c.maxList)
	}
	out := make([]int64, root+1)
	for i := range out {
		out[i] = int64(i) * int64(i)
	}
	return out, nil
}
