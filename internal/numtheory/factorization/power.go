package factorization

import "math/big"

// iroot returns floor(n^(1/k)) for n >= 0 and k >= 2.
func iroot(n *big.Int, k int) *big.Int {
	if k == 2 {
		return new(big.Int).Sqrt(n)
	}
	if n.Sign() == 0 {
		return new(big.Int)
	}

	kb, km1 := big.NewInt(int64(k)), big.NewInt(int64(k-1))
	// 2^ceil(bitlen/k) is above the root, so Newton descends monotonically.
	x := new(big.Int).Lsh(bigOne, uint((n.BitLen()+k-1)/k))
	t, u := new(big.Int), new(big.Int)
	for {
		t.Exp(x, km1, nil)
		t.Quo(n, t)
		u.Mul(km1, x)
		t.Add(t, u).Quo(t, kb)
		if t.Cmp(x) >= 0 {
			return x
		}
		x.Set(t)
	}
}

// perfectPower finds r and a prime k <= maxK with r^k == n. It returns k = 0
// when n is not such a power.
func perfectPower(n *big.Int, maxK int) (*big.Int, int) {
	p := new(big.Int)
	for k := 2; k <= maxK; k++ {
		if !smallPrime(k) {
			continue
		}
		r := iroot(n, k)
		if p.Exp(r, big.NewInt(int64(k)), nil).Cmp(n) == 0 {
			return r, k
		}
	}
	return nil, 0
}

func smallPrime(k int) bool {
	if k < 2 {
		return false
	}
	for d := 2; d*d <= k; d++ {
		if k%d == 0 {
			return false
		}
	}
	return true
}
