package primality

import (
	"math/big"
	"math/bits"

	"modernc.org/mathutil"
)

// MulMod64 returns a*b mod m without overflow.
func MulMod64(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// PowMod64 returns b^e mod m by square-and-multiply.
func PowMod64(b, e, m uint64) uint64 {
	switch {
	case m == 1:
		return 0
	case e == 0:
		return 1
	case b%m == 0:
		return 0
	}
	return mathutil.ModPowUint64(b%m, e, m)
}

// Fingerprint folds n into a 64-bit value. It seeds the per-call PRNGs used
// for random witnesses and Pollard's rho.
func Fingerprint(n *big.Int) uint64 {
	h := uint64(0xcbf29ce484222325)
	for _, w := range n.Bits() {
		h ^= uint64(w)
		h *= 0x100000001b3
		h ^= h >> 29
	}
	return h
}
