package primality

import (
	"math/big"
	"math/bits"
	"math/rand/v2"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
)

// Oracle runs Miller-Rabin with bit-length-selected witness bases.
type Oracle struct {
	randomBases int
	seed        uint64
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithRandomBases adds k random witnesses, drawn from a PRNG seeded with seed
// and the operand, whenever the operand falls outside the deterministic tiers.
func WithRandomBases(k int, seed uint64) Option {
	return func(o *Oracle) {
		if k > 0 {
			o.randomBases = k
		}
		o.seed = seed
	}
}

// NewOracle creates an Oracle.
func NewOracle(opts ...Option) *Oracle {
	o := &Oracle{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var defaultOracle = NewOracle()

// Default returns the shared fixed-base Oracle.
func Default() *Oracle {
	return defaultOracle
}

// IsPrime reports whether n is prime using the default Oracle.
func IsPrime(n *big.Int) (bool, error) {
	return defaultOracle.IsPrime(n)
}

// IsPrime reports whether n is prime. It fails with ErrInvalidInput for a nil
// n and ErrDomain for a negative n; 0 and 1 are not prime.
func (o *Oracle) IsPrime(n *big.Int) (bool, error) {
	if n == nil {
		return false, numerr.Invalid("primality: nil integer")
	}
	if n.Sign() < 0 {
		return false, numerr.Domain("primality: %s is negative", n)
	}
	return o.Test(n), nil
}

// Test is IsPrime without input validation. Negative values are not prime.
func (o *Oracle) Test(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	if n.IsUint64() {
		return o.Test64(n.Uint64())
	}

	switch QuickFilter(n) {
	case DefinitelyPrime:
		return true
	case DefinitelyComposite:
		return false
	}

	set := SelectBases(n.BitLen())
	witnesses := make([]*big.Int, 0, len(set.Bases)+o.randomBases)
	for _, b := range set.Bases {
		witnesses = append(witnesses, new(big.Int).SetUint64(b))
	}
	if !set.Deterministic && o.randomBases > 0 {
		witnesses = append(witnesses, o.randomWitnesses(n)...)
	}
	return millerRabinBig(n, witnesses)
}

// Test64 reports whether n is prime. Every word-sized operand falls in a
// deterministic tier.
func (o *Oracle) Test64(n uint64) bool {
	switch QuickFilter64(n) {
	case DefinitelyPrime:
		return true
	case DefinitelyComposite:
		return false
	}
	return millerRabin64(n, SelectBases(bits.Len64(n)).Bases)
}

// randomWitnesses draws bases uniformly from [2, n-2].
func (o *Oracle) randomWitnesses(n *big.Int) []*big.Int {
	rng := rand.New(rand.NewPCG(o.seed, Fingerprint(n)))
	span := new(big.Int).Sub(n, bigThree)
	words := (n.BitLen()+63)/64 + 1

	out := make([]*big.Int, 0, o.randomBases)
	buf := make([]byte, 8*words)
	for i := 0; i < o.randomBases; i++ {
		for j := 0; j < words; j++ {
			v := rng.Uint64()
			for k := 0; k < 8; k++ {
				buf[8*j+k] = byte(v >> (8 * k))
			}
		}
		a := new(big.Int).SetBytes(buf)
		a.Mod(a, span).Add(a, bigTwo)
		out = append(out, a)
	}
	return out
}

func millerRabin64(n uint64, bases []uint64) bool {
	nm1 := n - 1
	s := bits.TrailingZeros64(nm1)
	d := nm1 >> s

	for _, base := range bases {
		a := base % n
		if a == 0 {
			continue
		}
		x := PowMod64(a, d, n)
		if x == 1 || x == nm1 {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = MulMod64(x, x, n)
			if x == nm1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

func millerRabinBig(n *big.Int, bases []*big.Int) bool {
	one := big.NewInt(1)
	nm1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nm1)
	s := d.TrailingZeroBits()
	d.Rsh(d, s)

	a, x := new(big.Int), new(big.Int)
	for _, base := range bases {
		a.Mod(base, n)
		if a.Sign() == 0 {
			continue
		}
		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		composite := true
		for r := uint(1); r < s; r++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nm1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
