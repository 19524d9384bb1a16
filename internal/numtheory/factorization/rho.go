package factorization

import (
	"math/big"
	"math/rand/v2"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/numtheory/primality"
)

// batch is the number of |x-y| products accumulated before each gcd.
const batch = 128

// rho splits odd composites that are not perfect powers. One rho serves a
// single Factorize call; its generator is seeded from the engine seed and
// the number being factored.
type rho struct {
	rng   *rand.Rand
	limit uint64
	st    *Stats
}

func (e *Engine) newRho(n *big.Int, st *Stats) *rho {
	return &rho{
		rng:   rand.New(rand.NewPCG(e.seed, primality.Fingerprint(n))),
		limit: e.iterLimit,
		st:    st,
	}
}

// split returns a divisor d of m with 1 < d < m. Runs that end at the
// trivial divisor m restart with a fresh start value and constant.
func (r *rho) split(m *big.Int) (*big.Int, error) {
	if m.IsUint64() {
		n := m.Uint64()
		for {
			y := r.rng.Uint64N(n)
			c := 1 + r.rng.Uint64N(n-3)
			d, ok := r.brent64(n, y, c)
			if !ok {
				return nil, r.exhausted(m)
			}
			if d != n {
				return new(big.Int).SetUint64(d), nil
			}
			r.st.RhoRetries++
		}
	}

	cSpan := new(big.Int).Sub(m, bigThree)
	for {
		y := randBelow(r.rng, m)
		c := randBelow(r.rng, cSpan)
		c.Add(c, bigOne)
		d, ok := r.brentBig(m, y, c)
		if !ok {
			return nil, r.exhausted(m)
		}
		if d.Cmp(m) != 0 {
			return d, nil
		}
		r.st.RhoRetries++
	}
}

func (r *rho) exhausted(m *big.Int) error {
	return numerr.OutOfRange("factorization: rho iteration limit %d reached splitting %s", r.limit, m)
}

// step charges k polynomial evaluations and reports whether the budget
// allows them.
func (r *rho) step(k uint64) bool {
	r.st.Iterations += k
	return r.limit == 0 || r.st.Iterations <= r.limit
}

// brent64 runs Brent's cycle search on y -> y^2 + c mod n. It returns n when
// the run degenerates and false when the iteration budget runs out.
func (r *rho) brent64(n, y, c uint64) (uint64, bool) {
	f := func(v uint64) uint64 {
		return addMod64(primality.MulMod64(v, v, n), c, n)
	}

	g, q := uint64(1), uint64(1)
	var x, ys uint64
	for span := uint64(1); g == 1; span <<= 1 {
		x = y
		for i := uint64(0); i < span; i++ {
			y = f(y)
		}
		if !r.step(span) {
			return 0, false
		}
		for k := uint64(0); k < span && g == 1; k += batch {
			ys = y
			lim := min(batch, span-k)
			for i := uint64(0); i < lim; i++ {
				y = f(y)
				q = primality.MulMod64(q, absDiff(x, y), n)
			}
			if !r.step(lim) {
				return 0, false
			}
			g = gcd64(q, n)
		}
	}

	if g == n {
		// the batch overshot; replay it one step at a time
		for {
			ys = f(ys)
			g = gcd64(absDiff(x, ys), n)
			if g > 1 {
				break
			}
		}
	}
	return g, true
}

func (r *rho) brentBig(n, y, c *big.Int) (*big.Int, bool) {
	y = new(big.Int).Set(y)
	f := func(v *big.Int) {
		v.Mul(v, v).Add(v, c).Mod(v, n)
	}

	g, q := big.NewInt(1), big.NewInt(1)
	x, ys, diff := new(big.Int), new(big.Int), new(big.Int)
	for span := uint64(1); g.Cmp(bigOne) == 0; span <<= 1 {
		x.Set(y)
		for i := uint64(0); i < span; i++ {
			f(y)
		}
		if !r.step(span) {
			return nil, false
		}
		for k := uint64(0); k < span && g.Cmp(bigOne) == 0; k += batch {
			ys.Set(y)
			lim := min(batch, span-k)
			for i := uint64(0); i < lim; i++ {
				f(y)
				diff.Sub(x, y).Abs(diff)
				q.Mul(q, diff).Mod(q, n)
			}
			if !r.step(lim) {
				return nil, false
			}
			g.GCD(nil, nil, q, n)
		}
	}

	if g.Cmp(n) == 0 {
		for {
			f(ys)
			diff.Sub(x, ys).Abs(diff)
			g.GCD(nil, nil, diff, n)
			if g.Cmp(bigOne) > 0 {
				break
			}
		}
	}
	return g, true
}

var bigThree = big.NewInt(3)

// randBelow returns a uniform-enough value in [0, n) for n > 0.
func randBelow(rng *rand.Rand, n *big.Int) *big.Int {
	words := (n.BitLen()+63)/64 + 1
	buf := make([]byte, 8*words)
	for j := 0; j < words; j++ {
		v := rng.Uint64()
		for k := 0; k < 8; k++ {
			buf[8*j+k] = byte(v >> (8 * k))
		}
	}
	a := new(big.Int).SetBytes(buf)
	return a.Mod(a, n)
}

func addMod64(a, b, n uint64) uint64 {
	s := a + b
	if s < a || s >= n {
		s -= n
	}
	return s
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
