package factorization

import (
	"math/big"
	"math/bits"
	"slices"
	"sync"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/numtheory/primality"
)

const (
	// DefaultTrialBound is the largest trial divisor of the default Engine.
	DefaultTrialBound = 1_000_000
	// MaxTrialBound caps the sieve so the prime table fits in uint32.
	MaxTrialBound = 1 << 31
)

var bigOne = big.NewInt(1)

// Stats describes the work done by one factorization.
type Stats struct {
	TrialFactors int    // factors removed by trial division, including twos
	PowerSplits  int    // cofactors recognised as perfect powers
	RhoSplits    int    // cofactors split by Pollard's rho
	RhoRetries   int    // rho runs that degenerated and restarted
	Iterations   uint64 // rho polynomial evaluations
}

// Engine factors integers. It holds only immutable state and is safe for
// concurrent use.
type Engine struct {
	oracle    *primality.Oracle
	bound     uint64
	seed      uint64
	iterLimit uint64
	primes    []uint32 // odd primes <= bound
}

// Option configures an Engine.
type Option func(*Engine)

// WithOracle sets the primality oracle used to terminate splitting.
func WithOracle(o *primality.Oracle) Option {
	return func(e *Engine) {
		if o != nil {
			e.oracle = o
		}
	}
}

// WithTrialBound sets the largest trial divisor. Values above MaxTrialBound
// are clamped.
func WithTrialBound(bound uint64) Option {
	return func(e *Engine) {
		e.bound = min(bound, MaxTrialBound)
	}
}

// WithSeed seeds the per-call generators that pick rho start values.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithIterationLimit bounds the rho polynomial evaluations of a single call.
// Zero means unlimited.
func WithIterationLimit(limit uint64) Option {
	return func(e *Engine) {
		e.iterLimit = limit
	}
}

// NewEngine creates an Engine and sieves its trial-division table.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		oracle: primality.Default(),
		bound:  DefaultTrialBound,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.primes = sieveOddPrimes(e.bound)
	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared Engine with the default trial bound. The table
// is sieved on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// PrimeFactors factors n with the default Engine.
func PrimeFactors(n *big.Int) ([]*big.Int, error) {
	return Default().PrimeFactors(n)
}

// TrialBound returns the largest trial divisor.
func (e *Engine) TrialBound() uint64 {
	return e.bound
}

// Oracle returns the primality oracle the engine terminates with.
func (e *Engine) Oracle() *primality.Oracle {
	return e.oracle
}

// PrimeFactors returns the prime factors of n in ascending order with
// repetition. It fails with ErrInvalidInput for a nil n and ErrDomain for
// n <= 1.
func (e *Engine) PrimeFactors(n *big.Int) ([]*big.Int, error) {
	factors, _, err := e.Factorize(n)
	return factors, err
}

// pending is a cofactor still to be factored, occurring mult times in n.
type pending struct {
	n    *big.Int
	mult int
}

// Factorize is PrimeFactors that also reports the work done.
func (e *Engine) Factorize(n *big.Int) ([]*big.Int, Stats, error) {
	var st Stats
	if n == nil {
		return nil, st, numerr.Invalid("factorization: nil integer")
	}
	if n.Cmp(bigOne) <= 0 {
		return nil, st, numerr.Domain("factorization: n = %s must be greater than 1", n)
	}

	factors := make([]*big.Int, 0, 16)
	rem := new(big.Int).Set(n)
	if tz := rem.TrailingZeroBits(); tz > 0 {
		for i := uint(0); i < tz; i++ {
			factors = append(factors, big.NewInt(2))
		}
		rem.Rsh(rem, tz)
		st.TrialFactors += int(tz)
	}
	rem, factors = e.trialDivide(rem, factors, &st)

	r := e.newRho(n, &st)
	stack := []pending{{n: rem, mult: 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := top.n
		if m.Cmp(bigOne) == 0 {
			continue
		}
		if e.oracle.Test(m) {
			for i := 0; i < top.mult; i++ {
				factors = append(factors, new(big.Int).Set(m))
			}
			continue
		}
		if root, k := perfectPower(m, e.maxExponent(m)); k > 1 {
			st.PowerSplits++
			stack = append(stack, pending{n: root, mult: top.mult * k})
			continue
		}

		d, err := r.split(m)
		if err != nil {
			return nil, st, err
		}
		st.RhoSplits++
		q := new(big.Int).Quo(m, d)
		stack = append(stack, pending{n: d, mult: top.mult}, pending{n: q, mult: top.mult})
	}

	slices.SortFunc(factors, (*big.Int).Cmp)
	return factors, st, nil
}

// trialDivide removes every odd prime <= bound from rem. The big.Int loop
// hands over to a uint64 loop once the remainder fits in a word.
func (e *Engine) trialDivide(rem *big.Int, factors []*big.Int, st *Stats) (*big.Int, []*big.Int) {
	pb, q, r := new(big.Int), new(big.Int), new(big.Int)
	for i, p := range e.primes {
		if rem.IsUint64() {
			var w uint64
			w, factors = trialDivide64(rem.Uint64(), e.primes[i:], factors, st)
			return new(big.Int).SetUint64(w), factors
		}
		pb.SetUint64(uint64(p))
		for {
			q.QuoRem(rem, pb, r)
			if r.Sign() != 0 {
				break
			}
			rem.Set(q)
			factors = append(factors, big.NewInt(int64(p)))
			st.TrialFactors++
		}
	}
	return rem, factors
}

func trialDivide64(rem uint64, primes []uint32, factors []*big.Int, st *Stats) (uint64, []*big.Int) {
	for _, p := range primes {
		pp := uint64(p)
		if pp*pp > rem {
			break
		}
		for rem%pp == 0 {
			rem /= pp
			factors = append(factors, new(big.Int).SetUint64(pp))
			st.TrialFactors++
		}
	}
	return rem, factors
}

// maxExponent bounds k in m = r^k. Every prime factor of m exceeds the trial
// bound, so r > 2^floor(log2 bound).
func (e *Engine) maxExponent(m *big.Int) int {
	lb := bits.Len64(e.bound) - 1
	if lb < 1 {
		lb = 1
	}
	return (m.BitLen() - 1) / lb
}

// sieveOddPrimes returns the odd primes <= limit.
func sieveOddPrimes(limit uint64) []uint32 {
	if limit < 3 {
		return nil
	}
	// composite[i] covers the odd number 2i+1
	size := (limit-1)/2 + 1
	composite := make([]bool, size)
	for i := uint64(1); i < size; i++ {
		if composite[i] {
			continue
		}
		p := 2*i + 1
		if p*p > limit {
			break
		}
		for j := p * p / 2; j < size; j += p {
			composite[j] = true
		}
	}

	primes := make([]uint32, 0, size/4)
	for i := uint64(1); i < size; i++ {
		if !composite[i] {
			primes = append(primes, uint32(2*i+1))
		}
	}
	return primes
}
