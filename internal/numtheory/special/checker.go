package special

import (
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/factorization"
	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/numtheory/primality"
)

// DefaultMaxListLimit is the largest limit a list generator accepts by
// default.
const DefaultMaxListLimit = 10_000_000

// ErrNoCommonPrime is returned by GreatestCommonPrimeDivisor when the two
// numbers share no prime factor.
var ErrNoCommonPrime = numerr.Domain("special: no common prime divisor")

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Checker evaluates predicates with a fixed oracle and engine.
type Checker struct {
	oracle  *primality.Oracle
	engine  *factorization.Engine
	maxList int64
}

// Option configures a Checker.
type Option func(*Checker)

// WithEngine sets the factorization engine and adopts its oracle.
func WithEngine(e *factorization.Engine) Option {
	return func(c *Checker) {
		if e != nil {
			c.engine = e
			c.oracle = e.Oracle()
		}
	}
}

// WithMaxListLimit sets the largest limit accepted by list generators.
func WithMaxListLimit(limit int64) Option {
	return func(c *Checker) {
		if limit > 0 {
			c.maxList = limit
		}
	}
}

// New creates a Checker. Without options it uses the default engine.
func New(opts ...Option) *Checker {
	c := &Checker{maxList: DefaultMaxListLimit}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = factorization.Default()
		c.oracle = c.engine.Oracle()
	}
	return c
}

// Engine returns the factorization engine.
func (c *Checker) Engine() *factorization.Engine {
	return c.engine
}

// MaxListLimit returns the largest limit accepted by list generators.
func (c *Checker) MaxListLimit() int64 {
	return c.maxList
}

func nonNil(op string, n *big.Int) error {
	if n == nil {
		return numerr.Invalid("special: %s: nil integer", op)
	}
	return nil
}

// atLeast rejects nil with ErrInvalidInput and values below min with
// ErrDomain.
func atLeast(op string, n *big.Int, min int64) error {
	if err := nonNil(op, n); err != nil {
		return err
	}
	if n.Cmp(big.NewInt(min)) < 0 {
		return numerr.Domain("special: %s: n = %s must be at least %d", op, n, min)
	}
	return nil
}

// checkLimit validates a list generator limit.
func (c *Checker) checkLimit(op string, limit, min int64) error {
	if limit < min {
		return numerr.Invalid("special: %s: limit = %d must be at least %d", op, limit, min)
	}
	if limit > c.maxList {
		return numerr.OutOfRange("special: %s: limit = %d exceeds %d", op, limit, c.maxList)
	}
	return nil
}
