package math

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/providers/math/advanced"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/providers/math/operations"
	"github.com/GriffinCanCode/primecore/internal/providers/math/statistics"
	"github.com/GriffinCanCode/primecore/internal/providers/math/utilities"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

type handler func(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)

// Provider implements number theory tools
type Provider struct {
	ops *common.MathOps

	// Module instances
	primes    *operations.PrimeOps
	divisors  *operations.DivisorOps
	special   *advanced.SpecialOps
	stats     *statistics.StatsOps
	sequences *utilities.SequenceOps

	handlers map[string]handler
	tools    []types.Tool
}

// NewProvider creates a modular math provider sharing ops across modules
func NewProvider(ops *common.MathOps) *Provider {
	m := &Provider{
		ops:       ops,
		primes:    &operations.PrimeOps{MathOps: ops},
		divisors:  &operations.DivisorOps{MathOps: ops},
		special:   &advanced.SpecialOps{MathOps: ops},
		stats:     &statistics.StatsOps{MathOps: ops},
		sequences: utilities.NewSequenceOps(ops),
	}

	m.handlers = map[string]handler{
		// Primes
		"math.isPrime":                    m.primes.IsPrime,
		"math.primeFactors":               m.primes.PrimeFactors,
		"math.primeList":                  m.primes.PrimeList,
		"math.isEmirp":                    m.primes.IsEmirp,
		"math.emirpList":                  m.primes.EmirpList,
		"math.isTwinPrime":                m.primes.IsTwinPrime,
		"math.twinPrimeList":              m.primes.TwinPrimeList,
		"math.greatestCommonPrimeDivisor": m.primes.GreatestCommonPrimeDivisor,
		"math.batchIsPrime":               m.primes.BatchIsPrime,

		// Divisors
		"math.sumOfDivisors":  m.divisors.SumOfDivisors,
		"math.divisors":       m.divisors.Divisors,
		"math.multiples":      m.divisors.Multiples,
		"math.gcd":            m.divisors.GCD,
		"math.lcm":            m.divisors.LCM,
		"math.commonDivisors": m.divisors.CommonDivisors,

		// Special numbers
		"math.isAbundant":       m.special.IsAbundant,
		"math.abundantList":     m.special.AbundantList,
		"math.isPerfect":        m.special.IsPerfect,
		"math.perfectList":      m.special.PerfectList,
		"math.isDeficient":      m.special.IsDeficient,
		"math.classify":         m.special.Classify,
		"math.isNarcissistic":   m.special.IsNarcissistic,
		"math.narcissisticList": m.special.NarcissisticList,
		"math.isStrong":         m.special.IsStrong,
		"math.isHappy":          m.special.IsHappy,
		"math.happyList":        m.special.HappyList,
		"math.areAmicable":      m.special.AreAmicable,
		"math.areFriendly":      m.special.AreFriendly,
		"math.isSquare":         m.special.IsSquare,
		"math.squareList":       m.special.SquareList,

		// Statistics
		"math.primeGapStats": m.stats.PrimeGapStats,

		// Sequences and digits
		"math.fibonacci":     m.sequences.Fibonacci,
		"math.fibonacciList": m.sequences.FibonacciList,
		"math.sequenceRule1": m.sequences.SequenceRule1,
		"math.sequenceRule2": m.sequences.SequenceRule2,
		"math.sequenceRule3": m.sequences.SequenceRule3,
		"math.reverseDigits": m.sequences.ReverseDigits,
		"math.sumOfDigits":   m.sequences.SumOfDigits,

		"math.countInversions":           m.sequences.CountInversions,
		"math.largestNumberWithDigitSum": m.sequences.LargestNumberWithDigitSum,
	}

	m.tools = append(m.tools, m.primes.GetTools()...)
	m.tools = append(m.tools, m.divisors.GetTools()...)
	m.tools = append(m.tools, m.special.GetTools()...)
	m.tools = append(m.tools, m.stats.GetTools()...)
	m.tools = append(m.tools, m.sequences.GetTools()...)

	return m
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Number theory: primality, factorization, divisors, special numbers and sequences",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"primality",
			"factorization",
			"divisors",
			"special_numbers",
			"sequences",
			"prime_statistics",
		},
		Tools: m.tools,
	}
}

// Execute routes to the module that owns toolID
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	h, ok := m.handlers[toolID]
	if !ok {
		return common.Failure(numerr.KindInvalidInput, fmt.Sprintf("unknown tool: %s", toolID))
	}

	start := time.Now()
	result, err := h(ctx, params, appCtx)
	elapsed := time.Since(start)

	kind := ""
	if err != nil {
		kind = numerr.KindInternal
	} else if !result.Success {
		kind = result.ErrorKind
	}
	m.ops.Observer.ObserveTool(toolID, elapsed, kind)
	m.ops.Logger.Debug("tool executed",
		zap.String("tool", toolID),
		zap.Duration("elapsed", elapsed),
		zap.String("error_kind", kind),
	)

	return result, err
}
