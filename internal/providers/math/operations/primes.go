package operations

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/GriffinCanCode/primecore/internal/numtheory/factorization"
	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// PrimeOps handles primality, factorization and prime list tools
type PrimeOps struct {
	*common.MathOps
}

var (
	paramN     = types.Parameter{Name: "n", Type: "integer", Description: "Integer (decimal string for values above 2^53)", Required: true}
	paramLimit = types.Parameter{Name: "limit", Type: "integer", Description: "Inclusive upper bound", Required: true}
)

// GetTools returns prime tool definitions
func (p *PrimeOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.isPrime",
			Name:        "isPrime",
			Description: "Test primality with Miller-Rabin (deterministic below 2^81)",
			Parameters:  []types.Parameter{paramN},
			Returns:     "boolean",
		},
		{
			ID:          "math.primeFactors",
			Name:        "primeFactors",
			Description: "Factor n > 1 into ascending primes with repetition",
			Parameters:  []types.Parameter{paramN},
			Returns:     "array",
		},
		{
			ID:          "math.primeList",
			Name:        "primeList",
			Description: "List primes up to limit",
			Parameters:  []types.Parameter{paramLimit},
			Returns:     "array",
		},
		{
			ID:          "math.isEmirp",
			Name:        "isEmirp",
			Description: "Check for a prime whose digit reversal is a different prime",
			Parameters:  []types.Parameter{paramN},
			Returns:     "boolean",
		},
		{
			ID:          "math.emirpList",
			Name:        "emirpList",
			Description: "List emirps up to limit",
			Parameters:  []types.Parameter{paramLimit},
			Returns:     "array",
		},
		{
			ID:          "math.isTwinPrime",
			Name:        "isTwinPrime",
			Description: "Check for a prime with a prime two above or below",
			Parameters:  []types.Parameter{paramN},
			Returns:     "boolean",
		},
		{
			ID:          "math.twinPrimeList",
			Name:        "twinPrimeList",
			Description: "List primes up to limit that belong to a twin pair",
			Parameters:  []types.Parameter{paramLimit},
			Returns:     "array",
		},
		{
			ID:          "math.greatestCommonPrimeDivisor",
			Name:        "greatestCommonPrimeDivisor",
			Description: "Largest prime dividing both a and b",
			Parameters: []types.Parameter{
				{Name: "a", Type: "integer", Description: "First integer > 1", Required: true},
				{Name: "b", Type: "integer", Description: "Second integer > 1", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.batchIsPrime",
			Name:        "batchIsPrime",
			Description: "Test primality of many integers concurrently",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Integers to test", Required: true},
			},
			Returns: "array",
		},
	}
}

// IsPrime tests a single integer
func (p *PrimeOps) IsPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return p.Predicate(ctx, params, p.Oracle.IsPrime)
}

// PrimeFactors factors n and groups the factors into prime powers
func (p *PrimeOps) PrimeFactors(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.GetInteger(params, "n")
	if err != nil {
		return common.FailureFrom(err)
	}

	factors, err := p.Factor(ctx, n)
	if err != nil {
		return common.FailureFrom(err)
	}

	terms := factorization.Terms(factors)
	termData := make([]map[string]interface{}, len(terms))
	for i, term := range terms {
		termData[i] = map[string]interface{}{"prime": common.Int(term.Prime), "exponent": term.Exponent}
	}

	return common.Success(map[string]interface{}{
		"n":      common.Int(n),
		"result": common.Ints(factors),
		"terms":  termData,
	})
}

// PrimeList lists primes up to limit
func (p *PrimeOps) PrimeList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return p.List(ctx, params, p.Checker.GeneratePrimeList)
}

// IsEmirp checks for an emirp
func (p *PrimeOps) IsEmirp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return p.Predicate(ctx, params, p.Checker.IsEmirp)
}

// EmirpList lists emirps up to limit
func (p *PrimeOps) EmirpList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return p.List(ctx, params, p.Checker.GenerateEmirpList)
}

// IsTwinPrime checks for a twin prime
func (p *PrimeOps) IsTwinPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return p.Predicate(ctx, params, p.Checker.IsTwinPrime)
}

// TwinPrimeList lists twin primes up to limit
func (p *PrimeOps) TwinPrimeList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return p.List(ctx, params, p.Checker.GenerateTwinPrimeList)
}

// GreatestCommonPrimeDivisor finds the largest shared prime factor
func (p *PrimeOps) GreatestCommonPrimeDivisor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := common.GetInteger(params, "a")
	if err != nil {
		return common.FailureFrom(err)
	}
	b, err := common.GetInteger(params, "b")
	if err != nil {
		return common.FailureFrom(err)
	}
	return p.Compute(ctx, func() (map[string]interface{}, error) {
		g, err := p.Checker.GreatestCommonPrimeDivisor(a, b)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"a": common.Int(a), "b": common.Int(b), "result": common.Int(g)}, nil
	})
}

// BatchIsPrime tests every integer in numbers, at most BatchConcurrency at a time
func (p *PrimeOps) BatchIsPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetIntegers(params, "numbers")
	if err != nil {
		return common.FailureFrom(err)
	}
	if len(numbers) == 0 {
		return common.FailureFrom(numerr.Invalid("numbers must not be empty"))
	}

	return p.ComputeContext(ctx, func(ctx context.Context) (map[string]interface{}, error) {
		results := make([]bool, len(numbers))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.BatchConcurrency)
		for i, n := range numbers {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				prime, err := p.Oracle.IsPrime(n)
				if err != nil {
					return fmt.Errorf("numbers[%d]: %w", i, err)
				}
				results[i] = prime
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		count := 0
		for _, prime := range results {
			if prime {
				count++
			}
		}
		return map[string]interface{}{
			"numbers":     common.Ints(numbers),
			"result":      results,
			"prime_count": count,
		}, nil
	})
}
