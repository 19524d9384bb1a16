package operations

import (
	"context"
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/divisors"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// DivisorOps handles divisor, multiple, gcd and lcm tools
type DivisorOps struct {
	*common.MathOps
}

var (
	paramNumbers      = types.Parameter{Name: "numbers", Type: "array", Description: "Integers (decimal strings for values above 2^53)", Required: true}
	paramPositiveOnly = types.Parameter{Name: "positive_only", Type: "boolean", Description: "Omit negative values (default true)", Required: false}
)

// GetTools returns divisor tool definitions
func (d *DivisorOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sumOfDivisors",
			Name:        "sumOfDivisors",
			Description: "Sum of the divisors of n computed from its factorization",
			Parameters: []types.Parameter{
				paramN,
				{Name: "proper", Type: "boolean", Description: "Exclude n itself (default true)", Required: false},
			},
			Returns: "integer",
		},
		{
			ID:          "math.divisors",
			Name:        "divisors",
			Description: "Ascending list of the divisors of n",
			Parameters:  []types.Parameter{paramN, paramPositiveOnly},
			Returns:     "array",
		},
		{
			ID:          "math.multiples",
			Name:        "multiples",
			Description: "First count multiples of n",
			Parameters: []types.Parameter{
				paramN,
				{Name: "count", Type: "integer", Description: "Number of multiples", Required: true},
				paramPositiveOnly,
			},
			Returns: "array",
		},
		{
			ID:          "math.gcd",
			Name:        "gcd",
			Description: "Greatest common divisor of a list of integers",
			Parameters:  []types.Parameter{paramNumbers},
			Returns:     "integer",
		},
		{
			ID:          "math.lcm",
			Name:        "lcm",
			Description: "Least common multiple of a list of integers",
			Parameters:  []types.Parameter{paramNumbers},
			Returns:     "integer",
		},
		{
			ID:          "math.commonDivisors",
			Name:        "commonDivisors",
			Description: "Positive divisors shared by every integer in the list",
			Parameters:  []types.Parameter{paramNumbers},
			Returns:     "array",
		},
	}
}

// SumOfDivisors returns sigma(n), or sigma(n) - n when proper is set
func (d *DivisorOps) SumOfDivisors(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.GetInteger(params, "n")
	if err != nil {
		return common.FailureFrom(err)
	}
	proper, err := common.GetBool(params, "proper", true)
	if err != nil {
		return common.FailureFrom(err)
	}
	return d.Compute(ctx, func() (map[string]interface{}, error) {
		sum := divisors.SumOfDivisors
		if proper {
			sum = divisors.SumOfProperDivisors
		}
		s, err := sum(d.Observed(), n)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"n": common.Int(n), "proper": proper, "result": common.Int(s)}, nil
	})
}

// Divisors lists the divisors of n
func (d *DivisorOps) Divisors(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.GetInteger(params, "n")
	if err != nil {
		return common.FailureFrom(err)
	}
	positiveOnly, err := common.GetBool(params, "positive_only", true)
	if err != nil {
		return common.FailureFrom(err)
	}
	return d.Compute(ctx, func() (map[string]interface{}, error) {
		list, err := divisors.List(d.Observed(), n, positiveOnly)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"n": common.Int(n), "result": common.Ints(list), "count": len(list)}, nil
	})
}

// Multiples lists the first count multiples of n
func (d *DivisorOps) Multiples(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.GetInteger(params, "n")
	if err != nil {
		return common.FailureFrom(err)
	}
	count, err := common.GetCount(params, "count")
	if err != nil {
		return common.FailureFrom(err)
	}
	positiveOnly, err := common.GetBool(params, "positive_only", true)
	if err != nil {
		return common.FailureFrom(err)
	}
	return d.Compute(ctx, func() (map[string]interface{}, error) {
		list, err := divisors.Multiples(n, count, positiveOnly)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"n": common.Int(n), "result": common.Ints(list)}, nil
	})
}

// GCD returns the greatest common divisor of numbers
func (d *DivisorOps) GCD(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return d.reduce(ctx, params, divisors.GCD)
}

// LCM returns the least common multiple of numbers
func (d *DivisorOps) LCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return d.reduce(ctx, params, divisors.LCM)
}

// CommonDivisors lists the divisors shared by numbers
func (d *DivisorOps) CommonDivisors(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	nums, err := common.GetIntegers(params, "numbers")
	if err != nil {
		return common.FailureFrom(err)
	}
	return d.Compute(ctx, func() (map[string]interface{}, error) {
		list, err := divisors.Common(d.Observed(), nums)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"numbers": common.Ints(nums), "result": common.Ints(list), "count": len(list)}, nil
	})
}

func (d *DivisorOps) reduce(ctx context.Context, params map[string]interface{}, fn func([]*big.Int) (*big.Int, error)) (*types.Result, error) {
	nums, err := common.GetIntegers(params, "numbers")
	if err != nil {
		return common.FailureFrom(err)
	}
	return d.Compute(ctx, func() (map[string]interface{}, error) {
		r, err := fn(nums)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"numbers": common.Ints(nums), "result": common.Int(r)}, nil
	})
}
