package utilities

import (
	"context"
	"math/big"
	"sync"

	"github.com/GriffinCanCode/primecore/internal/numtheory/sequences"
	"github.com/GriffinCanCode/primecore/internal/numtheory/special"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// SequenceOps handles Fibonacci, rule sequences and digit utilities.
// The Fibonacci cache belongs to this instance and is guarded by mu.
type SequenceOps struct {
	*common.MathOps

	mu  sync.Mutex
	fib *sequences.FibonacciCache
}

// NewSequenceOps creates sequence tools with an empty Fibonacci cache
func NewSequenceOps(ops *common.MathOps) *SequenceOps {
	return &SequenceOps{MathOps: ops, fib: sequences.NewFibonacciCache()}
}

var (
	paramCount = types.Parameter{Name: "count", Type: "integer", Description: "Number of terms", Required: true}
	paramBase  = types.Parameter{Name: "base", Type: "integer", Description: "Sequence base", Required: true}
)

// GetTools returns sequence tool definitions
func (s *SequenceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.fibonacci",
			Name:        "fibonacci",
			Description: "Fibonacci number F(index) with F(0) = 0",
			Parameters: []types.Parameter{
				{Name: "index", Type: "integer", Description: "Non-negative index", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.fibonacciList",
			Name:        "fibonacciList",
			Description: "First count Fibonacci numbers starting at F(0)",
			Parameters:  []types.Parameter{paramCount},
			Returns:     "array",
		},
		{
			ID:          "math.sequenceRule1",
			Name:        "sequenceRule1",
			Description: "1, then k successive multiples of k for k = 2, 3, ...",
			Parameters:  []types.Parameter{paramCount},
			Returns:     "array",
		},
		{
			ID:          "math.sequenceRule2",
			Name:        "sequenceRule2",
			Description: "base*0 .. base*(count-1)",
			Parameters:  []types.Parameter{paramBase, paramCount},
			Returns:     "array",
		},
		{
			ID:          "math.sequenceRule3",
			Name:        "sequenceRule3",
			Description: "base^0 .. base^(count-1)",
			Parameters:  []types.Parameter{paramBase, paramCount},
			Returns:     "array",
		},
		{
			ID:          "math.reverseDigits",
			Name:        "reverseDigits",
			Description: "Decimal digit reversal of a non-negative integer",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Non-negative integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.sumOfDigits",
			Name:        "sumOfDigits",
			Description: "Sum of the decimal digits of |n|",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.countInversions",
			Name:        "countInversions",
			Description: "Number of pairs i < j with numbers[i] > numbers[j]",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Integers in order", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.largestNumberWithDigitSum",
			Name:        "largestNumberWithDigitSum",
			Description: "Largest number of digitCount digits whose digits sum to targetSum",
			Parameters: []types.Parameter{
				{Name: "digitCount", Type: "integer", Description: "Number of decimal digits", Required: true},
				{Name: "targetSum", Type: "integer", Description: "Required digit sum", Required: true},
			},
			Returns: "integer",
		},
	}
}

// Fibonacci returns F(index)
func (s *SequenceOps) Fibonacci(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	index, err := common.GetCount(params, "index")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		f, err := s.fibonacci(index)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"index": index, "result": common.Int(f)}, nil
	})
}

// fibonacci serves cached indices under the lock and computes the rest
// without it, since the cache never stores them.
func (s *SequenceOps) fibonacci(index int) (*big.Int, error) {
	if index > sequences.MaxCachedIndex {
		return sequences.Fibonacci(index)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fib.At(index)
}

// FibonacciList returns F(0) .. F(count-1)
func (s *SequenceOps) FibonacciList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	count, err := common.GetCount(params, "count")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		s.mu.Lock()
		list, err := s.fib.List(count)
		s.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"count": count, "result": common.Ints(list)}, nil
	})
}

// SequenceRule1 returns the first count terms of rule 1
func (s *SequenceOps) SequenceRule1(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	count, err := common.GetCount(params, "count")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		terms, err := sequences.Rule1(count)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"count": count, "result": terms}, nil
	})
}

// SequenceRule2 returns base*0 .. base*(count-1)
func (s *SequenceOps) SequenceRule2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.based(ctx, params, sequences.Rule2)
}

// SequenceRule3 returns base^0 .. base^(count-1)
func (s *SequenceOps) SequenceRule3(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.based(ctx, params, sequences.Rule3)
}

// ReverseDigits reverses the decimal digits of n
func (s *SequenceOps) ReverseDigits(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.unary(ctx, params, special.ReverseDigits)
}

// SumOfDigits sums the decimal digits of n
func (s *SequenceOps) SumOfDigits(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.unary(ctx, params, special.SumOfDigits)
}

// CountInversions counts out-of-order pairs in numbers
func (s *SequenceOps) CountInversions(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetIntegers(params, "numbers")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		count, err := special.CountInversions(numbers)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"length": len(numbers), "result": common.Int(big.NewInt(count))}, nil
	})
}

// LargestNumberWithDigitSum builds the greedy maximum for digitCount and targetSum
func (s *SequenceOps) LargestNumberWithDigitSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	digits, err := common.GetCount(params, "digitCount")
	if err != nil {
		return common.FailureFrom(err)
	}
	sum, err := common.GetCount(params, "targetSum")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		n, err := special.LargestWithDigitSum(digits, sum)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"digitCount": digits, "targetSum": sum, "result": common.Int(n)}, nil
	})
}

func (s *SequenceOps) based(ctx context.Context, params map[string]interface{}, fn func(*big.Int, int) ([]*big.Int, error)) (*types.Result, error) {
	base, err := common.GetInteger(params, "base")
	if err != nil {
		return common.FailureFrom(err)
	}
	count, err := common.GetCount(params, "count")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		terms, err := fn(base, count)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"base": common.Int(base), "count": count, "result": common.Ints(terms)}, nil
	})
}

func (s *SequenceOps) unary(ctx context.Context, params map[string]interface{}, fn func(*big.Int) (*big.Int, error)) (*types.Result, error) {
	n, err := common.GetInteger(params, "n")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		r, err := fn(n)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"n": common.Int(n), "result": common.Int(r)}, nil
	})
}
