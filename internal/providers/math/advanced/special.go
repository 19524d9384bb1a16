package advanced

import (
	"context"
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// SpecialOps handles special-number predicates and their list generators
type SpecialOps struct {
	*common.MathOps
}

func predicateTool(name, description string) types.Tool {
	return types.Tool{
		ID:          "math." + name,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "n", Type: "integer", Description: "Integer (decimal string for values above 2^53)", Required: true},
		},
		Returns: "boolean",
	}
}

func listTool(name, description string) types.Tool {
	return types.Tool{
		ID:          "math." + name,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "limit", Type: "integer", Description: "Inclusive upper bound", Required: true},
		},
		Returns: "array",
	}
}

func pairTool(name, description string) types.Tool {
	return types.Tool{
		ID:          "math." + name,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "a", Type: "integer", Description: "First integer", Required: true},
			{Name: "b", Type: "integer", Description: "Second integer", Required: true},
		},
		Returns: "boolean",
	}
}

// GetTools returns special-number tool definitions
func (s *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		predicateTool("isAbundant", "Check whether the proper divisors of n sum to more than n"),
		listTool("abundantList", "List abundant numbers up to limit"),
		predicateTool("isPerfect", "Check whether the proper divisors of n sum to n"),
		listTool("perfectList", "List perfect numbers up to limit"),
		predicateTool("isDeficient", "Check whether the proper divisors of n sum to less than n"),
		{
			ID:          "math.classify",
			Name:        "classify",
			Description: "Classify n as deficient, perfect or abundant",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Positive integer", Required: true},
			},
			Returns: "string",
		},
		predicateTool("isNarcissistic", "Check whether n equals the sum of its digits raised to the digit count"),
		listTool("narcissisticList", "List narcissistic numbers up to limit"),
		predicateTool("isStrong", "Check whether n equals the sum of the factorials of its digits"),
		predicateTool("isHappy", "Check whether iterating the sum of squared digits reaches 1"),
		listTool("happyList", "List happy numbers up to limit"),
		pairTool("areAmicable", "Check whether each number is the proper divisor sum of the other"),
		pairTool("areFriendly", "Check whether both numbers have the same abundancy index"),
		predicateTool("isSquare", "Check whether n is a perfect square"),
		listTool("squareList", "List perfect squares up to limit"),
	}
}

// IsAbundant checks for an abundant number
func (s *SpecialOps) IsAbundant(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.Predicate(ctx, params, s.Checker.IsAbundantNumber)
}

// AbundantList lists abundant numbers up to limit
func (s *SpecialOps) AbundantList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.List(ctx, params, s.Checker.GenerateAbundantList)
}

// IsPerfect checks for a perfect number
func (s *SpecialOps) IsPerfect(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.Predicate(ctx, params, s.Checker.IsPerfectNumber)
}

// PerfectList lists perfect numbers up to limit
func (s *SpecialOps) PerfectList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.List(ctx, params, s.Checker.GeneratePerfectList)
}

// IsDeficient checks for a deficient number
func (s *SpecialOps) IsDeficient(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.Predicate(ctx, params, s.Checker.IsDeficientNumber)
}

// Classify reports the abundance class of n
func (s *SpecialOps) Classify(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.GetInteger(params, "n")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		class, err := s.Checker.Classify(n)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"n": common.Int(n), "result": class.String()}, nil
	})
}

// IsNarcissistic checks for a narcissistic number
func (s *SpecialOps) IsNarcissistic(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.Predicate(ctx, params, s.Checker.IsNarcissisticNumber)
}

// NarcissisticList lists narcissistic numbers up to limit
func (s *SpecialOps) NarcissisticList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.List(ctx, params, s.Checker.GenerateNarcissisticList)
}

// IsStrong checks for a strong (factorion) number
func (s *SpecialOps) IsStrong(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.Predicate(ctx, params, s.Checker.IsStrongNumber)
}

// IsHappy checks for a happy number
func (s *SpecialOps) IsHappy(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.Predicate(ctx, params, s.Checker.IsHappyNumber)
}

// HappyList lists happy numbers up to limit
func (s *SpecialOps) HappyList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.List(ctx, params, s.Checker.GenerateHappyList)
}

// AreAmicable checks for an amicable pair
func (s *SpecialOps) AreAmicable(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.pair(ctx, params, s.Checker.AreAmicableNumbers)
}

// AreFriendly checks for a friendly pair
func (s *SpecialOps) AreFriendly(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.pair(ctx, params, s.Checker.AreFriendlyNumbers)
}

// IsSquare checks for a perfect square
func (s *SpecialOps) IsSquare(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.Predicate(ctx, params, s.Checker.IsSquareNumber)
}

// SquareList lists perfect squares up to limit
func (s *SpecialOps) SquareList(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.List(ctx, params, s.Checker.GenerateSquareList)
}

func (s *SpecialOps) pair(ctx context.Context, params map[string]interface{}, fn func(a, b *big.Int) (bool, error)) (*types.Result, error) {
	a, err := common.GetInteger(params, "a")
	if err != nil {
		return common.FailureFrom(err)
	}
	b, err := common.GetInteger(params, "b")
	if err != nil {
		return common.FailureFrom(err)
	}
	return s.Compute(ctx, func() (map[string]interface{}, error) {
		ok, err := fn(a, b)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"a": common.Int(a), "b": common.Int(b), "result": ok}, nil
	})
}
