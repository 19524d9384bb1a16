package statistics

import (
	"context"
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// StatsOps handles statistics over prime distributions using gonum
type StatsOps struct {
	*common.MathOps
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.primeGapStats",
			Name:        "primeGapStats",
			Description: "Gap statistics for the primes up to limit (mean, variance, median, max gap, twin pairs)",
			Parameters: []types.Parameter{
				{Name: "limit", Type: "integer", Description: "Inclusive upper bound (at least 3)", Required: true},
			},
			Returns: "object",
		},
	}
}

// PrimeGapStats summarises the gaps between consecutive primes up to limit
func (s *StatsOps) PrimeGapStats(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	limit, err := common.GetLimit(params, "limit")
	if err != nil {
		return common.FailureFrom(err)
	}
	if limit < 3 {
		return common.FailureFrom(numerr.Invalid("limit must be >= 3 to contain a prime gap"))
	}

	return s.Compute(ctx, func() (map[string]interface{}, error) {
		primes, err := s.Checker.GeneratePrimeList(limit)
		if err != nil {
			return nil, err
		}
		return GapSummary(primes, limit), nil
	})
}

// GapSummary computes gap statistics for an ascending prime list of length >= 2
func GapSummary(primes []int64, limit int64) map[string]interface{} {
	gaps := make([]float64, len(primes)-1)
	twins := 0
	maxAt := 0
	for i := 1; i < len(primes); i++ {
		g := primes[i] - primes[i-1]
		gaps[i-1] = float64(g)
		if g == 2 {
			twins++
		}
		if gaps[i-1] > gaps[maxAt] {
			maxAt = i - 1
		}
	}

	mean, variance := stat.MeanVariance(gaps, nil)
	if len(gaps) < 2 {
		variance = 0
	}

	sorted := append([]float64(nil), gaps...)
	sort.Float64s(sorted)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	count := float64(len(primes))
	pnt := float64(limit) / gomath.Log(float64(limit))

	return map[string]interface{}{
		"limit":         limit,
		"prime_count":   len(primes),
		"gap_count":     len(gaps),
		"mean_gap":      mean,
		"variance":      variance,
		"std_dev":       gomath.Sqrt(variance),
		"median_gap":    median,
		"max_gap":       int64(floats.Max(gaps)),
		"max_gap_after": primes[maxAt],
		"twin_pairs":    twins,
		"density":       count / float64(limit),
		"pnt_ratio":     count / pnt,
	}
}
