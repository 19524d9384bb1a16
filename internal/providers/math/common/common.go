package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/primecore/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/primecore/internal/numtheory/factorization"
	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/numtheory/primality"
	"github.com/GriffinCanCode/primecore/internal/numtheory/special"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// KindTimeout labels results abandoned at the host deadline.
const KindTimeout = "timeout"

// SlowFactorization is the duration above which a factorization is logged.
const SlowFactorization = time.Second

// maxExactFloat is the largest magnitude at which every integer is a float64.
const maxExactFloat = 1 << 53

// Observer receives telemetry from tool execution.
type Observer interface {
	ObserveTool(toolID string, elapsed time.Duration, errorKind string)
	ObserveFactorization(stats factorization.Stats, elapsed time.Duration, errorKind string)
}

type nopObserver struct{}

func (nopObserver) ObserveTool(string, time.Duration, string)                       {}
func (nopObserver) ObserveFactorization(factorization.Stats, time.Duration, string) {}

// Settings configures the shared number theory instances.
type Settings struct {
	TrialBound       uint64
	RandomBases      int
	Seed             uint64
	IterationLimit   uint64
	MaxListLimit     int64
	FactorTimeout    time.Duration
	BatchConcurrency int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TrialBound:       factorization.DefaultTrialBound,
		IterationLimit:   200_000_000,
		MaxListLimit:     special.DefaultMaxListLimit,
		FactorTimeout:    30 * time.Second,
		BatchConcurrency: 8,
	}
}

// MathOps holds the state shared by every math tool module.
type MathOps struct {
	Oracle           *primality.Oracle
	Engine           *factorization.Engine
	Checker          *special.Checker
	Logger           *zap.Logger
	Observer         Observer
	FactorTimeout    time.Duration
	BatchConcurrency int
}

// NewMathOps builds the oracle, engine and checker described by s.
// A nil logger or observer is replaced by a no-op.
func NewMathOps(s Settings, logger *zap.Logger, observer Observer) *MathOps {
	if logger == nil {
		logger = zap.NewNop()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if s.BatchConcurrency <= 0 {
		s.BatchConcurrency = 1
	}

	var oracleOpts []primality.Option
	if s.RandomBases > 0 {
		oracleOpts = append(oracleOpts, primality.WithRandomBases(s.RandomBases, s.Seed))
	}
	oracle := primality.NewOracle(oracleOpts...)

	engineOpts := []factorization.Option{
		factorization.WithOracle(oracle),
		factorization.WithTrialBound(s.TrialBound),
		factorization.WithSeed(s.Seed),
	}
	if s.IterationLimit > 0 {
		engineOpts = append(engineOpts, factorization.WithIterationLimit(s.IterationLimit))
	}
	engine := factorization.NewEngine(engineOpts...)

	return &MathOps{
		Oracle:           oracle,
		Engine:           engine,
		Checker:          special.New(special.WithEngine(engine), special.WithMaxListLimit(s.MaxListLimit)),
		Logger:           logger,
		Observer:         observer,
		FactorTimeout:    s.FactorTimeout,
		BatchConcurrency: s.BatchConcurrency,
	}
}

// Compute runs fn under the factor timeout and wraps its outcome in a Result.
func (m *MathOps) Compute(ctx context.Context, fn func() (map[string]interface{}, error)) (*types.Result, error) {
	data, err := resilience.RunWithDeadline(ctx, m.FactorTimeout, fn)
	if err != nil {
		return FailureFrom(err)
	}
	return Success(data)
}

// ComputeContext is Compute for work that checks the deadline context itself.
func (m *MathOps) ComputeContext(ctx context.Context, fn func(context.Context) (map[string]interface{}, error)) (*types.Result, error) {
	data, err := resilience.RunWithDeadlineContext(ctx, m.FactorTimeout, fn)
	if err != nil {
		return FailureFrom(err)
	}
	return Success(data)
}

// Factor factors n under the factor timeout and reports the work done.
func (m *MathOps) Factor(ctx context.Context, n *big.Int) ([]*big.Int, error) {
	return resilience.RunWithDeadline(ctx, m.FactorTimeout, func() ([]*big.Int, error) {
		return m.Observed().PrimeFactors(n)
	})
}

// Observed returns a factorer that reports every factorization it runs.
func (m *MathOps) Observed() ObservedFactorer {
	return ObservedFactorer{ops: m}
}

// ObservedFactorer factors with the shared engine and feeds the observer
// and slow-call log. It satisfies divisors.Factorer.
type ObservedFactorer struct {
	ops *MathOps
}

// PrimeFactors factors n and records the statistics of the run.
func (o ObservedFactorer) PrimeFactors(n *big.Int) ([]*big.Int, error) {
	m := o.ops
	start := time.Now()
	factors, st, err := m.Engine.Factorize(n)
	elapsed := time.Since(start)
	kind := ErrorKind(err)

	m.Observer.ObserveFactorization(st, elapsed, kind)
	if elapsed >= SlowFactorization {
		m.Logger.Warn("slow factorization",
			zap.Int("bits", n.BitLen()),
			zap.Duration("elapsed", elapsed),
			zap.Int("rho_splits", st.RhoSplits),
			zap.Int("rho_retries", st.RhoRetries),
			zap.Uint64("iterations", st.Iterations),
			zap.String("error_kind", kind),
		)
	}
	return factors, err
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result of the given kind
func Failure(kind, message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, ErrorKind: kind}, nil
}

// FailureFrom creates a failed result classified from err
func FailureFrom(err error) (*types.Result, error) {
	return Failure(ErrorKind(err), err.Error())
}

// ErrorKind classifies err, adding the timeout kind to the numerr labels.
func ErrorKind(err error) string {
	if errors.Is(err, resilience.ErrDeadline) {
		return KindTimeout
	}
	return numerr.Kind(err)
}

// Int encodes an integer as a JSON number literal
func Int(n *big.Int) json.Number {
	return json.Number(n.String())
}

// Ints encodes integers as JSON number literals
func Ints(ns []*big.Int) []json.Number {
	out := make([]json.Number, len(ns))
	for i, n := range ns {
		out[i] = Int(n)
	}
	return out
}

// GetInteger extracts an arbitrary-precision integer from params.
// Accepted forms are json.Number, decimal strings, Go integer kinds and
// *big.Int. A float is accepted only when it is integral and exact.
func GetInteger(params map[string]interface{}, key string) (*big.Int, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return nil, numerr.Invalid("%s parameter required", key)
	}
	n, err := toInteger(val)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// GetIntegers extracts a list of integers from params
func GetIntegers(params map[string]interface{}, key string) ([]*big.Int, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return nil, numerr.Invalid("%s parameter required", key)
	}

	var items []interface{}
	switch v := val.(type) {
	case []interface{}:
		items = v
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	case []int:
		for _, x := range v {
			items = append(items, x)
		}
	case []int64:
		for _, x := range v {
			items = append(items, x)
		}
	case []*big.Int:
		for _, x := range v {
			items = append(items, x)
		}
	default:
		return nil, numerr.Invalid("%s must be an array of integers", key)
	}

	out := make([]*big.Int, len(items))
	for i, item := range items {
		n, err := toInteger(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out[i] = n
	}
	return out, nil
}

// GetLimit extracts a list limit that must fit in an int64
func GetLimit(params map[string]interface{}, key string) (int64, error) {
	n, err := GetInteger(params, key)
	if err != nil {
		return 0, err
	}
	if n.Sign() < 0 {
		return 0, numerr.Invalid("%s %s must not be negative", key, n)
	}
	if !n.IsInt64() {
		return 0, numerr.OutOfRange("%s %s does not fit in 64 bits", key, n)
	}
	return n.Int64(), nil
}

// GetCount extracts a count that must fit in an int
func GetCount(params map[string]interface{}, key string) (int, error) {
	n, err := GetInteger(params, key)
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() || n.Int64() > math.MaxInt32 || n.Int64() < math.MinInt32 {
		return 0, numerr.OutOfRange("%s %s is too large", key, n)
	}
	return int(n.Int64()), nil
}

// GetBool extracts an optional bool from params, returning def when absent
func GetBool(params map[string]interface{}, key string, def bool) (bool, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return def, nil
	}
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, numerr.Invalid("%s must be a boolean", key)
}

func toInteger(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case json.Number:
		return parseDecimal(string(v))
	case string:
		return parseDecimal(v)
	case *big.Int:
		if v == nil {
			return nil, numerr.Invalid("nil integer")
		}
		return new(big.Int).Set(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	default:
		return nil, numerr.Invalid("expected an integer, got %T", val)
	}
}

func parseDecimal(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, numerr.Invalid("%q is not a decimal integer", s)
	}
	return n, nil
}

func fromFloat(v float64) (*big.Int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return nil, numerr.Invalid("%v is not an integer", v)
	}
	if math.Abs(v) > maxExactFloat {
		return nil, numerr.Invalid("%v exceeds 2^53; pass large integers as strings", v)
	}
	return big.NewInt(int64(v)), nil
}

// Predicate evaluates a single-integer predicate on params["n"]
func (m *MathOps) Predicate(ctx context.Context, params map[string]interface{}, fn func(*big.Int) (bool, error)) (*types.Result, error) {
	n, err := GetInteger(params, "n")
	if err != nil {
		return FailureFrom(err)
	}
	return m.Compute(ctx, func() (map[string]interface{}, error) {
		ok, err := fn(n)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"n": Int(n), "result": ok}, nil
	})
}

// List generates a bounded list from params["limit"]
func (m *MathOps) List(ctx context.Context, params map[string]interface{}, fn func(int64) ([]int64, error)) (*types.Result, error) {
	limit, err := GetLimit(params, "limit")
	if err != nil {
		return FailureFrom(err)
	}
	return m.Compute(ctx, func() (map[string]interface{}, error) {
		items, err := fn(limit)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"limit": limit, "result": items, "count": len(items)}, nil
	})
}
