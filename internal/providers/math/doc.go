// Package math provides the number theory service for the primecore backend.
//
// The service is organized into modules that share one common.MathOps:
//   - operations: primality, factorization, prime lists, divisors, gcd/lcm
//   - advanced: abundant, perfect, narcissistic, strong, happy and other special numbers
//   - statistics: prime gap statistics built on gonum
//   - utilities: Fibonacci, rule sequences and digit utilities
//
// Every tool parses integers strictly (see common.GetInteger), runs under the
// configured factor timeout and reports failures as a Result with an
// ErrorKind instead of a Go error.
//
// Example Usage:
//
//	provider := math.NewProvider(common.NewMathOps(common.DefaultSettings(), logger, metrics))
//	result, err := provider.Execute(ctx, "math.primeFactors", map[string]interface{}{"n": "360"}, nil)
package math
