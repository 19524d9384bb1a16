// Package common holds the state and helpers shared by the math tool modules.
//
// MathOps carries one oracle, engine and checker built from Settings, so
// every tool sees the same trial bound, seed and list limit. Parameter
// helpers parse integers strictly into *big.Int: json.Number and decimal
// strings keep every digit, and a float is only accepted when it is an
// exact integer. Results carry integers back as json.Number literals.
//
// Failures are returned as Result values rather than Go errors. ErrorKind
// maps the numerr sentinels to invalid_input, domain and out_of_range, and
// an expired host deadline to timeout.
//
// Example Usage:
//
//	ops := common.NewMathOps(common.DefaultSettings(), logger, metrics)
//	n, err := common.GetInteger(params, "n")
//	if err != nil {
//	    return common.FailureFrom(err)
//	}
package common
