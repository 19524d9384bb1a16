// Package numerr defines the error taxonomy shared by the number theory packages.
//
// Every error returned by primality, factorization, divisors, special and
// sequences wraps exactly one of the sentinels below, so callers classify
// failures with errors.Is instead of inspecting messages.
package numerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a value has the wrong shape, e.g. a nil
	// integer or a non-integral parameter.
	ErrInvalidInput = errors.New("numtheory: invalid input")

	// ErrDomain is returned when an integer lies outside the domain of the
	// function, e.g. a negative number passed to a primality test.
	ErrDomain = errors.New("numtheory: value outside domain")

	// ErrOutOfRange is returned when a bounded search or allocation limit is
	// exhausted before a result is found.
	ErrOutOfRange = errors.New("numtheory: out of range")
)

// Kind labels used in results and metrics.
const (
	KindInvalidInput = "invalid_input"
	KindDomain       = "domain"
	KindOutOfRange   = "out_of_range"
	KindInternal     = "internal"
)

// Invalid wraps ErrInvalidInput with a formatted message.
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// Domain wraps ErrDomain with a formatted message.
func Domain(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDomain)
}

// OutOfRange wraps ErrOutOfRange with a formatted message.
func OutOfRange(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}

// Kind classifies err into one of the Kind* labels. A nil error has no kind.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrDomain):
		return KindDomain
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	default:
		return KindInternal
	}
}
