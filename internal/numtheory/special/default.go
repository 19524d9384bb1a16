package special

import (
	"math/big"
	"sync"
)

var (
	defaultOnce    sync.Once
	defaultChecker *Checker
)

// Default returns the shared Checker built on the default engine.
func Default() *Checker {
	defaultOnce.Do(func() {
		defaultChecker = New()
	})
	return defaultChecker
}

// IsEmirp reports whether n is an emirp using the default Checker.
func IsEmirp(n *big.Int) (bool, error) { return Default().IsEmirp(n) }

// IsTwinPrime reports whether n is a twin prime using the default Checker.
func IsTwinPrime(n *big.Int) (bool, error) { return Default().IsTwinPrime(n) }

// GreatestCommonPrimeDivisor uses the default Checker.
func GreatestCommonPrimeDivisor(a, b *big.Int) (*big.Int, error) {
	return Default().GreatestCommonPrimeDivisor(a, b)
}

// GeneratePrimeList uses the default Checker.
func GeneratePrimeList(limit int64) ([]int64, error) { return Default().GeneratePrimeList(limit) }

// GenerateEmirpList uses the default Checker.
func GenerateEmirpList(limit int64) ([]int64, error) { return Default().GenerateEmirpList(limit) }

// GenerateTwinPrimeList uses the default Checker.
func GenerateTwinPrimeList(limit int64) ([]int64, error) {
	return Default().GenerateTwinPrimeList(limit)
}
