// Package factorization decomposes integers into their prime factors.
//
// An Engine strips factors of two, trial-divides by a sieved table of odd
// primes up to a configurable bound, and splits whatever composite cofactor
// remains with perfect-power detection and Brent's variant of Pollard's rho.
// Every cofactor is checked with a primality.Oracle before it is split, so
// the returned factors are prime and their product is the input.
//
//	factors, err := factorization.PrimeFactors(big.NewInt(360))
//	// [2 2 2 3 3 5]
package factorization
