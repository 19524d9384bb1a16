// Package primality decides whether an integer is prime.
//
// The test is layered:
//
//	QuickFilter  parity, divisibility by 3 and perfect squares, O(1) plus one isqrt
//	Oracle       Miller-Rabin over a witness base set chosen by bit length
//
// Witness base tiers:
//
//	<= 32 bits   {2, 7, 61}                                   deterministic
//	<= 64 bits   {2, 325, 9375, 28178, 450775, 9780504, 1795265022} deterministic
//	<= 81 bits   the first 13 primes (2..41)                  deterministic
//	>  81 bits   the first 15 primes (2..47)                  probabilistic
//
// Operands that fit in a uint64 use a word-sized back-end (modernc.org/mathutil
// for modular exponentiation and square roots, math/bits for 128-bit products);
// larger operands use math/big. Both back-ends answer identically.
//
// An Oracle carries no mutable state and is safe for concurrent use. Extra
// random witnesses for the probabilistic tier are drawn from a PRNG built per
// call from an injected seed and the operand, so answers are reproducible.
//
// Example:
//
//	ok, err := primality.IsPrime(big.NewInt(97))
package primality
