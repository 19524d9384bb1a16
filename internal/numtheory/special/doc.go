// Package special answers questions about named families of integers:
// emirps, twin primes, abundant, perfect and deficient numbers, narcissistic,
// strong, happy, amicable, friendly and square numbers. Each predicate is
// built from a primality.Oracle, a factorization.Engine and digit or divisor
// arithmetic.
//
// A strong number is one whose decimal digits' factorials sum to the number
// itself, e.g. 145 = 1! + 4! + 5!.
//
// List generators return ascending []int64 values in [0, limit] and refuse
// limits above the Checker's list limit with numerr.ErrOutOfRange.
package special
