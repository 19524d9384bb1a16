// Package main is the entry point for primectl.
//
// Usage:
//
//	primectl is-prime 18446744073709551629
//	primectl factor 600851475143 --output json
//	primectl primes 100 -o yaml
//	primectl exec math.isHappy n=19
//
//	# Against a running server
//	primectl --remote http://localhost:8000 factor 10403
package main
