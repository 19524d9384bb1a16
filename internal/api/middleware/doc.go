// Package middleware provides the gin middleware of the primecore API:
// CORS, per-IP and global rate limiting with golang.org/x/time/rate, and
// structured access logging.
package middleware
