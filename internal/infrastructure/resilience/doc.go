/*
Package resilience bounds how long and how often callers wait on work they
do not control.

# Deadlines

RunWithDeadline runs a computation that cannot be interrupted, such as a
factorization, on a worker goroutine and returns as soon as the context or
timeout expires. The abandoned worker finishes in the background and its
result is dropped.

	factors, err := resilience.RunWithDeadline(ctx, 30*time.Second, func() ([]*big.Int, error) {
		return engine.PrimeFactors(n)
	})
	if errors.Is(err, resilience.ErrDeadline) {
		// report a timeout
	}

# Circuit breaker

Breaker protects a client from a remote that keeps failing. After Threshold
consecutive failures it opens and rejects calls with ErrCircuitOpen; after
Cooldown it lets Trials calls through and closes again if they succeed.

	Closed --[failures]-> Open --[cooldown]-> Half-Open --[trials ok]-> Closed
	                                              |
	                                          [failure]
	                                              v
	                                            Open
*/
package resilience
