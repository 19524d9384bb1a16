/*
Package tracing provides lightweight request tracing.

Spans carry ULID-based trace and span IDs, propagate through context and
the X-Trace-ID / X-Span-ID headers, and are logged by a collector goroutine
when submitted. The gin middleware opens one span per request; the service
execute handler opens a child span per tool call; the remote CLI client
injects the headers so server spans join the caller's trace.

# Usage

	tracer := tracing.New("primecore", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "tool math.primeFactors")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
