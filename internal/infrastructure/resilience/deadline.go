package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDeadline is returned when a computation is abandoned because its
// deadline passed or its context was cancelled.
var ErrDeadline = errors.New("computation abandoned")

type outcome[T any] struct {
	value T
	err   error
	panic interface{}
}

// RunWithDeadline runs fn on a worker goroutine and waits for it, for ctx to
// be done, or for timeout to elapse, whichever comes first. A timeout <= 0
// only honours ctx.
//
// fn cannot be interrupted. When the wait is abandoned fn keeps running until
// it returns and its result is dropped; the worker never blocks on send.
// A panic in fn is re-raised on the caller's goroutine.
func RunWithDeadline[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	return RunWithDeadlineContext(ctx, timeout, func(context.Context) (T, error) {
		return fn()
	})
}

// RunWithDeadlineContext is RunWithDeadline for work that can stop early.
// fn receives the deadline context, which is done as soon as the caller
// stops waiting.
func RunWithDeadlineContext[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDeadline, err)
	}

	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		var out outcome[T]
		defer func() {
			if r := recover(); r != nil {
				out.panic = r
			}
			done <- out
		}()
		out.value, out.err = fn(ctx)
	}()

	select {
	case out := <-done:
		if out.panic != nil {
			panic(out.panic)
		}
		return out.value, out.err
	case <-ctx.Done():
		return zero, fmt.Errorf("%w: %w", ErrDeadline, ctx.Err())
	}
}
