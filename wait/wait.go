// wait/wait.go

// Package wait implements the polling evaluator underneath every element
// resolution and state-convergence check: call a predicate repeatedly until
// it settles, or a timeout elapses. Waits are synchronous sleep-and-repoll
// loops on the calling goroutine.
package wait

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultPollInterval is used when a caller supplies a non-positive interval.
const DefaultPollInterval = 500 * time.Millisecond

// Predicate is a single evaluation of a condition. Returning an error means
// "not satisfied yet" and the evaluator keeps polling, unless the error is
// wrapped with Abort, which stops the wait immediately.
type Predicate func(ctx context.Context) (bool, error)

// ConditionError reports a predicate that never settled within its timeout.
// Last carries the most recent transient error the predicate produced, when
// there was one.
type ConditionError struct {
	Timeout time.Duration
	Last    error
}

func (e *ConditionError) Error() string {
	msg := fmt.Sprintf("condition not met within %s", e.Timeout)
	if e.Last != nil {
		msg += ": " + e.Last.Error()
	}
	return msg
}

func (e *ConditionError) Unwrap() error { return e.Last }

// IsConditionNotMet reports whether err is a wait timeout, as opposed to an
// aborted predicate or a cancelled context. Callers use this to tell "the
// state never converged" apart from "the underlying element was the problem".
func IsConditionNotMet(err error) bool {
	var ce *ConditionError
	return errors.As(err, &ce)
}

type abortError struct{ err error }

func (e *abortError) Error() string { return e.err.Error() }
func (e *abortError) Unwrap() error { return e.err }

// Abort marks a predicate error as fatal: the wait stops immediately and the
// wrapped error is returned as-is instead of being treated as "not yet". Used
// when the absence of the underlying element, rather than a state mismatch,
// is itself the failure worth surfacing.
func Abort(err error) error {
	if err == nil {
		return nil
	}
	return &abortError{err: err}
}

// UntilTrue polls pred at the given interval until it returns true, the
// timeout elapses, or ctx is cancelled. A timeout of zero means a single
// immediate evaluation with no polling loop.
func UntilTrue(ctx context.Context, pred Predicate, timeout, poll time.Duration) error {
	return until(ctx, pred, timeout, poll, true)
}

// UntilFalse is the negated variant: it polls until pred returns false.
// Predicate errors still count as "not settled", matching UntilTrue.
func UntilFalse(ctx context.Context, pred Predicate, timeout, poll time.Duration) error {
	return until(ctx, pred, timeout, poll, false)
}

func until(ctx context.Context, pred Predicate, timeout, poll time.Duration, want bool) error {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	deadline := time.Now().Add(timeout)
	var last error
	for {
		ok, err := pred(ctx)
		if err != nil {
			var ab *abortError
			if errors.As(err, &ab) {
				return ab.err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			last = err
		} else if ok == want {
			return nil
		}
		// One evaluation always runs after the deadline passes, so a
		// condition satisfied at exactly the timeout boundary is still
		// observed. A zero timeout never sleeps.
		if timeout <= 0 || !time.Now().Before(deadline) {
			return &ConditionError{Timeout: timeout, Last: last}
		}
		select {
		case <-time.After(poll):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
