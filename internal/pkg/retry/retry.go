// Package retry wraps domain-service calls in a bounded retry policy.
// Only faults are retried; sentinel outcomes such as "not found" are ordinary
// return values and pass straight through.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const DefaultMaxRetries = 3

// Policy controls how a call is re-executed after a failure.
type Policy struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries uint64

	// Interval is the pause between attempts. Zero means retry immediately.
	Interval time.Duration

	// Retryable reports whether an error should be retried. A nil predicate
	// retries every error.
	Retryable func(error) bool
}

func DefaultPolicy(retryable func(error) bool) Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		Retryable:  retryable,
	}
}

// Do runs op, re-invoking it on retryable errors until the policy is
// exhausted. The last failure is returned once the attempts run out.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Interval), p.MaxRetries),
		ctx,
	)

	return backoff.RetryNotifyWithData(
		func() (T, error) {
			v, err := op(ctx)
			if err != nil && p.Retryable != nil && !p.Retryable(err) {
				return v, backoff.Permanent(err)
			}

			return v, err
		},
		b,
		func(err error, next time.Duration) {
			zap.L().Warn("retrying after transient failure",
				zap.Duration("next_attempt_in", next),
				zap.Error(err),
			)
		},
	)
}
