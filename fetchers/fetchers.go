package fetchers

import (
	"errors"
	"time"
)

var (
	ErrNegativeRetries  = errors.New("max retries must not be negative")
	ErrNoAttemptTimeout = errors.New("attempt timeout must be positive")
	ErrNegativeBackoff  = errors.New("backoff delay must not be negative")
)

type (
	// RetryPolicy bounds the retry loop of a fetcher. MaxRetries counts
	// retries, not attempts: a policy with MaxRetries 2 performs up to
	// three attempts. AttemptTimeout deadlines a single attempt; the
	// backoff pause between attempts is not counted against it.
	RetryPolicy struct {
		MaxRetries     int
		AttemptTimeout time.Duration
		BackoffDelay   time.Duration
	}
)

func (p RetryPolicy) validate() error {
	if p.MaxRetries < 0 {
		return ErrNegativeRetries
	}

	if p.AttemptTimeout <= 0 {
		return ErrNoAttemptTimeout
	}

	if p.BackoffDelay < 0 {
		return ErrNegativeBackoff
	}

	return nil
}
