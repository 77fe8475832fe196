package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	ratesSaver "github.com/icmx/rates-saver"
	"github.com/icmx/rates-saver/metrics"
)

type (
	HTTPFetcher struct {
		policy  RetryPolicy
		client  *http.Client
		logger  *log.Logger
		metrics *metrics.Metrics
	}
)

// NewHTTPFetcher builds a fetcher that retries failed attempts according to
// policy. A nil client falls back to http.DefaultClient; a nil logger
// silences retry notices; nil metrics record nothing.
func NewHTTPFetcher(policy RetryPolicy, client *http.Client, logger *log.Logger, metrics *metrics.Metrics) (*HTTPFetcher, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	if client == nil {
		client = http.DefaultClient
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &HTTPFetcher{
		policy:  policy,
		client:  client,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Fetch performs one logical GET of url, retrying on any attempt failure
// (network error, non-2xx status, timeout, undecodable body) with a fixed
// pause between attempts. After the final attempt the last failure is
// returned as is.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (ratesSaver.Snapshot, error) {
	attempts := f.policy.MaxRetries + 1

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		f.metrics.FetchAttempt()

		snapshot, err := f.fetchOnce(ctx, url)

		if err == nil {
			return snapshot, nil
		}

		lastErr = err

		if attempt == attempts {
			break
		}

		f.metrics.FetchRetry()
		f.logger.Printf("attempt %d of %d failed for %s: %v, retrying in %s", attempt, attempts, url, err, f.policy.BackoffDelay)

		select {
		case <-time.After(f.policy.BackoffDelay):
		case <-ctx.Done():
			return ratesSaver.Snapshot{}, ctx.Err()
		}
	}

	return ratesSaver.Snapshot{}, lastErr
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string) (ratesSaver.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, f.policy.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return ratesSaver.Snapshot{}, err
	}

	req.Header.Add("Accept", "application/json")

	res, err := f.client.Do(req)

	if err != nil {
		return ratesSaver.Snapshot{}, err
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return ratesSaver.Snapshot{}, fmt.Errorf("unexpected status %d %s fetching %s", res.StatusCode, http.StatusText(res.StatusCode), url)
	}

	var snapshot ratesSaver.Snapshot

	if err := json.NewDecoder(res.Body).Decode(&snapshot); err != nil {
		return ratesSaver.Snapshot{}, err
	}

	return snapshot, nil
}
