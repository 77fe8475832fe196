package services

import (
	"context"

	ratesSaver "github.com/icmx/rates-saver"
	"github.com/icmx/rates-saver/metrics"
	"github.com/icmx/rates-saver/scheduler"
)

const DefaultConcurrency = 4

type (
	// SaveService drives one endpoint end to end: fetch a snapshot, render
	// it to per-currency lines, and write every line through the sink with
	// bounded parallelism. Append-vs-overwrite semantics belong to the
	// injected Sink, not to the service.
	SaveService struct {
		Fetcher     ratesSaver.Fetcher
		Sink        ratesSaver.Sink
		PathFor     ratesSaver.PathResolver
		Quotes      []string
		Concurrency int
		Metrics     *metrics.Metrics
	}

	// writeTask carries one resolved path and line to the sink. One value
	// per currency instead of a capturing closure.
	writeTask struct {
		path    string
		line    string
		sink    ratesSaver.Sink
		metrics *metrics.Metrics
	}
)

func (t writeTask) Run(ctx context.Context) error {
	if err := t.sink.Write(t.path, t.line); err != nil {
		t.metrics.WriteFailure()
		return err
	}

	t.metrics.LineWritten()

	return nil
}

func (s SaveService) Save(ctx context.Context, url string) error {
	snapshot, err := s.Fetcher.Fetch(ctx, url)

	if err != nil {
		return err
	}

	lines := ToLines(snapshot, s.Quotes)
	tasks := make([]scheduler.Task, 0, len(lines))

	for _, line := range lines {
		tasks = append(tasks, writeTask{
			path:    s.PathFor(line.Currency),
			line:    line.Line,
			sink:    s.Sink,
			metrics: s.Metrics,
		})
	}

	_, err = scheduler.Run(ctx, tasks, s.concurrency())

	return err
}

func (s SaveService) concurrency() int {
	if s.Concurrency < 1 {
		return DefaultConcurrency
	}

	return s.Concurrency
}
