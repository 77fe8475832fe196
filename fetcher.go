package ratessaver

import "context"

type (
	Fetcher interface {
		Fetch(ctx context.Context, url string) (Snapshot, error)
	}
)
