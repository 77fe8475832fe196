package ratessaver

import "context"

type (
	Service interface {
		Save(ctx context.Context, url string) error
	}
)
