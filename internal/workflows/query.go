package workflows

import (
	"context"

	kerrors "github.com/PolarWolf314/jpas/internal/errors"
)

// QueryOptions configures the query workflow.
type QueryOptions struct {
	// URL is reserved.
	URL string
}

// Query is reserved and always returns ErrNotImplemented.
func Query(ctx context.Context, opts QueryOptions) error {
	return kerrors.ErrNotImplemented
}
