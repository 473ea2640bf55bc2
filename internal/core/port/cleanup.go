package port

import (
	"context"
	"time"
)

// CleanupService is an interface to define the stale partial-file sweeper
type CleanupService interface {
	CleanupStalePartials(ctx context.Context, olderThan time.Time) error
}
