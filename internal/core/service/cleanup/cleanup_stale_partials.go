package cleanup

import (
	"context"
	"time"
)

// CleanupStalePartials removes partial upload files last written before
// olderThan. Sessions abandoned without a finalize otherwise accumulate
// forever.
func (c *cleanupService) CleanupStalePartials(ctx context.Context, olderThan time.Time) error {
	removed, err := c.store.RemoveStalePartials(ctx, olderThan)
	if err != nil {
		return err
	}

	if removed > 0 {
		c.logger.Info("removed stale partial uploads", "count", removed)
	}
	return nil
}
