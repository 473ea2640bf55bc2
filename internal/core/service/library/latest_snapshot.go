package library

import "context"

// LatestSnapshot returns the filename of the most recently modified snapshot
// image, or ErrSnapshotNotFound when none exists.
func (l *libraryService) LatestSnapshot(ctx context.Context) (string, error) {
	return l.store.LatestSnapshot(ctx)
}
