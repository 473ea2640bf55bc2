package library

import (
	"context"
	"screencast/internal/core/domain"
)

// ListVideos returns all stored video artifacts sorted by descending
// modification time.
func (l *libraryService) ListVideos(ctx context.Context) ([]domain.VideoEntry, error) {
	return l.store.ListVideos(ctx)
}
