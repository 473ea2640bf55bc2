package library

import (
	"context"
	"io"
	"time"
)

// OpenArtifact opens an exact named artifact for streaming.
func (l *libraryService) OpenArtifact(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error) {
	return l.store.Open(ctx, filename)
}
