package port

import (
	"context"
	"io"
	"screencast/internal/core/domain"
	"time"
)

// LibraryService is an interface to define the read path over stored
// artifacts: listings, latest selection and streaming
type LibraryService interface {
	ListVideos(ctx context.Context) ([]domain.VideoEntry, error)
	LatestVideo(ctx context.Context) (*domain.VideoEntry, error)
	LatestSnapshot(ctx context.Context) (string, error)
	OpenArtifact(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error)
}
