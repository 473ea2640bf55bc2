package port

import (
	"context"
	"io"
	"screencast/internal/core/domain"
	"time"
)

// ArtifactStore is an interface to define artifact storage interactions.
// Implementations provide whatever append/rename atomicity the underlying
// storage offers; no ordering is enforced between concurrent writers of the
// same session.
type ArtifactStore interface {
	AppendChunk(ctx context.Context, sessionID string, body io.Reader) (int64, error)
	WriteSnapshot(ctx context.Context, sessionID string, body io.Reader) (string, error)
	Promote(ctx context.Context, sessionID string) error
	Exists(ctx context.Context, sessionID string, kind domain.ArtifactKind) (bool, error)
	ListVideos(ctx context.Context) ([]domain.VideoEntry, error)
	LatestSnapshot(ctx context.Context) (string, error)
	Open(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error)
	Path(sessionID string, kind domain.ArtifactKind) string
	RemoveStalePartials(ctx context.Context, olderThan time.Time) (int, error)
}
