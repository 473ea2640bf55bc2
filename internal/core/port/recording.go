package port

import (
	"context"
	"io"
	"screencast/internal/core/domain"
	"time"
)

// RecordingService is an interface to define the recording write path:
// chunk uploads, snapshot uploads and finalization
type RecordingService interface {
	AppendChunk(ctx context.Context, sessionID string, body io.Reader) (int64, error)
	SaveSnapshot(ctx context.Context, sessionID string, body io.Reader) (string, time.Time, error)
	Finalize(ctx context.Context, sessionID string) (*domain.FinalizeResult, error)
}
