package recording

import (
	"context"
	"io"
	"time"
)

// SaveSnapshot overwrites the session's snapshot image with the uploaded
// bytes. The previous snapshot, if any, is destroyed.
func (s *recordingService) SaveSnapshot(ctx context.Context, sessionID string, body io.Reader) (string, time.Time, error) {
	filename, err := s.store.WriteSnapshot(ctx, sessionID, body)
	if err != nil {
		return "", time.Time{}, err
	}

	return filename, time.Now().UTC().Truncate(time.Second), nil
}
