package recording

import (
	"context"
	"io"
)

// AppendChunk appends the uploaded bytes to the session's partial file and
// returns the new total size of the partial file.
func (s *recordingService) AppendChunk(ctx context.Context, sessionID string, body io.Reader) (int64, error) {
	return s.store.AppendChunk(ctx, sessionID, body)
}
