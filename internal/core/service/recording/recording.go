package recording

import (
	"log/slog"
	"screencast/internal/core/port"
)

type recordingService struct {
	store      port.ArtifactStore
	transcoder port.Transcoder
	archiver   port.ArtifactArchiver
	publisher  port.EventPublisher
	logger     *slog.Logger
}

// NewRecordingService creates a new recording service. archiver and publisher
// are optional; pass nil to disable archiving and event publishing.
func NewRecordingService(store port.ArtifactStore, transcoder port.Transcoder, archiver port.ArtifactArchiver, publisher port.EventPublisher, logger *slog.Logger) port.RecordingService {
	return &recordingService{
		store:      store,
		transcoder: transcoder,
		archiver:   archiver,
		publisher:  publisher,
		logger:     logger,
	}
}
