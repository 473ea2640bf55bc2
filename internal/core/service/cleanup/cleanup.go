package cleanup

import (
	"log/slog"
	"screencast/internal/core/port"
)

type cleanupService struct {
	store  port.ArtifactStore
	logger *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(store port.ArtifactStore, logger *slog.Logger) port.CleanupService {
	return &cleanupService{store: store, logger: logger}
}
