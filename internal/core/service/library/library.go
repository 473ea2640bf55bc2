package library

import (
	"log/slog"
	"screencast/internal/core/port"
)

type libraryService struct {
	store  port.ArtifactStore
	logger *slog.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(store port.ArtifactStore, logger *slog.Logger) port.LibraryService {
	return &libraryService{store: store, logger: logger}
}
