package recording

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"screencast/internal/core/port"
)

// Handler is the handler for recording write routes
type Handler struct {
	recordingService port.RecordingService
	logger           *slog.Logger
}

// NewRecordingHandler creates Handler
func NewRecordingHandler(service port.RecordingService, logger *slog.Logger) *Handler {
	return &Handler{
		recordingService: service,
		logger:           logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
