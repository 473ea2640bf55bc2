package library

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"screencast/internal/core/port"
)

// Handler is the handler for artifact read routes
type Handler struct {
	libraryService port.LibraryService
	logger         *slog.Logger
}

// NewLibraryHandler creates Handler
func NewLibraryHandler(service port.LibraryService, logger *slog.Logger) *Handler {
	return &Handler{
		libraryService: service,
		logger:         logger,
	}
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
