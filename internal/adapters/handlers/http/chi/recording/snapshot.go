package recording

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// SnapshotResponse is the response to a snapshot upload
type SnapshotResponse struct {
	OK   bool      `json:"ok"`
	At   time.Time `json:"at"`
	File string    `json:"file"`
}

// Snapshot overwrites the session's snapshot image with the request body.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	filename, at, err := h.recordingService.SaveSnapshot(r.Context(), sessionID, r.Body)
	if err != nil {
		h.logger.Error("error saving snapshot", "session", sessionID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, SnapshotResponse{OK: true, At: at, File: filename})
}
