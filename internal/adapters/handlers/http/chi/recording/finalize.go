package recording

import (
	"errors"
	"net/http"
	"screencast/internal/core/domain"
	"time"

	"github.com/go-chi/chi/v5"
)

// FinalizeResponse is the response to a finalize request. MP4 is omitted when
// no transcoded artifact exists.
type FinalizeResponse struct {
	OK   bool      `json:"ok"`
	WebM string    `json:"webm"`
	MP4  string    `json:"mp4,omitempty"`
	At   time.Time `json:"at"`
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Finalize settles the session's recording and reports the resulting
// artifact names.
func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	result, err := h.recordingService.Finalize(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrRecordingNotFound):
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no recording"})
		return
	case err != nil:
		h.logger.Error("error finalizing recording", "session", sessionID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusOK, FinalizeResponse{
			OK:   true,
			WebM: result.WebM,
			MP4:  result.MP4,
			At:   result.At,
		})
	}
}
