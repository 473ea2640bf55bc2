package recording

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// UploadChunkResponse is the response to a chunk upload
type UploadChunkResponse struct {
	OK   bool  `json:"ok"`
	Size int64 `json:"size"`
}

// UploadChunk appends the request body to the session's partial recording.
func (h *Handler) UploadChunk(w http.ResponseWriter, r *http.Request) {

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	total, err := h.recordingService.AppendChunk(r.Context(), sessionID, r.Body)
	if err != nil {
		h.logger.Error("error appending chunk", "session", sessionID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("X-Received-Bytes", strconv.FormatInt(total, 10))
	h.writeJSON(w, http.StatusOK, UploadChunkResponse{OK: true, Size: total})
}
