package library

import (
	"net/http"
	"screencast/internal/core/domain"
	"time"
)

// StatusResponse lists every stored video artifact plus the current server
// time
type StatusResponse struct {
	OK         bool                `json:"ok"`
	Videos     []domain.VideoEntry `json:"videos"`
	ServerTime time.Time           `json:"server_time"`
}

// Status returns the stored video listing, newest first.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {

	videos, err := h.libraryService.ListVideos(r.Context())
	if err != nil {
		h.logger.Error("error listing videos", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, StatusResponse{
		OK:         true,
		Videos:     videos,
		ServerTime: time.Now().UTC().Truncate(time.Second),
	})
}
