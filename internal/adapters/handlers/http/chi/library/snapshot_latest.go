package library

import (
	"errors"
	"net/http"
	"screencast/internal/core/domain"
)

// LatestSnapshot streams the most recently modified snapshot image.
func (h *Handler) LatestSnapshot(w http.ResponseWriter, r *http.Request) {

	filename, err := h.libraryService.LatestSnapshot(r.Context())
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no snapshot"})
		return
	case err != nil:
		h.logger.Error("error picking latest snapshot", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.serveArtifact(w, r, filename)
}
