package library

import (
	"errors"
	"net/http"
	"screencast/internal/core/domain"
)

// LatestVideo streams the preferred most-recent video artifact.
func (h *Handler) LatestVideo(w http.ResponseWriter, r *http.Request) {

	entry, err := h.libraryService.LatestVideo(r.Context())
	switch {
	case errors.Is(err, domain.ErrArtifactNotFound):
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no videos yet"})
		return
	case err != nil:
		h.logger.Error("error picking latest video", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.serveArtifact(w, r, entry.Filename)
}
