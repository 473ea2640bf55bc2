package library

import (
	"errors"
	"net/http"
	"screencast/internal/core/domain"
	"strings"

	"github.com/go-chi/chi/v5"
)

// serveArtifact streams a stored artifact by exact filename. Content type is
// derived from the extension; the listing never caches, so neither do
// downloads.
func (h *Handler) serveArtifact(w http.ResponseWriter, r *http.Request, filename string) {

	rsc, modTime, err := h.libraryService.OpenArtifact(r.Context(), filename)
	switch {
	case errors.Is(err, domain.ErrArtifactNotFound):
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	case err != nil:
		h.logger.Error("error opening artifact", "file", filename, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer rsc.Close()

	w.Header().Set("Content-Type", contentTypeFor(filename))
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, filename, modTime, rsc)
}

func contentTypeFor(filename string) string {
	switch {
	case strings.HasSuffix(filename, domain.KindTranscoded.Ext()):
		return "video/mp4"
	case strings.HasSuffix(filename, domain.KindRaw.Ext()):
		return "video/webm"
	case strings.HasSuffix(filename, domain.KindSnapshot.Ext()):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// Video streams an exact named artifact.
func (h *Handler) Video(w http.ResponseWriter, r *http.Request) {

	filename := chi.URLParam(r, "filename")
	if filename == "" {
		http.Error(w, "filename is required", http.StatusBadRequest)
		return
	}

	h.serveArtifact(w, r, filename)
}
