package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"screencast/internal/adapters/handlers/http/chi/library"
	"screencast/internal/adapters/handlers/http/chi/recording"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi. CORS is wide open on every route:
// the capture page and the game-server consumers call from other origins.
// There is deliberately no request timeout; finalize blocks for as long as
// the external transcoder runs.
func NewRouter(logger *slog.Logger, recordingHandler *recording.Handler, libraryHandler *library.Handler) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Chunk-Seq", "X-Request-ID"},
		ExposedHeaders: []string{"X-Received-Bytes"},
		MaxAge:         300,
	}))

	r.Get("/", libraryHandler.Index)
	r.Post("/upload/{sessionID}", recordingHandler.UploadChunk)
	r.Post("/snapshot/{sessionID}", recordingHandler.Snapshot)
	r.Post("/finalize/{sessionID}", recordingHandler.Finalize)
	r.Get("/snapshot/latest", libraryHandler.LatestSnapshot)
	r.Get("/status", libraryHandler.Status)
	r.Get("/latest", libraryHandler.LatestVideo)
	r.Get("/video/{filename}", libraryHandler.Video)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			OK:   true,
			Time: time.Now().UTC().Truncate(time.Second),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}
