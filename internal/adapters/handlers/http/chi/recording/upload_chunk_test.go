package recording_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"screencast/internal/adapters/handlers/http/chi"
	library2 "screencast/internal/adapters/handlers/http/chi/library"
	recording2 "screencast/internal/adapters/handlers/http/chi/recording"
	"screencast/internal/core/service/library"
	"screencast/internal/core/service/recording"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRouter(recordingService *recording.MockRecordingService) http2.Handler {
	recordingHandler := recording2.NewRecordingHandler(recordingService, discardLogger)
	libraryHandler := library2.NewLibraryHandler(library.NewMockLibraryService(), discardLogger)
	return chi.NewRouter(discardLogger, recordingHandler, libraryHandler)
}

func TestUploadChunk(t *testing.T) {

	t.Run("success - returns running total", func(t *testing.T) {
		// Arrange
		sessionID := uuid.NewString()
		mockService := recording.NewMockRecordingService()
		mockService.On("AppendChunk", mock.Anything, sessionID, mock.Anything).Return(int64(4096), nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/upload/"+sessionID, bytes.NewReader([]byte("chunk")))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		assert.Equal(t, "4096", w.Header().Get("X-Received-Bytes"))

		var response recording2.UploadChunkResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.True(t, response.OK)
		assert.Equal(t, int64(4096), response.Size)

		mockService.AssertExpectations(t)
	})

	t.Run("error - store failure", func(t *testing.T) {
		// Arrange
		mockService := recording.NewMockRecordingService()
		mockService.On("AppendChunk", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), errors.New("disk full"))

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/upload/"+uuid.NewString(), bytes.NewReader([]byte("chunk")))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusInternalServerError, w.Code)
	})
}
