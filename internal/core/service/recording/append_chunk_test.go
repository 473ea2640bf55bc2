package recording_test

import (
	"context"
	"errors"
	"screencast/internal/adapters/storage"
	"screencast/internal/adapters/transcoder"
	"screencast/internal/core/service/recording"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordingService_AppendChunk_ReturnsTotal(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	body := strings.NewReader("chunk-bytes")
	mockStore := storage.NewMockArtifactStore()
	service := recording.NewRecordingService(mockStore, transcoder.NewMockTranscoder(), nil, nil, discardLogger)

	mockStore.On("AppendChunk", ctx, sessionID, body).Return(int64(2048), nil)

	// Act
	total, err := service.AppendChunk(ctx, sessionID, body)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2048), total)
	mockStore.AssertExpectations(t)
}

func TestRecordingService_AppendChunk_StoreError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	service := recording.NewRecordingService(mockStore, transcoder.NewMockTranscoder(), nil, nil, discardLogger)

	mockStore.On("AppendChunk", ctx, sessionID, mock.Anything).Return(int64(0), errors.New("disk full"))

	// Act
	total, err := service.AppendChunk(ctx, sessionID, strings.NewReader("x"))

	// Assert
	assert.Error(t, err)
	assert.Zero(t, total)
}
