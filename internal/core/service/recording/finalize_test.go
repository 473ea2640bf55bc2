package recording_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"screencast/internal/adapters/archive"
	"screencast/internal/adapters/eventbroker"
	"screencast/internal/adapters/storage"
	"screencast/internal/adapters/transcoder"
	"screencast/internal/core/domain"
	"screencast/internal/core/service/recording"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRecordingService_Finalize_FreshWithTranscode(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	mockTranscoder := transcoder.NewMockTranscoder()
	service := recording.NewRecordingService(mockStore, mockTranscoder, nil, nil, discardLogger)

	mockStore.On("Exists", ctx, sessionID, domain.KindRaw).Return(false, nil)
	mockStore.On("Exists", ctx, sessionID, domain.KindPartial).Return(true, nil)
	mockStore.On("Promote", ctx, sessionID).Return(nil)
	mockStore.On("Path", sessionID, domain.KindRaw).Return("/videos/" + sessionID + ".webm")
	mockStore.On("Path", sessionID, domain.KindTranscoded).Return("/videos/" + sessionID + ".mp4")
	mockTranscoder.On("Available", ctx).Return(true)
	mockTranscoder.On("Transcode", ctx, "/videos/"+sessionID+".webm", "/videos/"+sessionID+".mp4").Return(nil)

	// Act
	result, err := service.Finalize(ctx, sessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sessionID+".webm", result.WebM)
	assert.Equal(t, sessionID+".mp4", result.MP4)
	assert.False(t, result.At.IsZero())
	mockStore.AssertExpectations(t)
	mockTranscoder.AssertExpectations(t)
}

func TestRecordingService_Finalize_TranscoderUnavailable(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	mockTranscoder := transcoder.NewMockTranscoder()
	service := recording.NewRecordingService(mockStore, mockTranscoder, nil, nil, discardLogger)

	mockStore.On("Exists", ctx, sessionID, domain.KindRaw).Return(false, nil)
	mockStore.On("Exists", ctx, sessionID, domain.KindPartial).Return(true, nil)
	mockStore.On("Promote", ctx, sessionID).Return(nil)
	mockTranscoder.On("Available", ctx).Return(false)

	// Act
	result, err := service.Finalize(ctx, sessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sessionID+".webm", result.WebM)
	assert.Empty(t, result.MP4)
	mockStore.AssertExpectations(t)
	mockTranscoder.AssertNotCalled(t, "Transcode", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordingService_Finalize_TranscodeFailureSwallowed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	mockTranscoder := transcoder.NewMockTranscoder()
	service := recording.NewRecordingService(mockStore, mockTranscoder, nil, nil, discardLogger)

	mockStore.On("Exists", ctx, sessionID, domain.KindRaw).Return(false, nil)
	mockStore.On("Exists", ctx, sessionID, domain.KindPartial).Return(true, nil)
	mockStore.On("Promote", ctx, sessionID).Return(nil)
	mockStore.On("Path", sessionID, mock.Anything).Return("ignored")
	mockTranscoder.On("Available", ctx).Return(true)
	mockTranscoder.On("Transcode", ctx, mock.Anything, mock.Anything).Return(errors.New("exit status 1"))

	// Act
	result, err := service.Finalize(ctx, sessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sessionID+".webm", result.WebM)
	assert.Empty(t, result.MP4)
	mockTranscoder.AssertExpectations(t)
}

func TestRecordingService_Finalize_Idempotent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	mockTranscoder := transcoder.NewMockTranscoder()
	service := recording.NewRecordingService(mockStore, mockTranscoder, nil, nil, discardLogger)

	mockStore.On("Exists", ctx, sessionID, domain.KindRaw).Return(true, nil)
	mockStore.On("Exists", ctx, sessionID, domain.KindTranscoded).Return(true, nil)

	// Act
	result, err := service.Finalize(ctx, sessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sessionID+".webm", result.WebM)
	assert.Equal(t, sessionID+".mp4", result.MP4)
	mockStore.AssertNotCalled(t, "Promote", mock.Anything, mock.Anything)
	mockTranscoder.AssertNotCalled(t, "Available", mock.Anything)
}

func TestRecordingService_Finalize_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	mockTranscoder := transcoder.NewMockTranscoder()
	service := recording.NewRecordingService(mockStore, mockTranscoder, nil, nil, discardLogger)

	mockStore.On("Exists", ctx, sessionID, domain.KindRaw).Return(false, nil)
	mockStore.On("Exists", ctx, sessionID, domain.KindPartial).Return(false, nil)

	// Act
	result, err := service.Finalize(ctx, sessionID)

	// Assert
	assert.ErrorIs(t, err, domain.ErrRecordingNotFound)
	assert.Nil(t, result)
}

func TestRecordingService_Finalize_ArchivesAndPublishes(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	mockTranscoder := transcoder.NewMockTranscoder()
	mockArchiver := archive.NewMockArtifactArchiver()
	mockPublisher := eventbroker.NewMockEventPublisher()
	service := recording.NewRecordingService(mockStore, mockTranscoder, mockArchiver, mockPublisher, discardLogger)

	webmPath := "/videos/" + sessionID + ".webm"
	mp4Path := "/videos/" + sessionID + ".mp4"

	mockStore.On("Exists", ctx, sessionID, domain.KindRaw).Return(false, nil)
	mockStore.On("Exists", ctx, sessionID, domain.KindPartial).Return(true, nil)
	mockStore.On("Promote", ctx, sessionID).Return(nil)
	mockStore.On("Path", sessionID, domain.KindRaw).Return(webmPath)
	mockStore.On("Path", sessionID, domain.KindTranscoded).Return(mp4Path)
	mockTranscoder.On("Available", ctx).Return(true)
	mockTranscoder.On("Transcode", ctx, webmPath, mp4Path).Return(nil)
	mockArchiver.On("Archive", ctx, webmPath, sessionID+".webm").Return(nil)
	mockArchiver.On("Archive", ctx, mp4Path, sessionID+".mp4").Return(nil)
	mockPublisher.On("PublishFinalized", ctx, mock.MatchedBy(func(ev domain.RecordingFinalized) bool {
		return ev.SessionID == sessionID && ev.WebM == sessionID+".webm" && ev.MP4 == sessionID+".mp4"
	})).Return(nil)

	// Act
	result, err := service.Finalize(ctx, sessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sessionID+".mp4", result.MP4)
	mockArchiver.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestRecordingService_Finalize_ArchiveFailureSwallowed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessionID := uuid.NewString()
	mockStore := storage.NewMockArtifactStore()
	mockTranscoder := transcoder.NewMockTranscoder()
	mockArchiver := archive.NewMockArtifactArchiver()
	mockPublisher := eventbroker.NewMockEventPublisher()
	service := recording.NewRecordingService(mockStore, mockTranscoder, mockArchiver, mockPublisher, discardLogger)

	mockStore.On("Exists", ctx, sessionID, domain.KindRaw).Return(false, nil)
	mockStore.On("Exists", ctx, sessionID, domain.KindPartial).Return(true, nil)
	mockStore.On("Promote", ctx, sessionID).Return(nil)
	mockStore.On("Path", sessionID, mock.Anything).Return("ignored")
	mockTranscoder.On("Available", ctx).Return(false)
	mockArchiver.On("Archive", ctx, mock.Anything, mock.Anything).Return(errors.New("bucket unreachable"))
	mockPublisher.On("PublishFinalized", ctx, mock.Anything).Return(errors.New("nats down"))

	// Act
	result, err := service.Finalize(ctx, sessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sessionID+".webm", result.WebM)
	mockArchiver.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
