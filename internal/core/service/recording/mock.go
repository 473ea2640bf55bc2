package recording

import (
	"context"
	"io"
	"screencast/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRecordingService is a mock implementation of RecordingService
type MockRecordingService struct {
	mock.Mock
}

// NewMockRecordingService creates a new MockRecordingService
func NewMockRecordingService() *MockRecordingService {
	return &MockRecordingService{}
}

func (m *MockRecordingService) AppendChunk(ctx context.Context, sessionID string, body io.Reader) (int64, error) {
	args := m.Called(ctx, sessionID, body)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordingService) SaveSnapshot(ctx context.Context, sessionID string, body io.Reader) (string, time.Time, error) {
	args := m.Called(ctx, sessionID, body)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockRecordingService) Finalize(ctx context.Context, sessionID string) (*domain.FinalizeResult, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(*domain.FinalizeResult), args.Error(1)
}
