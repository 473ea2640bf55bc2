package library

import (
	"context"
	"io"
	"screencast/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLibraryService is a mock implementation of LibraryService
type MockLibraryService struct {
	mock.Mock
}

// NewMockLibraryService creates a new MockLibraryService
func NewMockLibraryService() *MockLibraryService {
	return &MockLibraryService{}
}

func (m *MockLibraryService) ListVideos(ctx context.Context) ([]domain.VideoEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VideoEntry), args.Error(1)
}

func (m *MockLibraryService) LatestVideo(ctx context.Context) (*domain.VideoEntry, error) {
	args := m.Called(ctx)
	var entry *domain.VideoEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.VideoEntry)
	}
	return entry, args.Error(1)
}

func (m *MockLibraryService) LatestSnapshot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockLibraryService) OpenArtifact(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error) {
	args := m.Called(ctx, filename)
	var rsc io.ReadSeekCloser
	if args.Get(0) != nil {
		rsc = args.Get(0).(io.ReadSeekCloser)
	}
	return rsc, args.Get(1).(time.Time), args.Error(2)
}
