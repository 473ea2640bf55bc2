package storage

import (
	"context"
	"io"
	"screencast/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockArtifactStore is a mock implementation of ArtifactStore
type MockArtifactStore struct {
	mock.Mock
}

// NewMockArtifactStore creates a new MockArtifactStore
func NewMockArtifactStore() *MockArtifactStore {
	return &MockArtifactStore{}
}

func (m *MockArtifactStore) AppendChunk(ctx context.Context, sessionID string, body io.Reader) (int64, error) {
	args := m.Called(ctx, sessionID, body)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtifactStore) WriteSnapshot(ctx context.Context, sessionID string, body io.Reader) (string, error) {
	args := m.Called(ctx, sessionID, body)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) Promote(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockArtifactStore) Exists(ctx context.Context, sessionID string, kind domain.ArtifactKind) (bool, error) {
	args := m.Called(ctx, sessionID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtifactStore) ListVideos(ctx context.Context) ([]domain.VideoEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VideoEntry), args.Error(1)
}

func (m *MockArtifactStore) LatestSnapshot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) Open(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error) {
	args := m.Called(ctx, filename)
	var rsc io.ReadSeekCloser
	if args.Get(0) != nil {
		rsc = args.Get(0).(io.ReadSeekCloser)
	}
	return rsc, args.Get(1).(time.Time), args.Error(2)
}

func (m *MockArtifactStore) Path(sessionID string, kind domain.ArtifactKind) string {
	args := m.Called(sessionID, kind)
	return args.String(0)
}

func (m *MockArtifactStore) RemoveStalePartials(ctx context.Context, olderThan time.Time) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}
