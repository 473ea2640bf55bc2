package archive

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockArtifactArchiver is a mock implementation of ArtifactArchiver
type MockArtifactArchiver struct {
	mock.Mock
}

// NewMockArtifactArchiver creates a new MockArtifactArchiver
func NewMockArtifactArchiver() *MockArtifactArchiver {
	return &MockArtifactArchiver{}
}

func (m *MockArtifactArchiver) Archive(ctx context.Context, localPath, objectName string) error {
	args := m.Called(ctx, localPath, objectName)
	return args.Error(0)
}
