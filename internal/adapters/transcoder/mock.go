package transcoder

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTranscoder is a mock implementation of Transcoder
type MockTranscoder struct {
	mock.Mock
}

// NewMockTranscoder creates a new MockTranscoder
func NewMockTranscoder() *MockTranscoder {
	return &MockTranscoder{}
}

func (m *MockTranscoder) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockTranscoder) Transcode(ctx context.Context, inPath, outPath string) error {
	args := m.Called(ctx, inPath, outPath)
	return args.Error(0)
}
