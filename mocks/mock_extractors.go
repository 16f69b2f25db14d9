package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobtrail/internal/domain"
)

// MockVisionExtractor is a mock implementation of port.VisionExtractor.
type MockVisionExtractor struct {
	mock.Mock
}

func (m *MockVisionExtractor) ExtractStructured(ctx context.Context, imageRef string) (domain.ExtractedJobData, error) {
	args := m.Called(ctx, imageRef)
	return args.Get(0).(domain.ExtractedJobData), args.Error(1)
}

// MockTextRecognizer is a mock implementation of port.TextRecognizer.
type MockTextRecognizer struct {
	mock.Mock
}

func (m *MockTextRecognizer) Recognize(ctx context.Context, imageRef string) (string, error) {
	args := m.Called(ctx, imageRef)
	return args.String(0), args.Error(1)
}
