package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jobtrail/internal/domain"
	"jobtrail/internal/service"
)

// MockJobService is a mock implementation of service.JobService.
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Create(ctx context.Context, input service.JobCreateInput) (*domain.Job, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) GetByID(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) List(ctx context.Context, status string, offset, limit int) ([]domain.Job, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Int(1), args.Error(2)
}

func (m *MockJobService) ListAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, jobID uuid.UUID, input service.JobUpdateInput) (*domain.Job, error) {
	args := m.Called(ctx, jobID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, jobID uuid.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockJobService) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

// MockExtractService is a mock implementation of service.ExtractService.
type MockExtractService struct {
	mock.Mock
}

func (m *MockExtractService) ExtractFromImage(ctx context.Context, imageRef string) domain.ExtractedJobData {
	args := m.Called(ctx, imageRef)
	return args.Get(0).(domain.ExtractedJobData)
}

// MockScreenshotService is a mock implementation of service.ScreenshotService.
type MockScreenshotService struct {
	mock.Mock
}

func (m *MockScreenshotService) Upload(ctx context.Context, input service.ScreenshotUploadInput) (*domain.Screenshot, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screenshot), args.Error(1)
}

func (m *MockScreenshotService) GetURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockScreenshotService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
