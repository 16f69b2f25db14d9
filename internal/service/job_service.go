package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"jobtrail/internal/domain"
	"jobtrail/internal/port"
)

// JobCreateInput is the DTO for creating a job application.
type JobCreateInput struct {
	Company     string
	Title       string
	Status      string
	AppliedDate string
	Notes       string
	ImageURL    string
}

// JobUpdateInput is the DTO for updating a job application. Nil fields are
// left unchanged.
type JobUpdateInput struct {
	Company     *string
	Title       *string
	Status      *string
	AppliedDate *string
	Notes       *string
	ImageURL    *string
}

// JobService defines the job application management contract.
type JobService interface {
	Create(ctx context.Context, input JobCreateInput) (*domain.Job, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*domain.Job, error)
	List(ctx context.Context, status string, offset, limit int) ([]domain.Job, int, error)
	ListAll(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, jobID uuid.UUID, input JobUpdateInput) (*domain.Job, error)
	Delete(ctx context.Context, jobID uuid.UUID) error
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type jobService struct {
	jobRepo   port.JobRepository
	statsRepo port.StatsRepository
}

// NewJobService creates a new JobService implementation.
func NewJobService(jobRepo port.JobRepository, statsRepo port.StatsRepository) JobService {
	return &jobService{jobRepo: jobRepo, statsRepo: statsRepo}
}

func (s *jobService) Create(ctx context.Context, input JobCreateInput) (*domain.Job, error) {
	company := strings.TrimSpace(input.Company)
	title := strings.TrimSpace(input.Title)
	if company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.AppliedDate != "" && !domain.ValidISODate(input.AppliedDate) {
		return nil, fmt.Errorf("%w: applied_date must be YYYY-MM-DD", domain.ErrValidation)
	}

	job := &domain.Job{
		ID:          uuid.New(),
		Company:     company,
		Title:       title,
		Status:      domain.NormalizeStatus(input.Status),
		AppliedDate: input.AppliedDate,
		Notes:       domain.TruncateNotes(input.Notes),
		ImageURL:    input.ImageURL,
	}

	log.Printf("jobService.Create: creating job %s at %s", job.Title, job.Company)

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetByID(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	return s.jobRepo.GetByID(ctx, jobID)
}

func (s *jobService) List(ctx context.Context, status string, offset, limit int) ([]domain.Job, int, error) {
	if status == "" {
		return s.jobRepo.List(ctx, offset, limit)
	}
	st := domain.JobStatus(status)
	if !domain.ValidStatuses[st] {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.jobRepo.ListByStatus(ctx, st, offset, limit)
}

func (s *jobService) ListAll(ctx context.Context) ([]domain.Job, error) {
	return s.jobRepo.ListAll(ctx)
}

func (s *jobService) Update(ctx context.Context, jobID uuid.UUID, input JobUpdateInput) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if input.Company != nil {
		company := strings.TrimSpace(*input.Company)
		if company == "" {
			return nil, fmt.Errorf("%w: company cannot be empty", domain.ErrValidation)
		}
		job.Company = company
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		job.Title = title
	}
	if input.Status != nil {
		st := domain.JobStatus(*input.Status)
		if !domain.ValidStatuses[st] {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *input.Status)
		}
		job.Status = st
	}
	if input.AppliedDate != nil {
		if *input.AppliedDate != "" && !domain.ValidISODate(*input.AppliedDate) {
			return nil, fmt.Errorf("%w: applied_date must be YYYY-MM-DD", domain.ErrValidation)
		}
		job.AppliedDate = *input.AppliedDate
	}
	if input.Notes != nil {
		job.Notes = domain.TruncateNotes(*input.Notes)
	}
	if input.ImageURL != nil {
		job.ImageURL = *input.ImageURL
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, jobID uuid.UUID) error {
	log.Printf("jobService.Delete: deleting job %s", jobID)
	return s.jobRepo.Delete(ctx, jobID)
}

func (s *jobService) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.statsRepo.GetStats(ctx)
}
