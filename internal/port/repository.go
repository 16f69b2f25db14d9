package port

import (
	"context"

	"github.com/google/uuid"

	"jobtrail/internal/domain"
)

// JobRepository defines the contract for job application persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*domain.Job, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, int, error)
	ListByStatus(ctx context.Context, status domain.JobStatus, offset, limit int) ([]domain.Job, int, error)
	ListAll(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, jobID uuid.UUID) error
}

// StatsRepository defines the contract for aggregate job statistics.
type StatsRepository interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}
