package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"jobtrail/internal/domain"
	"jobtrail/internal/port"
)

type jobRepo struct {
	db *sqlx.DB
}

// NewJobRepo creates a new PostgreSQL-backed JobRepository.
func NewJobRepo(db *sqlx.DB) port.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	query := `INSERT INTO jobs
		(id, company, title, status, applied_date, notes, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.Company, job.Title, job.Status, job.AppliedDate,
		job.Notes, job.ImageURL, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("jobRepo.Create: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	var job domain.Job
	err := r.db.GetContext(ctx, &job, "SELECT * FROM jobs WHERE id = $1", jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("jobRepo.GetByID: %w", err)
	}
	return &job, nil
}

func (r *jobRepo) List(ctx context.Context, offset, limit int) ([]domain.Job, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM jobs"); err != nil {
		return nil, 0, fmt.Errorf("jobRepo.List count: %w", err)
	}

	var jobs []domain.Job
	err := r.db.SelectContext(ctx, &jobs,
		"SELECT * FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("jobRepo.List: %w", err)
	}
	return jobs, total, nil
}

func (r *jobRepo) ListByStatus(ctx context.Context, status domain.JobStatus, offset, limit int) ([]domain.Job, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM jobs WHERE status = $1", status); err != nil {
		return nil, 0, fmt.Errorf("jobRepo.ListByStatus count: %w", err)
	}

	var jobs []domain.Job
	err := r.db.SelectContext(ctx, &jobs,
		`SELECT * FROM jobs WHERE status = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("jobRepo.ListByStatus: %w", err)
	}
	return jobs, total, nil
}

func (r *jobRepo) ListAll(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.SelectContext(ctx, &jobs, "SELECT * FROM jobs ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("jobRepo.ListAll: %w", err)
	}
	return jobs, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	job.UpdatedAt = time.Now().UTC()

	query := `UPDATE jobs SET
		company = $2, title = $3, status = $4, applied_date = $5,
		notes = $6, image_url = $7, updated_at = $8
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		job.ID, job.Company, job.Title, job.Status, job.AppliedDate,
		job.Notes, job.ImageURL, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("jobRepo.Update: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("jobRepo.Update rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, jobID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = $1", jobID)
	if err != nil {
		return fmt.Errorf("jobRepo.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("jobRepo.Delete rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
