package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// JobRepository reads professions
type JobRepository struct {
	db *pgxpool.Pool
}

var _ repository.Job = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// GetAllJobs returns every profession ordered by id
func (r *JobRepository) GetAllJobs(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT job_id, name, icon FROM jobs ORDER BY job_id`)
	if err != nil {
		return nil, wrapErr("query jobs", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Name, &j.Icon); err != nil {
			return nil, wrapErr("scan job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate jobs", err)
	}
	return jobs, nil
}
