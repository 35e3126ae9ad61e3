package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Job defines the data access interface for professions
type Job interface {
	GetAllJobs(ctx context.Context) ([]domain.Job, error)
}
