package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/database/postgres"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Recipe  repository.Recipe
	Price   repository.Price
	Job     repository.Job
	Bank    repository.Bank
	Catalog repository.Catalog
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Recipe:  postgres.NewRecipeRepository(dbPool),
		Price:   postgres.NewPriceRepository(dbPool),
		Job:     postgres.NewJobRepository(dbPool),
		Bank:    postgres.NewBankRepository(dbPool),
		Catalog: postgres.NewCatalogRepository(dbPool),
	}
}
