package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Recipe defines read access to the recipe graph
type Recipe interface {
	// GetAllRecipes returns every recipe with its ordered ingredients
	GetAllRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipesByIDs(ctx context.Context, recipeIDs []int) ([]domain.Recipe, error)
}
