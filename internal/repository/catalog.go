package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Catalog defines persistence for item/recipe catalog sync and price ingestion
type Catalog interface {
	BeginTx(ctx context.Context) (CatalogTx, error)
	InsertObservations(ctx context.Context, observations []domain.Observation) (int64, error)
}

// CatalogTx groups catalog writes that must commit together
type CatalogTx interface {
	Tx
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	GetItemByCatalogID(ctx context.Context, catalogID int) (*domain.Item, error)
	// DetachCatalogID clears the catalog id held by an item
	DetachCatalogID(ctx context.Context, itemID int) error
	// UpsertItem inserts or updates an item keyed by name and returns its id
	UpsertItem(ctx context.Context, input domain.ItemInput) (int, error)
	// EnsureItem returns the id of the named item, creating it when missing
	EnsureItem(ctx context.Context, name string) (int, error)
	GetRecipeByResultItemID(ctx context.Context, itemID int) (*domain.Recipe, error)
	// UpsertRecipe writes the recipe header keyed by result item and returns its id
	UpsertRecipe(ctx context.Context, recipe domain.Recipe) (int, error)
	ReplaceIngredients(ctx context.Context, recipeID int, ingredients []domain.Ingredient) error
}
