package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// RecipeRepository reads the recipe graph
type RecipeRepository struct {
	db *pgxpool.Pool
}

var _ repository.Recipe = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

const recipeSelect = `
	SELECT r.recipe_id, r.result_item_id, i.name, r.job_id, j.name, r.level,
	       i.craft_xp_ratio, r.is_locked, r.updated_at
	FROM recipes r
	JOIN items i ON i.item_id = r.result_item_id
	JOIN jobs j ON j.job_id = r.job_id`

const ingredientSelect = `
	SELECT ri.recipe_id, ri.item_id, i.name, ri.quantity
	FROM recipe_ingredients ri
	JOIN items i ON i.item_id = ri.item_id`

// GetAllRecipes returns every recipe ordered by id with ingredients in position order
func (r *RecipeRepository) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return r.load(ctx,
		recipeSelect+` ORDER BY r.recipe_id`,
		ingredientSelect+` ORDER BY ri.recipe_id, ri.position`,
	)
}

// GetRecipesByIDs returns the recipes with the given ids
func (r *RecipeRepository) GetRecipesByIDs(ctx context.Context, recipeIDs []int) ([]domain.Recipe, error) {
	if len(recipeIDs) == 0 {
		return []domain.Recipe{}, nil
	}
	return r.load(ctx,
		recipeSelect+` WHERE r.recipe_id = ANY($1) ORDER BY r.recipe_id`,
		ingredientSelect+` WHERE ri.recipe_id = ANY($1) ORDER BY ri.recipe_id, ri.position`,
		recipeIDs,
	)
}

func (r *RecipeRepository) load(ctx context.Context, recipeSQL, ingredientSQL string, args ...any) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, recipeSQL, args...)
	if err != nil {
		return nil, wrapErr("query recipes", err)
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	index := make(map[int]int)
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(&rec.ID, &rec.ResultItemID, &rec.ResultItemName, &rec.JobID, &rec.JobName,
			&rec.Level, &rec.CraftXPRatio, &rec.IsLocked, &rec.UpdatedAt); err != nil {
			return nil, wrapErr("scan recipe", err)
		}
		rec.Ingredients = []domain.Ingredient{}
		index[rec.ID] = len(recipes)
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate recipes", err)
	}

	ingRows, err := r.db.Query(ctx, ingredientSQL, args...)
	if err != nil {
		return nil, wrapErr("query ingredients", err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var (
			recipeID int
			ing      domain.Ingredient
		)
		if err := ingRows.Scan(&recipeID, &ing.ItemID, &ing.ItemName, &ing.Quantity); err != nil {
			return nil, wrapErr("scan ingredient", err)
		}
		if i, ok := index[recipeID]; ok {
			recipes[i].Ingredients = append(recipes[i].Ingredients, ing)
		}
	}
	if err := ingRows.Err(); err != nil {
		return nil, wrapErr("iterate ingredients", err)
	}
	return recipes, nil
}
