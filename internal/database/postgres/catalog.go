package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// CatalogRepository maintains items, recipes and observations
type CatalogRepository struct {
	db *pgxpool.Pool
}

var _ repository.Catalog = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// BeginTx starts a catalog write transaction
func (r *CatalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr("begin catalog tx", err)
	}
	return &catalogTx{tx: tx}, nil
}

// InsertObservations bulk loads observations with COPY
func (r *CatalogRepository) InsertObservations(ctx context.Context, observations []domain.Observation) (int64, error) {
	if len(observations) == 0 {
		return 0, nil
	}
	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"observations"},
		[]string{"item_id", "server", "unit_price", "lot_count", "source", "captured_at"},
		pgx.CopyFromSlice(len(observations), func(i int) ([]any, error) {
			o := observations[i]
			return []any{o.ItemID, o.Server, o.UnitPrice, o.LotCount, o.Source, o.CapturedAt}, nil
		}),
	)
	if err != nil {
		return 0, wrapErr("copy observations", err)
	}
	return n, nil
}

type catalogTx struct {
	tx pgx.Tx
}

func (t *catalogTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *catalogTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *catalogTx) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return getItem(ctx, t.tx, `name = $1`, name)
}

func (t *catalogTx) GetItemByCatalogID(ctx context.Context, catalogID int) (*domain.Item, error) {
	return getItem(ctx, t.tx, `catalog_id = $1`, catalogID)
}

func (t *catalogTx) DetachCatalogID(ctx context.Context, itemID int) error {
	_, err := t.tx.Exec(ctx, `UPDATE items SET catalog_id = NULL, updated_at = NOW() WHERE item_id = $1`, itemID)
	return wrapErr("detach catalog id", err)
}

// UpsertItem keeps stored optional fields when the input leaves them unset
func (t *catalogTx) UpsertItem(ctx context.Context, in domain.ItemInput) (int, error) {
	var id int
	err := t.tx.QueryRow(ctx, `
		INSERT INTO items (name, catalog_id, category, craft_xp_ratio)
		VALUES ($1, $2, $3, COALESCE($4::INTEGER, -1))
		ON CONFLICT (name) DO UPDATE SET
			catalog_id = COALESCE(EXCLUDED.catalog_id, items.catalog_id),
			category = COALESCE(EXCLUDED.category, items.category),
			craft_xp_ratio = COALESCE($4::INTEGER, items.craft_xp_ratio),
			updated_at = NOW()
		RETURNING item_id`,
		in.Name, int4Param(in.CatalogID), textParam(in.Category), int4Param(in.CraftXPRatio)).Scan(&id)
	if err != nil {
		return 0, wrapErr("upsert item", err)
	}
	return id, nil
}

func (t *catalogTx) EnsureItem(ctx context.Context, name string) (int, error) {
	var id int
	err := t.tx.QueryRow(ctx, `
		INSERT INTO items (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING item_id`, name).Scan(&id)
	if err != nil {
		return 0, wrapErr("ensure item", err)
	}
	return id, nil
}

func (t *catalogTx) GetRecipeByResultItemID(ctx context.Context, itemID int) (*domain.Recipe, error) {
	var (
		r         domain.Recipe
		updatedAt pgtype.Timestamptz
	)
	err := t.tx.QueryRow(ctx, `
		SELECT recipe_id, result_item_id, job_id, level, is_locked, updated_at
		FROM recipes WHERE result_item_id = $1`, itemID).
		Scan(&r.ID, &r.ResultItemID, &r.JobID, &r.Level, &r.IsLocked, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("get recipe by result", err)
	}
	r.UpdatedAt = updatedAt.Time
	return &r, nil
}

// UpsertRecipe never changes is_locked; the flag is managed by admins
func (t *catalogTx) UpsertRecipe(ctx context.Context, r domain.Recipe) (int, error) {
	var id int
	err := t.tx.QueryRow(ctx, `
		INSERT INTO recipes (result_item_id, job_id, level)
		VALUES ($1, $2, $3)
		ON CONFLICT (result_item_id) DO UPDATE SET
			job_id = EXCLUDED.job_id,
			level = EXCLUDED.level,
			updated_at = NOW()
		RETURNING recipe_id`, r.ResultItemID, r.JobID, r.Level).Scan(&id)
	if err != nil {
		return 0, wrapErr("upsert recipe", err)
	}
	return id, nil
}

func (t *catalogTx) ReplaceIngredients(ctx context.Context, recipeID int, ingredients []domain.Ingredient) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		return wrapErr("clear ingredients", err)
	}
	if len(ingredients) == 0 {
		return nil
	}
	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"recipe_ingredients"},
		[]string{"recipe_id", "item_id", "quantity", "position"},
		pgx.CopyFromSlice(len(ingredients), func(i int) ([]any, error) {
			ing := ingredients[i]
			return []any{recipeID, ing.ItemID, ing.Quantity, i}, nil
		}),
	)
	return wrapErr("copy ingredients", err)
}
