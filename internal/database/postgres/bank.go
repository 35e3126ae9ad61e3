package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// BankRepository stores bank snapshots keyed by (server, profile, item)
type BankRepository struct {
	db *pgxpool.Pool
}

var _ repository.Bank = (*BankRepository)(nil)

// NewBankRepository creates a new BankRepository
func NewBankRepository(db *pgxpool.Pool) *BankRepository {
	return &BankRepository{db: db}
}

// GetOwnedQuantities sums stacks per item. An empty profile covers every profile on the server.
func (r *BankRepository) GetOwnedQuantities(ctx context.Context, scope domain.BankScope) (map[int]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item_id, SUM(quantity)::BIGINT
		FROM bank_items
		WHERE server = $1 AND ($2 = '' OR profile_id = $2)
		GROUP BY item_id`, scope.Server, scope.ProfileID)
	if err != nil {
		return nil, wrapErr("query owned quantities", err)
	}
	defer rows.Close()

	owned := make(map[int]int64)
	for rows.Next() {
		var (
			itemID int
			qty    int64
		)
		if err := rows.Scan(&itemID, &qty); err != nil {
			return nil, wrapErr("scan owned quantity", err)
		}
		owned[itemID] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate owned quantities", err)
	}
	return owned, nil
}

// GetBankEntries returns the rows stored for exactly this scope
func (r *BankRepository) GetBankEntries(ctx context.Context, scope domain.BankScope) ([]domain.BankEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT server, profile_id, item_id, quantity, captured_at
		FROM bank_items
		WHERE server = $1 AND profile_id = $2
		ORDER BY item_id`, scope.Server, scope.ProfileID)
	if err != nil {
		return nil, wrapErr("query bank entries", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BankEntry, error) {
		var e domain.BankEntry
		err := row.Scan(&e.Server, &e.ProfileID, &e.ItemID, &e.Quantity, &e.CapturedAt)
		return e, err
	})
	if err != nil {
		return nil, wrapErr("collect bank entries", err)
	}
	return entries, nil
}

// ApplyBankDiff writes inserts, updates and deletes in one transaction
func (r *BankRepository) ApplyBankDiff(ctx context.Context, scope domain.BankScope, diff domain.BankDiff) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapErr("begin bank diff", err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, e := range append(diff.Insert, diff.Update...) {
		batch.Queue(`
			INSERT INTO bank_items (server, profile_id, item_id, quantity, captured_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (server, profile_id, item_id)
			DO UPDATE SET quantity = EXCLUDED.quantity, captured_at = EXCLUDED.captured_at`,
			scope.Server, scope.ProfileID, e.ItemID, e.Quantity, e.CapturedAt)
	}
	if len(diff.Delete) > 0 {
		batch.Queue(`
			DELETE FROM bank_items
			WHERE server = $1 AND profile_id = $2 AND item_id = ANY($3)`,
			scope.Server, scope.ProfileID, diff.Delete)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return wrapErr(fmt.Sprintf("apply bank diff statement %d", i), err)
		}
	}
	if err := results.Close(); err != nil {
		return wrapErr("close bank diff batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit bank diff", err)
	}
	return nil
}
