package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// wrapErr maps driver errors onto domain errors. Constraint violations
// caused by the caller's data become ErrIdentityConflict or ErrInvalidInput;
// everything else is treated as the store being unavailable.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUniqueViolation:
			return fmt.Errorf("%w: %s: %s", domain.ErrIdentityConflict, op, pgErr.ConstraintName)
		case pgCodeForeignKeyViolation, pgCodeCheckViolation:
			return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, op, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}

// ptrInt converts a pgtype.Int4 to *int, nil when NULL
func ptrInt(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

// ptrText converts a pgtype.Text to *string, nil when NULL
func ptrText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	v := t.String
	return &v
}

func int4Param(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

func textParam(v *string) pgtype.Text {
	if v == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *v, Valid: true}
}

const itemColumns = `item_id, name, catalog_id, category, craft_xp_ratio, created_at`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item      domain.Item
		catalogID pgtype.Int4
		category  pgtype.Text
	)
	if err := row.Scan(&item.ID, &item.Name, &catalogID, &category, &item.CraftXPRatio, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.CatalogID = ptrInt(catalogID)
	item.Category = ptrText(category)
	return &item, nil
}

// getItem returns nil without error when no row matches
func getItem(ctx context.Context, q querier, where string, arg any) (*domain.Item, error) {
	item, err := scanItem(q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE `+where, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("get item", err)
	}
	return item, nil
}
