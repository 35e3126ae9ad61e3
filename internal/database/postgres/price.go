package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// PriceRepository reads market observations
type PriceRepository struct {
	db *pgxpool.Pool
}

var _ repository.Price = (*PriceRepository)(nil)

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository(db *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetLatestObservation returns the newest observation, id breaking timestamp ties
func (r *PriceRepository) GetLatestObservation(ctx context.Context, itemID int, server string) (*domain.Observation, error) {
	var o domain.Observation
	err := r.db.QueryRow(ctx, `
		SELECT observation_id, item_id, server, unit_price, lot_count, source, captured_at
		FROM observations
		WHERE item_id = $1 AND server = $2
		ORDER BY captured_at DESC, observation_id DESC
		LIMIT 1`, itemID, server).
		Scan(&o.ID, &o.ItemID, &o.Server, &o.UnitPrice, &o.LotCount, &o.Source, &o.CapturedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("get latest observation", err)
	}
	return &o, nil
}

// GetLatestPrices returns the newest unit price per item on a server
func (r *PriceRepository) GetLatestPrices(ctx context.Context, server string, itemIDs []int) (domain.PriceBook, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if itemIDs == nil {
		rows, err = r.db.Query(ctx, `
			SELECT DISTINCT ON (item_id) item_id, unit_price
			FROM observations
			WHERE server = $1
			ORDER BY item_id, captured_at DESC, observation_id DESC`, server)
	} else {
		rows, err = r.db.Query(ctx, `
			SELECT DISTINCT ON (item_id) item_id, unit_price
			FROM observations
			WHERE server = $1 AND item_id = ANY($2)
			ORDER BY item_id, captured_at DESC, observation_id DESC`, server, itemIDs)
	}
	if err != nil {
		return nil, wrapErr("query latest prices", err)
	}
	defer rows.Close()

	book := domain.PriceBook{}
	for rows.Next() {
		var (
			itemID int
			price  float64
		)
		if err := rows.Scan(&itemID, &price); err != nil {
			return nil, wrapErr("scan latest price", err)
		}
		book[itemID] = price
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate latest prices", err)
	}
	return book, nil
}
