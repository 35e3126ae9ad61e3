package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Price defines read access to market observations
type Price interface {
	// GetLatestObservation returns the most recent observation for an item on a
	// server, or nil when none exists
	GetLatestObservation(ctx context.Context, itemID int, server string) (*domain.Observation, error)
	// GetLatestPrices returns the latest unit price per item for a server.
	// A nil itemIDs slice selects every item.
	GetLatestPrices(ctx context.Context, server string, itemIDs []int) (domain.PriceBook, error)
}
