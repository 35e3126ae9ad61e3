package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// Service resolves spot market prices
type Service interface {
	// LatestPrice returns the most recent unit price of an item on a server.
	// An item with no observation yields an unknown Price, not an error.
	LatestPrice(ctx context.Context, itemID int, server string) (domain.Price, error)
	// LatestPrices returns a price book for a server; nil itemIDs loads every item
	LatestPrices(ctx context.Context, server string, itemIDs []int) (domain.PriceBook, error)
}

type service struct {
	repo repository.Price
}

// NewService creates a new pricing service
func NewService(repo repository.Price) Service {
	return &service{repo: repo}
}

func (s *service) LatestPrice(ctx context.Context, itemID int, server string) (domain.Price, error) {
	if err := validateServer(server); err != nil {
		return domain.Price{}, err
	}
	if itemID <= 0 {
		return domain.Price{}, fmt.Errorf("%w: item id must be positive", domain.ErrInvalidInput)
	}

	obs, err := s.repo.GetLatestObservation(ctx, itemID, server)
	if err != nil {
		return domain.Price{}, fmt.Errorf("failed to get latest observation: %w", err)
	}
	if obs == nil {
		return domain.Price{}, nil
	}
	return domain.KnownPrice(obs.UnitPrice), nil
}

func (s *service) LatestPrices(ctx context.Context, server string, itemIDs []int) (domain.PriceBook, error) {
	if err := validateServer(server); err != nil {
		return nil, err
	}
	if itemIDs != nil && len(itemIDs) == 0 {
		return domain.PriceBook{}, nil
	}

	book, err := s.repo.GetLatestPrices(ctx, server, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prices: %w", err)
	}
	if book == nil {
		book = domain.PriceBook{}
	}
	return book, nil
}

func validateServer(server string) error {
	if strings.TrimSpace(server) == "" {
		return fmt.Errorf("%w: server is required", domain.ErrInvalidInput)
	}
	return nil
}
