package bank

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
	"github.com/osse101/CraftMarket_Go/internal/naming"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// Service defines bank operations
type Service interface {
	// Opportunities matches every recipe against the bank in scope
	Opportunities(ctx context.Context, filter domain.BankOpportunityFilter) (*domain.BankOpportunityPage, error)
	// Sync replaces the stored bank for a scope with the payload
	Sync(ctx context.Context, scope domain.BankScope, items []domain.BankSyncItem) (*domain.BankSyncResult, error)
}

type service struct {
	bank    repository.Bank
	recipes repository.Recipe
	prices  pricing.Service
	now     func() time.Time
}

// NewService creates a new bank service
func NewService(bank repository.Bank, recipes repository.Recipe, prices pricing.Service) Service {
	return &service{
		bank:    bank,
		recipes: recipes,
		prices:  prices,
		now:     time.Now,
	}
}

func (s *service) Opportunities(ctx context.Context, filter domain.BankOpportunityFilter) (*domain.BankOpportunityPage, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	var (
		owned   map[int]int64
		recipes []domain.Recipe
		prices  domain.PriceBook
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = s.bank.GetOwnedQuantities(gctx, filter.Scope)
		if err != nil {
			return fmt.Errorf("failed to load bank: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recipes, err = s.recipes.GetAllRecipes(gctx)
		if err != nil {
			return fmt.Errorf("failed to load recipes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prices, err = s.prices.LatestPrices(gctx, filter.Scope.Server, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := naming.NewMatcher(filter.NameSearch)
	rows := make([]domain.BankOpportunity, 0)
	for _, r := range recipes {
		if r.Level < filter.MinLevel || r.Level > filter.MaxLevel {
			continue
		}
		if filter.JobID != nil && r.JobID != *filter.JobID {
			continue
		}
		if !names.Match(r.ResultItemName) {
			continue
		}
		opp := Match(r, owned, prices)
		if opp.MissingIngredients > filter.MaxMissing {
			continue
		}
		if filter.MinROI != nil && opp.ROI < *filter.MinROI {
			continue
		}
		rows = append(rows, opp)
	}
	sortOpportunities(rows)

	total := len(rows)
	start := min(filter.Offset, total)
	end := min(start+filter.Limit, total)

	return &domain.BankOpportunityPage{
		Rows:   rows[start:end],
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *service) Sync(ctx context.Context, scope domain.BankScope, items []domain.BankSyncItem) (*domain.BankSyncResult, error) {
	log := logger.FromContext(ctx)

	scope.Server = strings.TrimSpace(scope.Server)
	if scope.Server == "" {
		return nil, fmt.Errorf("%w: server is required", domain.ErrInvalidInput)
	}
	for _, it := range items {
		if it.ItemID <= 0 {
			return nil, fmt.Errorf("%w: item id must be positive", domain.ErrInvalidInput)
		}
	}

	current, err := s.bank.GetBankEntries(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank entries: %w", err)
	}

	diff, unchanged := Diff(scope, current, collapse(items))
	result := &domain.BankSyncResult{
		Inserted:  len(diff.Insert),
		Updated:   len(diff.Update),
		Deleted:   len(diff.Delete),
		Unchanged: unchanged,
	}
	if diff.Empty() {
		return result, nil
	}

	now := s.now()
	for i := range diff.Insert {
		diff.Insert[i].CapturedAt = now
	}
	for i := range diff.Update {
		diff.Update[i].CapturedAt = now
	}

	if err := s.bank.ApplyBankDiff(ctx, scope, diff); err != nil {
		return nil, fmt.Errorf("failed to apply bank diff: %w", err)
	}

	metrics.RecordBankSync(result.Inserted, result.Updated, result.Deleted)
	log.Info("Bank synced",
		"server", scope.Server,
		"profile_id", scope.ProfileID,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"deleted", result.Deleted)

	return result, nil
}

func normalizeFilter(f domain.BankOpportunityFilter) (domain.BankOpportunityFilter, error) {
	f.Scope.Server = strings.TrimSpace(f.Scope.Server)
	if f.Scope.Server == "" {
		return f, fmt.Errorf("%w: server is required", domain.ErrInvalidInput)
	}
	if f.MaxMissing < 0 {
		return f, fmt.Errorf("%w: max missing must not be negative", domain.ErrInvalidInput)
	}
	if f.MaxLevel == 0 {
		f.MaxLevel = domain.MaxJobLevel
	}
	if f.MinLevel < 0 || f.MinLevel > f.MaxLevel {
		return f, fmt.Errorf("%w: level range %d-%d", domain.ErrInvalidInput, f.MinLevel, f.MaxLevel)
	}
	if f.Offset < 0 {
		return f, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidInput)
	}
	switch {
	case f.Limit <= 0:
		f.Limit = domain.DefaultPageLimit
	case f.Limit > domain.MaxPageLimit:
		f.Limit = domain.MaxPageLimit
	}
	return f, nil
}
