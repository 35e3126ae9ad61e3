package crafting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// Service defines recipe profitability operations
type Service interface {
	// ListProfitability filters, sorts and paginates profitability rows
	ListProfitability(ctx context.Context, filter domain.ProfitabilityFilter) (*domain.ProfitabilityPage, error)
	// Rows returns every recipe's profitability row for a server, unsorted
	Rows(ctx context.Context, server string) ([]domain.ProfitabilityRow, error)
}

type service struct {
	recipes   repository.Recipe
	prices    pricing.Service
	estimator *costing.Estimator
}

// NewService creates a new profitability service
func NewService(recipes repository.Recipe, prices pricing.Service, estimator *costing.Estimator) Service {
	return &service{
		recipes:   recipes,
		prices:    prices,
		estimator: estimator,
	}
}

func (s *service) ListProfitability(ctx context.Context, filter domain.ProfitabilityFilter) (*domain.ProfitabilityPage, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.Rows(ctx, filter.Server)
	if err != nil {
		return nil, err
	}

	matches := compileFilter(filter)
	selected := make([]domain.ProfitabilityRow, 0, len(rows))
	for i := range rows {
		if matches(&rows[i]) {
			selected = append(selected, rows[i])
		}
	}
	sortRows(selected, filter.SortBy)

	// Ingredient breakdowns are only returned for exact lookups
	if filter.RecipeID == nil && filter.ResultItemID == nil {
		for i := range selected {
			selected[i].Ingredients = nil
		}
	}

	return &domain.ProfitabilityPage{
		Rows:   paginate(selected, filter.Limit, filter.Offset),
		Total:  len(selected),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *service) Rows(ctx context.Context, server string) ([]domain.ProfitabilityRow, error) {
	if strings.TrimSpace(server) == "" {
		return nil, fmt.Errorf("%w: server is required", domain.ErrInvalidInput)
	}

	recipes, prices, err := s.load(ctx, server)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	table := s.estimator.Resolve(recipes, prices)
	elapsed := time.Since(start)

	stats := table.Stats()
	metrics.RecordCostResolution(elapsed, stats.Market, stats.Derived, stats.Partial)
	logger.FromContext(ctx).Debug(LogMsgCostsResolved,
		"server", server,
		"recipes", len(recipes),
		"market", stats.Market,
		"derived", stats.Derived,
		"partial", stats.Partial,
		"layers_used", stats.LayersUsed,
		"elapsed", elapsed)

	rows := make([]domain.ProfitabilityRow, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, buildRow(r, prices, table))
	}
	return rows, nil
}

// load fetches recipes and the server's price book concurrently
func (s *service) load(ctx context.Context, server string) ([]domain.Recipe, domain.PriceBook, error) {
	var (
		recipes []domain.Recipe
		prices  domain.PriceBook
	)

	g, gctx := errgroup.WithContext(ctx)
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
		prices, err = s.prices.LatestPrices(gctx, server, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return recipes, prices, nil
}

// buildRow joins market and estimated costs with the sell price. An unknown
// sell price leaves margins and ROIs at zero.
func buildRow(r domain.Recipe, prices domain.PriceBook, table *costing.Table) domain.ProfitabilityRow {
	marketCost, priced := costing.MarketCost(r, prices)
	est := table.EstimateRecipe(r)
	sell := prices.Lookup(r.ResultItemID)

	row := domain.ProfitabilityRow{
		RecipeID:       r.ID,
		ResultItemID:   r.ResultItemID,
		ResultItemName: r.ResultItemName,
		JobID:          r.JobID,
		JobName:        r.JobName,
		Level:          r.Level,
		CraftXPRatio:   domain.EffectiveCraftXPRatio(r.CraftXPRatio),
		CraftCost:      marketCost,
		SellPrice:      sell.Ptr(),

		TotalIngredients:      len(r.Ingredients),
		PricedIngredients:     priced,
		EstimatedIngredients:  est.Estimated,
		UnresolvedIngredients: est.Unresolved,

		EstimatedCost:        est.Cost,
		HasEstimation:        est.HasEstimation,
		EstimationIncomplete: est.Incomplete,
		Ingredients:          est.Ingredients,
	}

	if sell.Known {
		row.Margin = sell.Value - marketCost
		row.ROI = domain.ROI(row.Margin, marketCost)
		row.EstimatedMargin = sell.Value - est.Cost
		row.EstimatedROI = domain.ROI(row.EstimatedMargin, est.Cost)
	}
	return row
}

func paginate(rows []domain.ProfitabilityRow, limit, offset int) []domain.ProfitabilityRow {
	if offset >= len(rows) {
		return []domain.ProfitabilityRow{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
