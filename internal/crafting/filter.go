package crafting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/naming"
)

type predicate func(row *domain.ProfitabilityRow) bool

// normalizeFilter applies defaults and rejects impossible filters
func normalizeFilter(f domain.ProfitabilityFilter) (domain.ProfitabilityFilter, error) {
	f.Server = strings.TrimSpace(f.Server)
	if f.Server == "" {
		return f, fmt.Errorf("%w: server is required", domain.ErrInvalidInput)
	}
	if f.MaxLevel == 0 {
		f.MaxLevel = domain.MaxJobLevel
	}
	if f.MinLevel < 0 || f.MinLevel > f.MaxLevel {
		return f, fmt.Errorf("%w: level range %d-%d", domain.ErrInvalidInput, f.MinLevel, f.MaxLevel)
	}
	if !domain.IsValidSortKey(f.SortBy) {
		return f, fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidInput, f.SortBy)
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortKey
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

// compileFilter turns each set field into its own predicate and ANDs them
func compileFilter(f domain.ProfitabilityFilter) predicate {
	preds := []predicate{
		func(row *domain.ProfitabilityRow) bool {
			return row.Level >= f.MinLevel && row.Level <= f.MaxLevel
		},
	}
	if f.JobID != nil {
		jobID := *f.JobID
		preds = append(preds, func(row *domain.ProfitabilityRow) bool { return row.JobID == jobID })
	}
	if f.MinROI != nil {
		minROI := *f.MinROI
		preds = append(preds, func(row *domain.ProfitabilityRow) bool { return row.ROI >= minROI })
	}
	if f.RecipeID != nil {
		id := *f.RecipeID
		preds = append(preds, func(row *domain.ProfitabilityRow) bool { return row.RecipeID == id })
	}
	if f.ResultItemID != nil {
		id := *f.ResultItemID
		preds = append(preds, func(row *domain.ProfitabilityRow) bool { return row.ResultItemID == id })
	}
	if m := naming.NewMatcher(f.NameSearch); !m.Empty() {
		preds = append(preds, func(row *domain.ProfitabilityRow) bool { return m.Match(row.ResultItemName) })
	}

	return func(row *domain.ProfitabilityRow) bool {
		for _, p := range preds {
			if !p(row) {
				return false
			}
		}
		return true
	}
}

// sortRows orders by the key, then level desc, then recipe id asc
func sortRows(rows []domain.ProfitabilityRow, key string) {
	primary := primaryComparator(key)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if c := primary(a, b); c != 0 {
			return c < 0
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.RecipeID < b.RecipeID
	})
}

// primaryComparator returns negative when a sorts before b
func primaryComparator(key string) func(a, b *domain.ProfitabilityRow) int {
	switch key {
	case domain.SortByROI:
		return func(a, b *domain.ProfitabilityRow) int { return desc(a.ROI, b.ROI) }
	case domain.SortByLevel:
		return func(a, b *domain.ProfitabilityRow) int { return 0 }
	case domain.SortByCost:
		return func(a, b *domain.ProfitabilityRow) int { return -desc(a.CraftCost, b.CraftCost) }
	case domain.SortByEstimatedMargin:
		return func(a, b *domain.ProfitabilityRow) int { return desc(a.EstimatedMargin, b.EstimatedMargin) }
	case domain.SortByEstimatedROI:
		return func(a, b *domain.ProfitabilityRow) int { return desc(a.EstimatedROI, b.EstimatedROI) }
	default:
		return func(a, b *domain.ProfitabilityRow) int { return desc(a.Margin, b.Margin) }
	}
}

func desc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
