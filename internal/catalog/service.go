package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// Service defines catalog maintenance and price ingestion
type Service interface {
	// RecordObservations stores price sightings, creating unknown items on the way
	RecordObservations(ctx context.Context, inputs []domain.ObservationInput) (int64, error)
	SyncItems(ctx context.Context, inputs []domain.ItemInput) (*domain.SyncResult, error)
	// SyncRecipes upserts recipes; locked recipes keep their ingredients
	SyncRecipes(ctx context.Context, inputs []domain.RecipeInput) (*domain.SyncResult, error)
}

type service struct {
	repo repository.Catalog
	now  func() time.Time
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) RecordObservations(ctx context.Context, inputs []domain.ObservationInput) (int64, error) {
	if len(inputs) == 0 {
		return 0, nil
	}
	for i := range inputs {
		if err := validateObservation(inputs[i]); err != nil {
			return 0, fmt.Errorf("observation %d: %w", i, err)
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now().UTC()
	observations := make([]domain.Observation, 0, len(inputs))
	ids := make(map[string]int, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Item.Name)
		itemID, ok := ids[name]
		if !ok {
			in.Item.Name = name
			res, err := upsertItem(ctx, tx, in.Item)
			if err != nil {
				return 0, err
			}
			itemID = res.id
			ids[name] = itemID
		}

		capturedAt := now
		if in.CapturedAt != nil {
			capturedAt = in.CapturedAt.UTC()
		}
		lots := in.LotCount
		if lots == 0 {
			lots = 1
		}
		observations = append(observations, domain.Observation{
			ItemID:     itemID,
			Server:     strings.TrimSpace(in.Server),
			UnitPrice:  in.UnitPrice,
			LotCount:   lots,
			Source:     in.Source,
			CapturedAt: capturedAt,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit items: %w", err)
	}

	n, err := s.repo.InsertObservations(ctx, observations)
	if err != nil {
		return 0, fmt.Errorf("failed to insert observations: %w", err)
	}
	metrics.ObservationsIngested.Add(float64(n))
	logger.FromContext(ctx).Debug("Observations recorded", "count", n)
	return n, nil
}

func (s *service) SyncItems(ctx context.Context, inputs []domain.ItemInput) (*domain.SyncResult, error) {
	for i := range inputs {
		inputs[i].Name = strings.TrimSpace(inputs[i].Name)
		if inputs[i].Name == "" {
			return nil, fmt.Errorf("%w: item %d has no name", domain.ErrInvalidInput, i)
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	result := &domain.SyncResult{}
	for _, in := range inputs {
		res, err := upsertItem(ctx, tx, in)
		if err != nil {
			return nil, err
		}
		if res.created {
			result.Created++
		} else {
			result.Updated++
		}
		if res.detached {
			result.Detached++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit item sync: %w", err)
	}

	logger.FromContext(ctx).Info("Items synced",
		"created", result.Created,
		"updated", result.Updated,
		"detached", result.Detached)
	return result, nil
}

func (s *service) SyncRecipes(ctx context.Context, inputs []domain.RecipeInput) (*domain.SyncResult, error) {
	for i := range inputs {
		if err := validateRecipe(&inputs[i]); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	result := &domain.SyncResult{}
	for _, in := range inputs {
		resultID, err := tx.EnsureItem(ctx, in.ResultName)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure result item %q: %w", in.ResultName, err)
		}

		existing, err := tx.GetRecipeByResultItemID(ctx, resultID)
		if err != nil {
			return nil, fmt.Errorf("failed to get recipe for %q: %w", in.ResultName, err)
		}

		recipe := domain.Recipe{ResultItemID: resultID, JobID: in.JobID, Level: in.Level}
		if existing != nil {
			recipe.IsLocked = existing.IsLocked
		}

		recipeID, err := tx.UpsertRecipe(ctx, recipe)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert recipe %q: %w", in.ResultName, err)
		}

		if existing != nil && existing.IsLocked {
			result.Skipped++
			continue
		}

		ingredients := make([]domain.Ingredient, 0, len(in.Ingredients))
		for _, ing := range in.Ingredients {
			itemID, err := tx.EnsureItem(ctx, ing.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to ensure ingredient %q: %w", ing.Name, err)
			}
			ingredients = append(ingredients, domain.Ingredient{ItemID: itemID, ItemName: ing.Name, Quantity: ing.Quantity})
		}
		if err := tx.ReplaceIngredients(ctx, recipeID, ingredients); err != nil {
			return nil, fmt.Errorf("failed to replace ingredients of %q: %w", in.ResultName, err)
		}

		if existing == nil {
			result.Created++
		} else {
			result.Updated++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit recipe sync: %w", err)
	}

	logger.FromContext(ctx).Info("Recipes synced",
		"created", result.Created,
		"updated", result.Updated,
		"skipped_locked", result.Skipped)
	return result, nil
}

type upsertResult struct {
	id       int
	created  bool
	detached bool
}

// upsertItem writes an item by name. A catalog id already held by another
// item is cleared from that holder first, so at most one item owns it.
func upsertItem(ctx context.Context, tx repository.CatalogTx, in domain.ItemInput) (upsertResult, error) {
	var res upsertResult

	existing, err := tx.GetItemByName(ctx, in.Name)
	if err != nil {
		return res, fmt.Errorf("failed to get item %q: %w", in.Name, err)
	}
	res.created = existing == nil

	if in.CatalogID != nil {
		holder, err := tx.GetItemByCatalogID(ctx, *in.CatalogID)
		if err != nil {
			return res, fmt.Errorf("failed to get catalog id %d: %w", *in.CatalogID, err)
		}
		if holder != nil && holder.Name != in.Name {
			if err := tx.DetachCatalogID(ctx, holder.ID); err != nil {
				return res, fmt.Errorf("failed to detach catalog id %d from %q: %w", *in.CatalogID, holder.Name, err)
			}
			logger.FromContext(ctx).Warn("Catalog id moved between items",
				"catalog_id", *in.CatalogID,
				"from", holder.Name,
				"to", in.Name)
			res.detached = true
		}
	}

	res.id, err = tx.UpsertItem(ctx, in)
	if err != nil {
		return res, fmt.Errorf("failed to upsert item %q: %w", in.Name, err)
	}
	return res, nil
}

func validateObservation(in domain.ObservationInput) error {
	if strings.TrimSpace(in.Item.Name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Server) == "" {
		return fmt.Errorf("%w: server is required", domain.ErrInvalidInput)
	}
	if in.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", domain.ErrInvalidInput)
	}
	if in.LotCount < 0 {
		return fmt.Errorf("%w: lot count must be positive", domain.ErrInvalidInput)
	}
	return nil
}

// validateRecipe trims names and sums duplicate ingredient lines
func validateRecipe(in *domain.RecipeInput) error {
	in.ResultName = strings.TrimSpace(in.ResultName)
	if in.ResultName == "" {
		return fmt.Errorf("%w: result name is required", domain.ErrInvalidInput)
	}
	if in.JobID <= 0 {
		return fmt.Errorf("%w: job id is required", domain.ErrInvalidInput)
	}
	if in.Level < domain.MinJobLevel || in.Level > domain.MaxJobLevel {
		return fmt.Errorf("%w: level %d out of range", domain.ErrInvalidInput, in.Level)
	}
	if len(in.Ingredients) == 0 {
		return fmt.Errorf("%w: recipe needs at least one ingredient", domain.ErrInvalidInput)
	}

	merged := make([]domain.IngredientInput, 0, len(in.Ingredients))
	index := make(map[string]int, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" || ing.Quantity <= 0 {
			return fmt.Errorf("%w: ingredient needs a name and a positive quantity", domain.ErrInvalidInput)
		}
		if name == in.ResultName {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgSelfReferencingRecipe)
		}
		if i, ok := index[name]; ok {
			merged[i].Quantity += ing.Quantity
			continue
		}
		index[name] = len(merged)
		merged = append(merged, domain.IngredientInput{Name: name, Quantity: ing.Quantity})
	}
	in.Ingredients = merged
	return nil
}
