package job

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/CraftMarket_Go/internal/crafting"
	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// Service defines profession catalog and leveling operations
type Service interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	GetJob(ctx context.Context, jobID int) (*domain.Job, error)
	// PlanLeveling builds the cheapest greedy plan for the requested level range
	PlanLeveling(ctx context.Context, req domain.LevelingRequest) (*domain.LevelingPlan, error)
}

// Options configures the job service
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	// XP overrides the craft XP formula
	XP XPFunc
}

type service struct {
	jobs     repository.Job
	recipes  repository.Recipe
	crafting crafting.Service
	prices   pricing.Service
	planner  *Planner
	cache    *jobCache
	loads    singleflight.Group
}

// NewService creates a new job service
func NewService(jobs repository.Job, recipes repository.Recipe, craftingSvc crafting.Service, prices pricing.Service, opts Options) Service {
	return &service{
		jobs:     jobs,
		recipes:  recipes,
		crafting: craftingSvc,
		prices:   prices,
		planner:  NewPlanner(opts.XP),
		cache:    newJobCache(opts.CacheSize, opts.CacheTTL),
	}
}

func (s *service) ListJobs(ctx context.Context) ([]domain.Job, error) {
	if jobs, ok := s.cache.Get(); ok {
		return jobs, nil
	}

	// Concurrent misses share one load; the caller that starts it must not
	// cancel it for the others.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loads.Do(cacheKeyAllJobs, func() (any, error) {
		if jobs, ok := s.cache.Get(); ok {
			return jobs, nil
		}
		jobs, err := s.jobs.GetAllJobs(loadCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to get jobs: %w", err)
		}
		sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
		s.cache.Set(jobs)
		return jobs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Job), nil
}

func (s *service) GetJob(ctx context.Context, jobID int) (*domain.Job, error) {
	jobs, err := s.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == jobID {
			job := jobs[i]
			return &job, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", domain.ErrJobNotFound, jobID)
}

func (s *service) PlanLeveling(ctx context.Context, req domain.LevelingRequest) (*domain.LevelingPlan, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.GetJob(ctx, req.JobID); err != nil {
		return nil, err
	}

	rows, err := s.crafting.Rows(ctx, req.Server)
	if err != nil {
		return nil, err
	}

	plan := s.planner.Plan(CandidatesFromRows(rows, req.JobID), req.FromLevel, req.ToLevel)
	plan.JobID = req.JobID
	plan.Server = req.Server

	if err := s.attachShoppingLists(ctx, req.Server, plan.Steps); err != nil {
		return nil, err
	}

	metrics.RecordLevelingPlan(plan.Complete)
	if plan.Complete {
		log.Debug(LogMsgPlanComplete, "job_id", req.JobID, "steps", len(plan.Steps), "total_cost", plan.TotalCost)
	} else {
		log.Info(LogMsgPlanHalted, "job_id", req.JobID, "from", req.FromLevel, "reached", plan.ToLevel, "target", req.ToLevel)
	}

	return &plan, nil
}

// attachShoppingLists looks up ingredients and their latest prices for
// every distinct recipe in the plan
func (s *service) attachShoppingLists(ctx context.Context, server string, steps []domain.LevelingStep) error {
	if len(steps) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(steps))
	recipeIDs := make([]int, 0, len(steps))
	for _, st := range steps {
		if !seen[st.RecipeID] {
			seen[st.RecipeID] = true
			recipeIDs = append(recipeIDs, st.RecipeID)
		}
	}

	recipes, err := s.recipes.GetRecipesByIDs(ctx, recipeIDs)
	if err != nil {
		return fmt.Errorf("failed to get plan recipes: %w", err)
	}
	byID := make(map[int]domain.Recipe, len(recipes))
	itemSeen := map[int]bool{}
	itemIDs := make([]int, 0)
	for _, r := range recipes {
		byID[r.ID] = r
		for _, ing := range r.Ingredients {
			if !itemSeen[ing.ItemID] {
				itemSeen[ing.ItemID] = true
				itemIDs = append(itemIDs, ing.ItemID)
			}
		}
	}

	prices, err := s.prices.LatestPrices(ctx, server, itemIDs)
	if err != nil {
		return err
	}

	for i := range steps {
		r := byID[steps[i].RecipeID]
		list := make([]domain.ShoppingItem, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			total := steps[i].Quantity * int64(ing.Quantity)
			price := prices.Lookup(ing.ItemID)
			list = append(list, domain.ShoppingItem{
				ItemID:        ing.ItemID,
				ItemName:      ing.ItemName,
				QuantityEach:  ing.Quantity,
				TotalQuantity: total,
				UnitPrice:     price.Ptr(),
				TotalCost:     float64(total) * price.Value,
			})
		}
		steps[i].Ingredients = list
	}
	return nil
}

func validateRequest(req domain.LevelingRequest) error {
	if strings.TrimSpace(req.Server) == "" {
		return fmt.Errorf("%w: server is required", domain.ErrInvalidInput)
	}
	if req.JobID <= 0 {
		return fmt.Errorf("%w: job id must be positive", domain.ErrInvalidInput)
	}
	if req.FromLevel < domain.MinJobLevel || req.ToLevel > domain.MaxJobLevel || req.FromLevel >= req.ToLevel {
		return fmt.Errorf("%w: levels must satisfy %d <= from < to <= %d",
			domain.ErrInvalidInput, domain.MinJobLevel, domain.MaxJobLevel)
	}
	return nil
}
