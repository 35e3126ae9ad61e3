package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

type MockCraftingService struct {
	mock.Mock
}

func (m *MockCraftingService) ListProfitability(ctx context.Context, filter domain.ProfitabilityFilter) (*domain.ProfitabilityPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitabilityPage), args.Error(1)
}

func (m *MockCraftingService) Rows(ctx context.Context, server string) ([]domain.ProfitabilityRow, error) {
	args := m.Called(ctx, server)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitabilityRow), args.Error(1)
}

type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) Opportunities(ctx context.Context, filter domain.BankOpportunityFilter) (*domain.BankOpportunityPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankOpportunityPage), args.Error(1)
}

func (m *MockBankService) Sync(ctx context.Context, scope domain.BankScope, items []domain.BankSyncItem) (*domain.BankSyncResult, error) {
	args := m.Called(ctx, scope, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankSyncResult), args.Error(1)
}

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobService) GetJob(ctx context.Context, jobID int) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) PlanLeveling(ctx context.Context, req domain.LevelingRequest) (*domain.LevelingPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevelingPlan), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) RecordObservations(ctx context.Context, inputs []domain.ObservationInput) (int64, error) {
	args := m.Called(ctx, inputs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) SyncItems(ctx context.Context, inputs []domain.ItemInput) (*domain.SyncResult, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}

func (m *MockCatalogService) SyncRecipes(ctx context.Context, inputs []domain.RecipeInput) (*domain.SyncResult, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) LatestPrice(ctx context.Context, itemID int, server string) (domain.Price, error) {
	args := m.Called(ctx, itemID, server)
	return args.Get(0).(domain.Price), args.Error(1)
}

func (m *MockPricingService) LatestPrices(ctx context.Context, server string, itemIDs []int) (domain.PriceBook, error) {
	args := m.Called(ctx, server, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceBook), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
