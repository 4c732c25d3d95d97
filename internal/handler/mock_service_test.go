package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
)

// MockInventoryService mocks the inventory.Service interface
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) AdvanceDay(ctx context.Context) (*domain.TickRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TickRun), args.Error(1)
}

func (m *MockInventoryService) AdvanceDays(ctx context.Context, days int) (*domain.TickResult, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TickResult), args.Error(1)
}

func (m *MockInventoryService) ListItems(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

func (m *MockInventoryService) GetItem(ctx context.Context, name string) (*domain.StockItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockInventoryService) History(ctx context.Context, limit int) ([]domain.TickRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TickRun), args.Error(1)
}

func (m *MockInventoryService) CurrentDay(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryService) RefreshGauges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockInventoryService) GetCacheStats() inventory.CacheStats {
	return m.Called().Get(0).(inventory.CacheStats)
}

func (m *MockInventoryService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
