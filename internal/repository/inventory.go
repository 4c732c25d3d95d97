package repository

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Inventory defines the interface for stock persistence
type Inventory interface {
	ListItems(ctx context.Context) ([]domain.StockItem, error)
	GetItemByName(ctx context.Context, name string) (*domain.StockItem, error)

	// CurrentDay is the number of completed tick runs
	CurrentDay(ctx context.Context) (int, error)
	ListTickRuns(ctx context.Context, limit int) ([]domain.TickRun, error)

	// BeginTx starts a transaction for aging the whole stock
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx extends Tx with the row-locked operations used by a tick
type InventoryTx interface {
	Tx // Commit, Rollback

	// GetItemsForUpdate locks and returns every stock row in item_id order
	GetItemsForUpdate(ctx context.Context) ([]domain.StockItem, error)
	UpdateItems(ctx context.Context, items []domain.StockItem) error
	InsertTickRun(ctx context.Context, run *domain.TickRun) error
	CurrentDay(ctx context.Context) (int, error)
}
