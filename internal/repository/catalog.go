package repository

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Catalog defines the persistence needed to seed stock from the catalog file
type Catalog interface {
	ListItems(ctx context.Context) ([]domain.StockItem, error)
	InsertItem(ctx context.Context, item *domain.Item) (int, error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
