package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func seed(t *testing.T, repo *InventoryRepository, items ...domain.Item) {
	t.Helper()
	for i := range items {
		_, err := repo.InsertItem(context.Background(), &items[i])
		require.NoError(t, err)
	}
}

func TestInventoryRepository_ListAndGet(t *testing.T) {
	repo := NewInventoryRepository(setupTestPool(t))
	ctx := context.Background()

	seed(t, repo,
		domain.Item{Name: domain.ItemDexterityVest, SellIn: 10, Quality: 20},
		domain.Item{Name: domain.ItemAgedBrie, SellIn: 2, Quality: 0},
	)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.ItemDexterityVest, items[0].Name, "insertion order is preserved")
	assert.Equal(t, domain.ItemAgedBrie, items[1].Name)
	assert.False(t, items[0].UpdatedAt.IsZero())

	brie, err := repo.GetItemByName(ctx, domain.ItemAgedBrie)
	require.NoError(t, err)
	assert.Equal(t, 2, brie.SellIn)

	_, err = repo.GetItemByName(ctx, "aged brie")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestInventoryRepository_InsertDuplicate(t *testing.T) {
	repo := NewInventoryRepository(setupTestPool(t))

	seed(t, repo, domain.Item{Name: domain.ItemConjured, SellIn: 3, Quality: 6})
	_, err := repo.InsertItem(context.Background(), &domain.Item{Name: domain.ItemConjured})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already stocked")
}

func TestInventoryTx_UpdateAndRecordRun(t *testing.T) {
	repo := NewInventoryRepository(setupTestPool(t))
	ctx := context.Background()

	seed(t, repo,
		domain.Item{Name: domain.ItemDexterityVest, SellIn: 10, Quality: 20},
		domain.Item{Name: domain.ItemSulfuras, SellIn: 0, Quality: 80},
	)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	locked, err := tx.GetItemsForUpdate(ctx)
	require.NoError(t, err)
	require.Len(t, locked, 2)

	locked[0].SellIn, locked[0].Quality = 9, 19
	require.NoError(t, tx.UpdateItems(ctx, locked))

	day, err := tx.CurrentDay(ctx)
	require.NoError(t, err)
	assert.Zero(t, day)

	now := time.Now().UTC()
	require.NoError(t, tx.InsertTickRun(ctx, &domain.TickRun{
		RunID:        uuid.New(),
		Day:          day + 1,
		ItemsUpdated: len(locked),
		StartedAt:    now,
		FinishedAt:   now,
	}))
	require.NoError(t, tx.Commit(ctx))

	vest, err := repo.GetItemByName(ctx, domain.ItemDexterityVest)
	require.NoError(t, err)
	assert.Equal(t, 9, vest.SellIn)
	assert.Equal(t, 19, vest.Quality)

	day, err = repo.CurrentDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, day)

	runs, err := repo.ListTickRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 2, runs[0].ItemsUpdated)
}

func TestInventoryTx_RollbackDiscardsChanges(t *testing.T) {
	repo := NewInventoryRepository(setupTestPool(t))
	ctx := context.Background()

	seed(t, repo, domain.Item{Name: domain.ItemAgedBrie, SellIn: 2, Quality: 0})

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	locked, err := tx.GetItemsForUpdate(ctx)
	require.NoError(t, err)
	locked[0].Quality = 1
	require.NoError(t, tx.UpdateItems(ctx, locked))
	require.NoError(t, tx.Rollback(ctx))

	brie, err := repo.GetItemByName(ctx, domain.ItemAgedBrie)
	require.NoError(t, err)
	assert.Zero(t, brie.Quality)

	// A second rollback reports the closed transaction
	assert.ErrorIs(t, tx.Rollback(ctx), pgx.ErrTxClosed)
}

func TestInventoryTx_UpdateMissingItem(t *testing.T) {
	repo := NewInventoryRepository(setupTestPool(t))
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.UpdateItems(ctx, []domain.StockItem{{ID: 999}})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestInventoryRepository_SyncMetadata(t *testing.T) {
	repo := NewInventoryRepository(setupTestPool(t))
	ctx := context.Background()

	_, err := repo.GetSyncMetadata(ctx, domain.ConfigNameCatalog)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	mod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   domain.ConfigNameCatalog,
		FileHash:     "abc",
		FileModTime:  mod,
		LastSyncTime: mod,
	}))
	require.NoError(t, repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   domain.ConfigNameCatalog,
		FileHash:     "def",
		FileModTime:  mod,
		LastSyncTime: mod.Add(time.Hour),
	}))

	meta, err := repo.GetSyncMetadata(ctx, domain.ConfigNameCatalog)
	require.NoError(t, err)
	assert.Equal(t, "def", meta.FileHash)
	assert.True(t, meta.FileModTime.Equal(mod))
}
