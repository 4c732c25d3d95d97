package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

const stockColumns = `item_id, name, sell_in, quality, updated_at`

// InventoryRepository implements stock and catalog persistence with raw pgx queries
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new PostgreSQL stock repository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var (
	_ repository.Inventory = (*InventoryRepository)(nil)
	_ repository.Catalog   = (*InventoryRepository)(nil)
)

// ListItems returns every stock row in insertion order
func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.StockItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+stockColumns+` FROM stock_items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	return collectStock(rows)
}

// GetItemByName returns domain.ErrItemNotFound when no row matches exactly
func (r *InventoryRepository) GetItemByName(ctx context.Context, name string) (*domain.StockItem, error) {
	row := r.db.QueryRow(ctx, `SELECT `+stockColumns+` FROM stock_items WHERE name = $1`, name)

	var item domain.StockItem
	if err := row.Scan(&item.ID, &item.Name, &item.SellIn, &item.Quality, &item.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %q: %w", name, err)
	}
	return &item, nil
}

// InsertItem adds a catalog item and returns its id
func (r *InventoryRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO stock_items (name, sell_in, quality)
		VALUES ($1, $2, $3)
		RETURNING item_id`,
		item.Name, item.SellIn, item.Quality,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("item %q already stocked: %w", item.Name, err)
		}
		return 0, fmt.Errorf("failed to insert item %q: %w", item.Name, err)
	}
	return id, nil
}

// CurrentDay is the number of ticks recorded so far
func (r *InventoryRepository) CurrentDay(ctx context.Context) (int, error) {
	return currentDay(ctx, r.db)
}

// ListTickRuns returns the most recent runs first
func (r *InventoryRepository) ListTickRuns(ctx context.Context, limit int) ([]domain.TickRun, error) {
	rows, err := r.db.Query(ctx, `
		SELECT run_id, day, items_updated, started_at, finished_at
		FROM tick_runs
		ORDER BY day DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tick runs: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.TickRun, 0, limit)
	for rows.Next() {
		var run domain.TickRun
		if err := rows.Scan(&run.RunID, &run.Day, &run.ItemsUpdated, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tick run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetSyncMetadata returns pgx.ErrNoRows wrapped when the config was never synced
func (r *InventoryRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.db.QueryRow(ctx, `
		SELECT config_name, file_hash, file_mod_time, last_synced_at
		FROM sync_metadata
		WHERE config_name = $1`, configName,
	).Scan(&meta.ConfigName, &meta.FileHash, &meta.FileModTime, &meta.LastSyncTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync metadata for %s: %w", configName, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata records the hash of the last synced file
func (r *InventoryRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, file_hash, file_mod_time, last_synced_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time,
		    last_synced_at = EXCLUDED.last_synced_at`,
		metadata.ConfigName, metadata.FileHash, metadata.FileModTime, metadata.LastSyncTime)
	if err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}

// BeginTx starts a transaction for a tick
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &inventoryTx{tx: tx}, nil
}

type inventoryTx struct {
	tx pgx.Tx
}

// GetItemsForUpdate locks every stock row until commit
func (t *inventoryTx) GetItemsForUpdate(ctx context.Context) ([]domain.StockItem, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+stockColumns+` FROM stock_items ORDER BY item_id FOR UPDATE`)
	if err != nil {
		return nil, fmt.Errorf("failed to lock stock: %w", err)
	}
	return collectStock(rows)
}

// UpdateItems writes sell-in and quality for every item in one batch
func (t *inventoryTx) UpdateItems(ctx context.Context, items []domain.StockItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
			UPDATE stock_items
			SET sell_in = $2, quality = $3, updated_at = NOW()
			WHERE item_id = $1`,
			item.ID, item.SellIn, item.Quality)
	}

	results := t.tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, item := range items {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("failed to update item %d: %w", item.ID, err)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("failed to update item %d: %w", item.ID, domain.ErrItemNotFound)
		}
	}
	return nil
}

// InsertTickRun records a completed tick
func (t *inventoryTx) InsertTickRun(ctx context.Context, run *domain.TickRun) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO tick_runs (run_id, day, items_updated, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5)`,
		run.RunID, run.Day, run.ItemsUpdated, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert tick run: %w", err)
	}
	return nil
}

// CurrentDay reads the day counter inside the transaction
func (t *inventoryTx) CurrentDay(ctx context.Context) (int, error) {
	return currentDay(ctx, t.tx)
}

// Commit commits the transaction
func (t *inventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *inventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
