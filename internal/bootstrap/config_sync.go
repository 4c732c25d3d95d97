package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/catalog"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// SyncCatalog loads, validates, and seeds missing stock from the catalog file.
// Unchanged files are skipped by content hash. A sync event is published when publisher is non-nil.
func SyncCatalog(ctx context.Context, loader catalog.Loader, path string, repo repository.Catalog, publisher event.Publisher) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	result, err := loader.SyncToDatabase(ctx, cfg, repo, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if result.Unchanged {
		slog.Info(LogMsgCatalogUnchanged)
	} else {
		slog.Info(LogMsgCatalogSynced,
			"inserted", result.ItemsInserted,
			"skipped", result.ItemsSkipped)
	}

	if publisher != nil {
		evt := event.NewCatalogSyncedEvent(result.ItemsInserted, result.ItemsSkipped, result.Unchanged)
		if err := publisher.Publish(ctx, evt); err != nil {
			slog.Warn("Failed to publish catalog synced event", "error", err)
		}
	}

	return result, nil
}
