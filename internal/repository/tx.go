package repository

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Tx is the commit/rollback half of a database transaction
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is meant to be deferred right after BeginTx.
// Rolling back an already committed transaction is expected and not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || err.Error() == domain.ErrMsgTxClosed {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}
