package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// collectStock scans rows produced by a SELECT of stockColumns and closes them
func collectStock(rows pgx.Rows) ([]domain.StockItem, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StockItem, error) {
		var item domain.StockItem
		err := row.Scan(&item.ID, &item.Name, &item.SellIn, &item.Quality, &item.UpdatedAt)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock: %w", err)
	}
	return items, nil
}

func currentDay(ctx context.Context, q querier) (int, error) {
	var day int
	if err := q.QueryRow(ctx, `SELECT COALESCE(MAX(day), 0) FROM tick_runs`).Scan(&day); err != nil {
		return 0, fmt.Errorf("failed to read current day: %w", err)
	}
	return day, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}
