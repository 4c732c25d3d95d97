package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item is a single line of stock as the engine sees it.
// Name is only ever read; the engine writes SellIn and Quality back in place.
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// String renders the item in the "name, sellIn, quality" display form
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// StockItem is a persisted Item together with its storage identity
type StockItem struct {
	ID int `json:"item_id" db:"item_id"`
	Item
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TickRun records one completed day advance
type TickRun struct {
	RunID        uuid.UUID `json:"run_id" db:"run_id"`
	Day          int       `json:"day" db:"day"`
	ItemsUpdated int       `json:"items_updated" db:"items_updated"`
	StartedAt    time.Time `json:"started_at" db:"started_at"`
	FinishedAt   time.Time `json:"finished_at" db:"finished_at"`
}

// TickResult is returned to callers that advanced the stock
type TickResult struct {
	Runs  []TickRun   `json:"runs"`
	Items []StockItem `json:"items"`
}
