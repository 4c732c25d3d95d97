package gildedrose

import "github.com/osse101/GildedRose_Go/internal/domain"

// Engine provides pure aging logic (no DB dependencies)
type Engine struct {
	rules Rules
}

// NewEngine creates an engine with the default rules
func NewEngine() *Engine {
	return &Engine{rules: DefaultRules()}
}

// NewEngineWithRules creates an engine with custom bounds
func NewEngineWithRules(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the bounds this engine ages items with
func (e *Engine) Rules() Rules {
	return e.rules
}

// UpdateQuality advances every item by one day, in order.
// Items are neither added, removed nor reordered; nil entries are skipped.
func (e *Engine) UpdateQuality(items []*domain.Item) {
	for _, item := range items {
		if item == nil {
			continue
		}
		e.Age(item)
	}
}

// Age advances a single item by one day and returns the category it was aged under.
// The category is derived from the name on every call.
func (e *Engine) Age(item *domain.Item) Category {
	c := Classify(item.Name)
	item.SellIn, item.Quality = Tick(e.rules, c, item.SellIn, item.Quality)
	return c
}

// UpdateStock ages persisted stock in place and counts items per category
func (e *Engine) UpdateStock(stock []domain.StockItem) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for i := range stock {
		c := e.Age(&stock[i].Item)
		counts[c]++
	}
	return counts
}
