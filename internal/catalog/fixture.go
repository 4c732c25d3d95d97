package catalog

import "github.com/osse101/GildedRose_Go/internal/domain"

// FixtureItems returns a fresh copy of the nine-item texttest inventory.
// Duplicated names are deliberate: the engine ages items, not names.
// Stocked items are unique by name, so only cmd/texttest runs the full fixture.
func FixtureItems() []*domain.Item {
	return []*domain.Item{
		{Name: domain.ItemDexterityVest, SellIn: 10, Quality: 20},
		{Name: domain.ItemAgedBrie, SellIn: 2, Quality: 0},
		{Name: domain.ItemMongooseElixir, SellIn: 5, Quality: 7},
		{Name: domain.ItemSulfuras, SellIn: 0, Quality: 80},
		{Name: domain.ItemSulfuras, SellIn: -1, Quality: 80},
		{Name: domain.ItemBackstagePass, SellIn: 15, Quality: 20},
		{Name: domain.ItemBackstagePass, SellIn: 10, Quality: 49},
		{Name: domain.ItemBackstagePass, SellIn: 5, Quality: 49},
		{Name: domain.ItemConjured, SellIn: 3, Quality: 6},
	}
}
