package gildedrose

import "github.com/osse101/GildedRose_Go/internal/domain"

// Category is the closed set of aging behaviours an item can follow
type Category int

const (
	Normal Category = iota
	AgedBrie
	Legendary
	BackstagePass
	Conjured
)

// Categories lists every category in declaration order
var Categories = []Category{Normal, AgedBrie, Legendary, BackstagePass, Conjured}

// Classify maps an item name to its category.
// Only exact, case-sensitive matches select a special rule; anything else is Normal.
func Classify(name string) Category {
	switch name {
	case domain.ItemAgedBrie:
		return AgedBrie
	case domain.ItemSulfuras:
		return Legendary
	case domain.ItemBackstagePass:
		return BackstagePass
	case domain.ItemConjured:
		return Conjured
	default:
		return Normal
	}
}

// String returns the label used in metrics and API payloads
func (c Category) String() string {
	switch c {
	case AgedBrie:
		return LabelAgedBrie
	case Legendary:
		return LabelLegendary
	case BackstagePass:
		return LabelBackstagePass
	case Conjured:
		return LabelConjured
	default:
		return LabelNormal
	}
}

// MarshalText lets categories appear as labels in JSON
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsLegendary reports whether quality is pinned and sell-in frozen
func (c Category) IsLegendary() bool {
	return c == Legendary
}
