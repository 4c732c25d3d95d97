package domain

// Item names with special aging behaviour. Matching is exact and case-sensitive.
const (
	ItemAgedBrie      = "Aged Brie"
	ItemSulfuras      = "Sulfuras, Hand of Ragnaros"
	ItemBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	ItemConjured      = "Conjured Mana Cake"
)

// Names used by the standard fixture that have no special rule
const (
	ItemDexterityVest  = "+5 Dexterity Vest"
	ItemMongooseElixir = "Elixir of the Mongoose"
)

// Quality bounds
const (
	MinQuality       = 0
	MaxQuality       = 50
	LegendaryQuality = 80
	QualityIncrement = 1
)

// Day advance limits for a single request
const (
	MinDaysPerRequest = 1
	MaxDaysPerRequest = 365
)

// Config names tracked in sync metadata
const (
	ConfigNameCatalog = "catalog"
)
