package gildedrose

// Backstage pass bands, keyed on the days left when the tick begins
const (
	backstageUrgentDays = 5
	backstageSoonDays   = 10

	backstageUrgentGain = 3
	backstageSoonGain   = 2
	backstageFarGain    = 1

	// soldOutQuality is what a pass is worth once the concert has happened
	soldOutQuality = 0
)

// expiredRateMultiplier applies to normal items once sell-in is used up,
// and to conjured items unconditionally
const expiredRateMultiplier = 2

// Category label values, used for metrics and API responses
const (
	LabelNormal        = "normal"
	LabelAgedBrie      = "aged_brie"
	LabelLegendary     = "legendary"
	LabelBackstagePass = "backstage_pass"
	LabelConjured      = "conjured"
)
