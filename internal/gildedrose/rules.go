package gildedrose

import "github.com/osse101/GildedRose_Go/internal/domain"

// Rules holds the numeric bounds shared by every category rule.
// It is passed into Tick by value; nothing in the engine stores per-item state.
type Rules struct {
	MinQuality       int
	MaxQuality       int
	LegendaryQuality int
	Increment        int
}

// DefaultRules returns the standard bounds: quality in [0, 50], legendary at 80, step 1
func DefaultRules() Rules {
	return Rules{
		MinQuality:       domain.MinQuality,
		MaxQuality:       domain.MaxQuality,
		LegendaryQuality: domain.LegendaryQuality,
		Increment:        domain.QualityIncrement,
	}
}

// Tick computes one day of aging for a single (sellIn, quality) pair.
// It is total: every input pair yields a result and nothing can fail.
func Tick(r Rules, c Category, sellIn, quality int) (int, int) {
	switch c {
	case AgedBrie:
		return r.ageAgedBrie(sellIn, quality)
	case Legendary:
		return r.ageLegendary(sellIn, quality)
	case BackstagePass:
		return r.ageBackstagePass(sellIn, quality)
	case Conjured:
		return r.ageConjured(sellIn, quality)
	default:
		return r.ageNormal(sellIn, quality)
	}
}

// ageNormal degrades by one step, two once the decremented sell-in reaches zero
func (r Rules) ageNormal(sellIn, quality int) (int, int) {
	sellIn--
	if quality > r.MinQuality {
		if sellIn <= 0 {
			quality -= r.Increment * expiredRateMultiplier
		} else {
			quality -= r.Increment
		}
	}
	return sellIn, r.floor(quality)
}

// ageAgedBrie improves by one step until the ceiling, with no acceleration past expiry
func (r Rules) ageAgedBrie(sellIn, quality int) (int, int) {
	sellIn--
	if quality < r.MaxQuality {
		quality = r.ceil(quality + r.Increment)
	}
	return sellIn, quality
}

// ageLegendary never moves sell-in and always reports the legendary quality
func (r Rules) ageLegendary(sellIn, _ int) (int, int) {
	return sellIn, r.LegendaryQuality
}

// ageBackstagePass gains value as the concert approaches and is worthless after it
func (r Rules) ageBackstagePass(sellIn, quality int) (int, int) {
	daysLeft := sellIn
	sellIn--

	switch {
	case daysLeft <= 0:
		return sellIn, soldOutQuality
	case daysLeft <= backstageUrgentDays:
		quality += backstageUrgentGain
	case daysLeft <= backstageSoonDays:
		quality += backstageSoonGain
	default:
		quality += backstageFarGain
	}
	return sellIn, r.ceil(quality)
}

// ageConjured degrades at twice the normal step regardless of sell-in
func (r Rules) ageConjured(sellIn, quality int) (int, int) {
	sellIn--
	quality -= r.Increment * expiredRateMultiplier
	return sellIn, r.floor(quality)
}

func (r Rules) floor(quality int) int {
	if quality < r.MinQuality {
		return r.MinQuality
	}
	return quality
}

func (r Rules) ceil(quality int) int {
	if quality > r.MaxQuality {
		return r.MaxQuality
	}
	return quality
}
