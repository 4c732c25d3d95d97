package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func TestSuggestNames(t *testing.T) {
	names := []string{
		domain.ItemDexterityVest,
		domain.ItemAgedBrie,
		domain.ItemMongooseElixir,
		domain.ItemSulfuras,
		domain.ItemBackstagePass,
		domain.ItemConjured,
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"case folded exact", "AGED BRIE", domain.ItemAgedBrie},
		{"typo", "Agde Brie", domain.ItemAgedBrie},
		{"prefix", "Conjured Mana", domain.ItemConjured},
		{"substring", "Mongoose", domain.ItemMongooseElixir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suggestNames(tt.query, names, MaxSuggestions)
			if assert.NotEmpty(t, got) {
				assert.Equal(t, tt.want, got[0])
			}
			assert.LessOrEqual(t, len(got), MaxSuggestions)
		})
	}

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, suggestNames("zzzzzzzzzzzzzzzz", names, MaxSuggestions))
	})

	t.Run("blank query", func(t *testing.T) {
		assert.Nil(t, suggestNames("   ", names, MaxSuggestions))
	})
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Name: "brie"}
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.NotContains(t, err.Error(), "did you mean")

	err.Suggestions = []string{domain.ItemAgedBrie}
	assert.Contains(t, err.Error(), `did you mean "Aged Brie"?`)
}
