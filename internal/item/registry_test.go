package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

func TestRegistry(t *testing.T) {
	items := []domain.Item{
		{ID: "potion", Name: "Potion", Category: domain.CategoryConsumable, Effects: []domain.ItemEffect{{Type: domain.EffectHeal, BaseValue: 30}}},
		{ID: "sword", Name: "Sword", Category: domain.CategoryEquipment},
	}
	materials := []domain.Material{
		{ID: "herb", Name: "Herb", BaseQuality: domain.QualityC, Attributes: []domain.Attribute{domain.AttributeEarth}},
	}

	reg, err := NewRegistry(items, materials)
	require.NoError(t, err)

	t.Run("category lookup", func(t *testing.T) {
		var lookup domain.CategoryLookup = reg

		cat, ok := lookup.CategoryOf("sword")
		assert.True(t, ok)
		assert.Equal(t, domain.CategoryEquipment, cat)

		_, ok = lookup.CategoryOf("shield")
		assert.False(t, ok)

		assert.Equal(t, domain.CategoryMap{
			"potion": domain.CategoryConsumable,
			"sword":  domain.CategoryEquipment,
		}, reg.Categories())
	})

	t.Run("returned values are detached", func(t *testing.T) {
		potion, ok := reg.Item("potion")
		require.True(t, ok)
		potion.Effects[0].BaseValue = 999
		items[0].Effects[0].BaseValue = 999

		again, _ := reg.Item("potion")
		assert.Equal(t, 30, again.Effects[0].BaseValue)

		herb, ok := reg.Material("herb")
		require.True(t, ok)
		herb.Attributes[0] = domain.AttributeDark

		again2, _ := reg.Material("herb")
		assert.Equal(t, domain.AttributeEarth, again2.Attributes[0])
	})

	t.Run("ids keep master data order", func(t *testing.T) {
		assert.Equal(t, []string{"potion", "sword"}, reg.ItemIDs())
	})

	t.Run("duplicates rejected", func(t *testing.T) {
		_, err := NewRegistry(append(items, domain.Item{ID: "sword"}), nil)
		assert.ErrorIs(t, err, ErrDuplicateID)

		_, err = NewRegistry(nil, append(materials, materials[0]))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}
