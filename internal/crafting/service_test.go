package crafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/inventory"
)

type materialTable map[string]domain.Material

func (m materialTable) Material(id string) (domain.Material, bool) {
	mat, ok := m[id]
	return mat, ok
}

var testMaterials = materialTable{
	"herb":        {ID: "herb", Name: "Herb", BaseQuality: domain.QualityC, Attributes: []domain.Attribute{domain.AttributeEarth}},
	"water":       {ID: "water", Name: "Pure Water", BaseQuality: domain.QualityC, Attributes: []domain.Attribute{domain.AttributeWater}},
	"flame_stone": {ID: "flame_stone", Name: "Flame Stone", BaseQuality: domain.QualityB, Attributes: []domain.Attribute{domain.AttributeFire, domain.AttributeEarth}, IsRare: true},
}

var healingPotion = domain.Item{
	ID:       "potion",
	Name:     "Healing Potion",
	Category: domain.CategoryConsumable,
	Effects:  []domain.ItemEffect{{Type: domain.EffectHeal, BaseValue: 30}, {Type: domain.EffectCure, BaseValue: 1}},
}

func TestCorrectEffects(t *testing.T) {
	tests := []struct {
		quality domain.Quality
		heal    int
		cure    int
	}{
		{domain.QualityE, 7, 1},
		{domain.QualityD, 15, 1},
		{domain.QualityC, 30, 1},
		{domain.QualityB, 45, 1},
		{domain.QualityA, 60, 2},
		{domain.QualityS, 90, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			effects := CorrectEffects(healingPotion, tt.quality)

			assert.Equal(t, []domain.EffectValue{
				{Type: domain.EffectHeal, Value: tt.heal},
				{Type: domain.EffectCure, Value: tt.cure},
			}, effects)
		})
	}
}

func TestCalculateAttributes(t *testing.T) {
	used := []domain.UsedMaterial{
		{MaterialID: "herb", Quantity: 2, Quality: domain.QualityC},
		{MaterialID: "flame_stone", Quantity: 1, Quality: domain.QualityA},
		{MaterialID: "unknown", Quantity: 5, Quality: domain.QualityS},
	}

	attrs := CalculateAttributes(used, testMaterials)

	// herb: 2 * 50/10 = 10 earth; flame stone: 1 * 90/10 = 9 fire and earth
	assert.Equal(t, []domain.AttributeValue{
		{Attribute: domain.AttributeFire, Value: 9},
		{Attribute: domain.AttributeEarth, Value: 19},
	}, attrs)
}

func TestCraft(t *testing.T) {
	invSvc := inventory.NewService()
	svc := NewService(invSvc, testMaterials, nil, nil)

	stocked := func(t *testing.T) domain.Inventory {
		inv := domain.NewInventory(20)
		var err error
		for _, m := range []domain.MaterialInstance{
			{MaterialID: "herb", Quality: domain.QualityC, Quantity: 3},
			{MaterialID: "water", Quality: domain.QualityA, Quantity: 2},
			{MaterialID: "flame_stone", Quality: domain.QualityS, Quantity: 1},
		} {
			inv, err = invSvc.AddMaterial(inv, m)
			require.NoError(t, err)
		}
		return inv
	}

	t.Run("consumes inputs and adds item", func(t *testing.T) {
		inv := stocked(t)

		next, item, err := svc.Craft(inv, healingPotion, []domain.MaterialInstance{
			{MaterialID: "herb", Quality: domain.QualityC, Quantity: 2},
			{MaterialID: "water", Quality: domain.QualityA, Quantity: 2},
		})

		require.NoError(t, err)
		// (2*50 + 2*90) / 4 = 70 → B
		assert.Equal(t, domain.QualityB, item.Quality())
		assert.Equal(t, 45, item.GetEffectValue(domain.EffectHeal))
		assert.Equal(t, 1, invSvc.GetMaterialCount(next, "herb", nil))
		assert.False(t, invSvc.HasMaterial(next, "water", nil))
		require.Len(t, next.Items, 1)
		assert.Equal(t, item.InstanceID(), next.Items[0].InstanceID())
		assert.Zero(t, item.RareMaterialCount())
	})

	t.Run("marks rare materials", func(t *testing.T) {
		_, item, err := svc.Craft(stocked(t), healingPotion, []domain.MaterialInstance{
			{MaterialID: "flame_stone", Quality: domain.QualityS, Quantity: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, item.RareMaterialCount())
		assert.Equal(t, domain.QualityS, item.Quality())
	})

	t.Run("insufficient material leaves inventory unchanged", func(t *testing.T) {
		inv := stocked(t)

		next, _, err := svc.Craft(inv, healingPotion, []domain.MaterialInstance{
			{MaterialID: "herb", Quality: domain.QualityC, Quantity: 1},
			{MaterialID: "water", Quality: domain.QualityA, Quantity: 5},
		})

		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
		assert.Equal(t, inv, next)
	})

	t.Run("unknown material", func(t *testing.T) {
		_, _, err := svc.Craft(stocked(t), healingPotion, []domain.MaterialInstance{
			{MaterialID: "dragon_scale", Quality: domain.QualityC, Quantity: 1},
		})

		assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
	})

	t.Run("no inputs", func(t *testing.T) {
		_, _, err := svc.Craft(stocked(t), healingPotion, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
}
