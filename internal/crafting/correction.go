package crafting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/utils"
)

// MinEffectValue is the smallest value a corrected effect can have
const MinEffectValue = 1

// AttributeDivisor converts a material unit's quality value into attribute points
const AttributeDivisor = 10

// CalculateQuality derives a crafted item's quality from the materials consumed
func CalculateQuality(materials []domain.UsedMaterial) domain.Quality {
	return utils.CalculateAverageQuality(materials)
}

// CorrectEffects scales each base effect of item by the quality multiplier, flooring to MinEffectValue
func CorrectEffects(item domain.Item, quality domain.Quality) []domain.EffectValue {
	multiplier := decimal.NewFromFloat(quality.Multiplier())
	effects := item.EffectList()

	out := make([]domain.EffectValue, 0, len(effects))
	for _, effect := range effects {
		value := int(decimal.NewFromInt(int64(effect.BaseValue)).Mul(multiplier).Floor().IntPart())
		if value < MinEffectValue {
			value = MinEffectValue
		}
		out = append(out, domain.EffectValue{Type: effect.Type, Value: value})
	}
	return out
}

// CalculateAttributes sums attribute points over the used materials.
// Each unit adds its quality value divided by AttributeDivisor to every attribute its material carries.
// Output order follows domain.Attributes.
func CalculateAttributes(used []domain.UsedMaterial, lookup MaterialLookup) []domain.AttributeValue {
	points := make(map[domain.Attribute]int)
	for _, u := range used {
		material, ok := lookup.Material(u.MaterialID)
		if !ok {
			continue
		}
		for _, attr := range material.Attributes {
			points[attr] += u.Quantity * u.Quality.Value() / AttributeDivisor
		}
	}

	var out []domain.AttributeValue
	for _, attr := range domain.Attributes {
		if v, ok := points[attr]; ok {
			out = append(out, domain.AttributeValue{Attribute: attr, Value: v})
		}
	}
	return out
}

// BuildCraftedItem assembles a quality-corrected crafted item from its master data and inputs
func BuildCraftedItem(item domain.Item, used []domain.UsedMaterial, lookup MaterialLookup) (domain.CraftedItem, error) {
	if len(used) == 0 {
		return domain.CraftedItem{}, fmt.Errorf("%w: %s needs at least one material", domain.ErrInvalidQuantity, item.ID)
	}

	quality := CalculateQuality(used)
	return domain.NewCraftedItem(domain.CraftedItemParams{
		ItemID:          item.ID,
		Quality:         quality,
		AttributeValues: CalculateAttributes(used, lookup),
		EffectValues:    CorrectEffects(item, quality),
		UsedMaterials:   used,
	})
}
