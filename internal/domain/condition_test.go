package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestConditionUnmarshal(t *testing.T) {
	t.Run("specific with modifiers", func(t *testing.T) {
		var cond QuestCondition
		err := json.Unmarshal([]byte(`{"type":"SPECIFIC","itemId":"potion","minQuality":"B","quantity":3}`), &cond)

		require.NoError(t, err)
		assert.Equal(t, SpecificRule{ItemID: "potion"}, cond.Rule)
		require.NotNil(t, cond.MinQuality)
		assert.Equal(t, QualityB, *cond.MinQuality)
		assert.Equal(t, 3, cond.RequiredQuantity())
	})

	t.Run("attribute", func(t *testing.T) {
		var cond QuestCondition
		err := json.Unmarshal([]byte(`{"type":"ATTRIBUTE","attribute":"FIRE","minAttributeValue":20}`), &cond)

		require.NoError(t, err)
		assert.Equal(t, AttributeRule{Attribute: AttributeFire, MinValue: 20}, cond.Rule)
		assert.Nil(t, cond.MinQuality)
		assert.Equal(t, 1, cond.RequiredQuantity())
	})

	t.Run("composite decodes nested conditions", func(t *testing.T) {
		var cond QuestCondition
		err := json.Unmarshal([]byte(`{
			"type":"COMPOSITE",
			"subConditions":[
				{"type":"CATEGORY","category":"CONSUMABLE"},
				{"type":"EFFECT","effectType":"HEAL","minEffectValue":30}
			]
		}`), &cond)

		require.NoError(t, err)
		composite, ok := cond.Rule.(CompositeRule)
		require.True(t, ok)
		require.Len(t, composite.SubConditions, 2)
		assert.Equal(t, CategoryRule{Category: CategoryConsumable}, composite.SubConditions[0].Rule)
		assert.Equal(t, EffectRule{EffectType: EffectHeal, MinValue: 30}, composite.SubConditions[1].Rule)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := map[string]string{
			"unknown type":          `{"type":"MYSTERY"}`,
			"attribute missing":     `{"type":"ATTRIBUTE","minAttributeValue":5}`,
			"effect missing":        `{"type":"EFFECT"}`,
			"bad quality":           `{"type":"QUALITY","minQuality":"Z"}`,
			"bad category":          `{"type":"CATEGORY","category":"FOOD"}`,
			"negative quantity":     `{"type":"SPECIFIC","itemId":"potion","quantity":-1}`,
			"bad nested sub clause": `{"type":"COMPOSITE","subConditions":[{"type":"EFFECT"}]}`,
		}
		for name, raw := range cases {
			var cond QuestCondition
			assert.Error(t, json.Unmarshal([]byte(raw), &cond), name)
		}
	})
}

func TestQuestConditionBuilders(t *testing.T) {
	base := QuestCondition{Rule: QualityRule{}}

	withFloor := base.WithMinQuality(QualityA).WithQuantity(4)

	assert.Nil(t, base.MinQuality, "Should not modify the receiver")
	assert.Equal(t, 1, base.RequiredQuantity())
	assert.Equal(t, QualityA, *withFloor.MinQuality)
	assert.Equal(t, 4, withFloor.RequiredQuantity())
	assert.Equal(t, ConditionQuality, withFloor.Type())
	assert.Equal(t, ConditionType(""), QuestCondition{}.Type())
}
