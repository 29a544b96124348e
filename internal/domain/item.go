package domain

// ItemCategory classifies master-data items
type ItemCategory string

const (
	CategoryMaterial   ItemCategory = "MATERIAL"
	CategoryConsumable ItemCategory = "CONSUMABLE"
	CategoryEquipment  ItemCategory = "EQUIPMENT"
	CategoryAccessory  ItemCategory = "ACCESSORY"
	CategoryBook       ItemCategory = "BOOK"
	CategoryMisc       ItemCategory = "MISC"
)

// ItemCategories lists every known category
var ItemCategories = []ItemCategory{
	CategoryMaterial,
	CategoryConsumable,
	CategoryEquipment,
	CategoryAccessory,
	CategoryBook,
	CategoryMisc,
}

// IsValid reports whether c is a known category
func (c ItemCategory) IsValid() bool {
	for _, known := range ItemCategories {
		if c == known {
			return true
		}
	}
	return false
}

// EffectType identifies what an item effect does
type EffectType string

const (
	EffectHeal    EffectType = "HEAL"
	EffectAttack  EffectType = "ATTACK"
	EffectDefense EffectType = "DEFENSE"
	EffectBuff    EffectType = "BUFF"
	EffectDebuff  EffectType = "DEBUFF"
	EffectCure    EffectType = "CURE"
	EffectSpecial EffectType = "SPECIAL"
)

// EffectTypes lists every known effect type
var EffectTypes = []EffectType{
	EffectHeal,
	EffectAttack,
	EffectDefense,
	EffectBuff,
	EffectDebuff,
	EffectCure,
	EffectSpecial,
}

// IsValid reports whether e is a known effect type
func (e EffectType) IsValid() bool {
	for _, known := range EffectTypes {
		if e == known {
			return true
		}
	}
	return false
}

// ItemEffect is a base effect declared by master data
type ItemEffect struct {
	Type      EffectType `json:"type" validate:"required,effect_type"`
	BaseValue int        `json:"baseValue" validate:"gt=0"`
}

// Item is a master-data item definition. Values are loaded once and treated as read-only.
type Item struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Category    ItemCategory `json:"category" validate:"required,item_category"`
	Effects     []ItemEffect `json:"effects" validate:"dive"`
	BasePrice   *int         `json:"basePrice,omitempty" validate:"omitempty,gt=0"`
	Description string       `json:"description,omitempty"`
}

// EffectList returns a copy of the item's effects
func (i Item) EffectList() []ItemEffect {
	out := make([]ItemEffect, len(i.Effects))
	copy(out, i.Effects)
	return out
}

// HasBasePrice reports whether the item can be priced
func (i Item) HasBasePrice() bool {
	return i.BasePrice != nil && *i.BasePrice > 0
}

// CategoryLookup resolves an item id to its category
type CategoryLookup interface {
	CategoryOf(itemID string) (ItemCategory, bool)
}

// CategoryMap is a plain id→category table
type CategoryMap map[string]ItemCategory

// CategoryOf implements CategoryLookup
func (m CategoryMap) CategoryOf(itemID string) (ItemCategory, bool) {
	c, ok := m[itemID]
	return c, ok
}
