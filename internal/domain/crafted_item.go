package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// AttributeValue is the strength of one attribute on a crafted item
type AttributeValue struct {
	Attribute Attribute `json:"attribute"`
	Value     int       `json:"value"`
}

// EffectValue is a quality-corrected effect on a crafted item
type EffectValue struct {
	Type  EffectType `json:"type"`
	Value int        `json:"value"`
}

// UsedMaterial records one material input of a craft
type UsedMaterial struct {
	MaterialID string  `json:"materialId"`
	Quantity   int     `json:"quantity"`
	Quality    Quality `json:"quality"`
	IsRare     bool    `json:"isRare"`
}

// CraftedItemParams carries the inputs for NewCraftedItem
type CraftedItemParams struct {
	InstanceID      string           `json:"instanceId"`
	ItemID          string           `json:"itemId"`
	Quality         Quality          `json:"quality"`
	AttributeValues []AttributeValue `json:"attributeValues"`
	EffectValues    []EffectValue    `json:"effectValues"`
	UsedMaterials   []UsedMaterial   `json:"usedMaterials"`
}

// CraftedItem is an immutable crafted item instance held in an inventory.
// Effect values are corrected for quality when the item is created and never recomputed.
type CraftedItem struct {
	instanceID      string
	itemID          string
	quality         Quality
	attributeValues []AttributeValue
	effectValues    []EffectValue
	usedMaterials   []UsedMaterial
}

// NewCraftedItem validates params and returns a CraftedItem that owns private copies of every slice.
// An empty InstanceID is replaced by a fresh UUID.
func NewCraftedItem(p CraftedItemParams) (CraftedItem, error) {
	if p.ItemID == "" {
		return CraftedItem{}, fmt.Errorf("%w: empty item id", ErrInvalidItem)
	}
	if !p.Quality.IsValid() {
		return CraftedItem{}, fmt.Errorf("%w: %q", ErrInvalidQuality, p.Quality)
	}

	seenAttr := make(map[Attribute]bool, len(p.AttributeValues))
	for _, av := range p.AttributeValues {
		if seenAttr[av.Attribute] {
			return CraftedItem{}, fmt.Errorf("%w: duplicate attribute %s", ErrInvalidItem, av.Attribute)
		}
		seenAttr[av.Attribute] = true
	}

	seenEffect := make(map[EffectType]bool, len(p.EffectValues))
	for _, ev := range p.EffectValues {
		if seenEffect[ev.Type] {
			return CraftedItem{}, fmt.Errorf("%w: duplicate effect %s", ErrInvalidItem, ev.Type)
		}
		seenEffect[ev.Type] = true
	}

	for _, m := range p.UsedMaterials {
		if m.Quantity <= 0 {
			return CraftedItem{}, fmt.Errorf("%w: material %s", ErrInvalidQuantity, m.MaterialID)
		}
		if !m.Quality.IsValid() {
			return CraftedItem{}, fmt.Errorf("%w: material %s has %q", ErrInvalidQuality, m.MaterialID, m.Quality)
		}
	}

	id := p.InstanceID
	if id == "" {
		id = uuid.NewString()
	}

	return CraftedItem{
		instanceID:      id,
		itemID:          p.ItemID,
		quality:         p.Quality,
		attributeValues: cloneSlice(p.AttributeValues),
		effectValues:    cloneSlice(p.EffectValues),
		usedMaterials:   cloneSlice(p.UsedMaterials),
	}, nil
}

// MustCraftedItem is NewCraftedItem for static fixtures; it panics on invalid params
func MustCraftedItem(p CraftedItemParams) CraftedItem {
	item, err := NewCraftedItem(p)
	if err != nil {
		panic(err)
	}
	return item
}

func (c CraftedItem) InstanceID() string { return c.instanceID }
func (c CraftedItem) ItemID() string     { return c.itemID }
func (c CraftedItem) Quality() Quality   { return c.quality }

// AttributeValues returns a copy of the attribute values
func (c CraftedItem) AttributeValues() []AttributeValue { return cloneSlice(c.attributeValues) }

// EffectValues returns a copy of the effect values
func (c CraftedItem) EffectValues() []EffectValue { return cloneSlice(c.effectValues) }

// UsedMaterials returns a copy of the materials consumed by the craft
func (c CraftedItem) UsedMaterials() []UsedMaterial { return cloneSlice(c.usedMaterials) }

// GetAttributeValue returns the value of attr, or 0 when the item has none
func (c CraftedItem) GetAttributeValue(attr Attribute) int {
	for _, av := range c.attributeValues {
		if av.Attribute == attr {
			return av.Value
		}
	}
	return 0
}

// GetEffectValue returns the value of effect t, or 0 when the item has none
func (c CraftedItem) GetEffectValue(t EffectType) int {
	for _, ev := range c.effectValues {
		if ev.Type == t {
			return ev.Value
		}
	}
	return 0
}

// RareMaterialCount sums the quantities of rare materials used in the craft
func (c CraftedItem) RareMaterialCount() int {
	total := 0
	for _, m := range c.usedMaterials {
		if m.IsRare {
			total += m.Quantity
		}
	}
	return total
}

// UsedMaterial reports whether materialID was an input of the craft
func (c CraftedItem) UsedMaterial(materialID string) bool {
	for _, m := range c.usedMaterials {
		if m.MaterialID == materialID {
			return true
		}
	}
	return false
}

// SameInstance reports whether c and other are the same crafted instance
func (c CraftedItem) SameInstance(other CraftedItem) bool {
	return c.instanceID != "" && c.instanceID == other.instanceID
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// MarshalJSON encodes the item in its CraftedItemParams form
func (c CraftedItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(CraftedItemParams{
		InstanceID:      c.instanceID,
		ItemID:          c.itemID,
		Quality:         c.quality,
		AttributeValues: c.attributeValues,
		EffectValues:    c.effectValues,
		UsedMaterials:   c.usedMaterials,
	})
}

// UnmarshalJSON decodes the CraftedItemParams form, applying the same checks as NewCraftedItem
func (c *CraftedItem) UnmarshalJSON(data []byte) error {
	var p CraftedItemParams
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	item, err := NewCraftedItem(p)
	if err != nil {
		return err
	}
	*c = item
	return nil
}
