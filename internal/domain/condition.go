package domain

import (
	"encoding/json"
	"fmt"
)

// ConditionType discriminates quest condition rules
type ConditionType string

const (
	ConditionSpecific     ConditionType = "SPECIFIC"
	ConditionCategory     ConditionType = "CATEGORY"
	ConditionAttribute    ConditionType = "ATTRIBUTE"
	ConditionEffect       ConditionType = "EFFECT"
	ConditionQuality      ConditionType = "QUALITY"
	ConditionRareMaterial ConditionType = "RARE_MATERIAL"
	ConditionMaterial     ConditionType = "MATERIAL"
	ConditionComposite    ConditionType = "COMPOSITE"
)

// ConditionRule is the type-specific part of a quest condition.
// The set of implementations is closed to this package.
type ConditionRule interface {
	Type() ConditionType
	isConditionRule()
}

// SpecificRule requires a particular item id. An empty ItemID matches any item.
type SpecificRule struct {
	ItemID string
}

// CategoryRule requires the item's master-data category
type CategoryRule struct {
	Category ItemCategory
}

// AttributeRule requires a minimum attribute value
type AttributeRule struct {
	Attribute Attribute
	MinValue  int
}

// EffectRule requires a minimum effect value
type EffectRule struct {
	EffectType EffectType
	MinValue   int
}

// QualityRule carries no type-specific constraint; only the quality floor applies
type QualityRule struct{}

// RareMaterialRule describes items crafted with rare materials
type RareMaterialRule struct {
	Count int
}

// MaterialRule describes items crafted from a given material
type MaterialRule struct {
	MaterialID string
}

// CompositeRule groups nested conditions
type CompositeRule struct {
	SubConditions []QuestCondition
}

func (SpecificRule) Type() ConditionType     { return ConditionSpecific }
func (CategoryRule) Type() ConditionType     { return ConditionCategory }
func (AttributeRule) Type() ConditionType    { return ConditionAttribute }
func (EffectRule) Type() ConditionType       { return ConditionEffect }
func (QualityRule) Type() ConditionType      { return ConditionQuality }
func (RareMaterialRule) Type() ConditionType { return ConditionRareMaterial }
func (MaterialRule) Type() ConditionType     { return ConditionMaterial }
func (CompositeRule) Type() ConditionType    { return ConditionComposite }

func (SpecificRule) isConditionRule()     {}
func (CategoryRule) isConditionRule()     {}
func (AttributeRule) isConditionRule()    {}
func (EffectRule) isConditionRule()       {}
func (QualityRule) isConditionRule()      {}
func (RareMaterialRule) isConditionRule() {}
func (MaterialRule) isConditionRule()     {}
func (CompositeRule) isConditionRule()    {}

// QuestCondition pairs a rule with the modifiers that apply to every rule type
type QuestCondition struct {
	Rule       ConditionRule
	MinQuality *Quality
	Quantity   int
}

// RequiredQuantity returns Quantity, defaulting to 1 when unset
func (c QuestCondition) RequiredQuantity() int {
	if c.Quantity <= 0 {
		return 1
	}
	return c.Quantity
}

// Type returns the rule's discriminant, or "" when no rule is set
func (c QuestCondition) Type() ConditionType {
	if c.Rule == nil {
		return ""
	}
	return c.Rule.Type()
}

// WithMinQuality returns a copy of c with the quality floor set
func (c QuestCondition) WithMinQuality(q Quality) QuestCondition {
	c.MinQuality = &q
	return c
}

// WithQuantity returns a copy of c requiring n items
func (c QuestCondition) WithQuantity(n int) QuestCondition {
	c.Quantity = n
	return c
}

// clone returns a deep copy of c so the quality floor and nested sub-conditions are not shared
func (c QuestCondition) clone() QuestCondition {
	if c.MinQuality != nil {
		q := *c.MinQuality
		c.MinQuality = &q
	}
	if composite, ok := c.Rule.(CompositeRule); ok && composite.SubConditions != nil {
		subs := make([]QuestCondition, len(composite.SubConditions))
		for i, sub := range composite.SubConditions {
			subs[i] = sub.clone()
		}
		c.Rule = CompositeRule{SubConditions: subs}
	}
	return c
}

// ConditionDef is the flat JSON form of a quest condition used by master data
type ConditionDef struct {
	Type               ConditionType  `json:"type" validate:"required"`
	ItemID             string         `json:"itemId,omitempty"`
	Category           ItemCategory   `json:"category,omitempty"`
	MinQuality         Quality        `json:"minQuality,omitempty"`
	Quantity           int            `json:"quantity,omitempty" validate:"gte=0"`
	Attribute          Attribute      `json:"attribute,omitempty"`
	MinAttributeValue  int            `json:"minAttributeValue,omitempty"`
	EffectType         EffectType     `json:"effectType,omitempty"`
	MinEffectValue     int            `json:"minEffectValue,omitempty"`
	RareMaterialCount  int            `json:"rareMaterialCount,omitempty"`
	RequiredMaterialID string         `json:"requiredMaterialId,omitempty"`
	SubConditions      []ConditionDef `json:"subConditions,omitempty"`
}

// ToCondition converts the flat form into a QuestCondition, rejecting variants that miss their key field
func (d ConditionDef) ToCondition() (QuestCondition, error) {
	var cond QuestCondition

	if d.MinQuality != "" {
		q, err := ParseQuality(string(d.MinQuality))
		if err != nil {
			return cond, err
		}
		cond.MinQuality = &q
	}
	if d.Quantity < 0 {
		return cond, fmt.Errorf("%w: negative quantity %d", ErrInvalidCondition, d.Quantity)
	}
	cond.Quantity = d.Quantity

	switch d.Type {
	case ConditionSpecific:
		cond.Rule = SpecificRule{ItemID: d.ItemID}
	case ConditionCategory:
		if d.Category != "" && !d.Category.IsValid() {
			return cond, fmt.Errorf("%w: %q", ErrInvalidCategory, d.Category)
		}
		cond.Rule = CategoryRule{Category: d.Category}
	case ConditionAttribute:
		if !d.Attribute.IsValid() {
			return cond, fmt.Errorf("%w: %s condition needs attribute, got %q", ErrInvalidCondition, d.Type, d.Attribute)
		}
		cond.Rule = AttributeRule{Attribute: d.Attribute, MinValue: d.MinAttributeValue}
	case ConditionEffect:
		if !d.EffectType.IsValid() {
			return cond, fmt.Errorf("%w: %s condition needs effectType, got %q", ErrInvalidCondition, d.Type, d.EffectType)
		}
		cond.Rule = EffectRule{EffectType: d.EffectType, MinValue: d.MinEffectValue}
	case ConditionQuality:
		cond.Rule = QualityRule{}
	case ConditionRareMaterial:
		cond.Rule = RareMaterialRule{Count: d.RareMaterialCount}
	case ConditionMaterial:
		cond.Rule = MaterialRule{MaterialID: d.RequiredMaterialID}
	case ConditionComposite:
		subs := make([]QuestCondition, 0, len(d.SubConditions))
		for i, sd := range d.SubConditions {
			sub, err := sd.ToCondition()
			if err != nil {
				return cond, fmt.Errorf("sub condition %d: %w", i, err)
			}
			subs = append(subs, sub)
		}
		cond.Rule = CompositeRule{SubConditions: subs}
	default:
		return cond, fmt.Errorf("%w: unknown type %q", ErrInvalidCondition, d.Type)
	}

	return cond, nil
}

// UnmarshalJSON decodes the flat master-data form
func (c *QuestCondition) UnmarshalJSON(data []byte) error {
	var def ConditionDef
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	cond, err := def.ToCondition()
	if err != nil {
		return err
	}
	*c = cond
	return nil
}
