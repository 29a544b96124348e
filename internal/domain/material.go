package domain

// Attribute is an elemental property carried by materials and crafted items
type Attribute string

const (
	AttributeFire  Attribute = "FIRE"
	AttributeWater Attribute = "WATER"
	AttributeEarth Attribute = "EARTH"
	AttributeWind  Attribute = "WIND"
	AttributeLight Attribute = "LIGHT"
	AttributeDark  Attribute = "DARK"
)

// Attributes lists every known attribute
var Attributes = []Attribute{
	AttributeFire,
	AttributeWater,
	AttributeEarth,
	AttributeWind,
	AttributeLight,
	AttributeDark,
}

// IsValid reports whether a is a known attribute
func (a Attribute) IsValid() bool {
	for _, known := range Attributes {
		if a == known {
			return true
		}
	}
	return false
}

// Material is master data for a gatherable material
type Material struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	BaseQuality Quality     `json:"baseQuality" validate:"required,quality"`
	Attributes  []Attribute `json:"attributes" validate:"dive,attribute"`
	IsRare      bool        `json:"isRare,omitempty"`
}

// MaterialInstance is a stack of one material at one quality held in an inventory
type MaterialInstance struct {
	MaterialID string  `json:"materialId"`
	Quality    Quality `json:"quality"`
	Quantity   int     `json:"quantity"`
}

// SameStack reports whether other belongs on the same (materialId, quality) stack
func (m MaterialInstance) SameStack(other MaterialInstance) bool {
	return m.MaterialID == other.MaterialID && m.Quality == other.Quality
}
