package domain

// Inventory is a snapshot of the player's holdings. Services take it by value and return a new one.
type Inventory struct {
	Materials        []MaterialInstance `json:"materials"`
	Items            []CraftedItem      `json:"items"`
	MaterialCapacity int                `json:"materialCapacity"`
}

// NewInventory returns an empty inventory with the given material capacity
func NewInventory(materialCapacity int) Inventory {
	return Inventory{
		Materials:        []MaterialInstance{},
		Items:            []CraftedItem{},
		MaterialCapacity: materialCapacity,
	}
}
