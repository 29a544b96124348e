package domain

// MissingItem describes one unmet condition of a delivery
type MissingItem struct {
	Description string `json:"description"`
	Required    int    `json:"required"`
	Available   int    `json:"available"`
}

// CanDeliverResult answers whether an inventory satisfies a quest
type CanDeliverResult struct {
	CanDeliver   bool          `json:"canDeliver"`
	MissingItems []MissingItem `json:"missingItems,omitempty"`
}

// Reward is what a successful delivery pays out
type Reward struct {
	Contribution int `json:"contribution"`
	Gold         int `json:"gold"`
}

// Penalty is what an expired quest claws back. Values are zero or negative.
type Penalty struct {
	Contribution int `json:"contribution"`
	Gold         int `json:"gold"`
}

// DeliveryResult is the outcome of a successful delivery
type DeliveryResult struct {
	Inventory      Inventory
	Reward         Reward
	DeliveredItems []CraftedItem
}
