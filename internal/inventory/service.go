package inventory

import (
	"fmt"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/utils"
)

// Service performs stateless operations over Inventory snapshots.
// Every mutating operation returns a new Inventory and leaves its input untouched.
type Service interface {
	AddMaterial(inv domain.Inventory, material domain.MaterialInstance) (domain.Inventory, error)
	ConsumeMaterial(inv domain.Inventory, materialID string, quality domain.Quality, quantity int) (domain.Inventory, error)
	AddItem(inv domain.Inventory, item domain.CraftedItem) domain.Inventory
	ConsumeItem(inv domain.Inventory, itemID string, quality domain.Quality) (domain.Inventory, domain.CraftedItem, error)
	RemoveItem(inv domain.Inventory, item domain.CraftedItem) (domain.Inventory, error)

	GetMaterialCount(inv domain.Inventory, materialID string, quality *domain.Quality) int
	GetItemCount(inv domain.Inventory, itemID string, quality *domain.Quality) int
	GetTotalMaterialCount(inv domain.Inventory) int
	HasMaterial(inv domain.Inventory, materialID string, quality *domain.Quality) bool
	HasItem(inv domain.Inventory, itemID string, quality *domain.Quality) bool
}

type service struct{}

// NewService creates a new inventory service
func NewService() Service {
	return &service{}
}

// AddMaterial adds a material stack, merging into an existing (materialId, quality) stack.
// The capacity check covers the whole quantity; nothing is added when it does not fit.
func (s *service) AddMaterial(inv domain.Inventory, material domain.MaterialInstance) (domain.Inventory, error) {
	if material.Quantity <= 0 {
		return inv, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, material.Quantity)
	}

	newTotal := s.GetTotalMaterialCount(inv) + material.Quantity
	if newTotal > inv.MaterialCapacity {
		return inv, fmt.Errorf("%w: %d/%d", domain.ErrCapacityExceeded, newTotal, inv.MaterialCapacity)
	}

	idx, current := utils.FindMaterialStack(inv.Materials, material.MaterialID, material.Quality)
	if idx >= 0 {
		merged := inv.Materials[idx]
		merged.Quantity = current + material.Quantity
		inv.Materials = utils.ReplaceAt(inv.Materials, idx, merged)
		return inv, nil
	}

	inv.Materials = utils.Append(inv.Materials, material)
	return inv, nil
}

// ConsumeMaterial removes quantity from the exact (materialId, quality) stack.
// A stack consumed to zero is removed rather than kept empty.
func (s *service) ConsumeMaterial(inv domain.Inventory, materialID string, quality domain.Quality, quantity int) (domain.Inventory, error) {
	if quantity <= 0 {
		return inv, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	idx, current := utils.FindMaterialStack(inv.Materials, materialID, quality)
	if idx < 0 {
		return inv, fmt.Errorf("%w: %s (%s)", domain.ErrMaterialNotFound, materialID, quality)
	}
	if current < quantity {
		return inv, fmt.Errorf("%w: %s (%s) has %d, need %d", domain.ErrInsufficientQuantity, materialID, quality, current, quantity)
	}

	if current == quantity {
		inv.Materials = utils.RemoveAt(inv.Materials, idx)
		return inv, nil
	}

	stack := inv.Materials[idx]
	stack.Quantity = current - quantity
	inv.Materials = utils.ReplaceAt(inv.Materials, idx, stack)
	return inv, nil
}

// AddItem appends a crafted item. Crafted items have no capacity limit.
func (s *service) AddItem(inv domain.Inventory, item domain.CraftedItem) domain.Inventory {
	inv.Items = utils.Append(inv.Items, item)
	return inv
}

// ConsumeItem removes the first item with itemID at quality, in insertion order
func (s *service) ConsumeItem(inv domain.Inventory, itemID string, quality domain.Quality) (domain.Inventory, domain.CraftedItem, error) {
	idx := utils.FindItemIndex(inv.Items, itemID, quality)
	if idx < 0 {
		return inv, domain.CraftedItem{}, fmt.Errorf("%w: %s (%s)", domain.ErrItemNotFound, itemID, quality)
	}

	removed := inv.Items[idx]
	inv.Items = utils.RemoveAt(inv.Items, idx)
	return inv, removed, nil
}

// RemoveItem removes item from the inventory. The same instance is preferred; otherwise the
// first item sharing its (itemId, quality) is removed.
func (s *service) RemoveItem(inv domain.Inventory, item domain.CraftedItem) (domain.Inventory, error) {
	for i, held := range inv.Items {
		if held.SameInstance(item) {
			inv.Items = utils.RemoveAt(inv.Items, i)
			return inv, nil
		}
	}

	idx := utils.FindItemIndex(inv.Items, item.ItemID(), item.Quality())
	if idx < 0 {
		return inv, fmt.Errorf("%w: %s (%s)", domain.ErrItemNotFound, item.ItemID(), item.Quality())
	}
	inv.Items = utils.RemoveAt(inv.Items, idx)
	return inv, nil
}

// GetMaterialCount sums stacks of materialID, across all qualities when quality is nil
func (s *service) GetMaterialCount(inv domain.Inventory, materialID string, quality *domain.Quality) int {
	total := 0
	for _, stack := range inv.Materials {
		if stack.MaterialID != materialID {
			continue
		}
		if quality != nil && stack.Quality != *quality {
			continue
		}
		total += stack.Quantity
	}
	return total
}

// GetItemCount counts crafted items with itemID, across all qualities when quality is nil
func (s *service) GetItemCount(inv domain.Inventory, itemID string, quality *domain.Quality) int {
	count := 0
	for _, item := range inv.Items {
		if item.ItemID() != itemID {
			continue
		}
		if quality != nil && item.Quality() != *quality {
			continue
		}
		count++
	}
	return count
}

// GetTotalMaterialCount sums every stack regardless of id or quality
func (s *service) GetTotalMaterialCount(inv domain.Inventory) int {
	total := 0
	for _, stack := range inv.Materials {
		total += stack.Quantity
	}
	return total
}

func (s *service) HasMaterial(inv domain.Inventory, materialID string, quality *domain.Quality) bool {
	return s.GetMaterialCount(inv, materialID, quality) > 0
}

func (s *service) HasItem(inv domain.Inventory, itemID string, quality *domain.Quality) bool {
	return s.GetItemCount(inv, itemID, quality) > 0
}
