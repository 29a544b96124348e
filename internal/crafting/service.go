package crafting

import (
	"fmt"
	"log/slog"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/inventory"
)

// MaterialLookup resolves material master data by id
type MaterialLookup interface {
	Material(id string) (domain.Material, bool)
}

// CraftRecorder observes finished crafts
type CraftRecorder interface {
	RecordCraft(itemID string, quality domain.Quality)
}

// Service turns inventory materials into crafted items
type Service interface {
	Craft(inv domain.Inventory, item domain.Item, inputs []domain.MaterialInstance) (domain.Inventory, domain.CraftedItem, error)
}

type service struct {
	inventory inventory.Service
	materials MaterialLookup
	recorder  CraftRecorder
	log       *slog.Logger
}

// NewService creates a crafting service. recorder may be nil.
func NewService(inv inventory.Service, materials MaterialLookup, recorder CraftRecorder, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{
		inventory: inv,
		materials: materials,
		recorder:  recorder,
		log:       log,
	}
}

// Craft consumes inputs from inv and adds the resulting crafted item.
// Either every input is consumed and the item added, or inv is returned unchanged with an error.
func (s *service) Craft(inv domain.Inventory, item domain.Item, inputs []domain.MaterialInstance) (domain.Inventory, domain.CraftedItem, error) {
	next := inv
	used := make([]domain.UsedMaterial, 0, len(inputs))

	for _, input := range inputs {
		material, ok := s.materials.Material(input.MaterialID)
		if !ok {
			return inv, domain.CraftedItem{}, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, input.MaterialID)
		}

		var err error
		next, err = s.inventory.ConsumeMaterial(next, input.MaterialID, input.Quality, input.Quantity)
		if err != nil {
			return inv, domain.CraftedItem{}, fmt.Errorf("failed to consume %s: %w", input.MaterialID, err)
		}

		used = append(used, domain.UsedMaterial{
			MaterialID: input.MaterialID,
			Quantity:   input.Quantity,
			Quality:    input.Quality,
			IsRare:     material.IsRare,
		})
	}

	crafted, err := BuildCraftedItem(item, used, s.materials)
	if err != nil {
		return inv, domain.CraftedItem{}, err
	}

	if s.recorder != nil {
		s.recorder.RecordCraft(item.ID, crafted.Quality())
	}
	s.log.Debug("Item crafted", "item_id", item.ID, "quality", crafted.Quality(), "instance_id", crafted.InstanceID())
	return s.inventory.AddItem(next, crafted), crafted, nil
}
