package economy

import (
	"fmt"
	"log/slog"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/inventory"
)

// ItemLookup resolves item master data by id
type ItemLookup interface {
	Item(id string) (domain.Item, bool)
}

// SaleRecorder observes completed sales
type SaleRecorder interface {
	RecordSale(itemID string, quality domain.Quality, gold int)
}

// SaleResult is the outcome of selling one crafted item
type SaleResult struct {
	Inventory domain.Inventory
	Item      domain.CraftedItem
	Gold      int
}

// Service handles selling crafted items
type Service interface {
	SellItem(inv domain.Inventory, itemID string, quality domain.Quality) (SaleResult, error)
}

type service struct {
	inventory inventory.Service
	items     ItemLookup
	recorder  SaleRecorder
	log       *slog.Logger
}

// NewService creates a new economy service. recorder may be nil.
func NewService(inv inventory.Service, items ItemLookup, recorder SaleRecorder, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{
		inventory: inv,
		items:     items,
		recorder:  recorder,
		log:       log,
	}
}

// SellItem removes one crafted item of itemID at quality and pays its quality-scaled price
func (s *service) SellItem(inv domain.Inventory, itemID string, quality domain.Quality) (SaleResult, error) {
	item, ok := s.items.Item(itemID)
	if !ok {
		return SaleResult{Inventory: inv}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if !item.HasBasePrice() {
		return SaleResult{Inventory: inv}, fmt.Errorf("%w: %s", domain.ErrNotSellable, itemID)
	}

	next, sold, err := s.inventory.ConsumeItem(inv, itemID, quality)
	if err != nil {
		return SaleResult{Inventory: inv}, err
	}

	gold := CalculateSellPrice(item, sold.Quality())
	if s.recorder != nil {
		s.recorder.RecordSale(itemID, sold.Quality(), gold)
	}
	s.log.Debug("Item sold", "item_id", itemID, "quality", sold.Quality(), "gold", gold)

	return SaleResult{Inventory: next, Item: sold, Gold: gold}, nil
}
