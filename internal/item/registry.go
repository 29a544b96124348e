package item

import (
	"fmt"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

// Registry is the read-only index of item and material master data.
// It is built once at startup and safe for concurrent reads.
type Registry struct {
	items     map[string]domain.Item
	materials map[string]domain.Material
	itemIDs   []string
}

// NewRegistry indexes items and materials by id, rejecting duplicates
func NewRegistry(items []domain.Item, materials []domain.Material) (*Registry, error) {
	r := &Registry{
		items:     make(map[string]domain.Item, len(items)),
		materials: make(map[string]domain.Material, len(materials)),
		itemIDs:   make([]string, 0, len(items)),
	}

	for _, it := range items {
		if _, dup := r.items[it.ID]; dup {
			return nil, fmt.Errorf("%w: item '%s'", ErrDuplicateID, it.ID)
		}
		it.Effects = it.EffectList()
		r.items[it.ID] = it
		r.itemIDs = append(r.itemIDs, it.ID)
	}

	for _, m := range materials {
		if _, dup := r.materials[m.ID]; dup {
			return nil, fmt.Errorf("%w: material '%s'", ErrDuplicateID, m.ID)
		}
		attrs := make([]domain.Attribute, len(m.Attributes))
		copy(attrs, m.Attributes)
		m.Attributes = attrs
		r.materials[m.ID] = m
	}

	return r, nil
}

// Item returns the item definition for id. The effects slice is a copy.
func (r *Registry) Item(id string) (domain.Item, bool) {
	it, ok := r.items[id]
	if !ok {
		return domain.Item{}, false
	}
	it.Effects = it.EffectList()
	return it, true
}

// Material returns the material definition for id
func (r *Registry) Material(id string) (domain.Material, bool) {
	m, ok := r.materials[id]
	if !ok {
		return domain.Material{}, false
	}
	attrs := make([]domain.Attribute, len(m.Attributes))
	copy(attrs, m.Attributes)
	m.Attributes = attrs
	return m, true
}

// CategoryOf implements domain.CategoryLookup
func (r *Registry) CategoryOf(itemID string) (domain.ItemCategory, bool) {
	it, ok := r.items[itemID]
	if !ok {
		return "", false
	}
	return it.Category, true
}

// Categories returns a detached id→category table
func (r *Registry) Categories() domain.CategoryMap {
	out := make(domain.CategoryMap, len(r.items))
	for id, it := range r.items {
		out[id] = it.Category
	}
	return out
}

// ItemIDs returns item ids in master data order
func (r *Registry) ItemIDs() []string {
	out := make([]string, len(r.itemIDs))
	copy(out, r.itemIDs)
	return out
}

// ItemCount returns the number of item definitions
func (r *Registry) ItemCount() int {
	return len(r.items)
}

// MaterialCount returns the number of material definitions
func (r *Registry) MaterialCount() int {
	return len(r.materials)
}
