package utils

import "github.com/osse101/AtelierGuildRank_Go/internal/domain"

// FindMaterialStack finds the stack holding materialID at quality.
// Returns the index of the stack and its quantity, or -1, 0 if not found.
func FindMaterialStack(materials []domain.MaterialInstance, materialID string, quality domain.Quality) (int, int) {
	for i, stack := range materials {
		if stack.MaterialID == materialID && stack.Quality == quality {
			return i, stack.Quantity
		}
	}
	return -1, 0
}

// FindItemIndex returns the index of the first crafted item with itemID at quality, or -1
func FindItemIndex(items []domain.CraftedItem, itemID string, quality domain.Quality) int {
	for i, item := range items {
		if item.ItemID() == itemID && item.Quality() == quality {
			return i
		}
	}
	return -1
}

// RemoveAt returns a new slice without the element at index i. The input is left untouched.
func RemoveAt[T any](in []T, i int) []T {
	out := make([]T, 0, len(in)-1)
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...)
}

// ReplaceAt returns a new slice with the element at index i set to v. The input is left untouched.
func ReplaceAt[T any](in []T, i int, v T) []T {
	out := make([]T, len(in))
	copy(out, in)
	out[i] = v
	return out
}

// Append returns a new slice with v appended. The input's backing array is never written.
func Append[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}
