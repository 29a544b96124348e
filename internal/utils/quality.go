package utils

import (
	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

// QualitySum returns the sum of QualityValue over qualities
func QualitySum(qualities []domain.Quality) int {
	total := 0
	for _, q := range qualities {
		total += q.Value()
	}
	return total
}

// CalculateAverageQuality calculates the weighted average quality from consumed materials.
// Each material contributes to the average based on its quantity; the result is the
// highest tier whose value does not exceed the rounded average.
// Returns C if no materials provided.
//
// Example:
//   - 2x C (50) + 2x A (90) = 280 / 4 = 70 → B
//   - 3x D (30) + 1x S (100) = 190 / 4 = 47.5 → 48 → D
func CalculateAverageQuality(materials []domain.UsedMaterial) domain.Quality {
	if len(materials) == 0 {
		return domain.QualityC
	}

	totalValue := 0
	totalQuantity := 0

	for _, material := range materials {
		value := material.Quality.Value()
		if !material.Quality.IsValid() {
			// Unknown quality, treat as C
			value = domain.QualityC.Value()
		}
		totalValue += value * material.Quantity
		totalQuantity += material.Quantity
	}

	if totalQuantity <= 0 {
		return domain.QualityC
	}

	// Integer division with rounding
	averageValue := (totalValue + totalQuantity/2) / totalQuantity

	return domain.QualityFromValue(averageValue)
}
