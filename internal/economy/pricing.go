package economy

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

// CalculateSellPrice returns floor(basePrice * QualityMultiplier[quality]).
// Items without a base price are worth nothing.
func CalculateSellPrice(item domain.Item, quality domain.Quality) int {
	if !item.HasBasePrice() {
		return 0
	}
	price := decimal.NewFromInt(int64(*item.BasePrice)).Mul(decimal.NewFromFloat(quality.Multiplier()))
	return int(price.Floor().IntPart())
}
