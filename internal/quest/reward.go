package quest

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/utils"
)

var (
	qualityBonusRate     = decimal.RequireFromString(QualityBonusRate)
	minQualityMultiplier = decimal.RequireFromString(MinQualityMultiplier)
	expiredPenaltyRate   = decimal.RequireFromString(ExpiredPenaltyRate)
	baselineQuality      = decimal.NewFromInt(domain.BaselineQualityValue)
)

// CalculateReward scales the quest's base reward by the average quality of the delivered items.
//
//	avg        = mean(QualityValue) over items, 50 when empty
//	bonus      = max(0, floor(baseGold * (avg - 50) * 0.005))
//	multiplier = min(1, max(0.5, avg / 50))
//	gold       = floor(baseGold * multiplier) + bonus
//	contrib    = floor(baseContribution * multiplier)
//
// The average is kept as an exact fraction so floors are never thrown off by rounding.
func (s *service) CalculateReward(quest domain.Quest, items []domain.CraftedItem) domain.Reward {
	count := int64(len(items))
	sum := decimal.NewFromInt(int64(utils.QualitySum(qualitiesOf(items))))
	if count == 0 {
		count = 1
		sum = baselineQuality
	}
	n := decimal.NewFromInt(count)

	baseGold := decimal.NewFromInt(int64(quest.Gold()))
	baseContribution := decimal.NewFromInt(int64(quest.Contribution()))

	// baseGold * (sum/n - 50) * rate == baseGold * (sum - 50n) * rate / n
	diffTimesN := sum.Sub(baselineQuality.Mul(n))
	bonus := int64(0)
	if diffTimesN.IsPositive() {
		bonus = floorDiv(baseGold.Mul(diffTimesN).Mul(qualityBonusRate), n)
	}

	// multiplier = sum / (50n), clamped to [0.5, 1]
	denominator := baselineQuality.Mul(n)
	var gold, contribution int64
	switch {
	case sum.GreaterThanOrEqual(denominator):
		gold = baseGold.IntPart()
		contribution = baseContribution.IntPart()
	case sum.LessThan(denominator.Mul(minQualityMultiplier)):
		gold = baseGold.Mul(minQualityMultiplier).Floor().IntPart()
		contribution = baseContribution.Mul(minQualityMultiplier).Floor().IntPart()
	default:
		gold = floorDiv(baseGold.Mul(sum), denominator)
		contribution = floorDiv(baseContribution.Mul(sum), denominator)
	}

	return domain.Reward{
		Gold:         int(gold + bonus),
		Contribution: int(contribution),
	}
}

// CalculateExpiredPenalty claws back 30% of the quest's base reward once it has expired.
// The penalty does not grow with how overdue the quest is. Nothing is recorded.
func (s *service) CalculateExpiredPenalty(active domain.ActiveQuest) domain.Penalty {
	if !active.IsExpired() {
		return domain.Penalty{}
	}

	quest := active.Quest()
	return domain.Penalty{
		Gold:         -int(decimal.NewFromInt(int64(quest.Gold())).Mul(expiredPenaltyRate).Floor().IntPart()),
		Contribution: -int(decimal.NewFromInt(int64(quest.Contribution())).Mul(expiredPenaltyRate).Floor().IntPart()),
	}
}

// ApplyExpiredPenalty commits the expiry penalty of active: it records and logs it once.
// A quest that has not expired yields a zero penalty and records nothing.
func (s *service) ApplyExpiredPenalty(active domain.ActiveQuest) domain.Penalty {
	if !active.IsExpired() {
		return domain.Penalty{}
	}

	penalty := s.CalculateExpiredPenalty(active)
	quest := active.Quest()

	s.recorder.RecordPenalty(quest.ID(), penalty)
	s.log.Debug(LogMsgExpiredPenalty,
		"quest_id", quest.ID(),
		"remaining_days", active.RemainingDays(),
		"gold", penalty.Gold,
		"contribution", penalty.Contribution)

	return penalty
}

// floorDiv returns floor(num / den) for non-negative num and positive den
func floorDiv(num, den decimal.Decimal) int64 {
	q, _ := num.QuoRem(den, 0)
	return q.IntPart()
}

func qualitiesOf(items []domain.CraftedItem) []domain.Quality {
	out := make([]domain.Quality, len(items))
	for i, item := range items {
		out[i] = item.Quality()
	}
	return out
}
