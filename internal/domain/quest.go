package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GuildRank is the player's guild standing that gates which quest templates are offered
type GuildRank string

const (
	GuildRankG GuildRank = "G"
	GuildRankF GuildRank = "F"
	GuildRankE GuildRank = "E"
	GuildRankD GuildRank = "D"
	GuildRankC GuildRank = "C"
	GuildRankB GuildRank = "B"
	GuildRankA GuildRank = "A"
	GuildRankS GuildRank = "S"
)

// GuildRanks lists ranks in ascending order
var GuildRanks = []GuildRank{GuildRankG, GuildRankF, GuildRankE, GuildRankD, GuildRankC, GuildRankB, GuildRankA, GuildRankS}

// IsValid reports whether r is a known rank
func (r GuildRank) IsValid() bool {
	for _, known := range GuildRanks {
		if r == known {
			return true
		}
	}
	return false
}

// Order returns the position of r in GuildRanks, or -1 for an unknown rank
func (r GuildRank) Order() int {
	for i, known := range GuildRanks {
		if r == known {
			return i
		}
	}
	return -1
}

// Allows reports whether a guild member at rank r may take work gated at required
func (r GuildRank) Allows(required GuildRank) bool {
	return r.IsValid() && required.IsValid() && r.Order() >= required.Order()
}

// QuestTemplate is master data from which concrete quests are instantiated
type QuestTemplate struct {
	ID               string         `json:"id" validate:"required"`
	Rank             GuildRank      `json:"rank" validate:"required,guild_rank"`
	Condition        QuestCondition `json:"condition"`
	BaseContribution int            `json:"baseContribution" validate:"gte=0"`
	BaseGold         int            `json:"baseGold" validate:"gte=0"`
	DeadlineDays     int            `json:"deadlineDays" validate:"gt=0"`
	Description      string         `json:"description,omitempty"`
}

// ClientModifiers are the per-client adjustments baked into a quest at instantiation
type ClientModifiers struct {
	ClientID         string
	ContributionRate float64
	GoldRate         float64
	DeadlineOffset   int
	FlavorText       string
}

// QuestParams carries the final, already-adjusted values of a quest
type QuestParams struct {
	ID           string
	TemplateID   string
	ClientID     string
	Condition    QuestCondition
	Contribution int
	Gold         int
	Deadline     int
	FlavorText   string
}

// Quest is an immutable quest offer. Contribution, gold and deadline are final values.
type Quest struct {
	id           string
	templateID   string
	clientID     string
	condition    QuestCondition
	contribution int
	gold         int
	deadline     int
	flavorText   string
}

// NewQuest validates params and builds a Quest
func NewQuest(p QuestParams) (Quest, error) {
	if p.ID == "" {
		return Quest{}, fmt.Errorf("%w: empty quest id", ErrInvalidCondition)
	}
	if p.Condition.Rule == nil {
		return Quest{}, fmt.Errorf("%w: quest %s has no rule", ErrInvalidCondition, p.ID)
	}
	if p.Contribution < 0 || p.Gold < 0 {
		return Quest{}, fmt.Errorf("%w: quest %s has negative reward", ErrInvalidQuantity, p.ID)
	}
	if p.Deadline <= 0 {
		return Quest{}, fmt.Errorf("%w: quest %s deadline %d", ErrInvalidQuantity, p.ID, p.Deadline)
	}
	return Quest{
		id:           p.ID,
		templateID:   p.TemplateID,
		clientID:     p.ClientID,
		condition:    p.Condition.clone(),
		contribution: p.Contribution,
		gold:         p.Gold,
		deadline:     p.Deadline,
		flavorText:   p.FlavorText,
	}, nil
}

// MustQuest is NewQuest for static fixtures; it panics on invalid params
func MustQuest(p QuestParams) Quest {
	q, err := NewQuest(p)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quest) ID() string                   { return q.id }
func (q Quest) TemplateID() string           { return q.templateID }
func (q Quest) ClientID() string             { return q.clientID }
func (q Quest) GetCondition() QuestCondition { return q.condition.clone() }
func (q Quest) Contribution() int            { return q.contribution }
func (q Quest) Gold() int                    { return q.gold }
func (q Quest) Deadline() int                { return q.deadline }
func (q Quest) FlavorText() string           { return q.flavorText }

// Instantiate bakes a client's adjustments into a concrete Quest.
// Rates of zero are treated as 1.0 and the deadline never drops below one day.
func (t QuestTemplate) Instantiate(questID string, m ClientModifiers) (Quest, error) {
	contributionRate := m.ContributionRate
	if contributionRate == 0 {
		contributionRate = 1
	}
	goldRate := m.GoldRate
	if goldRate == 0 {
		goldRate = 1
	}
	deadline := t.DeadlineDays + m.DeadlineOffset
	if deadline < 1 {
		deadline = 1
	}

	return NewQuest(QuestParams{
		ID:           questID,
		TemplateID:   t.ID,
		ClientID:     m.ClientID,
		Condition:    t.Condition,
		Contribution: scaleFloor(t.BaseContribution, contributionRate),
		Gold:         scaleFloor(t.BaseGold, goldRate),
		Deadline:     deadline,
		FlavorText:   m.FlavorText,
	})
}

// scaleFloor returns floor(base * rate) using the rate's shortest decimal form,
// so 100 * 0.29 is 29 rather than 28.
func scaleFloor(base int, rate float64) int {
	return int(decimal.NewFromInt(int64(base)).Mul(decimal.NewFromFloat(rate)).Floor().IntPart())
}

// ActiveQuest is a quest the player has accepted, counting down its remaining days
type ActiveQuest struct {
	quest         Quest
	remainingDays int
	acceptedDay   int
}

// NewActiveQuest accepts q on the given day with the full deadline remaining
func NewActiveQuest(q Quest, acceptedDay int) ActiveQuest {
	return ActiveQuest{quest: q, remainingDays: q.Deadline(), acceptedDay: acceptedDay}
}

// RestoreActiveQuest rebuilds an ActiveQuest from saved state
func RestoreActiveQuest(q Quest, remainingDays, acceptedDay int) ActiveQuest {
	return ActiveQuest{quest: q, remainingDays: remainingDays, acceptedDay: acceptedDay}
}

func (a ActiveQuest) Quest() Quest       { return a.quest }
func (a ActiveQuest) RemainingDays() int { return a.remainingDays }
func (a ActiveQuest) AcceptedDay() int   { return a.acceptedDay }

// IsExpired reports whether the deadline has passed
func (a ActiveQuest) IsExpired() bool {
	return a.remainingDays <= 0
}

// AdvanceDay returns a copy with one fewer remaining day
func (a ActiveQuest) AdvanceDay() ActiveQuest {
	a.remainingDays--
	return a
}
