package quest

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/inventory"
)

// DeliveryOptions carries collaborators needed by some condition types
type DeliveryOptions struct {
	// ItemCategories resolves crafted item ids to master-data categories.
	// CATEGORY conditions are only enforced when this is set.
	ItemCategories domain.CategoryLookup
}

// Recorder observes judgment outcomes. Implementations must be safe for concurrent use.
type Recorder interface {
	RecordDelivery(questID string, reward domain.Reward, itemCount int)
	RecordDeliveryRejected(questID string)
	RecordPenalty(questID string, penalty domain.Penalty)
}

type noopRecorder struct{}

func (noopRecorder) RecordDelivery(string, domain.Reward, int) {}
func (noopRecorder) RecordDeliveryRejected(string)             {}
func (noopRecorder) RecordPenalty(string, domain.Penalty)      {}

// JudgmentService answers point-in-time questions about quest delivery.
// It holds no game state; callers commit the returned inventory themselves.
type JudgmentService interface {
	CanDeliver(inv domain.Inventory, quest domain.Quest, opts DeliveryOptions) domain.CanDeliverResult
	FindMatchingItems(inv domain.Inventory, condition domain.QuestCondition, opts DeliveryOptions) []domain.CraftedItem
	CheckItemCondition(item domain.CraftedItem, condition domain.QuestCondition, opts DeliveryOptions) bool
	Deliver(inv domain.Inventory, quest domain.Quest, opts DeliveryOptions) (domain.DeliveryResult, error)
	CalculateReward(quest domain.Quest, items []domain.CraftedItem) domain.Reward
	CalculateExpiredPenalty(active domain.ActiveQuest) domain.Penalty
	ApplyExpiredPenalty(active domain.ActiveQuest) domain.Penalty
}

// Option configures the judgment service
type Option func(*service)

// WithLogger sets the logger used for delivery and penalty events
func WithLogger(log *slog.Logger) Option {
	return func(s *service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(r Recorder) Option {
	return func(s *service) {
		if r != nil {
			s.recorder = r
		}
	}
}

type service struct {
	inventory inventory.Service
	log       *slog.Logger
	recorder  Recorder
}

// NewJudgmentService creates a judgment service backed by the given inventory service
func NewJudgmentService(inv inventory.Service, opts ...Option) JudgmentService {
	s := &service{
		inventory: inv,
		log:       slog.Default(),
		recorder:  noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CanDeliver reports whether inv holds enough items matching the quest condition
func (s *service) CanDeliver(inv domain.Inventory, quest domain.Quest, opts DeliveryOptions) domain.CanDeliverResult {
	condition := quest.GetCondition()
	matching := s.FindMatchingItems(inv, condition, opts)
	required := condition.RequiredQuantity()

	if len(matching) < required {
		return domain.CanDeliverResult{
			CanDeliver: false,
			MissingItems: []domain.MissingItem{{
				Description: DescribeCondition(condition),
				Required:    required,
				Available:   len(matching),
			}},
		}
	}

	return domain.CanDeliverResult{CanDeliver: true}
}

// FindMatchingItems returns the inventory's crafted items that satisfy condition, in inventory order
func (s *service) FindMatchingItems(inv domain.Inventory, condition domain.QuestCondition, opts DeliveryOptions) []domain.CraftedItem {
	var matching []domain.CraftedItem
	for _, item := range inv.Items {
		if s.CheckItemCondition(item, condition, opts) {
			matching = append(matching, item)
		}
	}
	return matching
}

// CheckItemCondition applies the rule's type-specific filter, then the quality floor.
// Rule types without a filter (QUALITY, RARE_MATERIAL, MATERIAL, COMPOSITE) only enforce the floor.
func (s *service) CheckItemCondition(item domain.CraftedItem, condition domain.QuestCondition, opts DeliveryOptions) bool {
	switch rule := condition.Rule.(type) {
	case domain.SpecificRule:
		// An empty ItemID matches every item; quest data is expected to always set it.
		if rule.ItemID != "" && item.ItemID() != rule.ItemID {
			return false
		}
	case domain.CategoryRule:
		if rule.Category != "" && opts.ItemCategories != nil {
			category, ok := opts.ItemCategories.CategoryOf(item.ItemID())
			if !ok || category != rule.Category {
				return false
			}
		}
	case domain.AttributeRule:
		if item.GetAttributeValue(rule.Attribute) < rule.MinValue {
			return false
		}
	case domain.EffectRule:
		if item.GetEffectValue(rule.EffectType) < rule.MinValue {
			return false
		}
	default:
		// TODO: decide with quest designers whether QUALITY/RARE_MATERIAL/MATERIAL/COMPOSITE should filter items
		s.log.Debug(LogMsgUnhandledRuleType, "type", condition.Type())
	}

	if condition.MinQuality != nil && !item.Quality().AtLeast(*condition.MinQuality) {
		return false
	}

	return true
}

// Deliver consumes the lowest-quality matching items needed by the quest and computes the reward.
// On shortfall it returns a *domain.DeliveryError carrying the same diagnosis as CanDeliver.
func (s *service) Deliver(inv domain.Inventory, quest domain.Quest, opts DeliveryOptions) (domain.DeliveryResult, error) {
	check := s.CanDeliver(inv, quest, opts)
	if !check.CanDeliver {
		s.recorder.RecordDeliveryRejected(quest.ID())
		s.log.Debug(LogMsgDeliveryRejected, "quest_id", quest.ID(), "missing", check.MissingItems)
		return domain.DeliveryResult{}, &domain.DeliveryError{MissingItems: check.MissingItems}
	}

	condition := quest.GetCondition()
	selected := selectLowestQuality(s.FindMatchingItems(inv, condition, opts), condition.RequiredQuantity())

	next := inv
	for _, item := range selected {
		var err error
		next, err = s.inventory.RemoveItem(next, item)
		if err != nil {
			return domain.DeliveryResult{}, fmt.Errorf("failed to remove delivered item: %w", err)
		}
	}

	reward := s.CalculateReward(quest, selected)
	s.recorder.RecordDelivery(quest.ID(), reward, len(selected))
	s.log.Debug(LogMsgDelivered,
		"quest_id", quest.ID(),
		"items", len(selected),
		"gold", reward.Gold,
		"contribution", reward.Contribution)

	return domain.DeliveryResult{
		Inventory:      next,
		Reward:         reward,
		DeliveredItems: selected,
	}, nil
}

// selectLowestQuality orders items by ascending quality value, keeping inventory order among equals,
// and returns the first n
func selectLowestQuality(items []domain.CraftedItem, n int) []domain.CraftedItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.CraftedItem) int {
		return cmp.Compare(a.Quality().Value(), b.Quality().Value())
	})
	return sorted[:n]
}
