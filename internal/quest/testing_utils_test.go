package quest

import (
	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/inventory"
)

func newTestService(opts ...Option) JudgmentService {
	return NewJudgmentService(inventory.NewService(), opts...)
}

func crafted(itemID string, q domain.Quality) domain.CraftedItem {
	return domain.MustCraftedItem(domain.CraftedItemParams{ItemID: itemID, Quality: q})
}

func inventoryWith(items ...domain.CraftedItem) domain.Inventory {
	inv := domain.NewInventory(100)
	inv.Items = items
	return inv
}

func questWith(condition domain.QuestCondition, gold, contribution int) domain.Quest {
	return domain.MustQuest(domain.QuestParams{
		ID:           "q-test",
		TemplateID:   "tpl-test",
		Condition:    condition,
		Gold:         gold,
		Contribution: contribution,
		Deadline:     5,
	})
}

func specific(itemID string) domain.QuestCondition {
	return domain.QuestCondition{Rule: domain.SpecificRule{ItemID: itemID}}
}

func itemsOfQuality(qualities ...domain.Quality) []domain.CraftedItem {
	items := make([]domain.CraftedItem, len(qualities))
	for i, q := range qualities {
		items[i] = crafted("potion", q)
	}
	return items
}
