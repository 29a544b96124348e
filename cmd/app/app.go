package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/AtelierGuildRank_Go/internal/config"
	"github.com/osse101/AtelierGuildRank_Go/internal/crafting"
	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/economy"
	"github.com/osse101/AtelierGuildRank_Go/internal/inventory"
	"github.com/osse101/AtelierGuildRank_Go/internal/item"
	"github.com/osse101/AtelierGuildRank_Go/internal/metrics"
	"github.com/osse101/AtelierGuildRank_Go/internal/quest"
)

// Demo master data ids
const (
	demoPotionID          = "healing_potion"
	demoBombID            = "bomb"
	demoDeliveryTemplate  = "deliver-potions"
	demoExpiringTemplate  = "fine-consumables"
	demoClientID          = "infirmary"
	demoContributionRate  = 1.2
	demoDeadlineExtension = 1
)

type app struct {
	cfg       *config.Config
	registry  *item.Registry
	templates *quest.TemplatesConfig

	inventory inventory.Service
	judgment  quest.JudgmentService
	crafting  crafting.Service
	economy   economy.Service
}

// bootstrap loads master data and wires the services
func bootstrap(cfg *config.Config, reg prometheus.Registerer, log *slog.Logger) (*app, error) {
	registry, err := item.NewLoader(cfg.SchemaDir).LoadRegistry(cfg.MasterDataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	loader := quest.NewTemplateLoader(cfg.SchemaDir, log)
	templates, err := loader.Load(filepath.Join(cfg.MasterDataDir, quest.TemplatesFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load quest templates: %w", err)
	}
	if err := loader.Validate(templates); err != nil {
		return nil, err
	}
	if err := loader.ValidateReferences(templates, registry); err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder(reg)
	invSvc := inventory.NewService()

	return &app{
		cfg:       cfg,
		registry:  registry,
		templates: templates,
		inventory: invSvc,
		judgment:  quest.NewJudgmentService(invSvc, quest.WithLogger(log), quest.WithRecorder(recorder)),
		crafting:  crafting.NewService(invSvc, registry, recorder, log),
		economy:   economy.NewService(invSvc, registry, recorder, log),
	}, nil
}

func (a *app) template(id string) (domain.QuestTemplate, error) {
	for _, t := range a.templates.Templates {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.QuestTemplate{}, fmt.Errorf("quest template %q not found", id)
}

func (a *app) itemDef(id string) (domain.Item, error) {
	it, ok := a.registry.Item(id)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return it, nil
}

type demoSummary struct {
	Crafted       int
	Contribution  int
	Gold          int
	PenaltyGold   int
	MaterialsLeft int
	ItemsLeft     int
}

// runDemo plays one day: gather, craft two potions and a bomb, deliver the potions,
// sell the bomb, then let a second quest expire.
func (a *app) runDemo() (demoSummary, error) {
	var summary demoSummary
	inv := domain.NewInventory(a.cfg.DefaultMaterialCapacity)

	var err error
	for _, m := range []domain.MaterialInstance{
		{MaterialID: "herb", Quality: domain.QualityC, Quantity: 4},
		{MaterialID: "pure_water", Quality: domain.QualityB, Quantity: 4},
		{MaterialID: "flame_stone", Quality: domain.QualityB, Quantity: 1},
	} {
		if inv, err = a.inventory.AddMaterial(inv, m); err != nil {
			return summary, err
		}
	}

	potion, err := a.itemDef(demoPotionID)
	if err != nil {
		return summary, err
	}
	for range 2 {
		if inv, _, err = a.crafting.Craft(inv, potion, []domain.MaterialInstance{
			{MaterialID: "herb", Quality: domain.QualityC, Quantity: 2},
			{MaterialID: "pure_water", Quality: domain.QualityB, Quantity: 2},
		}); err != nil {
			return summary, err
		}
		summary.Crafted++
	}

	bomb, err := a.itemDef(demoBombID)
	if err != nil {
		return summary, err
	}
	var crafted domain.CraftedItem
	if inv, crafted, err = a.crafting.Craft(inv, bomb, []domain.MaterialInstance{
		{MaterialID: "flame_stone", Quality: domain.QualityB, Quantity: 1},
	}); err != nil {
		return summary, err
	}
	summary.Crafted++

	tmpl, err := a.template(demoDeliveryTemplate)
	if err != nil {
		return summary, err
	}
	q, err := tmpl.Instantiate("demo-1", domain.ClientModifiers{
		ClientID:         demoClientID,
		ContributionRate: demoContributionRate,
		DeadlineOffset:   demoDeadlineExtension,
	})
	if err != nil {
		return summary, err
	}

	opts := quest.DeliveryOptions{ItemCategories: a.registry}
	if check := a.judgment.CanDeliver(inv, q, opts); !check.CanDeliver {
		return summary, fmt.Errorf("%w: %v", domain.ErrDeliveryUnmet, check.MissingItems)
	}
	delivery, err := a.judgment.Deliver(inv, q, opts)
	if err != nil {
		return summary, err
	}
	inv = delivery.Inventory
	summary.Contribution += delivery.Reward.Contribution
	summary.Gold += delivery.Reward.Gold

	sale, err := a.economy.SellItem(inv, crafted.ItemID(), crafted.Quality())
	if err != nil {
		return summary, err
	}
	inv = sale.Inventory
	summary.Gold += sale.Gold

	expiring, err := a.template(demoExpiringTemplate)
	if err != nil {
		return summary, err
	}
	eq, err := expiring.Instantiate("demo-2", domain.ClientModifiers{ClientID: demoClientID})
	if err != nil {
		return summary, err
	}
	active := domain.NewActiveQuest(eq, 1)
	for !active.IsExpired() {
		active = active.AdvanceDay()
	}
	penalty := a.judgment.ApplyExpiredPenalty(active)
	summary.Contribution += penalty.Contribution
	summary.Gold += penalty.Gold
	summary.PenaltyGold = penalty.Gold

	summary.MaterialsLeft = a.inventory.GetTotalMaterialCount(inv)
	summary.ItemsLeft = len(inv.Items)
	return summary, nil
}
