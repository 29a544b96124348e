package main

import (
	"context"
	"flag"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/AtelierGuildRank_Go/internal/config"
	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/logger"
)

func main() {
	rank := flag.String("rank", string(domain.GuildRankG), "Guild rank whose quest board is listed")
	demo := flag.Bool("demo", false, "Run a sample craft, deliver and sell day against the loaded master data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initLogger(cfg)
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	l := logger.FromContext(ctx)

	for _, w := range cfg.Warnings() {
		l.Warn("Configuration warning", "warning", w)
	}

	a, err := bootstrap(cfg, prometheus.DefaultRegisterer, l)
	if err != nil {
		log.Fatalf("Failed to load master data: %v", err)
	}

	board := a.templates.ForRank(domain.GuildRank(*rank))
	l.Info("Master data ready",
		"items", a.registry.ItemCount(),
		"materials", a.registry.MaterialCount(),
		"templates", len(a.templates.Templates),
		"rank", *rank,
		"available_quests", len(board))
	for _, t := range board {
		l.Info("Quest available", "template_id", t.ID, "rank", t.Rank, "gold", t.BaseGold, "contribution", t.BaseContribution)
	}

	if *demo {
		summary, err := a.runDemo()
		if err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
		l.Info("Demo finished",
			"crafted", summary.Crafted,
			"contribution", summary.Contribution,
			"gold", summary.Gold,
			"penalty_gold", summary.PenaltyGold,
			"materials_left", summary.MaterialsLeft,
			"items_left", summary.ItemsLeft)
	}
}
