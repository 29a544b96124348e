package main

import (
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AtelierGuildRank_Go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:                "info",
		LogFormat:               "text",
		MasterDataDir:           "../../configs/data",
		DefaultMaterialCapacity: 50,
	}
}

func TestBootstrap(t *testing.T) {
	a, err := bootstrap(testConfig(), prometheus.NewRegistry(), slog.Default())

	require.NoError(t, err)
	assert.Positive(t, a.registry.ItemCount())
	assert.Positive(t, a.registry.MaterialCount())
	assert.NotEmpty(t, a.templates.Templates)
}

func TestBootstrap_MissingData(t *testing.T) {
	cfg := testConfig()
	cfg.MasterDataDir = t.TempDir()

	_, err := bootstrap(cfg, prometheus.NewRegistry(), slog.Default())

	assert.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := bootstrap(testConfig(), reg, slog.Default())
	require.NoError(t, err)

	summary, err := a.runDemo()

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Crafted)
	// Two potions delivered, the bomb sold, every gathered material used
	assert.Zero(t, summary.ItemsLeft)
	assert.Zero(t, summary.MaterialsLeft)
	assert.Negative(t, summary.PenaltyGold)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["atelier_quest_deliveries_total"])
	assert.True(t, names["atelier_items_sold_total"])
}
