package quest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

const testTemplates = `{
	"version": "1.0",
	"templates": [
		{
			"id": "deliver-potions",
			"rank": "G",
			"condition": {"type": "SPECIFIC", "itemId": "potion", "quantity": 2},
			"baseContribution": 10,
			"baseGold": 100,
			"deadlineDays": 5
		},
		{
			"id": "rare-brew",
			"rank": "C",
			"condition": {
				"type": "COMPOSITE",
				"subConditions": [
					{"type": "MATERIAL", "requiredMaterialId": "moon_dew"},
					{"type": "QUALITY", "minQuality": "A"}
				]
			},
			"baseContribution": 40,
			"baseGold": 400,
			"deadlineDays": 7
		}
	]
}`

type refTable struct {
	items     map[string]bool
	materials map[string]bool
}

func (r refTable) Item(id string) (domain.Item, bool) {
	return domain.Item{ID: id}, r.items[id]
}

func (r refTable) Material(id string) (domain.Material, bool) {
	return domain.Material{ID: id}, r.materials[id]
}

func writeTemplates(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), TemplatesFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTemplateLoader_Load(t *testing.T) {
	loader := NewTemplateLoader("", nil)

	t.Run("decodes conditions into rules", func(t *testing.T) {
		config, err := loader.Load(writeTemplates(t, testTemplates))

		require.NoError(t, err)
		require.Len(t, config.Templates, 2)

		first := config.Templates[0]
		assert.Equal(t, domain.SpecificRule{ItemID: "potion"}, first.Condition.Rule)
		assert.Equal(t, 2, first.Condition.RequiredQuantity())

		composite, ok := config.Templates[1].Condition.Rule.(domain.CompositeRule)
		require.True(t, ok)
		require.Len(t, composite.SubConditions, 2)
		assert.Equal(t, domain.MaterialRule{MaterialID: "moon_dew"}, composite.SubConditions[0].Rule)
		require.NotNil(t, composite.SubConditions[1].MinQuality)
		assert.Equal(t, domain.QualityA, *composite.SubConditions[1].MinQuality)

		require.NoError(t, loader.Validate(config))
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/quest_templates.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read quest templates file")
	})

	t.Run("schema rejects unknown condition type", func(t *testing.T) {
		content := `{"version": "1.0", "templates": [{"id": "x", "rank": "G", "condition": {"type": "LUCK"}, "baseContribution": 1, "baseGold": 1, "deadlineDays": 1}]}`

		_, err := loader.Load(writeTemplates(t, content))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("decoder rejects attribute condition without attribute", func(t *testing.T) {
		content := `{"version": "1.0", "templates": [{"id": "x", "rank": "G", "condition": {"type": "ATTRIBUTE", "minAttributeValue": 5}, "baseContribution": 1, "baseGold": 1, "deadlineDays": 1}]}`

		_, err := loader.Load(writeTemplates(t, content))

		assert.ErrorIs(t, err, domain.ErrInvalidCondition)
	})
}

func TestTemplateLoader_Validate(t *testing.T) {
	loader := NewTemplateLoader("", nil)
	valid := domain.QuestTemplate{
		ID:           "a",
		Rank:         domain.GuildRankG,
		Condition:    domain.QuestCondition{Rule: domain.QualityRule{}},
		DeadlineDays: 1,
	}

	tests := []struct {
		name      string
		templates []domain.QuestTemplate
		wantErr   error
	}{
		{name: "valid", templates: []domain.QuestTemplate{valid}},
		{name: "empty", templates: nil, wantErr: ErrInvalidTemplates},
		{name: "duplicate", templates: []domain.QuestTemplate{valid, valid}, wantErr: ErrDuplicateTemplateID},
		{
			name: "missing rule",
			templates: []domain.QuestTemplate{func() domain.QuestTemplate {
				tmpl := valid
				tmpl.Condition = domain.QuestCondition{}
				return tmpl
			}()},
			wantErr: domain.ErrInvalidCondition,
		},
		{
			name: "zero deadline",
			templates: []domain.QuestTemplate{func() domain.QuestTemplate {
				tmpl := valid
				tmpl.DeadlineDays = 0
				return tmpl
			}()},
			wantErr: ErrInvalidTemplates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(&TemplatesConfig{Templates: tt.templates})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTemplateLoader_ValidateReferences(t *testing.T) {
	loader := NewTemplateLoader("", nil)
	config, err := loader.Load(writeTemplates(t, testTemplates))
	require.NoError(t, err)

	known := refTable{
		items:     map[string]bool{"potion": true},
		materials: map[string]bool{"moon_dew": true},
	}
	assert.NoError(t, loader.ValidateReferences(config, known))

	missing := refTable{items: map[string]bool{"potion": true}}
	err = loader.ValidateReferences(config, missing)
	assert.ErrorIs(t, err, ErrUnknownReference)
	assert.Contains(t, err.Error(), "moon_dew")
}

func TestTemplatesConfig_ForRank(t *testing.T) {
	config := &TemplatesConfig{Templates: []domain.QuestTemplate{
		{ID: "g", Rank: domain.GuildRankG},
		{ID: "c", Rank: domain.GuildRankC},
		{ID: "s", Rank: domain.GuildRankS},
	}}

	ids := func(ts []domain.QuestTemplate) []string {
		var out []string
		for _, tmpl := range ts {
			out = append(out, tmpl.ID)
		}
		return out
	}

	assert.Equal(t, []string{"g"}, ids(config.ForRank(domain.GuildRankF)))
	assert.Equal(t, []string{"g", "c"}, ids(config.ForRank(domain.GuildRankB)))
	assert.Equal(t, []string{"g", "c", "s"}, ids(config.ForRank(domain.GuildRankS)))
	assert.Empty(t, config.ForRank("Z"))
}

func TestTemplateLoader_LoadActualConfig(t *testing.T) {
	path := filepath.Join("..", "..", "configs", "data", TemplatesFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("quest_templates.json not found, skipping")
	}

	loader := NewTemplateLoader("", nil)
	config, err := loader.Load(path)
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))
	assert.NotEmpty(t, config.ForRank(domain.GuildRankG))
}
