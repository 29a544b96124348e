package quest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/validation"
)

// Sentinel errors for the template loader
var (
	ErrDuplicateTemplateID = errors.New("duplicate quest template id")
	ErrInvalidTemplates    = errors.New("invalid quest templates")
	ErrUnknownReference    = errors.New("unknown master data reference")
)

// TemplatesConfig represents the JSON file of quest templates
type TemplatesConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Templates []domain.QuestTemplate `json:"templates"`
}

// ForRank returns the templates a guild member at rank may take, in file order
func (c *TemplatesConfig) ForRank(rank domain.GuildRank) []domain.QuestTemplate {
	var out []domain.QuestTemplate
	for _, t := range c.Templates {
		if rank.Allows(t.Rank) {
			out = append(out, t)
		}
	}
	return out
}

// ReferenceLookup resolves the item and material ids that conditions point at
type ReferenceLookup interface {
	Item(id string) (domain.Item, bool)
	Material(id string) (domain.Material, bool)
}

// TemplateLoader loads and validates quest template master data
type TemplateLoader interface {
	Load(path string) (*TemplatesConfig, error)
	Validate(config *TemplatesConfig) error
	// ValidateReferences checks that SPECIFIC and MATERIAL conditions name known ids
	ValidateReferences(config *TemplatesConfig, refs ReferenceLookup) error
}

type templateLoader struct {
	schemaDir       string
	schemaValidator validation.SchemaValidator
	structValidator *validation.StructValidator
	log             *slog.Logger
}

// NewTemplateLoader creates a TemplateLoader. An empty schemaDir falls back to DefaultSchemaDir.
func NewTemplateLoader(schemaDir string, log *slog.Logger) TemplateLoader {
	if schemaDir == "" {
		schemaDir = DefaultSchemaDir
	}
	if log == nil {
		log = slog.Default()
	}
	return &templateLoader{
		schemaDir:       schemaDir,
		schemaValidator: validation.NewSchemaValidator(),
		structValidator: validation.NewStructValidator(),
		log:             log,
	}
}

// Load reads, schema-checks and decodes a quest templates file
func (l *templateLoader) Load(path string) (*TemplatesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTemplatesFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, filepath.Join(l.schemaDir, TemplatesSchemaFile)); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config TemplatesConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTemplatesFailed, err)
	}

	l.log.Info(LogMsgTemplatesLoaded, "path", path, "count", len(config.Templates))
	return &config, nil
}

// Validate checks struct rules, conditions and id uniqueness
func (l *templateLoader) Validate(config *TemplatesConfig) error {
	if config == nil || len(config.Templates) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTemplates, ErrMsgNoTemplatesDefined)
	}

	seen := make(map[string]bool, len(config.Templates))
	for i, t := range config.Templates {
		if err := l.structValidator.ValidateStruct(t); err != nil {
			return fmt.Errorf(ErrFmtTemplateInvalid, ErrInvalidTemplates, i, err)
		}
		if err := validateCondition(t.Condition); err != nil {
			return fmt.Errorf("template '%s': %w", t.ID, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateTemplateID, t.ID)
		}
		seen[t.ID] = true
	}

	return nil
}

func (l *templateLoader) ValidateReferences(config *TemplatesConfig, refs ReferenceLookup) error {
	for _, t := range config.Templates {
		if err := checkReferences(t.Condition, refs); err != nil {
			return fmt.Errorf("template '%s': %w", t.ID, err)
		}
	}
	return nil
}

func validateCondition(c domain.QuestCondition) error {
	if c.Rule == nil {
		return fmt.Errorf("%w: missing rule", domain.ErrInvalidCondition)
	}
	if c.MinQuality != nil && !c.MinQuality.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidQuality, *c.MinQuality)
	}
	if composite, ok := c.Rule.(domain.CompositeRule); ok {
		for _, sub := range composite.SubConditions {
			if err := validateCondition(sub); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkReferences(c domain.QuestCondition, refs ReferenceLookup) error {
	switch rule := c.Rule.(type) {
	case domain.SpecificRule:
		if rule.ItemID == "" {
			return nil
		}
		if _, ok := refs.Item(rule.ItemID); !ok {
			return fmt.Errorf("%w: item '%s'", ErrUnknownReference, rule.ItemID)
		}
	case domain.MaterialRule:
		if rule.MaterialID == "" {
			return nil
		}
		if _, ok := refs.Material(rule.MaterialID); !ok {
			return fmt.Errorf("%w: material '%s'", ErrUnknownReference, rule.MaterialID)
		}
	case domain.CompositeRule:
		for _, sub := range rule.SubConditions {
			if err := checkReferences(sub, refs); err != nil {
				return err
			}
		}
	}
	return nil
}
