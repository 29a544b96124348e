package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
	"github.com/osse101/AtelierGuildRank_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateID = errors.New("duplicate id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// ItemsConfig represents the JSON file of item definitions
type ItemsConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []domain.Item `json:"items"`
}

// MaterialsConfig represents the JSON file of material definitions
type MaterialsConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Materials []domain.Material `json:"materials"`
}

// Loader handles loading and validating item and material master data
type Loader interface {
	LoadItems(path string) (*ItemsConfig, error)
	LoadMaterials(path string) (*MaterialsConfig, error)
	ValidateItems(config *ItemsConfig) error
	ValidateMaterials(config *MaterialsConfig) error
	// LoadRegistry loads, validates and indexes both files from dataDir
	LoadRegistry(dataDir string) (*Registry, error)
}

type itemLoader struct {
	schemaDir       string
	schemaValidator validation.SchemaValidator
	structValidator *validation.StructValidator
}

// NewLoader creates a new Loader. An empty schemaDir falls back to DefaultSchemaDir.
func NewLoader(schemaDir string) Loader {
	if schemaDir == "" {
		schemaDir = DefaultSchemaDir
	}
	return &itemLoader{
		schemaDir:       schemaDir,
		schemaValidator: validation.NewSchemaValidator(),
		structValidator: validation.NewStructValidator(),
	}
}

// LoadItems reads and parses an items JSON file
func (l *itemLoader) LoadItems(path string) (*ItemsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadItemsFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, filepath.Join(l.schemaDir, ItemsSchemaFile)); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config ItemsConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseItemsFailed, err)
	}

	return &config, nil
}

// LoadMaterials reads and parses a materials JSON file
func (l *itemLoader) LoadMaterials(path string) (*MaterialsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadMaterialsFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, filepath.Join(l.schemaDir, MaterialsSchemaFile)); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config MaterialsConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseMaterialsFailed, err)
	}

	return &config, nil
}

// ValidateItems checks struct rules and id uniqueness
func (l *itemLoader) ValidateItems(config *ItemsConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i, it := range config.Items {
		if err := l.structValidator.ValidateStruct(it); err != nil {
			return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, i, err)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: item '%s'", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
	}

	return nil
}

// ValidateMaterials checks struct rules and id uniqueness
func (l *itemLoader) ValidateMaterials(config *MaterialsConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Materials) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoMaterialsDefined)
	}

	seen := make(map[string]bool, len(config.Materials))
	for i, m := range config.Materials {
		if err := l.structValidator.ValidateStruct(m); err != nil {
			return fmt.Errorf(ErrFmtMaterialInvalid, ErrInvalidConfig, i, err)
		}
		if seen[m.ID] {
			return fmt.Errorf("%w: material '%s'", ErrDuplicateID, m.ID)
		}
		seen[m.ID] = true
	}

	return nil
}

func (l *itemLoader) LoadRegistry(dataDir string) (*Registry, error) {
	items, err := l.LoadItems(filepath.Join(dataDir, ItemsFileName))
	if err != nil {
		return nil, err
	}
	if err := l.ValidateItems(items); err != nil {
		return nil, err
	}

	materials, err := l.LoadMaterials(filepath.Join(dataDir, MaterialsFileName))
	if err != nil {
		return nil, err
	}
	if err := l.ValidateMaterials(materials); err != nil {
		return nil, err
	}

	return NewRegistry(items.Items, materials.Materials)
}
