package item

// ==================== Configuration File Names ====================

const (
	// ItemsFileName is the items master data file inside the data directory
	ItemsFileName = "items.json"
	// MaterialsFileName is the materials master data file inside the data directory
	MaterialsFileName = "materials.json"

	// DefaultSchemaDir is used when the loader is given no schema directory
	DefaultSchemaDir = "configs/schemas"
	// ItemsSchemaFile validates ItemsFileName
	ItemsSchemaFile = "items.schema.json"
	// MaterialsSchemaFile validates MaterialsFileName
	MaterialsSchemaFile = "materials.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadItemsFileFailed     = "failed to read items file: %w"
	ErrMsgReadMaterialsFileFailed = "failed to read materials file: %w"
	ErrMsgParseItemsFailed        = "failed to parse items: %w"
	ErrMsgParseMaterialsFailed    = "failed to parse materials: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil          = "config is nil"
	ErrMsgNoItemsDefined     = "no items defined"
	ErrMsgNoMaterialsDefined = "no materials defined"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemInvalid     = "%w: item at index %d: %v"
	ErrFmtMaterialInvalid = "%w: material at index %d: %v"
)

// ==================== Log Messages ====================

const (
	LogMsgRegistryLoaded = "Item registry loaded"
)
