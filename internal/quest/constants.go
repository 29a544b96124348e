package quest

// Reward and penalty rates, as decimal strings for exact arithmetic
const (
	// QualityBonusRate is the share of base gold paid per quality point above the C baseline
	QualityBonusRate = "0.005"
	// MinQualityMultiplier floors the base-reward scaling for low-quality deliveries
	MinQualityMultiplier = "0.5"
	// ExpiredPenaltyRate is the share of base reward clawed back when a quest expires
	ExpiredPenaltyRate = "0.3"
)

// Log messages
const (
	LogMsgDelivered         = "Quest delivered"
	LogMsgDeliveryRejected  = "Quest delivery rejected"
	LogMsgExpiredPenalty    = "Quest expired penalty applied"
	LogMsgTemplatesLoaded   = "Quest templates loaded"
	LogMsgUnhandledRuleType = "Condition type has no item filter, only quality floor applies"
)

// Master data files
const (
	// TemplatesFileName is the quest template file inside the data directory
	TemplatesFileName = "quest_templates.json"
	// DefaultSchemaDir is used when the loader is given no schema directory
	DefaultSchemaDir = "configs/schemas"
	// TemplatesSchemaFile validates TemplatesFileName
	TemplatesSchemaFile = "quest_templates.schema.json"
)

// Loader error messages
const (
	ErrMsgReadTemplatesFileFailed = "failed to read quest templates file: %w"
	ErrMsgParseTemplatesFailed    = "failed to parse quest templates: %w"
	ErrMsgNoTemplatesDefined      = "no quest templates defined"
	ErrFmtTemplateInvalid         = "%w: template at index %d: %v"
)
