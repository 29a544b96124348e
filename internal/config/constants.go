package config

// Environment variable names
const (
	EnvLogLevel                = "LOG_LEVEL"
	EnvLogFormat               = "LOG_FORMAT"
	EnvLogAddSource            = "LOG_ADD_SOURCE"
	EnvLogFile                 = "LOG_FILE"
	EnvLogFileMaxSizeMB        = "LOG_FILE_MAX_SIZE_MB"
	EnvEnvironment             = "ENVIRONMENT"
	EnvServiceName             = "SERVICE_NAME"
	EnvVersion                 = "VERSION"
	EnvMasterDataDir           = "MASTER_DATA_DIR"
	EnvSchemaDir               = "SCHEMA_DIR"
	EnvDefaultMaterialCapacity = "DEFAULT_MATERIAL_CAPACITY"
)

// Defaults
const (
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "atelier-guild-rank"
	DefaultMasterDataDir    = "configs/data"
	DefaultSchemaDir        = "configs/schemas"
	DefaultMaterialCapacity = 100
	DefaultLogFileMaxSizeMB = 10
)
