package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Empty LogLevel, LogFormat and Version defer to the logger preset for Environment
	LogLevel     string
	LogFormat    string
	LogAddSource bool
	Environment  string
	ServiceName  string
	Version      string

	LogFile          string // empty keeps logs on stdout only
	LogFileMaxSizeMB int

	MasterDataDir string // holds items.json, materials.json, quest_templates.json
	SchemaDir     string // holds the JSON schemas for the master data files

	// DefaultMaterialCapacity is the material stack capacity given to new inventories
	DefaultMaterialCapacity int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, "")),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, "")),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:   getEnv(EnvServiceName, DefaultServiceName),
		Version:       getEnv(EnvVersion, ""),
		MasterDataDir: getEnv(EnvMasterDataDir, DefaultMasterDataDir),
		SchemaDir:     getEnv(EnvSchemaDir, DefaultSchemaDir),
		LogFile:       getEnv(EnvLogFile, ""),
	}

	addSource, err := getEnvAsBool(EnvLogAddSource, false)
	if err != nil {
		return nil, err
	}
	cfg.LogAddSource = addSource

	capacity, err := getEnvAsInt(EnvDefaultMaterialCapacity, DefaultMaterialCapacity)
	if err != nil {
		return nil, err
	}
	cfg.DefaultMaterialCapacity = capacity

	maxSize, err := getEnvAsInt(EnvLogFileMaxSizeMB, DefaultLogFileMaxSizeMB)
	if err != nil {
		return nil, err
	}
	cfg.LogFileMaxSizeMB = maxSize

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges that Load cannot express as defaults
func (c *Config) Validate() error {
	if c.DefaultMaterialCapacity <= 0 {
		return fmt.Errorf("%s must be greater than 0, got %d", EnvDefaultMaterialCapacity, c.DefaultMaterialCapacity)
	}

	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid %s value %q: expected json or text", EnvLogFormat, c.LogFormat)
	}

	if c.LogFile != "" && c.LogFileMaxSizeMB <= 0 {
		return fmt.Errorf("%s must be greater than 0, got %d", EnvLogFileMaxSizeMB, c.LogFileMaxSizeMB)
	}

	if c.MasterDataDir == "" {
		return fmt.Errorf("%s must not be empty", EnvMasterDataDir)
	}

	return nil
}

// Warnings reports non-fatal issues such as missing data directories
func (c *Config) Warnings() []string {
	var warnings []string
	for name, dir := range map[string]string{EnvMasterDataDir: c.MasterDataDir, EnvSchemaDir: c.SchemaDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a directory relative to the working directory", name, dir))
		}
	}
	return warnings
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
