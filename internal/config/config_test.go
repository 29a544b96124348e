package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Empty(t, cfg.LogLevel, "Unset level defers to the environment preset")
		assert.Empty(t, cfg.LogFormat)
		assert.Empty(t, cfg.Version)
		assert.False(t, cfg.LogAddSource)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Equal(t, "configs/data", cfg.MasterDataDir)
		assert.Equal(t, "configs/schemas", cfg.SchemaDir)
		assert.Equal(t, 100, cfg.DefaultMaterialCapacity)
		assert.Empty(t, cfg.LogFile)
		assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.LogFileMaxSizeMB)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvLogAddSource, "true")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvServiceName, "atelier-test")
		t.Setenv(EnvVersion, "1.2.3")
		t.Setenv(EnvMasterDataDir, "/srv/data")
		t.Setenv(EnvSchemaDir, "/srv/schemas")
		t.Setenv(EnvDefaultMaterialCapacity, "250")
		t.Setenv(EnvLogFile, "/var/log/atelier.log")
		t.Setenv(EnvLogFileMaxSizeMB, "5")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel, "Should normalize case")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.LogAddSource)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "atelier-test", cfg.ServiceName)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.Equal(t, "/srv/data", cfg.MasterDataDir)
		assert.Equal(t, "/srv/schemas", cfg.SchemaDir)
		assert.Equal(t, 250, cfg.DefaultMaterialCapacity)
		assert.Equal(t, "/var/log/atelier.log", cfg.LogFile)
		assert.Equal(t, 5, cfg.LogFileMaxSizeMB)
	})

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"non-numeric capacity", EnvDefaultMaterialCapacity, "lots", "invalid DEFAULT_MATERIAL_CAPACITY"},
		{"zero capacity", EnvDefaultMaterialCapacity, "0", "must be greater than 0"},
		{"negative capacity", EnvDefaultMaterialCapacity, "-5", "must be greater than 0"},
		{"unknown log format", EnvLogFormat, "xml", "invalid LOG_FORMAT"},
		{"bad bool", EnvLogAddSource, "maybe", "invalid LOG_ADD_SOURCE"},
		{"non-numeric log file size", EnvLogFileMaxSizeMB, "big", "invalid LOG_FILE_MAX_SIZE_MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_LogFileSize(t *testing.T) {
	cfg := &Config{
		LogFormat:               "text",
		MasterDataDir:           "configs/data",
		DefaultMaterialCapacity: 1,
		LogFile:                 "atelier.log",
	}
	assert.ErrorContains(t, cfg.Validate(), EnvLogFileMaxSizeMB)

	cfg.LogFileMaxSizeMB = 1
	assert.NoError(t, cfg.Validate())

	cfg.LogFile = ""
	cfg.LogFileMaxSizeMB = 0
	assert.NoError(t, cfg.Validate())
}

func TestWarnings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "schemas"), 0755))

	cfg := &Config{
		MasterDataDir: filepath.Join(dir, "missing"),
		SchemaDir:     filepath.Join(dir, "schemas"),
	}

	warnings := cfg.Warnings()

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], EnvMasterDataDir)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("int default when unset", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		v, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("int parses value", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		v, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.NoError(t, err)
		assert.Equal(t, -10, v)
	})

	t.Run("int rejects float", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		_, err := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Error(t, err)
	})

	t.Run("bool parses value", func(t *testing.T) {
		t.Setenv("TEST_BOOL_VAR", "1")
		v, err := getEnvAsBool("TEST_BOOL_VAR", false)
		require.NoError(t, err)
		assert.True(t, v)
	})
}

func clearEnvVars(t *testing.T) {
	t.Helper()

	// Empty values fall back to defaults; t.Setenv restores the originals afterwards
	for _, key := range []string{
		EnvLogLevel, EnvLogFormat, EnvLogAddSource, EnvEnvironment, EnvServiceName,
		EnvVersion, EnvMasterDataDir, EnvSchemaDir, EnvDefaultMaterialCapacity,
		EnvLogFile, EnvLogFileMaxSizeMB,
	} {
		t.Setenv(key, "")
	}
}
