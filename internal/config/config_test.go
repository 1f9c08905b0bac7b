package config

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome keeps the test away from any real user configuration.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "ledger.json", cfg.Data.LedgerFile)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Empty(t, cfg.AI.APIKey)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("SMARTY_LOG_LEVEL", "debug")
	t.Setenv("SMARTY_AI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_API_KEY", "test-key-123")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.Equal(t, "test-key-123", cfg.AI.APIKey)
}

func TestInitializeConfig_RejectsInvalidValues(t *testing.T) {
	isolateHome(t)

	t.Setenv("SMARTY_LOG_LEVEL", "verbose")
	_, err := InitializeConfig()
	assert.Error(t, err)
	t.Setenv("SMARTY_LOG_LEVEL", "info")

	t.Setenv("SMARTY_LOG_FORMAT", "xml")
	_, err = InitializeConfig()
	assert.Error(t, err)
	t.Setenv("SMARTY_LOG_FORMAT", "text")

	t.Setenv("SMARTY_AI_TIMEOUT_SECONDS", "0")
	_, err = InitializeConfig()
	assert.Error(t, err)
}

func TestLedgerPath(t *testing.T) {
	home := isolateHome(t)

	var cfg Config
	cfg.Data.LedgerFile = "ledger.json"
	assert.Equal(t, filepath.Join(home, ".smarty-budget", "ledger.json"), cfg.LedgerPath())

	cfg.Data.Directory = "/var/data"
	assert.Equal(t, filepath.Join("/var/data", "ledger.json"), cfg.LedgerPath())

	cfg.Data.LedgerFile = "/tmp/elsewhere.json"
	assert.Equal(t, "/tmp/elsewhere.json", cfg.LedgerPath())
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "bogus"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SMARTY_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("SMARTY_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SMARTY_TEST_MISSING", "fallback"))
}
