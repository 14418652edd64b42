package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/termtoys/internal/config"
	"codeberg.org/mutker/termtoys/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's own config files out of the test.
func isolate(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)
	t.Setenv("TERMTOYS_CONFIG", "")

	return tempDir
}

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()

	configPath := filepath.Join(dir, "termtoys.toml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	return configPath
}

func TestLoad(t *testing.T) {
	tempDir := isolate(t)

	configPath := writeConfig(t, tempDir, `
min = 10
max = 20
seed = 42
log_level = "debug"
history = true
history_db = "/path/to/history.db"
metrics_file = "/path/to/termtoys.prom"
`)
	t.Setenv("TERMTOYS_CONFIG", configPath)

	cfg, err := config.Load("guess", nil, config.WithGameFlags())
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Min, "Expected Min 10")
	assert.Equal(t, 20, cfg.Max, "Expected Max 20")
	assert.Equal(t, uint64(42), cfg.Seed, "Expected Seed 42")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.True(t, cfg.History, "Expected History true")
	assert.Equal(t, "/path/to/history.db", cfg.HistoryDB)
	assert.Equal(t, "/path/to/termtoys.prom", cfg.MetricsFile)
}

func TestLoadDefaults(t *testing.T) {
	tempDir := isolate(t)

	cfg, err := config.Load("guess", nil, config.WithGameFlags())
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultMin, cfg.Min, "Expected default Min 1")
	assert.Equal(t, config.DefaultMax, cfg.Max, "Expected default Max 100")
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.False(t, cfg.Stats)
	assert.False(t, cfg.History)
	assert.Equal(t, filepath.Join(tempDir, "termtoys", "history.db"), cfg.HistoryDB)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel warning")
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoadSearchesUserConfigDir(t *testing.T) {
	tempDir := isolate(t)

	appDir := filepath.Join(tempDir, "termtoys")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	writeConfig(t, appDir, `max = 50`)

	cfg, err := config.Load("guess", nil, config.WithGameFlags())
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Max)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	tempDir := isolate(t)

	configPath := writeConfig(t, tempDir, `
This is not a valid TOML file
`)

	_, err := config.Load("tempconv", nil, config.WithConfigFile(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read configuration")
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	tempDir := isolate(t)

	_, err := config.Load("tempconv", []string{"--config", filepath.Join(tempDir, "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestInvalidLogLevel(t *testing.T) {
	tempDir := isolate(t)

	configPath := writeConfig(t, tempDir, `
log_level = "invalid"
`)
	t.Setenv("TERMTOYS_CONFIG", configPath)

	_, err := config.Load("tempconv", nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
	assert.Contains(t, err.Error(), "invalid")
}

func TestLogLevelFlag(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("tempconv", []string{"--log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
}

func TestFlagsOverrideFileAndEnv(t *testing.T) {
	tempDir := isolate(t)

	configPath := writeConfig(t, tempDir, `
min = 5
max = 500
`)
	t.Setenv("TERMTOYS_CONFIG", configPath)
	t.Setenv("TERMTOYS_MAX", "300")

	cfg, err := config.Load("guess", []string{"--min", "7"}, config.WithGameFlags())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Min, "flag wins over file")
	assert.Equal(t, 300, cfg.Max, "env wins over file")
}

func TestEnvPrefixOption(t *testing.T) {
	isolate(t)
	t.Setenv("TOYS_LOG_LEVEL", "error")

	cfg, err := config.Load("tempconv", nil, config.WithEnvPrefix("TOYS"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestGameFlagsOnlyWhenRequested(t *testing.T) {
	isolate(t)

	_, err := config.Load("tempconv", []string{"--max", "10"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrParseFlags))
}

func TestInvalidRange(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"min above max", []string{"--min", "50", "--max", "10"}},
		{"negative min", []string{"--min", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load("guess", tt.args, config.WithGameFlags())
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrInvalidRange))
		})
	}
}

func TestHistoryRequiresPath(t *testing.T) {
	isolate(t)

	_, err := config.Load("guess", []string{"--history", "--history-db", ""}, config.WithGameFlags())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidConfig))
}

func TestProvider(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("guess", []string{"--min", "3", "--max", "9", "--seed", "11"}, config.WithGameFlags())
	require.NoError(t, err)

	var p config.Provider = cfg
	minValue, maxValue := p.GetRange()
	assert.Equal(t, 3, minValue)
	assert.Equal(t, 9, maxValue)
	assert.Equal(t, uint64(11), p.GetSeed())
	assert.Equal(t, config.DefaultLogLevel, p.GetLogLevel())
	assert.False(t, p.IsHistoryEnabled())
}
