package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "config.toml", `
[engine]
workers = 8

[cli]
markdown = false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Engine.Workers)
	assert.False(t, cfg.CLI.Markdown)
	assert.Equal(t, DefaultConfig().Server, cfg.Server)
	assert.Equal(t, 3, cfg.Engine.DefaultK)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_top has the wrong type, which fails the typed decode but not the generic one
	path := writeFile(t, "config.toml", `
[server]
max_top = "lots"
max_pattern_len = 64

[engine]
default_k = 5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Server.MaxPatternLen)
	assert.Equal(t, DefaultConfig().Server.MaxTop, cfg.Server.MaxTop)
	assert.Equal(t, 5, cfg.Engine.DefaultK)
}

func TestLoadConfigRecoversFloatsAndBadTables(t *testing.T) {
	path := writeFile(t, "config.toml", `
engine = "fast"

[server]
max_top = 50.0
reload_every = "often"

[cli]
markdown = false
context_width = 2.5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Server.MaxTop)
	assert.Equal(t, DefaultConfig().Server.ReloadEvery, cfg.Server.ReloadEvery)
	assert.Equal(t, DefaultConfig().Engine, cfg.Engine)
	assert.False(t, cfg.CLI.Markdown)
	assert.Equal(t, DefaultConfig().CLI.ContextWidth, cfg.CLI.ContextWidth)
}

func TestLoadConfigUnparseableFallsBackToDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", "[server\nmax_top = =")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSanitize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Workers = 0
	cfg.Engine.DefaultK = -1
	cfg.Server.MaxTop = -3
	cfg.Server.MaxSequenceLen = 0
	cfg.Sanitize()

	def := DefaultConfig()
	assert.Equal(t, def.Engine.Workers, cfg.Engine.Workers)
	assert.Equal(t, def.Engine.DefaultK, cfg.Engine.DefaultK)
	assert.Equal(t, def.Server.MaxTop, cfg.Server.MaxTop)
	assert.Equal(t, 0, cfg.Server.MaxSequenceLen, "zero means unlimited")
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeFile(t, "custom.toml", "[engine]\nworkers = 2\n")
	defaultPath := filepath.Join(t.TempDir(), "config.toml")

	cfg, used, err := LoadConfigWithPriority(custom, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, custom, used)
	assert.Equal(t, 2, cfg.Engine.Workers)

	cfg, used, err = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"), defaultPath)
	require.NoError(t, err)
	assert.Equal(t, defaultPath, used)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, used, err = LoadConfigWithPriority("", "")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), cfg)
}
