/*
Package config manages TOML config for SeqServe services.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/seqserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Engine EngineConfig `toml:"engine"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has request limits for the IPC and MCP servers.
type ServerConfig struct {
	MaxSequenceLen int `toml:"max_sequence_len"`
	MaxPatternLen  int `toml:"max_pattern_len"`
	MaxTop         int `toml:"max_top"`
	ReloadEvery    int `toml:"reload_every"`
}

// EngineConfig holds analysis options.
type EngineConfig struct {
	Workers  int `toml:"workers"`
	DefaultK int `toml:"default_k"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultTop   int  `toml:"default_top"`
	ContextWidth int  `toml:"context_width"`
	Uppercase    bool `toml:"uppercase"`
	Markdown     bool `toml:"markdown"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxSequenceLen: 1_000_000,
			MaxPatternLen:  10_000,
			MaxTop:         500,
			ReloadEvery:    500,
		},
		Engine: EngineConfig{
			Workers:  4,
			DefaultK: 3,
		},
		CLI: CliConfig{
			DefaultTop:   20,
			ContextWidth: 5,
			Uppercase:    true,
			Markdown:     true,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. defaultPath, created with defaults when missing
// 3. Builtin defaults
func LoadConfigWithPriority(customPath, defaultPath string) (*Config, string, error) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			cfg, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return cfg, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	if defaultPath == "" {
		log.Warn("No default config path. Using built-in defaults...")
		return DefaultConfig(), "", nil
	}

	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their defaults,
// and a damaged file is recovered section by section.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath)
	}
	cfg.Sanitize()
	return cfg, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	for _, key := range utils.RecoverSections(tempConfig, cfg.sections()...) {
		log.Warnf("Ignoring %s in %s: wrong type, keeping default", key, configPath)
	}
	cfg.Sanitize()
	return cfg, nil
}

// sections maps every recoverable TOML key to its field in c.
func (c *Config) sections() []utils.Section {
	return []utils.Section{
		{
			Name: "server",
			Ints: map[string]*int{
				"max_sequence_len": &c.Server.MaxSequenceLen,
				"max_pattern_len":  &c.Server.MaxPatternLen,
				"max_top":          &c.Server.MaxTop,
				"reload_every":     &c.Server.ReloadEvery,
			},
		},
		{
			Name: "engine",
			Ints: map[string]*int{
				"workers":   &c.Engine.Workers,
				"default_k": &c.Engine.DefaultK,
			},
		},
		{
			Name: "cli",
			Ints: map[string]*int{
				"default_top":   &c.CLI.DefaultTop,
				"context_width": &c.CLI.ContextWidth,
			},
			Bools: map[string]*bool{
				"uppercase": &c.CLI.Uppercase,
				"markdown":  &c.CLI.Markdown,
			},
		},
	}
}

// Sanitize resets out of range values to their defaults.
// A zero limit is kept and means "unlimited".
func (c *Config) Sanitize() {
	def := DefaultConfig()
	if c.Server.MaxSequenceLen < 0 {
		log.Warnf("max_sequence_len=%d is negative, using %d", c.Server.MaxSequenceLen, def.Server.MaxSequenceLen)
		c.Server.MaxSequenceLen = def.Server.MaxSequenceLen
	}
	if c.Server.MaxPatternLen < 0 {
		log.Warnf("max_pattern_len=%d is negative, using %d", c.Server.MaxPatternLen, def.Server.MaxPatternLen)
		c.Server.MaxPatternLen = def.Server.MaxPatternLen
	}
	if c.Server.MaxTop < 0 {
		log.Warnf("max_top=%d is negative, using %d", c.Server.MaxTop, def.Server.MaxTop)
		c.Server.MaxTop = def.Server.MaxTop
	}
	if c.Server.ReloadEvery < 0 {
		c.Server.ReloadEvery = 0
	}
	if c.Engine.Workers < 1 {
		log.Warnf("workers=%d is below 1, using %d", c.Engine.Workers, def.Engine.Workers)
		c.Engine.Workers = def.Engine.Workers
	}
	if c.Engine.DefaultK < 1 {
		log.Warnf("default_k=%d is below 1, using %d", c.Engine.DefaultK, def.Engine.DefaultK)
		c.Engine.DefaultK = def.Engine.DefaultK
	}
	if c.CLI.ContextWidth < 0 {
		c.CLI.ContextWidth = def.CLI.ContextWidth
	}
	if c.CLI.DefaultTop < 0 {
		c.CLI.DefaultTop = def.CLI.DefaultTop
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
