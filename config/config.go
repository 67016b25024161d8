package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides applied by Load.
const (
	EnvDBPath   = "TRADELOG_DB"
	EnvLogLevel = "TRADELOG_LOG_LEVEL"
)

// Config is the process configuration.
type Config struct {
	Journal  JournalConfig `json:"journal" yaml:"journal"`
	Log      LogConfig     `json:"log" yaml:"log"`
	Settings Settings      `json:"settings" yaml:"settings"`
}

// JournalConfig locates the trade ledger.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// Settings are the user-editable preferences. Only the commission takes
// part in P&L; the rest are cosmetic and carried for the front end.
type Settings struct {
	CommissionPerContract float64 `json:"commission_per_contract" yaml:"commission_per_contract"`
	TextSize              int     `json:"text_size" yaml:"text_size"`
	DarkMode              bool    `json:"dark_mode" yaml:"dark_mode"`
	ScreenshotFolder      string  `json:"screenshot_folder" yaml:"screenshot_folder"`
}

// DefaultSettings mirrors the values a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		CommissionPerContract: 0.35,
		TextSize:              12,
	}
}

// Validate rejects settings that cannot be used.
func (s Settings) Validate() error {
	if s.CommissionPerContract < 0 {
		return fmt.Errorf("settings.commission_per_contract must not be negative")
	}
	if s.TextSize <= 0 {
		return fmt.Errorf("settings.text_size must be positive")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Journal:  JournalConfig{DBPath: "./tradelog.db"},
		Log:      LogConfig{Level: "info"},
		Settings: DefaultSettings(),
	}
}

// Overrides are command-line values that win over the file and the
// environment. Empty fields are ignored.
type Overrides struct {
	DBPath   string
	LogLevel string
}

// Load builds the configuration for a run. A missing path yields the
// defaults; a .env file in the working directory, the TRADELOG_*
// environment variables and then o override what the file says. The
// result is validated once, after every layer is applied.
func Load(path string, o Overrides) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		var err error
		cfg, err = readFile(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.apply(o)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.apply(Overrides{DBPath: os.Getenv(EnvDBPath), LogLevel: os.Getenv(EnvLogLevel)})
}

func (c *Config) apply(o Overrides) {
	if o.DBPath != "" {
		c.Journal.DBPath = o.DBPath
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
}

// LoadFromFile loads and validates configuration from a YAML or JSON file.
// Fields the file leaves out keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// YAML is a superset of JSON, but fall back for better error messages
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return c.Settings.Validate()
}
