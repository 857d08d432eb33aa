package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file inside a kakeibo data directory.
const FileName = "kakeibo.yaml"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Environment overrides, loaded from the process environment or a .env file.
const (
	EnvDataDir = "KAKEIBO_DATA_DIR"
	EnvStorage = "KAKEIBO_STORAGE"
)

// Config represents the top-level kakeibo.yaml configuration.
type Config struct {
	Currency CurrencyConfig `yaml:"currency"`
	Storage  StorageConfig  `yaml:"storage"`
	Git      GitConfig      `yaml:"git"`
}

// CurrencyConfig names the currency and its minor-unit exponent
// (JPY -> 0, USD -> 2). Amounts are stored in minor units.
type CurrencyConfig struct {
	Code     string `yaml:"code"`
	Exponent int    `yaml:"exponent"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`        // "json" or "sqlite"
	Path    string `yaml:"path,omitempty"` // sqlite database file, relative to the data dir
}

// GitConfig controls auto-committing data files after mutations.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a kakeibo.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the config for a new data directory: yen amounts, JSON
// documents, no git integration.
func Default() *Config {
	return &Config{
		Currency: CurrencyConfig{Code: "JPY", Exponent: 0},
		Storage:  StorageConfig{Backend: BackendJSON, Path: "kakeibo.db"},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "kakeibo",
			AuthorEmail: "kakeibo@localhost",
		},
	}
}

// ApplyEnv loads a .env file if one is present and applies recognized
// environment overrides. Missing .env files are not an error.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if backend := os.Getenv(EnvStorage); backend != "" {
		c.Storage.Backend = backend
	}
}

// DataDirFromEnv returns the data directory override, or "" if unset.
// Checked after godotenv so a .env file can supply it.
func DataDirFromEnv() string {
	_ = godotenv.Load()
	return os.Getenv(EnvDataDir)
}
