package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/tally/internal/blob"
)

// FileName is the config file inside a tally data directory.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig selects where the expense snapshot lives.
type StorageConfig struct {
	Backend blob.Backend `yaml:"backend"`
	Path    string       `yaml:"path"` // relative paths resolve against the data directory
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// ServerConfig controls the HTTP view.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DisplayConfig controls how amounts are rendered.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
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

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: blob.BackendFile,
			Path:    "data",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
		},
	}
}

// LoadDir resolves the configuration of a data directory: defaults, then
// dir/tally.yaml if present, then dir/.env and the process environment.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		// godotenv.Load never overrides variables already set in the process.
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envPath, err)
		}
	}
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TALLY_* variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("TALLY_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = blob.Backend(strings.ToLower(v))
	}
	if v := getenv("TALLY_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := getenv("TALLY_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv("TALLY_LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := getenv("TALLY_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if !c.Storage.Backend.IsValid() {
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of %v", c.Storage.Backend, blob.Backends))
	}
	if c.Storage.Backend != blob.BackendMemory && strings.TrimSpace(c.Storage.Path) == "" {
		problems = append(problems, "storage path cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be text or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// StoragePath returns the storage path resolved against dir. The sqlite and
// bolt backends get a database file inside the configured directory.
func (c *Config) StoragePath(dir string) string {
	p := c.Storage.Path
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	switch c.Storage.Backend {
	case blob.BackendSQLite:
		return filepath.Join(p, "tally.sqlite")
	case blob.BackendBolt:
		return filepath.Join(p, "tally.bolt")
	default:
		return p
	}
}
