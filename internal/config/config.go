package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all smslogs configuration, resolved once at startup
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// APIConfig holds backend connection settings
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// UIConfig holds dashboard settings
type UIConfig struct {
	Language  string        `yaml:"language"`
	CopiedFor time.Duration `yaml:"copied_for"`
	ToastFor  time.Duration `yaml:"toast_for"`
}

// LogConfig holds log file settings
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// StorageConfig holds activity journal settings
type StorageConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// DataDir returns the directory holding the config file, log and journal
func DataDir() string {
	if dir := os.Getenv("SMSLOGS_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".smslogs"
	}
	return filepath.Join(home, ".smslogs")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// Default returns the built-in defaults
func Default() Config {
	dir := DataDir()
	return Config{
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			CopiedFor: 1500 * time.Millisecond,
			ToastFor:  3 * time.Second,
		},
		Log: LogConfig{
			File:  filepath.Join(dir, "smslogs.log"),
			Level: "info",
		},
		Storage: StorageConfig{
			Path: filepath.Join(dir, "activity.db"),
		},
	}
}

// Load reads defaults, then the YAML file at path (a missing file is fine),
// then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.API.BaseURL = NormalizeBaseURL(cfg.API.BaseURL)
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.API.BaseURL = getenv("SMSLOGS_API_BASE_URL", cfg.API.BaseURL)
	cfg.API.Token = getenv("SMSLOGS_API_TOKEN", cfg.API.Token)
	cfg.UI.Language = getenv("SMSLOGS_LANG", cfg.UI.Language)
	cfg.Log.File = getenv("SMSLOGS_LOG_FILE", cfg.Log.File)
	cfg.Log.Level = getenv("SMSLOGS_LOG_LEVEL", cfg.Log.Level)
	cfg.Storage.Path = getenv("SMSLOGS_DB_PATH", cfg.Storage.Path)

	if v := os.Getenv("SMSLOGS_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SMSLOGS_API_TIMEOUT %q: %w", v, err)
		}
		cfg.API.Timeout = d
	}
	return nil
}

// NormalizeBaseURL strips one trailing slash. An empty base URL stays empty.
func NormalizeBaseURL(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), "/")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
