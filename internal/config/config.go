package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	Server         string `yaml:"server"`
	Name           string `yaml:"name,omitempty"`
	RequestTimeout string `yaml:"request_timeout,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
}

// Timeout returns the per-request deadline, defaulting to 10s when the
// configured value is missing or unparseable.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Level returns the configured log level string, defaulting to info.
func (c *Config) Level() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "shoutbox", "config.yaml")
}

// HistoryPath is where the client keeps its local sqlite state.
func HistoryPath() string {
	return filepath.Join(xdg.DataHome, "shoutbox", "shoutbox.db")
}

// LogPath is where the log file goes. Stdout belongs to the interface
// while it runs, so logs never do.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "shoutbox", "shoutbox.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal over the defaults so a partial file keeps the rest
	cfg := *defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Server) == "" {
		return fmt.Errorf("server is required")
	}
	u, err := url.Parse(cfg.Server)
	if err != nil {
		return fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("server url %q has no host", cfg.Server)
	}
	if cfg.RequestTimeout != "" {
		if _, err := time.ParseDuration(cfg.RequestTimeout); err != nil {
			return fmt.Errorf("invalid request_timeout %q: %w", cfg.RequestTimeout, err)
		}
	}
	return nil
}
