package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Server == "" {
		t.Error("expected server to be set")
	}
	if cfg.Level() != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Level())
	}
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"2m", 2 * time.Minute},
		{"", 10 * time.Second},
		{"invalid", 10 * time.Second},
		{"-5s", 10 * time.Second},
	}
	for _, tt := range tests {
		cfg := &Config{RequestTimeout: tt.input}
		if got := cfg.Timeout(); got != tt.want {
			t.Errorf("Timeout(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `server: https://board.example.com
name: alice
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server != "https://board.example.com" {
		t.Errorf("expected server from file, got %s", cfg.Server)
	}
	if cfg.Name != "alice" {
		t.Errorf("expected name alice, got %s", cfg.Name)
	}
	// Fields absent from the file keep the embedded defaults
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.Timeout())
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server == "" {
		t.Error("expected default server when config doesn't exist")
	}
	// First run should have written the defaults out
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestValidateMissingServer(t *testing.T) {
	cfg := &Config{}
	if err := validate(cfg); err == nil {
		t.Error("expected error for missing server")
	}
}

func TestValidateInvalidScheme(t *testing.T) {
	cfg := &Config{Server: "ftp://board.example.com"}
	if err := validate(cfg); err == nil {
		t.Error("expected error for ftp:// server scheme")
	}
}

func TestValidateHostRequired(t *testing.T) {
	cfg := &Config{Server: "http://"}
	if err := validate(cfg); err == nil {
		t.Error("expected error for server url with no host")
	}
}

func TestValidateBadTimeout(t *testing.T) {
	cfg := &Config{Server: "http://localhost:8080", RequestTimeout: "soon"}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unparseable request_timeout")
	}
}

func TestValidateAccepts(t *testing.T) {
	for _, server := range []string{"http://localhost:8080", "https://board.example.com"} {
		cfg := &Config{Server: server, RequestTimeout: "15s"}
		if err := validate(cfg); err != nil {
			t.Errorf("unexpected error for %s: %v", server, err)
		}
	}
}
