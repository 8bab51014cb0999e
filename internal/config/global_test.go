package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeGlobal writes content to <home>/.clickup/config.toml.
func writeGlobal(t *testing.T, homeDir, content string) {
	t.Helper()
	dir := filepath.Join(homeDir, ".clickup")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create .clickup directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
}

func TestGlobal_FileExists(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobal(t, tmpDir, `
[auth]
email = "me@example.com"
password = "secret"
api_key = "pk_123"

[server]
base_url = "https://clickup.internal.example.com/"
timeout = "5s"
`)

	cfg, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Email != "me@example.com" {
		t.Errorf("expected email 'me@example.com', got '%s'", cfg.Email)
	}
	if cfg.Password != "secret" {
		t.Errorf("expected password 'secret', got '%s'", cfg.Password)
	}
	if cfg.APIKey != "pk_123" {
		t.Errorf("expected api key 'pk_123', got '%s'", cfg.APIKey)
	}
	if cfg.BaseURL != "https://clickup.internal.example.com/" {
		t.Errorf("unexpected base URL '%s'", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.Timeout)
	}
}

func TestGlobal_FileNotExists(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("expected no error when config doesn't exist, got: %v", err)
	}

	if cfg.Email != "" || cfg.APIKey != "" || cfg.BaseURL != "" || cfg.Timeout != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestGlobal_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobal(t, tmpDir, `this is not valid toml {{{`)

	_, err := LoadGlobalConfigFromDir(tmpDir)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestGlobal_InvalidTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
	}{
		{name: "not a duration", timeout: "soon"},
		{name: "negative", timeout: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeGlobal(t, tmpDir, "[server]\ntimeout = \""+tt.timeout+"\"\n")

			if _, err := LoadGlobalConfigFromDir(tmpDir); err == nil {
				t.Fatalf("expected error for timeout %q", tt.timeout)
			}
		})
	}
}

func TestGlobal_PartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobal(t, tmpDir, `
[auth]
api_key = "pk_only"
`)

	cfg, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "pk_only" {
		t.Errorf("expected api key 'pk_only', got '%s'", cfg.APIKey)
	}
	if cfg.Email != "" {
		t.Errorf("expected empty email, got '%s'", cfg.Email)
	}
	if cfg.Timeout != 0 {
		t.Errorf("expected zero timeout, got %v", cfg.Timeout)
	}
}
