package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscovery_CurrentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "clickup.toml")
	if err := os.WriteFile(configPath, []byte(`team_id = "t1"`), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Save and restore working directory
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(originalWd)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	cfg, err := DiscoverWorkspaceConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TeamID != "t1" {
		t.Errorf("expected team 't1', got '%s'", cfg.TeamID)
	}
}

func TestDiscovery_DeeplyNested(t *testing.T) {
	// Create structure: root/a/b/c with config in root
	rootDir := t.TempDir()
	nested := filepath.Join(rootDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested directories: %v", err)
	}

	content := `
team_id = "t1"
space_id = "s1"
`
	if err := os.WriteFile(filepath.Join(rootDir, "clickup.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	cfg, err := discoverWorkspaceConfigFrom(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TeamID != "t1" || cfg.SpaceID != "s1" {
		t.Errorf("expected t1/s1, got %s/%s", cfg.TeamID, cfg.SpaceID)
	}
	if cfg.Path != filepath.Join(rootDir, "clickup.toml") {
		t.Errorf("expected path in root dir, got %s", cfg.Path)
	}
}

func TestDiscovery_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := discoverWorkspaceConfigFrom(tmpDir)
	if !errors.Is(err, ErrNoWorkspaceConfig) {
		t.Fatalf("expected ErrNoWorkspaceConfig, got %v", err)
	}
}

func TestParse_SpaceWithoutTeam(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "clickup.toml")
	if err := os.WriteFile(configPath, []byte(`space_id = "s1"`), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	_, err := ParseWorkspaceConfig(configPath)
	if err == nil {
		t.Fatal("expected error for space_id without team_id")
	}
	if !strings.Contains(err.Error(), "requires team_id") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_EmptyWorkspaceFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "clickup.toml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	cfg, err := ParseWorkspaceConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TeamID != "" || cfg.SpaceID != "" {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
}

func TestParse_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "clickup.toml")
	if err := os.WriteFile(configPath, []byte(`team_id = `), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	_, err := ParseWorkspaceConfig(configPath)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestParse_FileNotFound(t *testing.T) {
	_, err := ParseWorkspaceConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
