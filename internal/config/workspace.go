package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigFileName is the name of the workspace configuration file
	ConfigFileName = "clickup.toml"
)

// ErrNoWorkspaceConfig is returned by discovery when no clickup.toml exists
// between the start directory and the filesystem root.
var ErrNoWorkspaceConfig = errors.New("no clickup.toml found")

// WorkspaceConfig represents the directory-level defaults from clickup.toml
type WorkspaceConfig struct {
	Path    string `toml:"-"`
	TeamID  string `toml:"team_id"`
	SpaceID string `toml:"space_id"`
}

// DiscoverWorkspaceConfig finds and parses the clickup.toml file by traversing
// up the directory tree from the current working directory.
func DiscoverWorkspaceConfig() (*WorkspaceConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return discoverWorkspaceConfigFrom(cwd)
}

// discoverWorkspaceConfigFrom searches for clickup.toml starting from the given directory
func discoverWorkspaceConfigFrom(startDir string) (*WorkspaceConfig, error) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return ParseWorkspaceConfig(configPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return nil, ErrNoWorkspaceConfig
		}
		dir = parent
	}
}

// ParseWorkspaceConfig parses the clickup.toml file at the given path
func ParseWorkspaceConfig(path string) (*WorkspaceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg WorkspaceConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if cfg.SpaceID != "" && cfg.TeamID == "" {
		return nil, errors.New("space_id requires team_id")
	}

	cfg.Path = path
	return &cfg, nil
}
