package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".clickup"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// GlobalConfig represents the user-level configuration from ~/.clickup/config.toml
type GlobalConfig struct {
	Email    string
	Password string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// globalConfigFile represents the raw TOML structure for global config
type globalConfigFile struct {
	Auth   authConfig   `toml:"auth"`
	Server serverConfig `toml:"server"`
}

// authConfig represents the [auth] section in TOML
type authConfig struct {
	Email    string `toml:"email"`
	Password string `toml:"password"`
	APIKey   string `toml:"api_key"`
}

// serverConfig represents the [server] section in TOML
type serverConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// LoadGlobalConfig loads the global configuration from ~/.clickup/config.toml.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadGlobalConfigFromDir(homeDir)
}

// LoadGlobalConfigFromDir loads global config using the specified directory as home.
// This is useful for testing.
func LoadGlobalConfigFromDir(homeDir string) (*GlobalConfig, error) {
	configPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var rawConfig globalConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse global config TOML: %w", err)
	}

	cfg := &GlobalConfig{
		Email:    rawConfig.Auth.Email,
		Password: rawConfig.Auth.Password,
		APIKey:   rawConfig.Auth.APIKey,
		BaseURL:  rawConfig.Server.BaseURL,
	}

	if rawConfig.Server.Timeout != "" {
		timeout, err := parseTimeout(rawConfig.Server.Timeout)
		if err != nil {
			return nil, err
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// parseTimeout parses a Go duration string and rejects negative values.
func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", s)
	}
	return d, nil
}
