package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/clickup-go/clickup/pkg/clickup"
)

// Environment variables read by ResolveConfig.
const (
	EnvEmail    = "CLICKUP_EMAIL"
	EnvPassword = "CLICKUP_PASSWORD"
	EnvAPIKey   = "CLICKUP_API_KEY"
	EnvBaseURL  = "CLICKUP_BASE_URL"
)

// DefaultTimeout is applied by the CLI when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// ErrMissingCredentials is returned by Validate when email, password or API
// key is still empty after resolution.
var ErrMissingCredentials = errors.New("missing credentials")

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. Environment variables (CLICKUP_*)
// 2. Workspace config (clickup.toml)
// 3. Global config (~/.clickup/config.toml)
// 4. Built-in defaults
type ResolvedConfig struct {
	Email    string
	Password string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	TeamID   string
	SpaceID  string
}

// ResolveConfig loads the global config, discovers the workspace config and
// merges them with the environment according to precedence rules.
func ResolveConfig() (*ResolvedConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return ResolveConfigWithHome(homeDir, cwd, os.Getenv)
}

// ResolveConfigWithHome resolves config using a specified home directory,
// start directory and environment lookup.
// This is useful for testing.
func ResolveConfigWithHome(homeDir, startDir string, getenv func(string) string) (*ResolvedConfig, error) {
	// Step 1: Load global config (optional, errors are not ignored for invalid files)
	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	// Step 2: Discover workspace config (optional)
	workspaceCfg, err := discoverWorkspaceConfigFrom(startDir)
	if err != nil && !errors.Is(err, ErrNoWorkspaceConfig) {
		return nil, err
	}

	// Step 3: Merge with precedence (defaults -> global -> workspace -> env)
	resolved := &ResolvedConfig{
		BaseURL: clickup.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}

	resolved.Email = globalCfg.Email
	resolved.Password = globalCfg.Password
	resolved.APIKey = globalCfg.APIKey
	if globalCfg.BaseURL != "" {
		resolved.BaseURL = globalCfg.BaseURL
	}
	if globalCfg.Timeout != 0 {
		resolved.Timeout = globalCfg.Timeout
	}

	if workspaceCfg != nil {
		resolved.TeamID = workspaceCfg.TeamID
		resolved.SpaceID = workspaceCfg.SpaceID
	}

	if getenv != nil {
		override(&resolved.Email, getenv(EnvEmail))
		override(&resolved.Password, getenv(EnvPassword))
		override(&resolved.APIKey, getenv(EnvAPIKey))
		override(&resolved.BaseURL, getenv(EnvBaseURL))
	}

	return resolved, nil
}

// Validate reports missing credentials.
func (c *ResolvedConfig) Validate() error {
	var missing []string
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if c.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if len(missing) > 0 {
		return &MissingError{Fields: missing}
	}
	return nil
}

// MissingError lists the credential fields that could not be resolved.
type MissingError struct {
	Fields []string
}

func (e *MissingError) Error() string {
	return "missing credentials: " + strings.Join(e.Fields, ", ") +
		" (set them in ~/" + GlobalConfigDir + "/" + GlobalConfigFileName + " or via " + EnvEmail + ", " + EnvPassword + ", " + EnvAPIKey + ")"
}

// Is makes errors.Is(err, ErrMissingCredentials) hold.
func (e *MissingError) Is(target error) bool {
	return target == ErrMissingCredentials
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
