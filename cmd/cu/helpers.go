package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/clickup-go/clickup/internal/config"
	"github.com/clickup-go/clickup/pkg/clickup"
)

// resolveConfig is replaced in tests.
var resolveConfig = config.ResolveConfig

// loadConfig resolves the config and applies command line overrides.
func loadConfig() (*config.ResolvedConfig, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg, nil
}

// getClient connects a client from the resolved config
func getClient(ctx context.Context) (*clickup.Client, *config.ResolvedConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return nil, nil, err
	}
	activeLogger = logger

	c, err := clickup.Connect(ctx, cfg.Email, cfg.Password, cfg.APIKey,
		clickup.WithBaseURL(cfg.BaseURL),
		clickup.WithTimeout(cfg.Timeout),
		clickup.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// activeLogger is the logger built by getClient, flushed by syncLogger.
var activeLogger *zap.Logger

// syncLogger flushes and forgets the active logger.
func syncLogger() {
	if activeLogger == nil {
		return
	}
	// Sync fails with EINVAL on terminals.
	_ = activeLogger.Sync()
	activeLogger = nil
}

// newLogger returns a development logger at debug level when verbose is set
// and a warn-level production logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, config.ErrMissingCredentials):
		return ExitNotConfigured
	case clickup.IsNetwork(err):
		return ExitNetworkError
	case clickup.IsAuthentication(err):
		return ExitAuthentication
	case clickup.IsUpstream(err):
		return ExitUpstreamError
	case clickup.IsValidationFailed(err), clickup.IsUnsupportedVersion(err):
		return ExitInvalidInput
	default:
		return ExitGeneralError
	}
}

// teamFlag returns --team or the workspace default.
func teamFlag(cmd *cobra.Command, cfg *config.ResolvedConfig) (string, error) {
	team, _ := cmd.Flags().GetString("team")
	if team == "" {
		team = cfg.TeamID
	}
	if team == "" {
		return "", fmt.Errorf("team ID is required: use --team or set team_id in %s", config.ConfigFileName)
	}
	return team, nil
}

// spaceFlag returns --space or the workspace default.
func spaceFlag(cmd *cobra.Command, cfg *config.ResolvedConfig) (string, error) {
	space, _ := cmd.Flags().GetString("space")
	if space == "" {
		space = cfg.SpaceID
	}
	if space == "" {
		return "", fmt.Errorf("space ID is required: use --space or set space_id in %s", config.ConfigFileName)
	}
	return space, nil
}

// parseDue parses a due date given as Unix seconds, RFC 3339 or YYYY-MM-DD
// (local midnight).
func parseDue(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("due date must not be negative, got %d", n)
		}
		return n, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Unix(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Unix(), nil
	}
	return 0, fmt.Errorf("invalid due date: %s (use Unix seconds, RFC 3339 or YYYY-MM-DD)", s)
}

// truncate shortens s to maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
