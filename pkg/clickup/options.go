package clickup

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public address of the service.
const DefaultBaseURL = "https://api.clickup.com/"

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// defaultConfig returns the default client configuration. A zero timeout
// means requests wait as long as the context allows.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}
}

// WithBaseURL sets the server base URL. A trailing slash is added if missing.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. WithTimeout is ignored
// when this option is used.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithLogger attaches a logger. The client emits one debug entry per round
// trip and nothing else.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// ListTasksOption configures a ListTasksForTeam call.
type ListTasksOption func(*listTasksOptions)

// listTasksOptions holds options for listing tasks.
type listTasksOptions struct {
	spaceID       string
	includeClosed bool
	version       APIVersion
}

// defaultListTasksOptions returns the default list options.
func defaultListTasksOptions() *listTasksOptions {
	return &listTasksOptions{
		includeClosed: true,
		version:       V1,
	}
}

// WithSpaceID narrows the listing to one space.
func WithSpaceID(spaceID string) ListTasksOption {
	return func(o *listTasksOptions) {
		o.spaceID = spaceID
	}
}

// WithIncludeClosed controls whether closed tasks are returned (default: true).
func WithIncludeClosed(include bool) ListTasksOption {
	return func(o *listTasksOptions) {
		o.includeClosed = include
	}
}

// WithListVersion selects the API version used for the listing. Only V1
// implements it.
func WithListVersion(version APIVersion) ListTasksOption {
	return func(o *listTasksOptions) {
		o.version = version
	}
}

// CreateTaskOption configures a CreateTask call.
type CreateTaskOption func(*createTaskOptions)

// createTaskOptions holds options for creating a task.
type createTaskOptions struct {
	estimateMinutes *int
}

// WithEstimateMinutes sets a time estimate on the created task. Zero is the
// same as not setting it.
func WithEstimateMinutes(minutes int) CreateTaskOption {
	return func(o *createTaskOptions) {
		o.estimateMinutes = &minutes
	}
}
