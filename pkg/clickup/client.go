package clickup

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Client is an authenticated session against the service.
//
// A Client is meant to be owned by one goroutine. Registry updates made by
// ListCategories and Refresh are not synchronized, so callers sharing a
// Client must serialize access themselves.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	email    string
	apiKey   string
	bearer   string
	username string
	userID   string

	teams         map[string]string
	spaces        map[string]Space
	subcategories map[string]Subcategory
}

// Connect logs in with email and password, then discovers the current user,
// the visible teams and the spaces of every team.
//
// Optional options:
//   - WithBaseURL: sets the server base URL (default: https://api.clickup.com/)
//   - WithTimeout: sets the HTTP client timeout (default: none)
//   - WithHTTPClient: replaces the HTTP client
//   - WithLogger: attaches a zap logger (default: no-op)
//
// Example:
//
//	client, err := clickup.Connect(ctx, "me@example.com", "secret", "pk_123")
func Connect(ctx context.Context, email, password, apiKey string, opts ...ClientOption) (*Client, error) {
	var missing []string
	if email == "" {
		missing = append(missing, "email is required")
	}
	if password == "" {
		missing = append(missing, "password is required")
	}
	if apiKey == "" {
		missing = append(missing, "API key is required")
	}
	if len(missing) > 0 {
		return nil, newValidationError(missing...)
	}

	c := newClient(email, apiKey, opts...)

	token, err := c.login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.bearer = token

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// newClient builds an unauthenticated client from the options.
func newClient(email, apiKey string, opts ...ClientOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	baseURL := cfg.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:       baseURL,
		http:          hc,
		log:           cfg.logger,
		email:         email,
		apiKey:        apiKey,
		teams:         make(map[string]string),
		spaces:        make(map[string]Space),
		subcategories: make(map[string]Subcategory),
	}
}

// login exchanges credentials for a bearer token.
func (c *Client) login(ctx context.Context, email, password string) (string, error) {
	query := url.Values{}
	query.Set("include_teams", "true")

	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.do(ctx, call{
		method:    http.MethodGet,
		version:   V1,
		path:      "v1/login",
		query:     query,
		form:      form,
		anonymous: true,
	})
	if err != nil {
		if IsUpstream(err) {
			return "", newAuthenticationError("login rejected", StatusCode(err), err)
		}
		return "", err
	}

	token := resp.Token()
	if token == "" {
		return "", newAuthenticationError("login response carried no token", http.StatusOK, nil)
	}
	return token, nil
}

// Refresh re-reads the current user, the teams and their spaces and merges
// them into the registries. Entries the service no longer reports are kept.
func (c *Client) Refresh(ctx context.Context) error {
	user, err := c.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	c.username = user.Username
	c.userID = user.ID

	resp, err := c.do(ctx, call{method: http.MethodGet, version: V1, path: "api/v1/team"})
	if err != nil {
		return err
	}
	// Only teams reported now are queried; cached ones may be gone.
	var current []string
	for _, team := range resp.Teams() {
		id := team.ID()
		if id == "" {
			continue
		}
		c.teams[id] = team.String("name")
		current = append(current, id)
	}

	for _, teamID := range current {
		spaces, err := c.ListTeamSpaces(ctx, teamID)
		if err != nil {
			return err
		}
		for _, space := range spaces.Spaces() {
			id := space.ID()
			if id == "" {
				continue
			}
			c.spaces[id] = Space{Name: space.String("name"), TeamID: teamID}
		}
	}

	c.log.Debug("discovered hierarchy",
		zap.Int("teams", len(c.teams)),
		zap.Int("spaces", len(c.spaces)),
	)
	return nil
}

// GetCurrentUser returns the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	resp, err := c.do(ctx, call{method: http.MethodGet, version: V1, path: "api/v1/user"})
	if err != nil {
		return nil, err
	}

	user := resp.User()
	return &User{
		Username: user.String("username"),
		ID:       user.ID(),
		Raw:      resp,
	}, nil
}

// Email returns the login email of the session.
func (c *Client) Email() string {
	return c.email
}

// Username returns the username discovered at connect time.
func (c *Client) Username() string {
	return c.username
}

// UserID returns the user ID discovered at connect time.
func (c *Client) UserID() string {
	return c.userID
}

// ListTeams returns a snapshot of the team registry (ID to name).
func (c *Client) ListTeams() map[string]string {
	out := make(map[string]string, len(c.teams))
	for id, name := range c.teams {
		out[id] = name
	}
	return out
}

// Spaces returns a snapshot of the space registry.
func (c *Client) Spaces() map[string]Space {
	out := make(map[string]Space, len(c.spaces))
	for id, s := range c.spaces {
		out[id] = s
	}
	return out
}

// Subcategories returns a snapshot of the subcategory registry.
func (c *Client) Subcategories() map[string]Subcategory {
	out := make(map[string]Subcategory, len(c.subcategories))
	for id, s := range c.subcategories {
		out[id] = s
	}
	return out
}
