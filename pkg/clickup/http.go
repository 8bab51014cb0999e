package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxErrorBody bounds the response excerpt attached to upstream errors.
const maxErrorBody = 512

// call describes one round trip to the service.
type call struct {
	method  string
	version APIVersion
	path    string
	query   url.Values
	body    interface{}
	form    url.Values
	// anonymous calls carry no Authorization header (login).
	anonymous bool
}

// authorization returns the Authorization header value for the version.
func (c *Client) authorization(version APIVersion) string {
	if version == V1 {
		return c.apiKey
	}
	return "Bearer " + c.bearer
}

// newRequest creates a new HTTP request with common headers.
func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	reqURL := c.baseURL + cl.path
	if len(cl.query) > 0 {
		reqURL += "?" + cl.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case cl.form != nil:
		body = strings.NewReader(cl.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case cl.body != nil:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(cl.body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = &buf
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !cl.anonymous {
		req.Header.Set("Authorization", c.authorization(cl.version))
	}

	return req, nil
}

// do performs one round trip and returns the decoded body. Non-2xx statuses
// and malformed bodies become upstream errors, transport failures become
// network errors.
func (c *Client) do(ctx context.Context, cl call) (Object, error) {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.String("version", string(cl.version)),
			zap.Error(err),
		)
		return nil, newNetworkError(cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(cl.method, cl.path, fmt.Errorf("failed to read response: %w", err))
	}

	c.log.Debug("request",
		zap.String("method", cl.method),
		zap.String("path", cl.path),
		zap.String("version", string(cl.version)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newUpstreamError(cl.method, cl.path, resp.StatusCode, excerpt(data))
	}

	return decodeObject(data, cl.method, cl.path, resp.StatusCode)
}

// decodeObject parses a response body. An empty body decodes to an empty
// Object.
func decodeObject(data []byte, method, path string, statusCode int) (Object, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Object{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj Object
	if err := dec.Decode(&obj); err != nil {
		return nil, newDecodeError(method, path, statusCode, err)
	}
	if obj == nil {
		obj = Object{}
	}
	return obj, nil
}

func excerpt(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}

// arrayValues adds each value under the repeated key "name[]".
func arrayValues(q url.Values, name string, values ...string) {
	for _, v := range values {
		q.Add(name+"[]", v)
	}
}
