package clickup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
		want    bool
	}{
		{
			name:    "IsAuthentication with authentication error",
			err:     newAuthenticationError("login rejected", 401, nil),
			checker: IsAuthentication,
			want:    true,
		},
		{
			name:    "IsAuthentication with nil",
			err:     nil,
			checker: IsAuthentication,
			want:    false,
		},
		{
			name:    "IsNetwork with network error",
			err:     newNetworkError("GET", "api/v1/user", errors.New("dial tcp: connection refused")),
			checker: IsNetwork,
			want:    true,
		},
		{
			name:    "IsNetwork with upstream error",
			err:     newUpstreamError("GET", "api/v1/user", 500, ""),
			checker: IsNetwork,
			want:    false,
		},
		{
			name:    "IsUpstream with upstream error",
			err:     newUpstreamError("GET", "api/v1/user", 500, ""),
			checker: IsUpstream,
			want:    true,
		},
		{
			name:    "IsUpstream with decode error",
			err:     newDecodeError("GET", "api/v1/user", 200, errors.New("bad json")),
			checker: IsUpstream,
			want:    true,
		},
		{
			name:    "IsValidationFailed with validation error",
			err:     newValidationError("task name is required"),
			checker: IsValidationFailed,
			want:    true,
		},
		{
			name:    "IsUnsupportedVersion with unsupported version error",
			err:     newUnsupportedVersionError("ListTasksForTeam", V2),
			checker: IsUnsupportedVersion,
			want:    true,
		},
		{
			name:    "IsUnsupportedVersion with validation error",
			err:     newValidationError("x"),
			checker: IsUnsupportedVersion,
			want:    false,
		},
		{
			name:    "IsUpstream with wrapped error",
			err:     fmt.Errorf("list spaces: %w", newUpstreamError("GET", "p", 502, "")),
			checker: IsUpstream,
			want:    true,
		},
		{
			name:    "IsValidationFailed with plain error",
			err:     errors.New("something"),
			checker: IsValidationFailed,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.checker(tt.err))
		})
	}
}

func TestError_Messages(t *testing.T) {
	cause := errors.New("connection refused")
	err := newNetworkError("GET", "api/v1/team", cause)

	assert.Equal(t, "GET api/v1/team failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "task name is required", newValidationError("task name is required").Error())
	assert.Equal(t, "Validation failed", newValidationError("a", "b").Error())
	assert.Equal(t, "ListTasksForTeam is not available in API version v2",
		newUnsupportedVersionError("ListTasksForTeam", V2).Error())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 404, StatusCode(newUpstreamError("GET", "p", 404, "")))
	assert.Equal(t, 0, StatusCode(newValidationError("x")))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
	assert.Equal(t, 0, StatusCode(nil))
}
