package clickup

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure returned by the client.
type ErrorCode string

const (
	ErrCodeAuthentication     ErrorCode = "AUTHENTICATION_FAILED"
	ErrCodeNetwork            ErrorCode = "NETWORK_ERROR"
	ErrCodeUpstream           ErrorCode = "UPSTREAM_ERROR"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnsupportedVersion ErrorCode = "UNSUPPORTED_VERSION"
)

// Error is the single error type returned by the client. The Code tells the
// caller which class of failure occurred; StatusCode is set when the service
// answered with a non-2xx status.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Context    map[string]interface{}
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Helper functions to check error types.

// IsAuthentication returns true if login was rejected or returned no token.
func IsAuthentication(err error) bool {
	return hasErrorCode(err, ErrCodeAuthentication)
}

// IsNetwork returns true if the request never completed at the transport level.
func IsNetwork(err error) bool {
	return hasErrorCode(err, ErrCodeNetwork)
}

// IsUpstream returns true if the service answered with a non-2xx status or an
// unparseable body.
func IsUpstream(err error) bool {
	return hasErrorCode(err, ErrCodeUpstream)
}

// IsValidationFailed returns true if the caller supplied invalid arguments.
func IsValidationFailed(err error) bool {
	return hasErrorCode(err, ErrCodeValidationFailed)
}

// IsUnsupportedVersion returns true if an operation was invoked with an API
// version it does not implement.
func IsUnsupportedVersion(err error) bool {
	return hasErrorCode(err, ErrCodeUnsupportedVersion)
}

// StatusCode returns the HTTP status attached to err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// hasErrorCode checks if the error has the given error code.
func hasErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

func newAuthenticationError(msg string, statusCode int, cause error) *Error {
	return &Error{
		Code:       ErrCodeAuthentication,
		Message:    msg,
		StatusCode: statusCode,
		Err:        cause,
	}
}

func newNetworkError(method, path string, cause error) *Error {
	return &Error{
		Code:    ErrCodeNetwork,
		Message: fmt.Sprintf("%s %s failed", method, path),
		Context: map[string]interface{}{"method": method, "path": path},
		Err:     cause,
	}
}

func newUpstreamError(method, path string, statusCode int, body string) *Error {
	return &Error{
		Code:       ErrCodeUpstream,
		Message:    fmt.Sprintf("%s %s returned status %d", method, path, statusCode),
		StatusCode: statusCode,
		Context: map[string]interface{}{
			"method": method,
			"path":   path,
			"body":   body,
		},
	}
}

func newDecodeError(method, path string, statusCode int, cause error) *Error {
	return &Error{
		Code:       ErrCodeUpstream,
		Message:    fmt.Sprintf("%s %s returned a malformed body", method, path),
		StatusCode: statusCode,
		Context:    map[string]interface{}{"method": method, "path": path},
		Err:        cause,
	}
}

// newValidationError creates a validation error.
func newValidationError(details ...string) *Error {
	msg := "Validation failed"
	if len(details) == 1 {
		msg = details[0]
	}
	return &Error{
		Code:    ErrCodeValidationFailed,
		Message: msg,
		Context: map[string]interface{}{"details": details},
	}
}

func newUnsupportedVersionError(op string, version APIVersion) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedVersion,
		Message: fmt.Sprintf("%s is not available in API version %s", op, version),
		Context: map[string]interface{}{"operation": op, "version": string(version)},
	}
}
