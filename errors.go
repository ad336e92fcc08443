package ise

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for common failure modes.
var (
	ErrNoCredentials = errors.New("ise: no credentials configured")
	ErrNoHost        = errors.New("ise: no host configured")
)

// maxErrorExcerpt caps how much of a non-JSON error body is kept.
const maxErrorExcerpt = 512

// APIError represents a general ERS API error.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
	Operation  string `json:"operation,omitempty"`
}

func (e *APIError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("ise: API error %d: %s (operation=%s)", e.StatusCode, e.Message, e.Operation)
	}
	return fmt.Sprintf("ise: API error %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates authentication or authorization failure
// (401/403), typically a missing ERS-Admin or ERS-Operator role.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("ise: authentication failed: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// NotFoundError indicates the requested resource was not found, either
// via a 404 response or an empty name/MAC filter match.
type NotFoundError struct {
	APIError
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	if e.ResourceType != "" && e.ResourceID != "" {
		return fmt.Sprintf("ise: %s not found: %s", e.ResourceType, e.ResourceID)
	}
	return fmt.Sprintf("ise: resource not found: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ValidationError indicates invalid request data, either rejected locally
// (malformed MAC address, empty id) or by the server (400).
type ValidationError struct {
	APIError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ise: validation error: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ValidationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ServerError indicates an internal server error (5xx).
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("ise: server error %d: %s", e.StatusCode, e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ServerError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ersErrorEnvelope is the ERS error response shape.
type ersErrorEnvelope struct {
	ERSResponse struct {
		Operation string `json:"operation"`
		Messages  []struct {
			Title string `json:"title"`
			Type  string `json:"type"`
			Code  string `json:"code"`
		} `json:"messages"`
	} `json:"ERSResponse"`
}

// parseError converts an HTTP response into the appropriate error type.
func parseError(statusCode int, body []byte) error {
	base := APIError{
		StatusCode: statusCode,
	}

	// ERS wraps error details in an ERSResponse envelope
	var env ersErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.ERSResponse.Messages) > 0 {
		base.Message = env.ERSResponse.Messages[0].Title
		base.Operation = env.ERSResponse.Operation
	} else {
		base.Message = bodyExcerpt(body)
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case statusCode == http.StatusBadRequest:
		return &ValidationError{APIError: base}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{APIError: base}
	default:
		return &base
	}
}

// bodyExcerpt trims a raw error body down to a loggable excerpt. The cut
// backs off to a rune boundary so a multi-byte character is never split.
func bodyExcerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorExcerpt {
		cut := maxErrorExcerpt
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
