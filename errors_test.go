package ise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ise "github.com/netadm-tools/go-ise"
)

func TestAPIError(t *testing.T) {
	t.Run("Error without operation", func(t *testing.T) {
		err := &ise.APIError{
			StatusCode: 500,
			Message:    "internal error",
		}
		assert.Equal(t, "ise: API error 500: internal error", err.Error())
	})

	t.Run("Error with operation", func(t *testing.T) {
		err := &ise.APIError{
			StatusCode: 500,
			Message:    "internal error",
			Operation:  "GET-All-endpoint",
		}
		assert.Equal(t, "ise: API error 500: internal error (operation=GET-All-endpoint)", err.Error())
	})
}

func TestAuthenticationError(t *testing.T) {
	err := &ise.AuthenticationError{
		APIError: ise.APIError{
			StatusCode: 401,
			Message:    "invalid credentials",
		},
	}
	assert.Equal(t, "ise: authentication failed: invalid credentials", err.Error())

	// Test errors.As
	var apiErr *ise.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestNotFoundError(t *testing.T) {
	t.Run("with resource info", func(t *testing.T) {
		err := &ise.NotFoundError{
			APIError:     ise.APIError{StatusCode: 404},
			ResourceType: "endpoint",
			ResourceID:   "AA:BB:CC:00:11:22",
		}
		assert.Equal(t, "ise: endpoint not found: AA:BB:CC:00:11:22", err.Error())
	})

	t.Run("without resource info", func(t *testing.T) {
		err := &ise.NotFoundError{
			APIError: ise.APIError{
				StatusCode: 404,
				Message:    "not found",
			},
		}
		assert.Equal(t, "ise: resource not found: not found", err.Error())
	})
}

func TestValidationError(t *testing.T) {
	err := &ise.ValidationError{
		APIError: ise.APIError{
			StatusCode: 400,
			Message:    "bad request",
		},
	}
	assert.Equal(t, "ise: validation error: bad request", err.Error())
}

func TestServerError(t *testing.T) {
	err := &ise.ServerError{
		APIError: ise.APIError{
			StatusCode: 503,
			Message:    "service unavailable",
		},
	}
	assert.Equal(t, "ise: server error 503: service unavailable", err.Error())
}

func TestErrorsAs(t *testing.T) {
	// Test that all error types can be detected with errors.As
	tests := []struct {
		name string
		err  error
	}{
		{"AuthenticationError", &ise.AuthenticationError{APIError: ise.APIError{StatusCode: 401}}},
		{"NotFoundError", &ise.NotFoundError{APIError: ise.APIError{StatusCode: 404}}},
		{"ValidationError", &ise.ValidationError{APIError: ise.APIError{StatusCode: 400}}},
		{"ServerError", &ise.ServerError{APIError: ise.APIError{StatusCode: 500}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *ise.APIError
			require.ErrorAs(t, tt.err, &apiErr, "should be detectable as APIError")
		})
	}
}
