package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"resort/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("broken payload")),
			code:    http.StatusBadRequest,
			message: "broken payload",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("missing field"),
			code:    http.StatusBadRequest,
			message: "missing field",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("invalid credentials"),
			code:    http.StatusUnauthorized,
			message: "invalid credentials",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("admins only"),
			code:    http.StatusForbidden,
			message: "admins only",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("email already registered"),
			code:    http.StatusConflict,
			message: "email already registered",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("db down")),
			code:    http.StatusInternalServerError,
			message: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	t.Run("plain error defaults to 500", func(t *testing.T) {
		if got := failure.GetCode(errors.New("boom")); got != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, got)
		}
	})

	t.Run("wrapped failure keeps its code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", failure.NotFound("user"))

		if got := failure.GetCode(wrapped); got != http.StatusNotFound {
			t.Errorf("expected %d, got %d", http.StatusNotFound, got)
		}
	})
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for BadRequest(nil)")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for InternalError(nil)")
	}
}
