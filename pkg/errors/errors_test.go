// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/smartcd/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "no such directory: foo",
			wantStr: "[NOT_FOUND] no such directory: foo",
		},
		{
			name:    "tool_missing_error",
			code:    errors.ErrToolMissing,
			message: "fd is not installed",
			wantStr: "[TOOL_MISSING] fd is not installed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNoMatches, "no directories matching %q", "proj")
	if err.Message != `no directories matching "proj"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrChangeDirFailed, "cannot enter /root")

		if err.Code != errors.ErrChangeDirFailed {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrChangeDirFailed)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CHDIR_FAILED] cannot enter /root: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found").
		WithDetail("token", "Docs").
		WithDetail("segment", "docs")

	if err.Details["token"] != "Docs" {
		t.Errorf("WithDetail() token = %v", err.Details["token"])
	}
	if err.Details["segment"] != "docs" {
		t.Errorf("WithDetail() segment = %v", err.Details["segment"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrCancelled, "selection cancelled")
	err2 := errors.New(errors.ErrCancelled, "picker closed")
	err3 := errors.New(errors.ErrNoMatches, "nothing")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNotFound, "x"), errors.ErrNotFound, true},
		{"different_code", errors.New(errors.ErrNotFound, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrToolFailed, "fd failed"), errors.ErrToolFailed, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrInvalidDestination, "x")); got != errors.ErrInvalidDestination {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain_error", stderrors.New("boom"), "boom"},
		{"coded_error", errors.New(errors.ErrNoMatches, "no directories matching \"x\""), "no directories matching \"x\""},
		{
			name: "wrapped_foreign_error",
			err:  errors.Wrap(stderrors.New("permission denied"), errors.ErrChangeDirFailed, "cannot enter /srv"),
			want: "cannot enter /srv: permission denied",
		},
		{
			name: "wrapped_same_code",
			err:  errors.Wrap(errors.New(errors.ErrCancelled, "inner"), errors.ErrCancelled, "selection cancelled"),
			want: "selection cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
