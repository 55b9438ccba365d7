package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeFileNotFound, "product.json not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeFileNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeFileNotFound, err.Code)
	}
	if err.Message != "product.json not found" {
		t.Errorf("expected message 'product.json not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeWriteFailure, "operation failed", cause)

	if err.Code != ErrCodeWriteFailure {
		t.Errorf("expected code %s, got %s", ErrCodeWriteFailure, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("permission denied")
	ctx := map[string]interface{}{
		"path": "/opt/Cursor/resources/app/product.json",
	}

	err := WrapWithContext(ErrCodeBackupFailure, "backup failed", cause, ctx)

	if err.Code != ErrCodeBackupFailure {
		t.Errorf("expected code %s, got %s", ErrCodeBackupFailure, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["path"] != "/opt/Cursor/resources/app/product.json" {
		t.Errorf("expected path to be preserved")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeOSNotSupported, "unsupported operating system: plan9"),
			expected: "[OS_NOT_SUPPORTED] unsupported operating system: plan9",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeReadFailure, "failed", errors.New("root cause")),
			expected: "[READ_FAILURE] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"structured", New(ErrCodeEnvVarMissing, "LOCALAPPDATA not set"), ErrCodeEnvVarMissing},
		{"wrapped structured", fmt.Errorf("resolve: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound},
		{"plain", errors.New("plain"), ErrCodeInternal},
		{"nil", nil, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestContextOf(t *testing.T) {
	err := NewWithContext(ErrCodeFileNotFound, "missing", map[string]any{"path": "/tmp/x"})
	if got := ContextOf(err)["path"]; got != "/tmp/x" {
		t.Errorf("expected path /tmp/x, got %v", got)
	}
	if ContextOf(errors.New("plain")) == nil {
		t.Error("ContextOf should never return nil")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeEnvVarMissing,
		ErrCodeOSNotSupported,
		ErrCodeFileNotFound,
		ErrCodeNoWritePermission,
		ErrCodeReadFailure,
		ErrCodeParseError,
		ErrCodeBackupFailure,
		ErrCodeWriteFailure,
		ErrCodeNetworkFailure,
		ErrCodeInvalidRequest,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
