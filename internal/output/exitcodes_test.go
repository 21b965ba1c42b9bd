package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ExitError
		wantCode     int
		wantMessage  string
		wantErrorStr string
	}{
		{
			name:         "user error",
			err:          NewUserError("accepts 1 arg(s), received 0"),
			wantCode:     ExitUserError,
			wantMessage:  "accepts 1 arg(s), received 0",
			wantErrorStr: "accepts 1 arg(s), received 0",
		},
		{
			name:         "user error with cause",
			err:          NewUserErrorWithCause("unable to parse document", errors.New("bad toml")),
			wantCode:     ExitUserError,
			wantMessage:  "unable to parse document",
			wantErrorStr: "unable to parse document",
		},
		{
			name:         "system error",
			err:          NewSystemErrorWithCause("cannot read entries.toml", nil),
			wantCode:     ExitSystemError,
			wantMessage:  "cannot read entries.toml",
			wantErrorStr: "cannot read entries.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Error() != tt.wantErrorStr {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantErrorStr)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("no such file or directory")
	err := NewSystemErrorWithCause("file does not exist", underlying)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	if err.Error() != "file does not exist" {
		t.Errorf("Error() = %q, want %q", err.Error(), "file does not exist")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "ExitError user",
			err:      NewUserError("bad input"),
			expected: ExitUserError,
		},
		{
			name:     "ExitError system",
			err:      NewSystemErrorWithCause("read failed", nil),
			expected: ExitSystemError,
		},
		{
			name:     "wrapped ExitError",
			err:      fmt.Errorf("render: %w", NewSystemErrorWithCause("read failed", nil)),
			expected: ExitSystemError,
		},
		{
			name:     "regular error defaults to user error",
			err:      errors.New("some error"),
			expected: ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
