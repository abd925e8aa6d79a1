package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write report")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Err != cause {
		t.Errorf("Err = %v, want %v", err.Err, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "IO: write report: disk full"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeLayoutOverflow, "test"),
			code:     ErrCodeLayoutOverflow,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeLayoutOverflow, "test"),
			code:     ErrCodeAsset,
			expected: false,
		},
		{
			name:     "wrapped in fmt error",
			err:      fmt.Errorf("generate: %w", New(ErrCodeAsset, "bad logo")),
			code:     ErrCodeAsset,
			expected: true,
		},
		{
			name:     "inner coded layer",
			err:      Wrap(ErrCodeRender, New(ErrCodeLayoutOverflow, "too tall"), "kit A"),
			code:     ErrCodeLayoutOverflow,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeRender, "test"),
			expected: ErrCodeRender,
		},
		{
			name:     "outermost wins",
			err:      fmt.Errorf("run: %w", Wrap(ErrCodeRender, New(ErrCodeAsset, "logo"), "page")),
			expected: ErrCodeRender,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	root := errors.New("permission denied")
	err := fmt.Errorf("pipeline: %w", Wrap(ErrCodeIO, root, "write out.pdf"))

	got := Trace(err)
	want := []string{
		"pipeline: IO: write out.pdf: permission denied",
		"IO: write out.pdf",
		"permission denied",
	}
	if len(got) != len(want) {
		t.Fatalf("Trace() returned %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Trace()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if lines := Trace(nil); len(lines) != 0 {
		t.Errorf("Trace(nil) = %q, want empty", lines)
	}
}
