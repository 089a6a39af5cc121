package errors

import (
	"errors"
	"os/exec"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeManifestNotPoetry, "not a poetry project: %s", "pyproject.toml")

	if err.Code != ErrCodeManifestNotPoetry {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeManifestNotPoetry)
	}

	if err.Message != "not a poetry project: pyproject.toml" {
		t.Errorf("Message = %v, want %v", err.Message, "not a poetry project: pyproject.toml")
	}

	expected := "MANIFEST_NOT_POETRY: not a poetry project: pyproject.toml"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeManifestWriteFailed, cause, "could not write pyproject.toml")

	if err.Code != ErrCodeManifestWriteFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeManifestWriteFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "MANIFEST_WRITE_FAILED: could not write pyproject.toml: permission denied"
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
			err:      New(ErrCodeManifestUnreadable, "test"),
			code:     ErrCodeManifestUnreadable,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeManifestUnreadable, "test"),
			code:     ErrCodeSubprocessFailed,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeSubprocessLaunch, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeSubprocessLaunch,
			expected: true,
		},
		{
			name:     "exit error",
			err:      &ExitError{Command: "poetry update", ExitCode: 1},
			code:     ErrCodeSubprocessFailed,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "empty code never matches",
			err:      errors.New("plain error"),
			code:     "",
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
			err:      New(ErrCodeInvalidConfig, "test"),
			expected: ErrCodeInvalidConfig,
		},
		{
			name:     "exit error",
			err:      &ExitError{Command: "poetry lock", ExitCode: 2},
			expected: ErrCodeSubprocessFailed,
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
			err:      New(ErrCodeManifestNotPoetry, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error type with cause",
			err:      Wrap(ErrCodeManifestUnreadable, errors.New("no such file"), "could not read pyproject.toml"),
			expected: "could not read pyproject.toml: no such file",
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

func TestExitError(t *testing.T) {
	t.Run("exit status", func(t *testing.T) {
		err := &ExitError{Command: "poetry add requests", ExitCode: 1}
		expected := `SUBPROCESS_FAILED: "poetry add requests" exited with status 1`
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("abnormal termination", func(t *testing.T) {
		err := &ExitError{Command: "poetry update", ExitCode: -1, Cause: errors.New("signal: killed")}
		expected := `SUBPROCESS_FAILED: "poetry update" terminated abnormally: signal: killed`
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := &exec.ExitError{}
		err := &ExitError{Command: "poetry lock", ExitCode: 1, Cause: cause}
		var target *exec.ExitError
		if !errors.As(err, &target) {
			t.Error("errors.As should find the *exec.ExitError cause")
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &ExitError{}
		if err.Code() != ErrCodeSubprocessFailed {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeSubprocessFailed)
		}
	})
}
