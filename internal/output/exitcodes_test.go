package output

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestExitErrorConstructors(t *testing.T) {
	cause := fs.ErrPermission
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
		wantWrap bool
	}{
		{"user", NewUserError("unknown format"), ExitUserError, "unknown format", false},
		{"user with cause", NewUserErrorWithCause("invalid profile", cause), ExitUserError, "invalid profile", true},
		{"system", NewSystemError("write failed"), ExitSystemError, "write failed", false},
		{"system with cause", NewSystemErrorWithCause("write failed", cause), ExitSystemError, "write failed", true},
		{"conflict", NewConflictError("README.md is out of date"), ExitConflict, "README.md is out of date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
			if got := errors.Is(tt.err, cause); got != tt.wantWrap {
				t.Errorf("errors.Is(cause) = %v, want %v", got, tt.wantWrap)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitUserError},
		{"system", NewSystemError("disk full"), ExitSystemError},
		{"wrapped conflict", fmt.Errorf("check: %w", NewConflictError("drift")), ExitConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		mode  string
		isTTY bool
		want  bool
	}{
		{"never", true, false},
		{"always", false, true},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
	}
	for _, tt := range tests {
		if got := ResolveColorMode(tt.mode, tt.isTTY); got != tt.want {
			t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.mode, tt.isTTY, got, tt.want)
		}
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&discardWriter{}) {
		t.Error("IsTTY(non-file) = true, want false")
	}
	if got := TerminalWidth(&discardWriter{}, 80); got != 80 {
		t.Errorf("TerminalWidth(non-file) = %d, want 80", got)
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
