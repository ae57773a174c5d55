// Package git reads configuration from the git CLI for profile prefilling.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/readmegen/internal/output"
)

// Run executes git with args and returns trimmed stdout.
// Failures are returned as *output.ExitError system errors.
func Run(args ...string) (string, error) {
	return RunContext(context.Background(), args...)
}

// RunContext is Run with a context.
func RunContext(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Config reads values with "git config --get". It satisfies
// profile.ConfigSource.
type Config struct {
	// Dir, when set, runs git in that directory via -C.
	Dir string
}

// Get returns the value of key, or "" when the key is unset.
func (c Config) Get(key string) (string, error) {
	args := []string{"config", "--get", key}
	if c.Dir != "" {
		args = append([]string{"-C", c.Dir}, args...)
	}
	value, err := Run(args...)
	if err != nil {
		// git config exits 1 when the key is unset
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return value, nil
}
