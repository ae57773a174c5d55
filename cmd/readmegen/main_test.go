package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/readmegen/internal/output"
)

const adaProfile = `name: Ada Lovelace
tagline: First programmer
about: Wrote the first algorithm.
skills: [Go, Punch Cards]
projects:
  - name: Engine
    link: example.com/engine
    description: Analytical
socials:
  github: ada
`

// executeCmd runs the root command with args and returns combined output.
// Settings are isolated from the user's config dir.
func executeCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("READMEGEN_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// decodeJSON unmarshals out into a map, failing the test on invalid JSON.
func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, out)
	}
	return result
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	out, err := executeCmd(t, "", "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("--version output should contain version: %q", out)
	}
	if !strings.Contains(out, "readmegen") {
		t.Errorf("--version output should contain 'readmegen': %q", out)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := executeCmd(t, "", "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"readmegen", "Usage:", "--json", "--color", "--config", "render", "check", "serve"} {
		if !strings.Contains(out, expected) {
			t.Errorf("--help output should contain %q: %q", expected, out)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	out, err := executeCmd(t, "", "--json")
	if err == nil {
		t.Fatal("expected error when running with --json but no subcommand")
	}

	result := decodeJSON(t, out)
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", out)
	}
	if code, ok := result["code"].(float64); !ok || int(code) != output.ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], output.ExitUserError)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "color", "config"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	_, err := executeCmd(t, "", "skills", "--color", "sometimes")
	if err == nil {
		t.Fatal("expected error for invalid --color")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestRootCommand_Groups(t *testing.T) {
	cmd := newRootCmd()
	want := map[string]string{
		"render":  "core",
		"preview": "core",
		"check":   "core",
		"watch":   "core",
		"skills":  "catalog",
		"socials": "catalog",
		"serve":   "server",
		"web":     "server",
		"init":    "admin",
	}
	for _, sub := range cmd.Commands() {
		group, ok := want[sub.Name()]
		if !ok {
			continue
		}
		if sub.GroupID != group {
			t.Errorf("%s group = %q, want %q", sub.Name(), sub.GroupID, group)
		}
		delete(want, sub.Name())
	}
	for name := range want {
		t.Errorf("command %q not registered", name)
	}
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"dev build", "dev", "none", "unknown", "dev"},
		{"release", "1.0.0", "abcdef1234567", "2026-01-02", "1.0.0 (abcdef1, 2026-01-02)"},
		{"short commit", "1.0.0", "abc", "2026-01-02", "1.0.0 (abc, 2026-01-02)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := version, commit, date
			t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })
			version, commit, date = tt.version, tt.commit, tt.date

			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigFlag_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "profile.yaml", adaProfile)

	_, err := executeCmd(t, "", "render", path, "--config", filepath.Join(dir, "missing.yaml"))
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err=%v)", code, output.ExitUserError, err)
	}
}
