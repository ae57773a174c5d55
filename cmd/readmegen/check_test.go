package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/readmegen/internal/output"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	profilePath := writeFile(t, dir, "profile.yaml", adaProfile)
	readmePath := filepath.Join(dir, "README.md")

	if _, err := executeCmd(t, "", "render", profilePath, "--out", readmePath); err != nil {
		t.Fatalf("render error = %v", err)
	}

	t.Run("in sync", func(t *testing.T) {
		out, err := executeCmd(t, "", "check", profilePath, readmePath)
		if err != nil {
			t.Fatalf("check error = %v\n%s", err, out)
		}
		if !strings.Contains(out, "up to date") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("trailing newline is not drift", func(t *testing.T) {
		content, _ := os.ReadFile(readmePath)
		path := writeFile(t, dir, "newline.md", string(content)+"\n\n")
		if _, err := executeCmd(t, "", "check", profilePath, path); err != nil {
			t.Errorf("check error = %v", err)
		}
	})

	t.Run("drift", func(t *testing.T) {
		content, _ := os.ReadFile(readmePath)
		edited := strings.Replace(string(content), "# Ada Lovelace", "# Someone Else", 1)
		path := writeFile(t, dir, "edited.md", edited)

		out, err := executeCmd(t, "", "check", profilePath, path)
		if code := output.GetExitCode(err); code != output.ExitConflict {
			t.Fatalf("exit code = %d, want %d", code, output.ExitConflict)
		}
		for _, want := range []string{"-# Someone Else", "+# Ada Lovelace", "out of date"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("missing readme json", func(t *testing.T) {
		out, err := executeCmd(t, "", "check", profilePath, filepath.Join(dir, "nope.md"), "--json")
		if code := output.GetExitCode(err); code != output.ExitConflict {
			t.Fatalf("exit code = %d, want %d", code, output.ExitConflict)
		}
		result := decodeJSON(t, out)
		if result["missing"] != true || result["in_sync"] != false {
			t.Errorf("report = %v", result)
		}
	})
}
