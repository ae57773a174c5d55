package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/form"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/profile"
)

func TestInit_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	out, err := executeCmd(t, "", "init", path, "--defaults", "--no-git")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created "+path) {
		t.Errorf("output = %q", out)
	}

	d, err := profile.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := d.Socials["github"]; !ok {
		t.Error("template is missing social keys")
	}
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := writeFile(t, t.TempDir(), "profile.yaml", adaProfile)

	_, err := executeCmd(t, "", "init", path, "--defaults", "--no-git")
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Fatalf("exit code = %d, want %d", code, output.ExitConflict)
	}
	d, _ := profile.Load(path)
	if d.Name != "Ada Lovelace" {
		t.Error("existing profile was modified")
	}

	if _, err := executeCmd(t, "", "init", path, "--defaults", "--no-git", "--force"); err != nil {
		t.Fatalf("--force error = %v", err)
	}
	d, _ = profile.Load(path)
	if d.Name != "" {
		t.Errorf("Name = %q, want template", d.Name)
	}
}

func TestInit_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.json")

	out, err := executeCmd(t, "", "init", path, "--no-git", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	result := decodeJSON(t, out)
	if result["path"] != path {
		t.Errorf("path = %v, want %s", result["path"], path)
	}
	if _, err := profile.Load(path); err != nil {
		t.Errorf("JSON profile not readable: %v", err)
	}
}

func TestInit_UnknownFormat(t *testing.T) {
	_, err := executeCmd(t, "", "init", filepath.Join(t.TempDir(), "me.toml"), "--defaults")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

// answerPrompter answers text prompts by field ID and declines projects.
type answerPrompter struct {
	answers map[string]string
	skills  []string
	err     error
}

func (a answerPrompter) Text(field form.Field, current string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	if answer, ok := a.answers[field.ID]; ok {
		return answer, nil
	}
	return current, nil
}

func (a answerPrompter) TextArea(field form.Field, current string) (string, error) {
	return a.Text(field, current)
}

func (a answerPrompter) MultiSelect(_ form.Field, _ []string) ([]string, error) {
	return a.skills, nil
}

func (a answerPrompter) Confirm(_ string) (bool, error) {
	return false, nil
}

func TestRunInit_Interactive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	prompter := answerPrompter{
		answers: map[string]string{"name": "Ada", "tagline": "Engines", "github": "ada"},
		skills:  []string{"Go"},
	}
	if err := runInit(cmd, path, initFlags{noGit: true}, prompter); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	d, err := profile.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Name != "Ada" || d.Tagline != "Engines" || d.Socials["github"] != "ada" {
		t.Errorf("saved profile = %+v", d)
	}
	if len(d.Skills) != 1 || d.Skills[0] != "Go" {
		t.Errorf("Skills = %v", d.Skills)
	}
}

func TestRunInit_Aborted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := runInit(cmd, path, initFlags{noGit: true}, answerPrompter{err: form.ErrAborted})
	if !errors.Is(err, form.ErrAborted) {
		t.Errorf("error = %v, want ErrAborted", err)
	}
	if _, statErr := profile.Load(path); statErr == nil {
		t.Error("profile written after abort")
	}
}
