package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the config directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	for _, key := range []string{"READMEGEN_ICON_SIZE", "READMEGEN_OUTPUT", "READMEGEN_WATCH_DEBOUNCE", "READMEGEN_WEB_ADDR", "READMEGEN_WEB_CACHE_SIZE"} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Defaults()
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadConfigDir(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config.yaml"), "icon_size: 32\nwatch:\n  debounce: 1s\n")

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.IconSize != 32 || got.Watch.Debounce != time.Second {
		t.Errorf("Load() = %+v", got)
	}
	if got.Output != "README.md" || got.Web.Addr != ":8080" {
		t.Errorf("defaults lost: %+v", got)
	}
	if got.File != filepath.Join(dir, "config.yaml") {
		t.Errorf("File = %q", got.File)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "output: docs/README.md\nweb:\n  addr: 127.0.0.1:9000\n  cache_size: 8\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Output != "docs/README.md" || got.Web.Addr != "127.0.0.1:9000" || got.Web.CacheSize != 8 {
		t.Errorf("Load() = %+v", got)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config.yaml"), "icon_size: 32\n")
	t.Setenv("READMEGEN_ICON_SIZE", "40")
	t.Setenv("READMEGEN_WATCH_DEBOUNCE", "750ms")

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.IconSize != 40 {
		t.Errorf("IconSize = %d, want 40", got.IconSize)
	}
	if got.Watch.Debounce != 750*time.Millisecond {
		t.Errorf("Debounce = %v, want 750ms", got.Watch.Debounce)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing explicit file) error = nil")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeConfig(t, bad, "icon_size: 0\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load(icon_size: 0) error = nil")
	}
}

func TestLoadMalformedDefaultFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config.yaml"), "icon_size: [\n")

	if _, err := Load(""); err == nil {
		t.Error("Load(malformed config.yaml) error = nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"icon too large", func(s *Settings) { s.IconSize = 1000 }},
		{"empty output", func(s *Settings) { s.Output = " " }},
		{"negative debounce", func(s *Settings) { s.Watch.Debounce = -time.Second }},
		{"zero cache", func(s *Settings) { s.Web.CacheSize = 0 }},
	}
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
