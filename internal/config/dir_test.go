package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestHomeEnv(t *testing.T) {
	if HomeEnv != "READMEGEN_CONFIG_HOME" {
		t.Errorf("HomeEnv = %q", HomeEnv)
	}
}

func TestDir(t *testing.T) {
	tests := []struct {
		name     string
		override string
		xdg      string
		want     string
	}{
		{name: "explicit override wins", override: "/custom/path", xdg: "/xdg/config", want: "/custom/path"},
		{name: "xdg config home", xdg: "/xdg/config", want: filepath.Join("/xdg/config", appName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(HomeEnv, tt.override)
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)
			if got := Dir(); got != tt.want {
				t.Errorf("Dir() = %q, want %q", got, tt.want)
			}
			if got, want := File(), filepath.Join(tt.want, "config.yaml"); got != want {
				t.Errorf("File() = %q, want %q", got, want)
			}
		})
	}
}

func TestDir_HomeFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("%AppData% takes precedence over the home directory")
	}
	home := t.TempDir()
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	if got, want := Dir(), filepath.Join(home, ".config", appName); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}
