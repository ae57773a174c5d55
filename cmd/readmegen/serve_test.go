package main

import "testing"

func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}
	if cmd.RunE == nil {
		t.Error("RunE is nil")
	}
}

func TestNewWebCmd(t *testing.T) {
	cmd := newWebCmd()

	if cmd.Use != "web" {
		t.Errorf("Use = %q, want %q", cmd.Use, "web")
	}
	if cmd.Flags().Lookup("addr") == nil {
		t.Error("--addr flag missing")
	}
}

func TestNewWatchCmd(t *testing.T) {
	cmd := newWatchCmd()
	for _, name := range []string{"out", "debounce", "size", "raw"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag missing", name)
		}
	}
}
