// Package config resolves the readmegen configuration directory and loads
// layered settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	appName  = "readmegen"
	fileName = "config.yaml"
)

// envPrefix namespaces every environment variable readmegen reads.
var envPrefix = strings.ToUpper(appName)

// HomeEnv names the variable that replaces the whole config directory.
var HomeEnv = envPrefix + "_CONFIG_HOME"

// Dir returns the readmegen configuration directory: $READMEGEN_CONFIG_HOME
// verbatim when set, otherwise a readmegen folder under the first config
// root found in $XDG_CONFIG_HOME, %AppData% (Windows only) and ~/.config.
// Returns "" when no root can be determined.
func Dir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	root := configRoot()
	if root == "" {
		return ""
	}
	return filepath.Join(root, appName)
}

// File returns the default settings file, config.yaml in Dir, or "".
func File() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, fileName)
}

func configRoot() string {
	candidates := []string{os.Getenv("XDG_CONFIG_HOME")}
	if runtime.GOOS == "windows" {
		candidates = append(candidates, os.Getenv("APPDATA"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config"))
	}
	for _, root := range candidates {
		if root != "" {
			return root
		}
	}
	return ""
}
