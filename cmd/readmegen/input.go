package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/config"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/profile"
)

const (
	defaultProfilePath = "profile.yaml"
	stdinPath          = "-"
)

// readProfile loads a profile file, or stdin for "-".
// Unreadable or malformed profiles are user errors.
func readProfile(cmd *cobra.Command, path string) (profile.Data, error) {
	if path == stdinPath {
		d, err := profile.Decode(cmd.InOrStdin(), profile.FormatYAML)
		if err != nil {
			return profile.Data{}, output.NewUserErrorWithCause("failed to read profile from stdin: "+err.Error(), err)
		}
		return d, nil
	}

	d, err := profile.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profile.Data{}, output.NewUserErrorWithCause(
				fmt.Sprintf("profile %s not found. Run 'readmegen init' to create one", path), err)
		}
		return profile.Data{}, output.NewUserErrorWithCause(fmt.Sprintf("failed to load %s: %v", path, err), err)
	}
	return d, nil
}

// iconSize resolves the icon size from --size, then settings.
func iconSize(cmd *cobra.Command, settings config.Settings) (int, error) {
	if !cmd.Flags().Changed("size") {
		return settings.IconSize, nil
	}
	size, _ := cmd.Flags().GetInt("size")
	if size <= 0 {
		return 0, output.NewUserError(fmt.Sprintf("invalid --size %d: must be positive", size))
	}
	return size, nil
}

// stringSetting returns the flag value when set, else fallback.
func stringSetting(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	value, _ := cmd.Flags().GetString(name)
	return value
}
