package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/form"
	"github.com/gorewood/readmegen/internal/git"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/profile"
)

// initFlags holds flag values for the init command.
type initFlags struct {
	defaults bool
	force    bool
	noGit    bool
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a profile file interactively",
		Long: `Create a profile file (default profile.yaml) by filling in a form.

Name, GitHub user and email are prefilled from git config when available.
The format follows the extension: .yaml, .yml or .json. An existing file is
never overwritten unless --force is given.

Examples:
  readmegen init                   # interactive form, writes profile.yaml
  readmegen init me.json --defaults
  readmegen init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultProfilePath
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cmd, path, flags, form.Terminal{})
		},
	}

	cmd.Flags().BoolVar(&flags.defaults, "defaults", false, "Write the empty template without prompting")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing profile")
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, "Do not prefill from git config")

	return cmd
}

func runInit(cmd *cobra.Command, path string, flags initFlags, prompter form.Prompter) error {
	printer := newPrinter(cmd)

	if _, err := profile.FormatFromPath(path); err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}
	if !flags.force {
		if _, err := os.Stat(path); err == nil {
			conflict := output.NewConflictError(fmt.Sprintf("%s already exists. Use --force to overwrite", path))
			printer.Error(conflict)
			return conflict
		}
	}

	d := form.InitialValues()
	if !flags.noGit {
		prefilled, err := profile.Prefill(d, git.Config{})
		if err != nil {
			if !printer.IsJSON() {
				printer.Warn("skipping git prefill: %v", err)
			}
		} else {
			d = prefilled
		}
	}

	// JSON mode never prompts
	if !flags.defaults && !printer.IsJSON() {
		filled, err := form.Fill(form.Schema(), d, prompter)
		if err != nil {
			userErr := output.NewUserErrorWithCause("init cancelled: "+err.Error(), err)
			printer.Error(userErr)
			return userErr
		}
		d = filled
	}

	if err := profile.Save(path, d); err != nil {
		sysErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message":    fmt.Sprintf("Created %s (%d%% complete). Next: readmegen render %s --out README.md", path, profile.Completion(d), path),
		"path":       path,
		"completion": profile.Completion(d),
	})
}
