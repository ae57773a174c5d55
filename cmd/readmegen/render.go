package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/profile"
	"github.com/gorewood/readmegen/internal/readme"
)

// renderFlags holds flag values for the render command.
type renderFlags struct {
	out   string
	size  int
	raw   bool
	copy  bool
	stats bool
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [profile...]",
		Short: "Render profile files to README markdown",
		Long: `Render one or more profile files (YAML or JSON) to README markdown.

With a single profile the markdown goes to stdout, or to --out when given.
Use - to read the profile from stdin. With several profiles --out names a
directory and each README is written to <out>/<file name>/README.md, where
<file name> is the profile's file name without its extension. Two profiles
with the same file name are rejected before anything is written.

The GitHub stats sections are keyed by the github social value. A
github.com profile URL is reduced to its first path segment, so
https://github.com/octocat/repo renders stats for octocat; any other value
is used as the username as written.

Examples:
  readmegen render                          # profile.yaml to stdout
  readmegen render profile.yaml --out README.md
  readmegen render --raw --copy profile.json
  readmegen render team/*.yaml --out site/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{defaultProfilePath}
			}
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (one profile) or directory (several)")
	cmd.Flags().IntVar(&flags.size, "size", readme.DefaultIconSize, "Skill icon size in pixels")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "Skip icon post-processing")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the markdown to the clipboard")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "Show line, word and character counts")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags renderFlags) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	size, err := iconSize(cmd, settings)
	if err != nil {
		printer.Error(err)
		return err
	}
	opts := readme.Options{IconSize: size, Raw: flags.raw}

	if len(args) > 1 {
		return renderMany(cmd, printer, args, flags, opts, settings.Output)
	}
	return renderOne(cmd, printer, args[0], flags, opts)
}

// renderOne renders a single profile to stdout or --out.
func renderOne(cmd *cobra.Command, printer *output.Printer, path string, flags renderFlags, opts readme.Options) error {
	d, err := readProfile(cmd, path)
	if err != nil {
		printer.Error(err)
		return err
	}
	markdown := opts.Build(d)
	stats := readme.Stats(markdown)

	if flags.out != "" {
		if err := readme.WriteFile(flags.out, markdown); err != nil {
			printer.Error(err)
			return err
		}
	}
	copied := flags.copy && copyToClipboard(printer, markdown)

	if printer.IsJSON() {
		result := map[string]any{
			"markdown":   markdown,
			"stats":      stats,
			"completion": profile.Completion(d),
		}
		if flags.out != "" {
			result["output"] = flags.out
		}
		if flags.copy {
			result["copied"] = copied
		}
		return printer.WriteJSON(result)
	}

	if flags.out == "" {
		printer.Print("%s", markdown)
		if !strings.HasSuffix(markdown, "\n") {
			printer.Println()
		}
	} else {
		printer.Print("%s %s\n", printer.Styles().Success.Render("Wrote"), flags.out)
	}
	if copied {
		printer.Stderr("Copied README to clipboard\n")
	}
	if flags.stats {
		printer.Stderr("%s\n", formatStats(stats, profile.Completion(d)))
	}
	return nil
}

// renderMany renders several profiles concurrently into the --out directory.
func renderMany(
	cmd *cobra.Command, printer *output.Printer, paths []string, flags renderFlags, opts readme.Options, name string,
) error {
	if flags.out == "" {
		err := output.NewUserError("--out directory is required when rendering several profiles")
		printer.Error(err)
		return err
	}
	if flags.copy && !printer.IsJSON() {
		printer.Warn("--copy is ignored when rendering several profiles")
	}

	jobs := make([]readme.Job, 0, len(paths))
	claimed := make(map[string]string, len(paths))
	for _, path := range paths {
		if path == stdinPath {
			err := output.NewUserError("stdin (-) can only be rendered on its own")
			printer.Error(err)
			return err
		}
		target := batchOutput(flags.out, path, name)
		if prev, ok := claimed[target]; ok {
			err := output.NewUserError(fmt.Sprintf(
				"%s and %s would both write %s; rename one or render them separately", prev, path, target))
			printer.Error(err)
			return err
		}
		claimed[target] = path
		jobs = append(jobs, readme.Job{Input: path, Output: target})
	}

	results, err := readme.RenderFiles(cmd.Context(), jobs, opts, runtime.GOMAXPROCS(0))
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":   len(results),
			"results": results,
		})
	}
	for _, result := range results {
		line := fmt.Sprintf("%s %s -> %s", printer.Styles().Success.Render("Wrote"), result.Input, result.Output)
		if flags.stats {
			line += printer.Styles().Muted.Render(fmt.Sprintf(" (%d lines, %d words, %d characters)",
				result.Stats.Lines, result.Stats.Words, result.Stats.Characters))
		}
		printer.Println(line)
	}
	return nil
}

// batchOutput returns <dir>/<profile stem>/<name>.
func batchOutput(dir, input, name string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem, name)
}

// copyToClipboard copies markdown, reporting failure as a warning. JSON
// output reports the outcome through the "copied" key instead.
func copyToClipboard(printer *output.Printer, markdown string) bool {
	if err := clipboard.WriteAll(markdown); err != nil {
		if !printer.IsJSON() {
			printer.Warn("could not copy to clipboard: %v", err)
		}
		return false
	}
	return true
}

func formatStats(stats readme.DocumentStats, completion int) string {
	return fmt.Sprintf("%d lines, %d words, %d characters, profile %d%% complete",
		stats.Lines, stats.Words, stats.Characters, completion)
}
