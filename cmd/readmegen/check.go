package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/drift"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/readme"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var contextLines int
	var raw bool

	cmd := &cobra.Command{
		Use:   "check <profile> [readme]",
		Short: "Report drift between a README and its profile",
		Long: `Compare a README (default README.md, or the output setting) with a fresh
render of the profile.

Prints a unified diff and exits with code 3 when they differ, so it can
guard a CI job or a pre-commit hook. Line endings and trailing newlines are
ignored.

Examples:
  readmegen check profile.yaml
  readmegen check profile.yaml docs/README.md --context 1
  readmegen check profile.yaml --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, contextLines, raw)
		},
	}

	cmd.Flags().IntVar(&contextLines, "context", drift.DefaultContext, "Unchanged lines shown around each change")
	cmd.Flags().Int("size", readme.DefaultIconSize, "Skill icon size in pixels")
	cmd.Flags().BoolVar(&raw, "raw", false, "Compare against the render without icon post-processing")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, contextLines int, raw bool) error {
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

	d, err := readProfile(cmd, args[0])
	if err != nil {
		printer.Error(err)
		return err
	}
	generated := readme.Options{IconSize: size, Raw: raw}.Build(d)

	readmePath := settings.Output
	if len(args) == 2 {
		readmePath = args[1]
	}

	var report drift.Report
	existing, err := os.ReadFile(readmePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		report = drift.Missing(readmePath, generated)
	case err != nil:
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("failed to read %s", readmePath), err)
		printer.Error(sysErr)
		return sysErr
	default:
		report = drift.Compare(readmePath, string(existing), generated, contextLines)
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(report); err != nil {
			return err
		}
		if !report.InSync {
			return output.NewConflictError(driftMessage(report))
		}
		return nil
	}

	if report.InSync {
		printer.Print("%s %s is up to date\n", printer.Styles().Success.Render("✓"), readmePath)
		return nil
	}

	printDiff(printer, report.Diff)
	conflict := output.NewConflictError(driftMessage(report))
	printer.Error(conflict)
	return conflict
}

func driftMessage(report drift.Report) string {
	if report.Missing {
		return fmt.Sprintf("%s does not exist. Run 'readmegen render --out %s'", report.Path, report.Path)
	}
	return fmt.Sprintf("%s is out of date (+%d -%d lines). Run 'readmegen render --out %s'",
		report.Path, report.Added, report.Removed, report.Path)
}

// printDiff writes a unified diff, coloring added and removed lines.
func printDiff(printer *output.Printer, diff string) {
	styles := printer.Styles()
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			printer.Println(styles.Bold.Render(line))
		case strings.HasPrefix(line, "@@"):
			printer.Println(styles.Muted.Render(line))
		case strings.HasPrefix(line, "+"):
			printer.Println(styles.Added.Render(line))
		case strings.HasPrefix(line, "-"):
			printer.Println(styles.Removed.Render(line))
		default:
			printer.Println(line)
		}
	}
}
