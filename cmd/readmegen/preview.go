package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/preview"
	"github.com/gorewood/readmegen/internal/readme"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	var htmlPath string
	var width int

	cmd := &cobra.Command{
		Use:   "preview [profile]",
		Short: "Preview the rendered README",
		Long: `Preview the README for a profile (default profile.yaml).

The terminal preview uses the markdown form of skill icons, since terminals
cannot show sized HTML images. --html writes a standalone HTML page of the
final README, including the avatar and sized icons, for a browser.

Examples:
  readmegen preview
  readmegen preview profile.json --width 100
  readmegen preview --html preview.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultProfilePath
			if len(args) == 1 {
				path = args[0]
			}
			return runPreview(cmd, path, htmlPath, width)
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "Write an HTML page to this file instead")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (default: terminal width)")
	cmd.Flags().Int("size", readme.DefaultIconSize, "Skill icon size in pixels for --html")

	return cmd
}

func runPreview(cmd *cobra.Command, path, htmlPath string, width int) error {
	printer := newPrinter(cmd)

	d, err := readProfile(cmd, path)
	if err != nil {
		printer.Error(err)
		return err
	}

	if htmlPath != "" {
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
		title := strings.TrimSpace(d.Name)
		if title == "" {
			title = "README preview"
		}
		page, err := preview.Page(title, readme.GenerateWithSize(d, size), true)
		if err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to render HTML preview", err)
			printer.Error(sysErr)
			return sysErr
		}
		if err := readme.WriteFile(htmlPath, page); err != nil {
			printer.Error(err)
			return err
		}
		return printer.Success(map[string]any{
			"message": "Wrote HTML preview to " + htmlPath,
			"output":  htmlPath,
		})
	}

	if width <= 0 {
		width = output.TerminalWidth(cmd.OutOrStdout(), 0)
	}
	rendered, err := preview.Terminal(readme.Render(d), preview.TerminalOptions{
		Width: width,
		Color: useColor(cmd),
	})
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to render preview", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"preview": rendered})
	}
	printer.Print("%s", rendered)
	return nil
}
