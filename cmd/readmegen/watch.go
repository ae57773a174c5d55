package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/readme"
	"github.com/gorewood/readmegen/internal/watch"
)

// newWatchCmd creates the watch command.
func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [profile]",
		Short: "Re-render the README whenever the profile changes",
		Long: `Watch a profile file (default profile.yaml) and re-render the README on
every save. Bursts of events, such as an editor writing a temp file and
renaming it, produce a single render once the file has been quiet for the
debounce delay.

Examples:
  readmegen watch
  readmegen watch profile.json --out docs/README.md --debounce 1s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultProfilePath
			if len(args) == 1 {
				path = args[0]
			}
			return runWatch(cmd, path)
		},
	}

	cmd.Flags().StringP("out", "o", "", "README to write (default: output setting)")
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before re-rendering")
	cmd.Flags().Int("size", readme.DefaultIconSize, "Skill icon size in pixels")
	cmd.Flags().Bool("raw", false, "Skip icon post-processing")

	return cmd
}

func runWatch(cmd *cobra.Command, path string) error {
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
	raw, _ := cmd.Flags().GetBool("raw")
	out := stringSetting(cmd, "out", settings.Output)
	debounce := settings.Watch.Debounce
	if cmd.Flags().Changed("debounce") {
		debounce, _ = cmd.Flags().GetDuration("debounce")
	}
	if debounce < 0 {
		userErr := output.NewUserError("--debounce must not be negative")
		printer.Error(userErr)
		return userErr
	}
	opts := readme.Options{IconSize: size, Raw: raw}

	renderOnce := func() {
		d, err := readProfile(cmd, path)
		if err != nil {
			printer.Warn("%v", err)
			return
		}
		markdown := opts.Build(d)
		if err := readme.WriteFile(out, markdown); err != nil {
			printer.Warn("%v", err)
			return
		}
		stats := readme.Stats(markdown)
		if printer.IsJSON() {
			_ = printer.WriteJSON(map[string]any{
				"event":  "rendered",
				"input":  path,
				"output": out,
				"stats":  stats,
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		printer.Print("%s %s %s\n",
			printer.Styles().Muted.Render(time.Now().Format("15:04:05")),
			printer.Styles().Success.Render("rendered"),
			out)
	}

	watcher, err := watch.New(path, renderOnce,
		watch.WithDebounce(debounce),
		watch.WithErrorHandler(func(err error) { printer.Warn("watch: %v", err) }),
	)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderOnce()
	if err := watcher.Start(ctx); err != nil {
		sysErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}
	printer.Stderr("Watching %s (Ctrl+C to stop)\n", path)

	<-watcher.Done()
	return nil
}
