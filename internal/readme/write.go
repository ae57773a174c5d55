package readme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/profile"
)

// WriteFile atomically writes markdown to path, creating parent directories.
// Failures are returned as system errors.
func WriteFile(path, markdown string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output.NewSystemErrorWithCause(fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}
	if err := atomic.WriteFile(path, strings.NewReader(markdown)); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}

// Options control how a profile is turned into markdown.
type Options struct {
	// IconSize is the shrunk skill icon size; <= 0 means DefaultIconSize.
	IconSize int
	// Raw skips icon shrinking and returns Render output as is.
	Raw bool
}

// Build renders d according to opts.
func (o Options) Build(d profile.Data) string {
	if o.Raw {
		return Render(d)
	}
	return GenerateWithSize(d, o.IconSize)
}

// Job is one profile file to render. An empty Output renders without writing.
type Job struct {
	Input  string
	Output string
}

// Result is the outcome of a Job.
type Result struct {
	Input    string        `json:"input"`
	Output   string        `json:"output,omitempty"`
	Markdown string        `json:"-"`
	Stats    DocumentStats `json:"stats"`
}

// RenderFiles loads and renders each job concurrently, at most limit at a
// time (limit <= 0 means no limit). Results keep the order of jobs. The first
// failure cancels the remaining jobs and is returned.
func RenderFiles(ctx context.Context, jobs []Job, opts Options, limit int) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := profile.Load(job.Input)
			if err != nil {
				return output.NewUserErrorWithCause(fmt.Sprintf("failed to load %s", job.Input), err)
			}
			markdown := opts.Build(d)
			if job.Output != "" {
				if err := WriteFile(job.Output, markdown); err != nil {
					return err
				}
			}
			results[i] = Result{Input: job.Input, Output: job.Output, Markdown: markdown, Stats: Stats(markdown)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
