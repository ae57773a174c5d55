// Package drift detects when a README no longer matches its profile.
package drift

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 3

// Report is the result of comparing a README with a fresh render.
type Report struct {
	Path    string `json:"path"`
	InSync  bool   `json:"in_sync"`
	Missing bool   `json:"missing,omitempty"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Diff    string `json:"diff,omitempty"`
}

// Compare diffs existing against generated. Line endings are normalized and
// trailing newlines ignored, so an editor-added final newline is not drift.
// The diff is line based, in unified format with context lines around each
// hunk; a negative context means DefaultContext.
func Compare(path, existing, generated string, context int) Report {
	if context < 0 {
		context = DefaultContext
	}
	oldText := normalize(existing)
	newText := normalize(generated)

	report := Report{Path: path}
	if oldText == newText {
		report.InSync = true
		return report
	}

	ops := lineOps(oldText, newText)
	for _, op := range ops {
		switch op.kind {
		case diffmatchpatch.DiffInsert:
			report.Added++
		case diffmatchpatch.DiffDelete:
			report.Removed++
		}
	}
	report.Diff = unified(path, ops, context)
	return report
}

// Missing reports a README that does not exist yet; every generated line
// counts as added.
func Missing(path, generated string) Report {
	report := Compare(path, "", generated, DefaultContext)
	report.Missing = true
	return report
}

func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}
	return text + "\n"
}

type lineOp struct {
	kind diffmatchpatch.Operation
	text string
}

// lineOps runs a line-mode diff and flattens it to one op per line.
func lineOps(oldText, newText string) []lineOp {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var ops []lineOp
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			ops = append(ops, lineOp{kind: d.Type, text: strings.TrimSuffix(line, "\n")})
		}
	}
	return ops
}

// unified formats ops as a unified diff with context lines per hunk.
func unified(path string, ops []lineOp, context int) string {
	// oldBefore[i] and newBefore[i] count lines preceding op i on each side.
	oldBefore := make([]int, len(ops)+1)
	newBefore := make([]int, len(ops)+1)
	for i, op := range ops {
		oldBefore[i+1] = oldBefore[i]
		newBefore[i+1] = newBefore[i]
		if op.kind != diffmatchpatch.DiffInsert {
			oldBefore[i+1]++
		}
		if op.kind != diffmatchpatch.DiffDelete {
			newBefore[i+1]++
		}
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n+++ b/%s\n", path, path)

	for i := 0; i < len(ops); {
		if ops[i].kind == diffmatchpatch.DiffEqual {
			i++
			continue
		}

		start := max(0, i-context)
		last := i
		for j := i; j < len(ops); j++ {
			if ops[j].kind != diffmatchpatch.DiffEqual {
				last = j
				continue
			}
			if j-last > 2*context {
				break
			}
		}
		stop := min(len(ops), last+context+1)

		writeHunk(&builder, ops[start:stop],
			hunkRange(oldBefore[start], oldBefore[stop]-oldBefore[start]),
			hunkRange(newBefore[start], newBefore[stop]-newBefore[start]))
		i = stop
	}
	return builder.String()
}

func hunkRange(before, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", before)
	}
	return fmt.Sprintf("%d,%d", before+1, count)
}

func writeHunk(builder *strings.Builder, ops []lineOp, oldRange, newRange string) {
	fmt.Fprintf(builder, "@@ -%s +%s @@\n", oldRange, newRange)
	for _, op := range ops {
		switch op.kind {
		case diffmatchpatch.DiffInsert:
			builder.WriteString("+")
		case diffmatchpatch.DiffDelete:
			builder.WriteString("-")
		default:
			builder.WriteString(" ")
		}
		builder.WriteString(op.text)
		builder.WriteString("\n")
	}
}
