package form

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user interrupts the form.
var ErrAborted = errors.New("form aborted")

const doneItem = "✔ Done"

// Terminal prompts on a terminal using promptui.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// Text prompts for a single line, prefilled with current.
func (t Terminal) Text(field Field, current string) (string, error) {
	prompt := promptui.Prompt{
		Label:     promptLabel(field),
		Default:   current,
		AllowEdit: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	if field.Required {
		prompt.Validate = func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field.Label)
			}
			return nil
		}
	}
	value, err := prompt.Run()
	return strings.TrimSpace(value), mapPromptErr(err)
}

// TextArea prompts for multi-line text on one line; a literal \n starts a
// new line.
func (t Terminal) TextArea(field Field, current string) (string, error) {
	f := field
	f.Label = field.Label + ` (\n for line breaks)`
	value, err := t.Text(f, strings.ReplaceAll(current, "\n", `\n`))
	return strings.ReplaceAll(value, `\n`, "\n"), err
}

// MultiSelect toggles options in a list until the user picks Done.
func (t Terminal) MultiSelect(field Field, current []string) ([]string, error) {
	selected := make(map[string]bool, len(current))
	for _, name := range current {
		selected[name] = true
	}

	cursor := 0
	for {
		items := make([]string, 0, len(field.Options)+1)
		items = append(items, doneItem)
		for _, opt := range field.Options {
			mark := "[ ]"
			if selected[opt] {
				mark = "[x]"
			}
			items = append(items, mark+" "+opt)
		}

		sel := promptui.Select{
			Label:     fmt.Sprintf("%s (%d selected)", field.Label, countSelected(selected)),
			Items:     items,
			Size:      12,
			CursorPos: cursor,
			Searcher: func(input string, index int) bool {
				return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
			},
			Stdin:  t.Stdin,
			Stdout: t.Stdout,
		}
		idx, _, err := sel.Run()
		if err != nil {
			return current, mapPromptErr(err)
		}
		if idx == 0 {
			return orderedSelection(field.Options, current, selected), nil
		}
		opt := field.Options[idx-1]
		selected[opt] = !selected[opt]
		cursor = idx
	}
}

// Confirm asks a yes/no question; "no" is not an error.
func (t Terminal) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, mapPromptErr(err)
	}
	return true, nil
}

func promptLabel(field Field) string {
	if field.Placeholder == "" {
		return field.Label
	}
	return fmt.Sprintf("%s (e.g. %s)", field.Label, field.Placeholder)
}

func mapPromptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrAborted
	}
	return err
}

func countSelected(selected map[string]bool) int {
	n := 0
	for _, on := range selected {
		if on {
			n++
		}
	}
	return n
}

// orderedSelection keeps previously chosen names (including ones outside
// options) in their original order, then appends new picks in option order.
func orderedSelection(options, current []string, selected map[string]bool) []string {
	out := make([]string, 0, len(selected))
	for _, name := range current {
		if selected[name] && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	for _, opt := range options {
		if selected[opt] && !slices.Contains(out, opt) {
			out = append(out, opt)
		}
	}
	return out
}
