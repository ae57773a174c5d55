package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ResolveColorMode turns the --color flag into an effective isTTY value.
// "never" and "always" force the result; anything else keeps detection.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// TerminalWidth returns the width of writer's terminal, or fallback when
// writer is not a terminal or the size is unknown.
func TerminalWidth(writer io.Writer, fallback int) int {
	file, ok := writer.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
