// Package preview renders README markdown for display in a terminal or a
// browser.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

const (
	defaultWidth = 80
	maxWidth     = 120
)

var skillAltMarker = regexp.MustCompile(`!\[skill:\s*`)

// StripSkillMarkers removes the "skill:" prefix from image alt text so
// previews show plain skill names.
func StripSkillMarkers(markup string) string {
	return skillAltMarker.ReplaceAllString(markup, "![")
}

// TerminalOptions configure Terminal.
type TerminalOptions struct {
	// Width is the wrap width; <= 0 means 80. Widths above 120 are capped.
	Width int
	// Color selects the dark style; otherwise the plain notty style is used.
	Color bool
}

// Terminal renders markup for a terminal with glamour.
func Terminal(markup string, opts TerminalOptions) (string, error) {
	if markup == "" {
		return "", nil
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	width = min(width, maxWidth)

	style := "notty"
	if opts.Color {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(StripSkillMarkers(markup))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// Fragment converts markup to an HTML fragment using GitHub flavored
// markdown. Raw HTML in markup is dropped unless allowHTML is set.
func Fragment(markup string, allowHTML bool) (string, error) {
	opts := []goldmark.Option{goldmark.WithExtensions(extension.GFM)}
	if allowHTML {
		opts = append(opts, goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()))
	}
	md := goldmark.New(opts...)

	var buf bytes.Buffer
	if err := md.Convert([]byte(StripSkillMarkers(markup)), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Page wraps Fragment output in a standalone HTML document.
func Page(title, markup string, allowHTML bool) (string, error) {
	body, err := Fragment(markup, allowHTML)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	builder.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&builder, "<title>%s</title>\n", html.EscapeString(title))
	builder.WriteString("<style>" + pageStyle + "</style>\n")
	builder.WriteString("</head>\n<body>\n<article class=\"markdown-body\">\n")
	builder.WriteString(body)
	builder.WriteString("</article>\n</body>\n</html>\n")
	return builder.String(), nil
}

const pageStyle = `body{margin:0;background:#f6f8fa;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Helvetica,Arial,sans-serif}` +
	`.markdown-body{max-width:880px;margin:2rem auto;padding:2rem;background:#fff;border:1px solid #d0d7de;border-radius:6px;line-height:1.5}` +
	`.markdown-body h1,.markdown-body h2{border-bottom:1px solid #d0d7de;padding-bottom:.3em}` +
	`.markdown-body img{max-width:100%}` +
	`.markdown-body code{background:#eff1f3;padding:.2em .4em;border-radius:6px}`
