package readme

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	inlineMarkdownChars = regexp.MustCompile("([*_`~])")
	lineStartHeading    = regexp.MustCompile(`(?m)^(\s*)#`)

	allowedImgScheme = regexp.MustCompile(`(?i)^(https?:|data:)`)
	absoluteHTTP     = regexp.MustCompile(`(?i)^https?://`)
	urlScheme        = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
	hostWithPort     = regexp.MustCompile(`^[a-zA-Z0-9.-]+:\d+(?:[/?#]|$)`)

	srcDoubleQuoted = regexp.MustCompile(`(?i)src\s*=\s*"([^"]+)"`)
	srcSingleQuoted = regexp.MustCompile(`(?i)src\s*=\s*'([^']+)'`)
	inlineImageURL  = regexp.MustCompile(`(?i)https?:[^\s"')]+\.(?:png|jpe?g|gif|webp|svg)`)
)

// EscapeMarkdown backslash-escapes the characters that would turn user text
// into markdown structure: emphasis, code and strikethrough markers, a '#'
// opening a line, and table pipes.
func EscapeMarkdown(text string) string {
	if text == "" {
		return ""
	}
	out := inlineMarkdownChars.ReplaceAllString(text, `\$1`)
	out = lineStartHeading.ReplaceAllString(out, `$1\#`)
	return strings.ReplaceAll(out, "|", `\|`)
}

// EscapeHTMLAttr escapes text for use inside a double-quoted HTML attribute.
func EscapeHTMLAttr(text string) string {
	return htmlAttrReplacer.Replace(text)
}

var htmlAttrReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// SanitizeURLForImgSrc returns the trimmed URL when its scheme is http, https
// or data, and "" for anything else.
func SanitizeURLForImgSrc(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if allowedImgScheme.MatchString(trimmed) {
		return trimmed
	}
	return ""
}

// ExtractImageURL pulls a usable image URL out of a raw URL or a pasted
// embed snippet. It tries, in order: the input as a direct http(s) URL, the
// src of the first <img> (then any element) in the snippet, a quoted src
// attribute anywhere in the text, and the first inline URL ending in an
// image extension. Returns "" when nothing matches. The result is not
// scheme-checked; pass it through SanitizeURLForImgSrc.
func ExtractImageURL(input string) string {
	val := strings.TrimSpace(input)
	if val == "" {
		return ""
	}
	if absoluteHTTP.MatchString(val) {
		return val
	}
	if src := snippetSrc(val); src != "" {
		return src
	}
	for _, re := range []*regexp.Regexp{srcDoubleQuoted, srcSingleQuoted} {
		if m := re.FindStringSubmatch(val); m != nil {
			return m[1]
		}
	}
	return inlineImageURL.FindString(val)
}

// snippetSrc parses val as HTML and returns the first non-empty src.
func snippetSrc(val string) string {
	if !strings.Contains(val, "<") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(val))
	if err != nil {
		return ""
	}
	for _, selector := range []string{"img[src]", "[src]"} {
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			found = strings.TrimSpace(sel.AttrOr("src", ""))
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// isAbsoluteURL reports whether value starts with http:// or https://.
func isAbsoluteURL(value string) bool {
	return absoluteHTTP.MatchString(value)
}

var linkTargetReplacer = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29")

// linkTarget makes a URL safe to place inside markdown (...) link syntax.
func linkTarget(rawURL string) string {
	return linkTargetReplacer.Replace(rawURL)
}

// projectLink normalizes a user-supplied project URL. Bare hosts, with or
// without a port, get an https:// prefix; any scheme other than http(s) is
// rejected with "".
func projectLink(raw string) string {
	link := strings.TrimSpace(raw)
	switch {
	case link == "":
		return ""
	case isAbsoluteURL(link):
		return linkTarget(link)
	case urlScheme.MatchString(link) && !hostWithPort.MatchString(link):
		return ""
	default:
		return linkTarget("https://" + link)
	}
}
