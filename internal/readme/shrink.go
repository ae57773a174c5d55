package readme

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gorewood/readmegen/internal/profile"
)

// DefaultIconSize is the pixel size skill icons are shrunk to.
const DefaultIconSize = 28

var (
	linkedSkillIcon = regexp.MustCompile(`\[!\[skill:([^\]]+)\]\(([^\s)]+)(?:\s+"([^"]*)")?\)\]\(([^\s)]+)\)`)
	plainSkillIcon  = regexp.MustCompile(`!\[skill:([^\]]+)\]\(([^\s)]+)(?:\s+"([^"]*)")?\)`)
)

// ShrinkIcons rewrites skill-marked markdown images into sized <img> tags,
// keeping their links. Images without the skill marker are left untouched.
// A non-positive size falls back to DefaultIconSize.
func ShrinkIcons(markup string, size int) string {
	if markup == "" {
		return markup
	}
	if size <= 0 {
		size = DefaultIconSize
	}
	px := strconv.Itoa(size)

	markup = linkedSkillIcon.ReplaceAllStringFunc(markup, func(match string) string {
		g := linkedSkillIcon.FindStringSubmatch(match)
		return `<a href="` + EscapeHTMLAttr(g[4]) + `">` + iconTag(g[2], iconAlt(g[1], g[3]), px) + `</a>`
	})
	return plainSkillIcon.ReplaceAllStringFunc(markup, func(match string) string {
		g := plainSkillIcon.FindStringSubmatch(match)
		return iconTag(g[2], iconAlt(g[1], g[3]), px)
	})
}

func iconTag(src, alt, px string) string {
	return `<img src="` + EscapeHTMLAttr(src) + `" alt="` + EscapeHTMLAttr(alt) + `" width="` + px + `" height="` + px + `" />`
}

// iconAlt prefers the image title and falls back to the skill name.
func iconAlt(name, title string) string {
	if title != "" {
		return title
	}
	return strings.TrimSpace(name)
}

// Generate renders d and shrinks its skill icons to DefaultIconSize.
func Generate(d profile.Data) string {
	return GenerateWithSize(d, DefaultIconSize)
}

// GenerateWithSize renders d and shrinks its skill icons to size pixels.
func GenerateWithSize(d profile.Data, size int) string {
	return ShrinkIcons(Render(d), size)
}
