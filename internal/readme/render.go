package readme

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorewood/readmegen/internal/catalog"
	"github.com/gorewood/readmegen/internal/profile"
)

// Section titles, in render order.
const (
	TitleSocials  = "Connect with Me"
	TitleViews    = "Profile Views"
	TitleAbout    = "About Me"
	TitleSkills   = "Skills"
	TitleStats    = "GitHub Stats"
	TitleProjects = "Featured Projects"
	TitleFunFact  = "Fun Fact"
)

const (
	fallbackHeading = "Welcome to My GitHub Profile"
	skillMarker     = "skill:"
	skillSearchURL  = "https://www.google.com/search?q="
	avatarSize      = 120
)

// Render builds the profile README markdown from d. Empty sections are
// omitted; the header is always present. Skill icons are left in their
// markdown image form, see Generate for the shrunk variant.
func Render(d profile.Data) string {
	d = profile.Normalize(d)
	username := d.GitHubUsername()

	parts := []string{buildHeader(d)}
	parts = appendSection(parts, TitleSocials, buildSocials(d))
	if username != "" {
		parts = appendSection(parts, TitleViews, profileViewsBadge(username))
	}
	parts = appendSection(parts, TitleAbout, blockText(d.About))
	parts = appendSection(parts, TitleSkills, buildSkills(d.Skills))
	if username != "" {
		parts = appendSection(parts, TitleStats, statsImages(username))
	}
	parts = appendSection(parts, TitleProjects, buildProjects(d.Projects))
	parts = appendSection(parts, TitleFunFact, blockText(d.FunFact))

	return strings.Join(parts, "\n")
}

// appendSection adds a "## title" block when content is non-empty.
func appendSection(parts []string, title, content string) []string {
	if content == "" {
		return parts
	}
	var builder strings.Builder
	fmt.Fprintf(&builder, "\n## %s\n\n", title)
	builder.WriteString(content)
	builder.WriteString("\n")
	return append(parts, builder.String())
}

// buildHeader writes the optional avatar, the name heading and the tagline.
func buildHeader(d profile.Data) string {
	var lines []string
	if avatar := buildAvatar(d); avatar != "" {
		lines = append(lines, avatar)
	}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		lines = append(lines, "# "+fallbackHeading)
	} else {
		lines = append(lines, "# "+EscapeMarkdown(name))
	}

	if tagline := strings.TrimSpace(d.Tagline); tagline != "" {
		lines = append(lines, "\n**"+EscapeMarkdown(tagline)+"**\n")
	}
	return strings.Join(lines, "\n")
}

// buildAvatar renders a centered, rounded avatar image. It yields "" unless
// the avatar resolves to an http(s) or data URL.
func buildAvatar(d profile.Data) string {
	src := SanitizeURLForImgSrc(ExtractImageURL(d.Avatar))
	if src == "" {
		return ""
	}
	alt := strings.TrimSpace(d.Name)
	if alt == "" {
		alt = "Avatar"
	}

	var builder strings.Builder
	builder.WriteString("<p align=\"center\">\n")
	fmt.Fprintf(&builder, "  <img src=\"%s\" alt=\"%s\" width=\"%d\" height=\"%d\" style=\"border-radius: 50%%;\" />\n",
		EscapeHTMLAttr(src), EscapeHTMLAttr(alt), avatarSize, avatarSize)
	builder.WriteString("</p>\n")
	return builder.String()
}

// blockText returns free-form text unescaped, with trailing line breaks
// removed so YAML block scalars render the same as plain strings.
func blockText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return strings.TrimRight(text, "\r\n")
}

// buildSkills renders known skills as linked icons and unknown ones as
// inline code, space separated.
func buildSkills(skills []string) string {
	items := make([]string, 0, len(skills))
	for _, raw := range skills {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		icon, ok := catalog.SkillIcon(name)
		if !ok {
			items = append(items, inlineCode(name))
			continue
		}
		items = append(items, fmt.Sprintf(`[![%s%s](%s "%s")](%s)`,
			skillMarker, name, icon, strings.ReplaceAll(name, `"`, `'`), skillLink(name)))
	}
	return strings.Join(items, " ")
}

// skillLink returns the catalog homepage for name, or a web search.
func skillLink(name string) string {
	if link, ok := catalog.SkillLink(name); ok {
		return link
	}
	return skillSearchURL + strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// inlineCode wraps text in a code span long enough to contain its backticks.
func inlineCode(text string) string {
	if !strings.Contains(text, "`") {
		return "`" + text + "`"
	}
	return "`` " + text + " ``"
}

// buildProjects renders non-empty projects as bold list items separated by
// blank lines.
func buildProjects(projects []profile.Project) string {
	items := make([]string, 0, len(projects))
	for _, p := range projects {
		p = profile.Project{
			Name:        strings.TrimSpace(p.Name),
			Description: strings.TrimSpace(p.Description),
			Link:        strings.TrimSpace(p.Link),
		}
		if p.IsEmpty() {
			continue
		}
		item := "- " + projectTitle(p)
		if p.Description != "" {
			item += " — " + EscapeMarkdown(p.Description)
		}
		items = append(items, item)
	}
	return strings.Join(items, "\n\n")
}

// projectTitle links the project name when a usable link is present.
func projectTitle(p profile.Project) string {
	if link := projectLink(p.Link); link != "" {
		text := p.Name
		if text == "" {
			text = p.Link
		}
		return "**[" + EscapeMarkdown(text) + "](" + link + ")**"
	}
	name := p.Name
	if name == "" {
		name = "Project"
	}
	return "**" + EscapeMarkdown(name) + "**"
}
