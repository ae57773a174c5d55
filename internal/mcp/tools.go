package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/readmegen/internal/catalog"
	"github.com/gorewood/readmegen/internal/profile"
	"github.com/gorewood/readmegen/internal/readme"
)

// --- Render tool ---

// RenderInput is the input for the render_readme tool. Profile is kept
// untyped so a mistyped field is coerced by profile.FromValue instead of
// failing the whole call.
type RenderInput struct {
	Profile  map[string]any `json:"profile"             jsonschema:"the profile to render: name, avatar, tagline, about and funFact strings, skills string list, projects list of {name, description, link}, socials map of platform key to username or URL (see list_skills and list_socials)"`
	Raw      bool           `json:"raw,omitempty"       jsonschema:"keep skill icons as markdown images instead of sized HTML tags"`
	IconSize int            `json:"icon_size,omitempty" jsonschema:"skill icon size in pixels (default from settings)"`
}

// RenderStats counts the rendered document.
type RenderStats struct {
	Lines      int `json:"lines"      jsonschema:"number of lines"`
	Words      int `json:"words"      jsonschema:"number of space-separated words"`
	Characters int `json:"characters" jsonschema:"number of UTF-16 code units"`
}

// RenderOutput is the output for the render_readme tool.
type RenderOutput struct {
	Markdown   string      `json:"markdown"   jsonschema:"the README markdown"`
	Stats      RenderStats `json:"stats"      jsonschema:"document counts"`
	Completion int         `json:"completion" jsonschema:"percentage of name, tagline, about, skills and GitHub filled in"`
}

func handleRender(defaultSize int) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		size := input.IconSize
		if size <= 0 {
			size = defaultSize
		}
		data := profile.FromValue(input.Profile)
		markdown := readme.Options{IconSize: size, Raw: input.Raw}.Build(data)
		stats := readme.Stats(markdown)

		return nil, RenderOutput{
			Markdown:   markdown,
			Stats:      RenderStats(stats),
			Completion: profile.Completion(data),
		}, nil
	}
}

// --- Catalog tools ---

// ListSkillsInput is the input for the list_skills tool.
type ListSkillsInput struct {
	Query string `json:"query,omitempty" jsonschema:"case-insensitive substring filter on skill names"`
}

// SkillInfo describes one skill with an icon.
type SkillInfo struct {
	Name string `json:"name"           jsonschema:"skill name as it must appear in the profile"`
	Icon string `json:"icon"           jsonschema:"icon URL"`
	Link string `json:"link,omitempty" jsonschema:"reference page linked from the icon"`
}

// ListSkillsOutput is the output for the list_skills tool.
type ListSkillsOutput struct {
	Count  int         `json:"count"  jsonschema:"number of matching skills"`
	Skills []SkillInfo `json:"skills" jsonschema:"matching skills in catalog order"`
}

func handleListSkills() mcp.ToolHandlerFor[ListSkillsInput, ListSkillsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListSkillsInput) (*mcp.CallToolResult, ListSkillsOutput, error) {
		query := strings.ToLower(strings.TrimSpace(input.Query))
		skills := []SkillInfo{}
		for _, s := range catalog.Skills() {
			if query != "" && !strings.Contains(strings.ToLower(s.Name), query) {
				continue
			}
			link, _ := catalog.SkillLink(s.Name)
			skills = append(skills, SkillInfo{Name: s.Name, Icon: s.Icon, Link: link})
		}
		return nil, ListSkillsOutput{Count: len(skills), Skills: skills}, nil
	}
}

// ListSocialsInput is the input for the list_socials tool (no parameters).
type ListSocialsInput struct{}

// SocialInfo describes one social platform.
type SocialInfo struct {
	Key        string `json:"key"         jsonschema:"key used in profile socials"`
	Label      string `json:"label"       jsonschema:"form label"`
	BadgeLabel string `json:"badge_label" jsonschema:"text on the README badge"`
	Color      string `json:"color"       jsonschema:"badge color"`
}

// ListSocialsOutput is the output for the list_socials tool.
type ListSocialsOutput struct {
	Socials []SocialInfo `json:"socials" jsonschema:"platforms in render order"`
}

func handleListSocials() mcp.ToolHandlerFor[ListSocialsInput, ListSocialsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListSocialsInput) (*mcp.CallToolResult, ListSocialsOutput, error) {
		socials := []SocialInfo{}
		for _, s := range catalog.Socials() {
			socials = append(socials, SocialInfo{
				Key:        s.ID,
				Label:      s.Label,
				BadgeLabel: catalog.BadgeLabel(s.ID),
				Color:      s.Color,
			})
		}
		return nil, ListSocialsOutput{Socials: socials}, nil
	}
}

// FormatSocialURLInput is the input for the format_social_url tool.
type FormatSocialURLInput struct {
	Key   string `json:"key"   jsonschema:"platform key, e.g. github or twitter"`
	Value string `json:"value" jsonschema:"username, handle, email address or URL"`
}

// FormatSocialURLOutput is the output for the format_social_url tool.
type FormatSocialURLOutput struct {
	URL string `json:"url" jsonschema:"the resulting link, or # for an empty value"`
}

func handleFormatSocialURL() mcp.ToolHandlerFor[FormatSocialURLInput, FormatSocialURLOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FormatSocialURLInput) (*mcp.CallToolResult, FormatSocialURLOutput, error) {
		key := strings.ToLower(strings.TrimSpace(input.Key))
		if key == "" {
			return nil, FormatSocialURLOutput{}, errors.New("key is required")
		}
		return nil, FormatSocialURLOutput{URL: readme.FormatSocialURL(key, strings.TrimSpace(input.Value))}, nil
	}
}
