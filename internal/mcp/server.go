// Package mcp provides a Model Context Protocol server for readmegen.
// It exposes README rendering and the skill and social catalogs as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/readmegen/internal/readme"
)

// NewServer creates an MCP server with all readmegen tools registered.
// iconSize is the default skill icon size for render_readme.
func NewServer(version string, iconSize int) *mcp.Server {
	if iconSize <= 0 {
		iconSize = readme.DefaultIconSize
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "readmegen",
		Version: version,
	}, nil)
	registerTools(server, iconSize)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

func registerTools(server *mcp.Server, iconSize int) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_readme",
		Description: "Render a GitHub profile README from profile data. Returns the markdown, line/word/character counts and the profile completion percentage.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(iconSize))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_skills",
		Description: "List skills that render with an icon, optionally filtered by a case-insensitive substring. Other skill names render as inline code.",
		Annotations: readOnlyAnnotations(),
	}, handleListSkills())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_socials",
		Description: "List the supported social platform keys in render order, with their labels and badge colors.",
		Annotations: readOnlyAnnotations(),
	}, handleListSocials())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_social_url",
		Description: "Turn a social username, handle, email or URL into the link used in the README badge for that platform.",
		Annotations: readOnlyAnnotations(),
	}, handleFormatSocialURL())
}
