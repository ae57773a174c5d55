package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	readmemcp "github.com/gorewood/readmegen/internal/mcp"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/web"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run readmegen as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "readmegen": {
        "command": "readmegen",
        "args": ["serve"]
      }
    }
  }

Available tools: render_readme, list_skills, list_socials, format_social_url`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			server := readmemcp.NewServer(buildVersion(), settings.IconSize)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// newWebCmd creates the web command for the HTTP preview server.
func newWebCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Run the HTTP preview server",
		Long: `Serve the render API and Prometheus metrics over HTTP.

Endpoints:
  POST /api/render      profile JSON -> {"markdown", "stats", "completion"}
  POST /api/readme.md   profile JSON -> README.md download
  POST /api/preview     profile JSON -> HTML fragment
  GET  /api/schema, /api/skills, /api/socials
  GET  /healthz, /metrics

Examples:
  readmegen web
  readmegen web --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			settings, err := loadSettings(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}
			debug, _ := cmd.Flags().GetBool("debug")
			addr := stringSetting(cmd, "addr", settings.Web.Addr)

			server, err := web.NewServer(web.Config{
				Addr:      addr,
				CacheSize: settings.Web.CacheSize,
				IconSize:  settings.IconSize,
				LogOutput: cmd.ErrOrStderr(),
				Debug:     debug,
			})
			if err != nil {
				sysErr := output.NewSystemErrorWithCause(err.Error(), err)
				printer.Error(sysErr)
				return sysErr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printer.Stderr("Listening on %s\n", addr)
			if err := server.Run(ctx); err != nil {
				sysErr := output.NewSystemErrorWithCause(err.Error(), err)
				printer.Error(sysErr)
				return sysErr
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default: web.addr setting, :8080)")
	cmd.Flags().Bool("debug", false, "Run gin in debug mode")
	return cmd
}
