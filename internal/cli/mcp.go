package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/obsidian-mcp/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server on stdio",
	Long: `Starts the Model Context Protocol (MCP) server on stdio.

This command is used by MCP clients (Claude Desktop, etc.) to communicate
with Obsidian. It should not be run directly by users. OBSIDIAN_API_KEY must
be set; the server refuses to start without it.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Fails on a missing token before stdio is touched
	session, err := connect(cmd)
	if err != nil {
		return err
	}

	if session.cfg.API.InsecureSkipVerify {
		session.logger.Warn("TLS certificate verification is disabled", "url", session.cfg.API.URL)
	}

	srv := mcp.NewServer(session.client, GetVersion(), session.logger)
	return srv.Serve(cmd.Context(), os.Stdin, os.Stdout)
}
