package cli

import (
	"github.com/spf13/cobra"

	"github.com/Fuabioo/obsidian-mcp/internal/obsidian"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show Obsidian server info",
	Long: `Fetches the Local REST API status (GET /) and prints it.

This is the same document MCP clients read from obsidian://server-info, and is
a quick way to check that the token and TLS settings work.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	session, err := connect(cmd)
	if err != nil {
		return err
	}

	raw, err := session.client.ServerInfo(cmd.Context())
	if err != nil {
		return obsidian.Classify(obsidian.ServerInfoFailed, err)
	}

	return outputDocument(raw)
}
