package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/obsidian-mcp/internal/obsidian"
)

var lsFlagRaw bool

var lsCmd = &cobra.Command{
	Use:   "ls [<path>]",
	Short: "List a vault directory or print a note",
	Long: `Fetches GET /vault/<path> and prints the result.

The path is optional and defaults to the root of the vault. End directory
paths with "/". On a terminal, directory listings are printed one entry per
line and notes are rendered as markdown; otherwise the raw JSON document is
printed, exactly as the get_vault_contents tool returns it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVar(&lsFlagRaw, "raw", false, "Print the JSON document even on a terminal")
}

func runLs(cmd *cobra.Command, args []string) error {
	var relativePath string
	if len(args) == 1 {
		relativePath = args[0]
	}
	if relativePath == "." {
		relativePath = ""
	}

	session, err := connect(cmd)
	if err != nil {
		return err
	}

	raw, err := session.client.VaultContents(cmd.Context(), relativePath)
	if err != nil {
		return obsidian.Classify(obsidian.VaultContentsFailed, err)
	}

	if lsFlagRaw || flagJSON || flagYAML || !isTerminal(os.Stdout) {
		return outputDocument(raw)
	}

	// Human-readable output
	var listing struct {
		Files []string `json:"files"`
	}
	if err := json.Unmarshal(raw, &listing); err == nil && listing.Files != nil {
		if len(listing.Files) == 0 {
			if !flagQuiet {
				fmt.Println("(empty)")
			}
			return nil
		}
		for _, name := range listing.Files {
			fmt.Println(name)
		}
		return nil
	}

	var note string
	if err := json.Unmarshal(raw, &note); err == nil {
		rendered, err := renderNote(note, terminalWidth(os.Stdout, defaultWrapWidth), styleAuto)
		if err != nil {
			// Fall back to the plain note rather than failing the read
			fmt.Print(note)
			return nil
		}
		fmt.Print(rendered)
		return nil
	}

	return outputDocument(raw)
}
