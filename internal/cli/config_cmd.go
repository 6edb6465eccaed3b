package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration after merging defaults, the config file,
OBSIDIAN_* environment variables and flags. The API key is redacted.

Output is YAML unless --json is given.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !flagQuiet {
		source := cfg.Source
		if source == "" {
			source = "(none)"
		}
		fmt.Fprintf(os.Stderr, "Config file: %s\n", source)
	}

	if flagJSON {
		return outputJSON(cfg.Redacted())
	}
	return outputYAML(cfg.Redacted())
}
