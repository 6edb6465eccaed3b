package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is set via ldflags during build
	Commit = "unknown"

	// Global flags
	flagJSON   bool
	flagYAML   bool
	flagQuiet  bool
	flagConfig string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "obsidian-mcp",
	Short: "MCP server for the Obsidian Local REST API",
	Long: `obsidian-mcp exposes an Obsidian vault to MCP clients over stdio.

It forwards requests to the Local REST API plugin (https://127.0.0.1:27124 by
default) using the bearer token from OBSIDIAN_API_KEY. Without a subcommand it
starts the MCP server; the other commands query the API directly.`,
	Args:          cobra.NoArgs,
	RunE:          runMCP,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
		stop()
		os.Exit(getExitCode(err))
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&flagYAML, "yaml", false, "Output in YAML format (ignored with --json)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default: <config dir>/config.yaml)")

	// Connection and logging flags, bound to config keys in core.LoadConfig
	rootCmd.PersistentFlags().String("api-url", "", "Local REST API base URL (default https://127.0.0.1:27124)")
	rootCmd.PersistentFlags().Bool("insecure", true, "Skip TLS certificate verification (reduced security)")
	rootCmd.PersistentFlags().String("ca-cert", "", "PEM file to trust when --insecure=false")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")

	// Add all subcommands
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// GetVersion returns the version string
func GetVersion() string {
	if len(Commit) >= 7 && Commit != "unknown" {
		return fmt.Sprintf("%s (%s)", Version, Commit[:7])
	}
	return Version
}
