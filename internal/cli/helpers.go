package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Fuabioo/obsidian-mcp/internal/core"
	"github.com/Fuabioo/obsidian-mcp/internal/errors"
	"github.com/Fuabioo/obsidian-mcp/internal/obsidian"
)

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// outputYAML marshals and prints YAML to stdout.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// outputDocument prints an API response: YAML with --yaml, otherwise the
// same pretty-printed JSON the MCP server returns.
func outputDocument(raw []byte) error {
	if flagYAML && !flagJSON {
		var doc interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return outputYAML(doc)
	}

	text, err := obsidian.FormatJSON(raw)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of f, or fallback when it is not a terminal.
func terminalWidth(f *os.File, fallback int) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch errors.Code(err) {
	case errors.CodeConfiguration:
		return 2
	case errors.CodeUpstream:
		return 3
	case errors.CodeUnknownResource, errors.CodeUnknownTool, errors.CodeInvalidParams:
		return 4
	default:
		return 1 // General error
	}
}

// loadConfig resolves configuration for cmd: defaults, config file, env, flags.
func loadConfig(cmd *cobra.Command) (*core.Config, error) {
	return core.LoadConfig(core.LoadOptions{
		ConfigFile: flagConfig,
		Flags:      cmd.Flags(),
	})
}

// newLogger builds the stderr logger. stdout belongs to the MCP transport.
func newLogger(cfg *core.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "obsidian-mcp",
	})

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Log.Format == "json" {
		logger.SetFormatter(log.JSONFormatter)
	}

	return logger
}

// apiSession bundles what a command needs to call the API.
type apiSession struct {
	cfg    *core.Config
	client *obsidian.Client
	logger *log.Logger
}

// connect loads and validates configuration and builds the API client.
func connect(cmd *cobra.Command) (*apiSession, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	client, err := obsidian.NewClient(cfg.API, logger)
	if err != nil {
		return nil, errors.InvalidConfig("api.ca_cert", err)
	}

	return &apiSession{cfg: cfg, client: client, logger: logger}, nil
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	label := color.New(color.FgRed, color.Bold)

	var obsErr *errors.Error
	if stderrors.As(err, &obsErr) {
		fmt.Fprintf(os.Stderr, "%s %s\n", label.Sprintf("Error [%s]:", obsErr.Code), obsErr.Detail())
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", label.Sprint("Error:"), err)
}
