package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the configuration directory for obsidian-mcp.
// It follows the XDG Base Directory Specification:
// - $OBSIDIAN_MCP_CONFIG_DIR (full override)
// - $XDG_CONFIG_HOME/obsidian-mcp
// - ~/.config/obsidian-mcp (fallback)
func ConfigDir() (string, error) {
	if dir := os.Getenv("OBSIDIAN_MCP_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "obsidian-mcp"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".config", "obsidian-mcp"), nil
}
