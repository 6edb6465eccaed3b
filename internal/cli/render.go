package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const (
	defaultWrapWidth = 80

	// styleAuto picks dark or light from the terminal background.
	styleAuto = "auto"
	// styleNoTTY renders without ANSI sequences.
	styleNoTTY = "notty"
)

// renderNote renders markdown note content for the terminal.
func renderNote(note string, width int, style string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(note)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
