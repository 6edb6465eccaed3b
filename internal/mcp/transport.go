package mcp

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
)

// Serve runs the MCP server over the given stdio streams until in reaches EOF
// or ctx is cancelled. Protocol frames go to out; logs never do.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s.mcp)
	stdioServer.SetErrorLogger(s.logger.StandardLog(log.StandardLogOptions{
		ForceLevel: log.ErrorLevel,
	}))

	// Print ignores the level so the ready line survives --log-level warn
	s.logger.Print("Obsidian MCP server running on stdio")

	err := stdioServer.Listen(ctx, in, out)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
	return nil
}
