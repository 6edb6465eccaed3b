package mcp

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Fuabioo/obsidian-mcp/internal/errors"
)

const serverName = "obsidian-mcp"

// VaultAPI is the upstream the adapter forwards to. *obsidian.Client implements it.
type VaultAPI interface {
	ServerInfo(ctx context.Context) ([]byte, error)
	VaultContents(ctx context.Context, path string) ([]byte, error)
}

// Server wraps the MCP server with the vault adapter state.
type Server struct {
	mcp    *server.MCPServer
	api    VaultAPI
	logger *log.Logger
}

// NewServer creates the MCP server with the server-info resource and the
// get_vault_contents tool registered. A nil logger discards output.
func NewServer(api VaultAPI, version string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		api:    api,
		logger: logger,
	}

	// Prompts are declared but none are registered: prompts/list answers an
	// empty list and prompts/get fails with "prompt not found".
	s.mcp = server.NewMCPServer(serverName, version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	s.registerResources()
	s.registerTools()

	return s
}

// fail logs a handler error with its code and hands it back.
func (s *Server) fail(err error) error {
	s.logger.Error("request failed", "code", errors.Code(err), "err", err)
	return err
}

// clientError strips the code from a handler error before it goes on the
// wire. JSON-RPC carries its own error code, so clients get the message only.
func clientError(err error) error {
	var obsErr *errors.Error
	if stderrors.As(err, &obsErr) {
		return stderrors.New(obsErr.Detail())
	}
	return err
}
