package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Fuabioo/obsidian-mcp/internal/errors"
	"github.com/Fuabioo/obsidian-mcp/internal/obsidian"
)

// VaultContentsTool is the only tool the adapter exposes.
const VaultContentsTool = "get_vault_contents"

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool(VaultContentsTool,
		mcp.WithDescription("Get the contents of the Obsidian vault: a directory listing, or a file's content"),
		mcp.WithString("path",
			mcp.Description("Path inside the vault (optional, defaults to the vault root; end directories with \"/\")")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.handleCallTool(ctx, request)
		return result, clientError(err)
	})
}

// handleCallTool dispatches a tool call by name.
func (s *Server) handleCallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch request.Params.Name {
	case VaultContentsTool:
		return s.handleGetVaultContents(ctx, request)
	default:
		return nil, s.fail(errors.UnknownTool(request.Params.Name))
	}
}

// handleGetVaultContents implements get_vault_contents: GET /vault/{path}.
func (s *Server) handleGetVaultContents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := pathArgument(request)
	if err != nil {
		return nil, s.fail(err)
	}

	raw, err := s.api.VaultContents(ctx, path)
	if err != nil {
		return nil, s.fail(obsidian.Classify(obsidian.VaultContentsFailed, err))
	}

	text, err := obsidian.FormatJSON(raw)
	if err != nil {
		return nil, s.fail(errors.Unexpected(err))
	}

	return mcp.NewToolResultText(text), nil
}

// pathArgument reads the optional "path" argument. Absent or null means the
// vault root; any other non-string value is rejected.
func pathArgument(request mcp.CallToolRequest) (string, error) {
	value, ok := request.GetArguments()["path"]
	if !ok || value == nil {
		return "", nil
	}

	path, ok := value.(string)
	if !ok {
		return "", errors.InvalidParams(fmt.Sprintf("path must be a string, got %T", value))
	}
	return path, nil
}
