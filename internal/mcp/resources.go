package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Fuabioo/obsidian-mcp/internal/errors"
	"github.com/Fuabioo/obsidian-mcp/internal/obsidian"
)

// ServerInfoURI is the only resource the adapter exposes.
const ServerInfoURI = "obsidian://server-info"

const jsonMIMEType = "application/json"

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(ServerInfoURI, "Obsidian Server Info",
		mcp.WithResourceDescription("Basic information about the Obsidian server"),
		mcp.WithMIMEType(jsonMIMEType),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		contents, err := s.handleReadResource(ctx, request)
		return contents, clientError(err)
	})
}

// handleReadResource serves obsidian://server-info from GET /.
func (s *Server) handleReadResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if uri != ServerInfoURI {
		return nil, s.fail(errors.UnknownResource(uri))
	}

	raw, err := s.api.ServerInfo(ctx)
	if err != nil {
		return nil, s.fail(obsidian.Classify(obsidian.ServerInfoFailed, err))
	}

	text, err := obsidian.FormatJSON(raw)
	if err != nil {
		return nil, s.fail(errors.Unexpected(err))
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     text,
		},
	}, nil
}
