// Package obsidian is a minimal client for the Obsidian Local REST API plugin.
//
// Every call is a single GET whose JSON body is handed back untouched. The
// client never retries, never caches and sets no timeout of its own.
package obsidian

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Fuabioo/obsidian-mcp/internal/core"
	"github.com/Fuabioo/obsidian-mcp/internal/security"
)

// Client talks to one Obsidian instance. It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *log.Logger
}

// NewClient builds a client from the API settings. The caller is expected to
// have validated cfg; a nil logger discards output.
func NewClient(cfg core.APIConfig, logger *log.Logger) (*Client, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tlsConfig, err := security.TLSConfig(cfg.InsecureSkipVerify, cfg.CACert)
	if err != nil {
		return nil, fmt.Errorf("failed to configure TLS: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.Key,
		http:    &http.Client{Transport: transport},
		logger:  logger,
	}, nil
}

// ServerInfo fetches GET /, the plugin's self-reported status and versions.
func (c *Client) ServerInfo(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/")
}

// VaultContents fetches GET /vault/{path}. An empty path lists the vault root;
// a directory path lists its entries and a file path returns the file.
func (c *Client) VaultContents(ctx context.Context, path string) ([]byte, error) {
	if err := security.ValidateVaultPath(path); err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	return c.get(ctx, "/vault/"+security.EscapeVaultPath(path))
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("upstream request failed",
			"request_id", requestID, "path", endpoint, "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	c.logger.Debug("upstream request",
		"request_id", requestID,
		"method", http.MethodGet,
		"path", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return decodeBody(resp.Header.Get("Content-Type"), body)
}
