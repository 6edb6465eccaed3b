package mcp

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Fuabioo/obsidian-mcp/internal/errors"
)

func TestNewServer(t *testing.T) {
	srv, _ := setupTestServer(t, jsonHandler(http.StatusOK, `{}`))

	if srv == nil {
		t.Fatal("expected non-nil server")
	}
	if srv.mcp == nil {
		t.Error("expected MCP server to be initialized")
	}
	if srv.logger == nil {
		t.Error("expected logger to default to a discard logger")
	}
}

func TestInitialize_Capabilities(t *testing.T) {
	srv, vault := setupTestServer(t, jsonHandler(http.StatusOK, `{}`))

	resp := rpc(t, srv, "initialize", map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]interface{}{},
		"clientInfo":      map[string]interface{}{"name": "test", "version": "1.0"},
	})
	if resp.Error != nil {
		t.Fatalf("initialize failed: %s", resp.Error.Message)
	}

	var result struct {
		Capabilities map[string]json.RawMessage `json:"capabilities"`
		ServerInfo   struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}

	for _, capability := range []string{"resources", "tools", "prompts"} {
		if _, ok := result.Capabilities[capability]; !ok {
			t.Errorf("expected %s capability to be declared", capability)
		}
	}
	if result.ServerInfo.Name != "obsidian-mcp" {
		t.Errorf("expected server name obsidian-mcp, got %s", result.ServerInfo.Name)
	}
	if result.ServerInfo.Version != "test" {
		t.Errorf("expected server version test, got %s", result.ServerInfo.Version)
	}

	if n := vault.hits.Load(); n != 0 {
		t.Errorf("expected no HTTP calls, got %d", n)
	}
}

func TestPrompts_NotSupported(t *testing.T) {
	srv, _ := setupTestServer(t, jsonHandler(http.StatusOK, `{}`))

	t.Run("list is empty", func(t *testing.T) {
		resp := rpc(t, srv, "prompts/list", nil)
		if resp.Error != nil {
			t.Fatalf("prompts/list failed: %s", resp.Error.Message)
		}

		var result struct {
			Prompts []json.RawMessage `json:"prompts"`
		}
		if err := json.Unmarshal(resp.Result, &result); err != nil {
			t.Fatalf("failed to parse result: %v", err)
		}
		if len(result.Prompts) != 0 {
			t.Errorf("expected no prompts, got %d", len(result.Prompts))
		}
	})

	t.Run("get is rejected", func(t *testing.T) {
		resp := rpc(t, srv, "prompts/get", map[string]interface{}{"name": "summarize"})
		if resp.Error == nil {
			t.Fatal("expected prompts/get to fail")
		}
	})
}

func TestClientError(t *testing.T) {
	plain := stderrors.New("boom")

	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "upstream", err: errors.UpstreamFailed("Failed to get vault contents", fmt.Errorf("not found")), want: "Failed to get vault contents: not found"},
		{name: "unknown tool", err: errors.UnknownTool("delete_vault"), want: `unknown tool: "delete_vault"`},
		{name: "wrapped coded error", err: fmt.Errorf("handler: %w", errors.InvalidParams("bad path")), want: "bad path"},
		{name: "plain error", err: plain, want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clientError(tt.err)
			if got == nil {
				t.Fatal("expected error, got nil")
			}
			if got.Error() != tt.want {
				t.Errorf("clientError() = %q, want %q", got.Error(), tt.want)
			}
		})
	}

	if clientError(nil) != nil {
		t.Error("clientError(nil) should be nil")
	}
}
