package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Fuabioo/obsidian-mcp/internal/core"
	"github.com/Fuabioo/obsidian-mcp/internal/obsidian"
)

// fakeVault is a self-signed HTTPS stand-in for the Local REST API.
type fakeVault struct {
	*httptest.Server

	hits  atomic.Int32
	mu    sync.Mutex
	paths []string
}

func newFakeVault(t *testing.T, handler http.HandlerFunc) *fakeVault {
	t.Helper()

	v := &fakeVault{}
	v.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v.hits.Add(1)
		v.mu.Lock()
		v.paths = append(v.paths, r.URL.EscapedPath())
		v.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(v.Close)

	return v
}

func (v *fakeVault) Paths() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.paths...)
}

// setupTestServer wires a Server to a real client pointed at the fake vault.
func setupTestServer(t *testing.T, handler http.HandlerFunc) (*Server, *fakeVault) {
	t.Helper()

	vault := newFakeVault(t, handler)
	client, err := obsidian.NewClient(core.APIConfig{
		Key:                "test-key",
		URL:                vault.URL,
		InsecureSkipVerify: true,
	}, nil)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return NewServer(client, "test", nil), vault
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// newTestRequest creates a CallToolRequest for testing
func newTestRequest(name string, arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: arguments,
		},
	}
}

// getResultText extracts the text from a CallToolResult for testing
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := mcp.AsTextContent(result.Content[0]); ok {
		return textContent.Text
	}
	return ""
}

// rpcResponse is the decoded shape of a JSON-RPC reply.
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// rpc sends one JSON-RPC request through the protocol layer.
func rpc(t *testing.T, s *Server, method string, params interface{}) rpcResponse {
	t.Helper()

	request := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
	}
	if params != nil {
		request["params"] = params
	}

	raw, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	reply := s.mcp.HandleMessage(context.Background(), raw)
	replyBytes, err := json.Marshal(reply)
	if err != nil {
		t.Fatalf("failed to marshal reply: %v", err)
	}

	var resp rpcResponse
	if err := json.Unmarshal(replyBytes, &resp); err != nil {
		t.Fatalf("failed to decode reply %s: %v", replyBytes, err)
	}
	return resp
}

// syncBuffer is a bytes.Buffer safe for one writer and one polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
