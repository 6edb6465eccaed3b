package obsidian

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Fuabioo/obsidian-mcp/internal/core"
)

const testAPIKey = "test-api-key"

// recordedRequest captures what the fake API saw.
type recordedRequest struct {
	Path          string
	EscapedPath   string
	Authorization string
	Accept        string
}

// fakeAPI is a self-signed HTTPS stand-in for the Local REST API plugin.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeAPI(t *testing.T, handler http.HandlerFunc) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	api.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{
			Path:          r.URL.Path,
			EscapedPath:   r.URL.EscapedPath(),
			Authorization: r.Header.Get("Authorization"),
			Accept:        r.Header.Get("Accept"),
		})
		api.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(api.Close)

	return api
}

func (a *fakeAPI) Requests() []recordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]recordedRequest(nil), a.requests...)
}

func (a *fakeAPI) apiConfig() core.APIConfig {
	return core.APIConfig{
		Key:                testAPIKey,
		URL:                a.URL,
		InsecureSkipVerify: true,
	}
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()

	client, err := NewClient(api.apiConfig(), nil)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
