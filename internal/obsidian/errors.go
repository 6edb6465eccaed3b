package obsidian

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"

	oerrors "github.com/Fuabioo/obsidian-mcp/internal/errors"
)

// Prefixes for upstream failures, as shown to MCP clients and on the CLI.
const (
	ServerInfoFailed    = "Obsidian API error"
	VaultContentsFailed = "Failed to get vault contents"
)

// ErrMalformedBody is returned when a successful response cannot be read as JSON.
var ErrMalformedBody = errors.New("malformed response body")

// APIError is a non-2xx response from the REST API.
type APIError struct {
	StatusCode int
	// ErrorCode is the plugin's numeric errorCode, 0 when absent.
	ErrorCode int
	// Message is the body's message field, empty when absent.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var payload struct {
		ErrorCode int    `json:"errorCode"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.ErrorCode = payload.ErrorCode
		apiErr.Message = payload.Message
	}

	return apiErr
}

// PathError reports a vault path rejected before any request was made.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid vault path: %v", e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Classify maps a client error onto the error taxonomy.
// operation prefixes upstream failures, e.g. VaultContentsFailed.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return oerrors.InvalidParams(pathErr.Error())
	}

	var (
		apiErr *APIError
		urlErr *url.Error
		netErr net.Error
	)
	switch {
	case errors.As(err, &apiErr),
		errors.As(err, &urlErr),
		errors.As(err, &netErr),
		errors.Is(err, ErrMalformedBody),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return oerrors.UpstreamFailed(operation, err)
	default:
		return oerrors.Unexpected(err)
	}
}
