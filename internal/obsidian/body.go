package obsidian

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"strings"
)

// decodeBody turns a 2xx response body into JSON text.
// A body that parses as JSON is passed through byte for byte, whatever the
// content type, so key order survives. Anything else (notes are served as
// text/markdown) becomes a JSON string, unless the server claimed JSON.
func decodeBody(contentType string, body []byte) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return []byte(`""`), nil
	}

	if json.Valid(body) {
		return body, nil
	}

	if isJSONContentType(contentType) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedBody)
	}

	return marshalString(string(body))
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FormatJSON pretty-prints JSON text with two-space indentation.
func FormatJSON(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format JSON: %w", err)
	}
	return buf.String(), nil
}
