package security

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateVaultPath checks if a vault-relative path is safe to append to the
// /vault/ endpoint. An empty path is valid and means the vault root.
// Rejects:
// - Null bytes
// - Control characters (0x00-0x1F, 0x7F)
// - ".." components, which would let the request escape /vault/ and reach
//   other endpoints of the REST API
func ValidateVaultPath(path string) error {
	if path == "" {
		return nil
	}

	// Reject null bytes
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null byte: %q", path)
	}

	for _, r := range path {
		if r < 0x20 || r == 0x7F {
			return fmt.Errorf("path contains control character: %q", path)
		}
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return fmt.Errorf("path contains \"..\" component: %q", path)
		}
	}

	return nil
}

// EscapeVaultPath escapes every segment of a vault path for use in a URL.
// Leading slashes are dropped; a trailing slash is kept, since the upstream
// API uses it to distinguish a directory listing from a file read.
func EscapeVaultPath(path string) string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return ""
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
