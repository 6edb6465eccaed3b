// Package errors provides typed error handling for obsidian-mcp operations.
//
// Every error that reaches an MCP client or the CLI carries one of the codes
// below, so callers can branch on the failure class without parsing messages.
//
// Example usage:
//
//	// Creating errors
//	err := errors.UnknownTool("delete_vault")
//	err := errors.MissingAPIKey()
//
//	// Wrapping errors
//	err := errors.UpstreamFailed("Failed to get vault contents", apiErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeUpstream) {
//	    // the local REST API call failed
//	}
//
//	// Stdlib compatibility
//	var obsErr *errors.Error
//	if errors.As(err, &obsErr) {
//	    fmt.Println(obsErr.Code, obsErr.Message)
//	}
package errors
