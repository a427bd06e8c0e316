// Package mcp provides an MCP (Model Context Protocol) server adapter for counsel.
// It lets AI assistants route transfer-counseling questions through the coordinator.
package mcp

import "errors"

// ErrMissingRouter is returned when the router is not provided.
var ErrMissingRouter = errors.New("mcp: router is required")
