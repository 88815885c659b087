// Package mcp provides an MCP (Model Context Protocol) server adapter for classwork.
// It lets AI assistants list the exercises and run their walkthroughs.
package mcp

import "errors"

// ErrMissingCatalog is returned when the exercise catalog is not provided.
var ErrMissingCatalog = errors.New("mcp: catalog is required")
