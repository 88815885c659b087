package mcp

import (
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Catalog lists and runs exercises.
	Catalog driving.ExerciseCatalog
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalog
	}
	return nil
}
