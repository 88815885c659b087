// Package tui provides an interactive terminal user interface for classwork.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Catalog lists and runs exercises.
	Catalog driving.ExerciseCatalog
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(catalog driving.ExerciseCatalog) *Ports {
	return &Ports{Catalog: catalog}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalog
	}
	return nil
}
