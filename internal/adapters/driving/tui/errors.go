package tui

import "errors"

// ErrMissingCatalog is returned when the exercise catalog is not provided.
var ErrMissingCatalog = errors.New("tui: catalog is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
