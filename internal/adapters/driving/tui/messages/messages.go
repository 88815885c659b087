// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/classwork/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the exercise menu.
	ViewMenu ViewType = iota
	// ViewOutput shows the walkthrough of the last run exercise.
	ViewOutput
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewOutput:
		return "output"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ExerciseSelected is sent when an exercise is chosen to run.
type ExerciseSelected struct {
	Info domain.ExerciseInfo
}

// ExerciseCompleted carries a finished run back to the model.
type ExerciseCompleted struct {
	Info   domain.ExerciseInfo
	Output string
	Report domain.RunReport
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
