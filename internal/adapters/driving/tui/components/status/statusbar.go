// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classwork/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateRunning State = "running"
	StateDone    State = "done"
	StateError   State = "error"
)

// Bar displays the last run and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	exercise string
	report   domain.RunReport
	message  string
	output   bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the run state.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateRunning:
		return s.styles.Muted.Render(fmt.Sprintf("Running %s...", s.exercise))
	case StateDone:
		return s.styles.Success.Render(fmt.Sprintf("%s  run %s  %s",
			s.exercise, s.report.ShortID(), s.report.Duration.Round(time.Microsecond)))
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady:
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.output {
		bindings = s.keymap.OutputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetRunning marks exercise as in progress.
func (s *Bar) SetRunning(exercise string) {
	s.state = StateRunning
	s.exercise = exercise
	s.message = ""
}

// SetDone records a finished run.
func (s *Bar) SetDone(report domain.RunReport) {
	s.state = StateDone
	s.exercise = report.Exercise
	s.report = report
	s.message = ""
}

// SetError records a failure.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = ""
	if err != nil {
		s.message = err.Error()
	}
}

// SetOutputHints switches the hints between the menu and output views.
func (s *Bar) SetOutputHints(output bool) {
	s.output = output
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Report returns the last finished run.
func (s *Bar) Report() domain.RunReport {
	return s.report
}

// Message returns the current error message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.exercise = ""
	s.report = domain.RunReport{}
	s.message = ""
}
