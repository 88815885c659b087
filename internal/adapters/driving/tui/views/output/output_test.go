package output

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/classwork/internal/core/domain"
)

var shapesInfo = domain.ExerciseInfo{Name: "shapes", Title: "Shape Areas"}

func numbered(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func completed(v *View, out string) {
	v.Update(messages.ExerciseCompleted{
		Info:   shapesInfo,
		Output: out,
		Report: domain.RunReport{RunID: "0123456789", Exercise: "shapes"},
	})
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Nil(t, v.Init())
	assert.False(t, v.Running())
}

func TestView_StartAndComplete(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)

	v.Start(shapesInfo)
	assert.True(t, v.Running())
	assert.Contains(t, v.View(), "Running...")

	completed(v, "Circle with radius 5.00\nArea: 78.54 square units\n")

	assert.False(t, v.Running())
	assert.Equal(t, "0123456789", v.Report().RunID)
	assert.Equal(t, []string{"Circle with radius 5.00", "Area: 78.54 square units"}, v.Lines())
	out := v.View()
	assert.Contains(t, out, "Shape Areas")
	assert.Contains(t, out, "Area: 78.54 square units")
}

func TestView_Start_ClearsPreviousRun(t *testing.T) {
	v := NewView(nil)
	completed(v, numbered(50))
	v.scrollOffset = 10

	v.Start(shapesInfo)

	assert.Empty(t, v.Content())
	assert.Nil(t, v.Lines())
	assert.Equal(t, 0, v.ScrollOffset())
}

func TestView_Completed_WithError(t *testing.T) {
	v := NewView(nil)
	v.Start(shapesInfo)

	v.Update(messages.ExerciseCompleted{Info: shapesInfo, Err: errors.New("context canceled")})

	assert.EqualError(t, v.Err(), "context canceled")
	assert.Contains(t, v.View(), "Error: context canceled")
	assert.NotContains(t, v.View(), "(No output)")
}

func TestView_ErrorOccurred(t *testing.T) {
	v := NewView(nil)
	v.Start(shapesInfo)

	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.False(t, v.Running())
	assert.Contains(t, v.View(), "Error: boom")
}

func TestView_EmptyOutput(t *testing.T) {
	v := NewView(nil)

	completed(v, "")

	assert.Contains(t, v.View(), "(No output)")
}

func TestView_WrapsLongLines(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(24, 24)

	completed(v, strings.Repeat("x", 45)+"\n")

	// Content width is 20 at this size
	assert.Equal(t, []string{strings.Repeat("x", 20), strings.Repeat("x", 20), strings.Repeat("x", 5)}, v.Lines())
}

func TestView_WrapKeepsBlankLines(t *testing.T) {
	v := NewView(nil)

	completed(v, "a\n\nb\n")

	assert.Equal(t, []string{"a", "", "b"}, v.Lines())
}

func TestView_Scroll(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 17) // 10 visible lines
	completed(v, numbered(30))

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 11, v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 20, v.ScrollOffset())

	// Can't scroll past the end
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 20, v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 10, v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, v.ScrollOffset())

	// Can't scroll above the start
	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.ScrollOffset())
}

func TestView_ScrollIndicator(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 17)
	completed(v, numbered(30))

	assert.Contains(t, v.View(), "[0%] Line 1-10 of 30")
	assert.Contains(t, v.View(), "line 10")
	assert.NotContains(t, v.View(), "line 11\n")
}

func TestView_ResizeClampsOffset(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 17)
	completed(v, numbered(30))
	v.scrollOffset = 20

	v.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	assert.Equal(t, 0, v.ScrollOffset())
}

func TestView_Rerun(t *testing.T) {
	v := NewView(nil)
	completed(v, "x\n")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ExerciseSelected{Info: shapesInfo}, cmd())
}

func TestView_Rerun_IgnoredWhileRunning(t *testing.T) {
	v := NewView(nil)
	v.Start(shapesInfo)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Nil(t, cmd)
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}
