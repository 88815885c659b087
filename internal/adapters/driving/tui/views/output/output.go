// Package output provides the scrollable walkthrough view for the TUI.
package output

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classwork/internal/core/domain"
)

// View shows the captured walkthrough of one exercise run.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	info         domain.ExerciseInfo
	report       domain.RunReport
	content      string
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	running      bool
}

// NewView creates a new output view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		width:  80,
		height: 24,
	}
}

// Start clears the view for a new run of info.
func (v *View) Start(info domain.ExerciseInfo) {
	v.info = info
	v.report = domain.RunReport{}
	v.content = ""
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.running = true
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the output view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ExerciseCompleted:
		v.running = false
		v.info = msg.Info
		v.report = msg.Report
		v.content = msg.Output
		v.err = msg.Err
		v.wrapContent()
		return v, nil

	case messages.ErrorOccurred:
		v.running = false
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case keymap.Matches(k, v.keymap.PageUp):
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case keymap.Matches(k, v.keymap.PageDown):
		v.scrollOffset += v.visibleLines()
		if maxOffset := v.maxScrollOffset(); v.scrollOffset > maxOffset {
			v.scrollOffset = maxOffset
		}
	case keymap.Matches(k, v.keymap.Top):
		v.scrollOffset = 0
	case keymap.Matches(k, v.keymap.Bottom):
		v.scrollOffset = v.maxScrollOffset()
	case keymap.Matches(k, v.keymap.Rerun):
		if v.running || v.info.Name == "" {
			return v, nil
		}
		info := v.info
		return v, func() tea.Msg {
			return messages.ExerciseSelected{Info: info}
		}
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// wrapContent wraps the content to fit the view width.
func (v *View) wrapContent() {
	if v.content == "" {
		v.lines = nil
		return
	}

	// Account for the output border and padding
	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	rawLines := strings.Split(strings.TrimSuffix(v.content, "\n"), "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		runes := []rune(line)
		for len(runes) > contentWidth {
			v.lines = append(v.lines, string(runes[:contentWidth]))
			runes = runes[contentWidth:]
		}
		v.lines = append(v.lines, string(runes))
	}

	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, position, help, and padding
	reserved := 7
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the output view.
func (v *View) View() string {
	var b strings.Builder

	title := v.info.Title
	if title == "" {
		title = "Output"
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(v.width-4, 60)))
	b.WriteString("\n\n")

	if v.running {
		b.WriteString(v.styles.Muted.Render("Running..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if len(v.lines) == 0 {
		if v.err == nil {
			b.WriteString(v.styles.Muted.Render("(No output)"))
			b.WriteString("\n\n")
		}
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(v.lines))
	b.WriteString(v.styles.Output.Render(strings.Join(v.lines[v.scrollOffset:end], "\n")))
	b.WriteString("\n")

	if len(v.lines) > visible {
		b.WriteString("\n")
		percentage := 0
		if v.maxScrollOffset() > 0 {
			percentage = v.scrollOffset * 100 / v.maxScrollOffset()
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage, v.scrollOffset+1, end, len(v.lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [r] run again  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrapContent()
}

// Info returns the exercise shown.
func (v *View) Info() domain.ExerciseInfo {
	return v.info
}

// Report returns the report of the last completed run.
func (v *View) Report() domain.RunReport {
	return v.report
}

// Content returns the captured walkthrough.
func (v *View) Content() string {
	return v.content
}

// Lines returns the wrapped lines.
func (v *View) Lines() []string {
	return v.lines
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Running reports whether a run is in progress.
func (v *View) Running() bool {
	return v.running
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
