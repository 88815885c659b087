// Package menu provides the exercise menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classwork/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label    string
	Exercise *domain.ExerciseInfo // set when selecting runs an exercise
	View     messages.ViewType
	Quit     bool // If true, selecting this item quits the app
}

// View represents the exercise menu.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a menu listing exercises followed by Help and Quit.
func NewView(s *styles.Styles, exercises []domain.ExerciseInfo) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := make([]Item, 0, len(exercises)+2)
	for i := range exercises {
		info := exercises[i]
		items = append(items, Item{Label: info.Title, Exercise: &info})
	}
	items = append(items,
		Item{Label: "Help", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)

	return &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		items:    items,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case keymap.Matches(k, v.keymap.Select):
			return v, v.activate(v.items[v.selected])

		case keymap.Matches(k, v.keymap.Help):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHelp}
			}

		case k == "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v *View) activate(item Item) tea.Cmd {
	switch {
	case item.Quit:
		return tea.Quit
	case item.Exercise != nil:
		info := *item.Exercise
		return func() tea.Msg {
			return messages.ExerciseSelected{Info: info}
		}
	default:
		return func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("classwork"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Object-oriented programming exercises"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		label := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Cursor.Render(item.Label)
		}

		b.WriteString(cursor + label)
		if item.Exercise != nil {
			b.WriteString("  " + v.styles.Name.Render(item.Exercise.Name))
		}
		b.WriteString("\n")
	}

	if info := v.items[v.selected].Exercise; info != nil && info.Summary != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(info.Summary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Run  [?] Help  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
