package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/classwork/internal/adapters/driving/tui/views/output"
	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	keymap *keymap.KeyMap

	// menuView lists the exercises.
	menuView *menu.View

	// outputView shows the walkthrough of the last run.
	outputView *output.View

	// statusBar shows the last run ID and duration.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s, ports.Catalog.List()),
		outputView:  output.NewView(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("classwork"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewOutput:
			a.outputView, cmd = a.outputView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) {
				return a, a.changeView(messages.ViewMenu)
			}
			if msg.String() == "q" {
				return a, tea.Quit
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		a.statusBar.SetOutputHints(msg.View == messages.ViewOutput)
		return a, nil

	case messages.ExerciseSelected:
		a.currentView = messages.ViewOutput
		a.statusBar.SetOutputHints(true)
		a.statusBar.SetRunning(msg.Info.Name)
		a.outputView.Start(msg.Info)
		return a, a.runExercise(msg.Info)

	case messages.ExerciseCompleted:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetError(msg.Err)
		} else {
			a.statusBar.SetDone(msg.Report)
		}
		a.outputView, cmd = a.outputView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetError(msg.Err)
		if a.currentView == messages.ViewOutput {
			a.outputView, cmd = a.outputView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// runExercise returns a command that runs info and captures its output.
func (a *App) runExercise(info domain.ExerciseInfo) tea.Cmd {
	catalog := a.ports.Catalog
	ctx := a.ctx
	return func() tea.Msg {
		var buf bytes.Buffer
		report, err := catalog.Run(ctx, info.Name, &buf)
		if err != nil {
			logger.Warn("tui: %v", err)
		}
		return messages.ExerciseCompleted{
			Info:   info,
			Output: buf.String(),
			Report: report,
			Err:    err,
		}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewOutput:
		body = a.outputView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}

	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Output returns the output view.
func (a *App) Output() *output.View {
	return a.outputView
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	// Leave room for the status bar
	a.outputView.SetDimensions(width, height-2)
	a.statusBar.SetWidth(width)
}
