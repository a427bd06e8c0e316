package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/views/specialists"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/logger"
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

	// menuView is the main navigation menu.
	menuView *menu.View

	// chatView holds the conversation with the counselor.
	chatView *chat.View

	// specialistsView lists the registered specialists.
	specialistsView *specialists.View

	// session is the counseling session opened by Init.
	session *domain.Session

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
	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		menuView:        menu.NewView(s),
		chatView:        chat.NewView(s, nil, ports.Sessions),
		specialistsView: specialists.NewView(s, ports.Catalog),
		currentView:     messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It enters the alternate screen and opens the counseling session.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("counsel - Transfer Counseling"),
		a.startSession(),
	)
}

// startSession opens the session used by the chat view.
func (a *App) startSession() tea.Cmd {
	sessions, ctx := a.ports.Sessions, a.ctx
	return func() tea.Msg {
		session, err := sessions.Start(ctx)
		return messages.SessionStarted{Session: session, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
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
		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
		case messages.ViewSpecialists:
			a.specialistsView, cmd = a.specialistsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.SessionStarted:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("starting session: %v", msg.Err)
		} else {
			a.session = msg.Session
		}
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.AnswerReceived, messages.ContextSet:
		a.chatView, cmd = a.chatView.Update(msg)
		a.err = a.chatView.Err()
		return a, cmd

	case messages.SpecialistsLoaded:
		a.specialistsView, cmd = a.specialistsView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewChat:
			a.chatView.Reset()
			return a, a.chatView.Init()
		case messages.ViewSpecialists:
			return a, a.specialistsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewChat {
			a.chatView, cmd = a.chatView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink and similar) to the active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewSpecialists:
		a.specialistsView, cmd = a.specialistsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewSpecialists:
		return a.specialistsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Chat:
  (type)      Enter a question
  enter       Ask
  pgup/pgdn   Scroll the conversation
  esc         Back to Menu

Chat commands:
  /set key=value   Remember a fact (e.g. /set gpa=3.4)
  /context         Show remembered facts
  quit, exit, bye  Leave

[esc] back to menu`
}

// Run starts the TUI application and ends the session when it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if closeErr := a.Close(); closeErr != nil {
		logger.Warn("ending session: %v", closeErr)
	}
	return err
}

// Close ends the counseling session, discarding its context and transcript.
// It is safe to call more than once.
func (a *App) Close() error {
	if a.session == nil {
		return nil
	}
	id := a.session.ID
	a.session = nil
	return a.ports.Sessions.End(context.WithoutCancel(a.ctx), id)
}

// Session returns the active session, or nil before it has started.
func (a *App) Session() *domain.Session {
	return a.session
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and sizes every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.specialistsView.SetDimensions(width, height)
}
