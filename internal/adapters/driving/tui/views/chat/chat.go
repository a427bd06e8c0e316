// Package chat provides the counseling conversation view for the TUI.
package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/components/markdown"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
)

// EmptyQuestionHint is shown when the student submits a blank line.
const EmptyQuestionHint = "Please enter a question about UC/CSU transfer, financial aid, careers, or academics."

// reserved is the number of rows used by everything except the transcript.
const reserved = 9

// entry is one item of the transcript.
type entry struct {
	query  string
	result domain.RoutingResult
	note   string
}

// View represents the chat view with transcript, question input and status bar.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	input      *input.QuestionInput
	transcript viewport.Model
	renderer   *markdown.Renderer
	statusbar  *status.Bar

	sessions  driving.SessionService
	ctx       context.Context
	sessionID string

	entries []entry
	turns   int
	pending bool
	width   int
	height  int
	ready   bool
	err     error
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, sessions driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQuestionInput(s),
		transcript: viewport.New(80, 24-reserved),
		renderer:   markdown.NewRenderer(80),
		statusbar:  status.NewBar(s, km),
		sessions:   sessions,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Focus()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SessionStarted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.sessionID = msg.Session.ID
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("Session started")
		return v, nil

	case messages.AnswerReceived:
		v.handleAnswer(msg)
		return v, nil

	case messages.ContextSet:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.addNote(fmt.Sprintf("Noted: %s = %v", msg.Key, msg.Value))
		return v, nil

	case messages.ErrorOccurred:
		v.pending = false
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if keymap.Matches(msg.String(), v.keymap.ScrollUp) || keymap.Matches(msg.String(), v.keymap.ScrollDown) {
		var cmd tea.Cmd
		v.transcript, cmd = v.transcript.Update(msg)
		return v, cmd
	}

	if keymap.Matches(msg.String(), v.keymap.Submit) {
		return v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit interprets the current input line.
func (v *View) submit() (*View, tea.Cmd) {
	if v.pending {
		return v, nil
	}

	line := strings.TrimSpace(v.input.Value())
	lower := strings.ToLower(line)

	switch {
	case line == "":
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage(EmptyQuestionHint)
		return v, nil

	case lower == "quit" || lower == "exit" || lower == "bye":
		return v, func() tea.Msg { return messages.Quit{} }

	case strings.HasPrefix(lower, "/set "):
		v.input.Reset()
		return v, v.setContext(strings.TrimSpace(line[len("/set "):]))

	case lower == "/context":
		v.input.Reset()
		v.showContext()
		return v, nil
	}

	v.input.Reset()
	v.pending = true
	v.err = nil
	v.statusbar.SetState(status.StateThinking)
	return v, v.ask(line)
}

// ask routes query through the session service.
func (v *View) ask(query string) tea.Cmd {
	sessions, ctx, id := v.sessions, v.ctx, v.sessionID
	return func() tea.Msg {
		if sessions == nil {
			return messages.ErrorOccurred{Err: ErrNoSessionService}
		}
		if id == "" {
			return messages.ErrorOccurred{Err: ErrNoSession}
		}
		result, err := sessions.Ask(ctx, id, query)
		return messages.AnswerReceived{Query: query, Result: result, Err: err}
	}
}

// setContext parses key=value and stores it for the session.
func (v *View) setContext(assignment string) tea.Cmd {
	key, value, err := domain.ParseAssignment(assignment)
	if err != nil {
		v.setError(err)
		return nil
	}

	sessions, ctx, id := v.sessions, v.ctx, v.sessionID
	return func() tea.Msg {
		if sessions == nil {
			return messages.ContextSet{Key: key, Value: value, Err: ErrNoSessionService}
		}
		if id == "" {
			return messages.ContextSet{Key: key, Value: value, Err: ErrNoSession}
		}
		return messages.ContextSet{Key: key, Value: value, Err: sessions.SetContext(ctx, id, key, value)}
	}
}

// showContext adds the session's student facts to the transcript.
func (v *View) showContext() {
	if v.sessions == nil || v.sessionID == "" {
		v.setError(ErrNoSession)
		return
	}
	student, err := v.sessions.Context(v.ctx, v.sessionID)
	if err != nil {
		v.setError(err)
		return
	}
	v.addNote(FormatContext(student))
}

// handleAnswer appends a completed exchange to the transcript.
func (v *View) handleAnswer(msg messages.AnswerReceived) {
	v.pending = false
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.turns++
	v.entries = append(v.entries, entry{query: msg.Query, result: msg.Result})
	v.refresh()

	v.statusbar.SetState(status.StateAnswered)
	v.statusbar.SetTurns(v.turns)
	v.statusbar.SetMessage(msg.Result.AgentDisplayName())
}

func (v *View) addNote(note string) {
	v.err = nil
	v.entries = append(v.entries, entry{note: note})
	v.refresh()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// refresh re-renders the transcript and scrolls to the newest entry.
func (v *View) refresh() {
	v.transcript.SetContent(v.renderTranscript())
	v.transcript.GotoBottom()
}

func (v *View) renderTranscript() string {
	parts := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		if e.note != "" {
			parts = append(parts, v.styles.Muted.Render(e.note))
			continue
		}

		var b strings.Builder
		b.WriteString(v.styles.Question.Render("You: " + e.query))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Agent.Render("Response from: " + e.result.AgentDisplayName()))
		b.WriteString("\n")
		b.WriteString(v.renderer.Render(e.result.Response))
		if e.result.IsMultiAgent() && len(e.result.AgentsConsulted) > 0 {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render("Specialists consulted: " + ConsultedNames(e.result.AgentsConsulted)))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections,
		v.styles.Title.Render("Counsel"),
		v.styles.Subtitle.Render("Ask about UC/CSU transfer, financial aid, careers, or academics"),
		"",
		v.transcript.View(),
		"",
		v.input.View(),
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.transcript.Width = width
	v.transcript.Height = max(height-reserved, 3)
	if v.renderer.Width() != width {
		v.renderer = markdown.NewRenderer(width)
		v.transcript.SetContent(v.renderTranscript())
	}
}

// SessionID returns the active session id.
func (v *View) SessionID() string {
	return v.sessionID
}

// Turns returns the number of answered questions.
func (v *View) Turns() int {
	return v.turns
}

// Pending reports whether a question is awaiting its answer.
func (v *View) Pending() bool {
	return v.pending
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// Transcript returns the rendered transcript.
func (v *View) Transcript() string {
	return v.renderTranscript()
}

// Reset clears the input and focuses it. The transcript is kept.
func (v *View) Reset() {
	v.input.Reset()
	v.input.Focus()
	v.err = nil
	if !v.pending {
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
	}
}

// ConsultedNames joins specialist ids as display names.
func ConsultedNames(ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = domain.HumanizeID(id)
	}
	return strings.Join(names, ", ")
}

// FormatContext renders student facts one per line, sorted by key.
func FormatContext(student domain.StudentContext) string {
	if len(student) == 0 {
		return "No student context set. Use /set key=value."
	}
	keys := make([]string, 0, len(student))
	for k := range student {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, "Student context:")
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s = %v", k, student[k]))
	}
	return strings.Join(lines, "\n")
}
