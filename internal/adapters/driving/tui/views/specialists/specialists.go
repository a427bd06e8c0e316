// Package specialists provides the view listing the counselor's specialists.
package specialists

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
)

// View lists registered specialists and what each one covers.
type View struct {
	styles  *styles.Styles
	catalog driving.SpecialistCatalog

	specialists []domain.SpecialistInfo
	selected    int
	width       int
	height      int
	ready       bool
	loading     bool
}

// NewView creates a new specialists view.
func NewView(s *styles.Styles, catalog driving.SpecialistCatalog) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		catalog: catalog,
		width:   80,
		height:  24,
	}
}

// Init loads the specialists from the catalog.
func (v *View) Init() tea.Cmd {
	v.loading = true
	catalog := v.catalog
	return func() tea.Msg {
		if catalog == nil {
			return messages.SpecialistsLoaded{}
		}
		return messages.SpecialistsLoaded{Specialists: catalog.Specialists()}
	}
}

// Update handles messages for the specialists view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SpecialistsLoaded:
		v.loading = false
		v.specialists = msg.Specialists
		if v.selected >= len(v.specialists) {
			v.selected = 0
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.specialists)-1 {
			v.selected++
		}
	case "enter":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewChat}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// View renders the specialists view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Specialists"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading specialists..."))
	case len(v.specialists) == 0:
		b.WriteString(v.styles.Muted.Render("No specialists registered."))
	default:
		for i := range v.specialists {
			b.WriteString(v.renderSpecialist(i, &v.specialists[i]))
			b.WriteString("\n")
		}
		if sel := v.Selected(); sel != nil && sel.Description != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.Normal.Width(max(v.width-4, 20)).Render(sel.Description))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("[j/k] navigate  [enter] ask a question  [esc] back"))

	return b.String()
}

// renderSpecialist renders a single specialist line.
func (v *View) renderSpecialist(index int, info *domain.SpecialistInfo) string {
	title := info.Title
	if title == "" {
		title = domain.HumanizeID(info.ID)
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("> %s", title)) +
			" " + v.styles.Muted.Render(fmt.Sprintf("(%s)", info.ID))
	}
	return v.styles.Normal.Render("  "+title) + " " + v.styles.Muted.Render(fmt.Sprintf("(%s)", info.ID))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Specialists returns the loaded specialists.
func (v *View) Specialists() []domain.SpecialistInfo {
	return v.specialists
}

// SelectedIndex returns the currently selected index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Selected returns the highlighted specialist, or nil when the list is empty.
func (v *View) Selected() *domain.SpecialistInfo {
	if v.selected < 0 || v.selected >= len(v.specialists) {
		return nil
	}
	return &v.specialists[v.selected]
}
