// Package markdown renders specialist answers for the terminal.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Renderer renders markdown with glamour, falling back to the raw text when
// glamour cannot initialise or render.
type Renderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// NewRenderer creates a renderer that wraps at width columns.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	r := &Renderer{width: width}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		r.renderer = tr
	}
	return r
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render returns content styled for the terminal.
func (r *Renderer) Render(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if r.renderer == nil {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
