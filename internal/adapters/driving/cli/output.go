package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/components/markdown"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// rule separates answers in plain output.
var rule = strings.Repeat("=", 80)

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or markdown.DefaultWidth when unknown.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return markdown.DefaultWidth
}

// writeAnswer prints a routing result. A nil renderer prints the response as is.
func writeAnswer(w io.Writer, result domain.RoutingResult, renderer *markdown.Renderer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Response from: %s\n", result.AgentDisplayName())
	fmt.Fprintln(w, rule)

	if renderer != nil {
		fmt.Fprintln(w, renderer.Render(result.Response))
	} else {
		fmt.Fprintln(w, result.Response)
	}

	if len(result.AgentsConsulted) > 0 {
		fmt.Fprintf(w, "\nSpecialists consulted: %s\n", strings.Join(result.AgentsConsulted, ", "))
	}
}

// parseContextFlags turns key=value pairs into a student context.
func parseContextFlags(pairs []string) (domain.StudentContext, error) {
	student := domain.NewStudentContext()
	for _, pair := range pairs {
		key, value, err := domain.ParseAssignment(pair)
		if err != nil {
			return nil, fmt.Errorf("invalid --context %q: %w", pair, err)
		}
		student[key] = value
	}
	return student, nil
}
