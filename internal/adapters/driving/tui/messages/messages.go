// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// SessionStarted carries the session opened for the chat.
type SessionStarted struct {
	Session *domain.Session
	Err     error
}

// QuestionSubmitted is sent when the student submits a question.
type QuestionSubmitted struct {
	Query string
}

// AnswerReceived carries the counselor's answer back to the model.
type AnswerReceived struct {
	Query  string
	Result domain.RoutingResult
	Err    error
}

// ContextSet signals a student fact was stored for the session.
type ContextSet struct {
	Key   string
	Value any
	Err   error
}

// SpecialistsLoaded carries the registered specialists.
type SpecialistsLoaded struct {
	Specialists []domain.SpecialistInfo
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewChat is the question input and transcript view.
	ViewChat
	// ViewSpecialists lists the specialists the counselor can consult.
	ViewSpecialists
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewChat:
		return "chat"
	case ViewSpecialists:
		return "specialists"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
