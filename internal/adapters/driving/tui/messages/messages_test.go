package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewChat, "chat"},
		{ViewSpecialists, "specialists"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestAnswerReceived_Fields(t *testing.T) {
	msg := AnswerReceived{
		Query:  "FAFSA?",
		Result: domain.RoutingResult{AgentUsed: domain.SpecialistFinancialAid, Status: domain.StatusSuccess},
	}

	assert.Equal(t, "FAFSA?", msg.Query)
	assert.Equal(t, "financial_aid", msg.Result.AgentUsed)
	assert.NoError(t, msg.Err)
}

func TestErrorOccurred_Fields(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}
	assert.Equal(t, err, msg.Err)
}
