package services

import (
	"fmt"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// redirectMessage is shown when the scope filter blocks a query.
func redirectMessage(verdict domain.ScopeVerdict) string {
	topic := verdict.Reason
	if topic == "" {
		topic = "that topic"
	}
	return fmt.Sprintf(`I'm here to help with your UC/CSU transfer journey, but I can't help with %s.

I can help you with:
- **Financial Aid** - FAFSA, Cal Grant, scholarships, cost planning
- **Career Counseling** - Choosing a major, career paths, job prospects
- **Academic Planning** - Course load, difficult classes, study strategies

What would you like to know about transferring?`, topic)
}

// coordinatorOverview is the menu answer for queries no specialist claims.
func coordinatorOverview(query string) string {
	return fmt.Sprintf(`I'm here to help you with your UC/CSU transfer journey!

For your question about: "%s"

I can connect you with our specialized counselors:
- **Financial Aid Specialist** - FAFSA, scholarships, cost planning
- **Career Counselor** - Major selection, career paths, job prospects
- **Academic Advisor** - Course planning, difficulty management, study strategies

What specific aspect would you like to explore further?`, query)
}

// apologyMessage stands in for a specialist that failed to answer.
func apologyMessage(title string) string {
	return fmt.Sprintf("Our %s couldn't answer this part of your question right now. "+
		"Please try asking again, or rephrase the question.", title)
}
