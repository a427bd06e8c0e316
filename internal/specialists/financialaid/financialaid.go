// Package financialaid implements the financial aid specialist: FAFSA,
// Cal Grant, costs, scholarships and deadlines for UC/CSU transfers.
package financialaid

import (
	"strings"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/counsel-cli/internal/specialists"
)

// Topics in match order.
var topics = []specialists.Topic{
	{Name: "fafsa", Keywords: domain.KeywordSet{"fafsa", "federal aid"}},
	{Name: "cal_grant", Keywords: domain.KeywordSet{"cal grant", "california grant"}},
	{Name: "cost", Keywords: domain.KeywordSet{"cost", "tuition", "expensive", "afford"}},
	{Name: "scholarship", Keywords: domain.KeywordSet{"scholarship", "merit"}},
	{Name: "deadline", Keywords: domain.KeywordSet{"deadline", "when", "timeline"}},
}

// costs are annual figures for one system, in dollars.
type costs struct {
	ResidentTuition    int
	NonResidentTuition int
	Housing            int
	Books              int
}

var (
	ucCosts  = costs{ResidentTuition: 14436, NonResidentTuition: 44196, Housing: 15000, Books: 1200}
	csuCosts = costs{ResidentTuition: 5982, NonResidentTuition: 17622, Housing: 12000, Books: 1000}
)

// CostSheet is the formatted cost breakdown templates render.
type CostSheet struct {
	Tuition string
	Housing string
	Books   string
	Total   string
}

func (c costs) sheet(resident bool) CostSheet {
	tuition := c.ResidentTuition
	if !resident {
		tuition = c.NonResidentTuition
	}
	return CostSheet{
		Tuition: specialists.Dollars(tuition),
		Housing: specialists.Dollars(c.Housing),
		Books:   specialists.Dollars(c.Books),
		Total:   specialists.Dollars(tuition + c.Housing + c.Books),
	}
}

// New creates the financial aid specialist.
func New(source driven.TemplateSource) *specialists.Specialist {
	return specialists.New(specialists.Definition{
		Info: domain.SpecialistInfo{
			ID:          domain.SpecialistFinancialAid,
			Title:       "Financial Aid Specialist",
			Description: "FAFSA, Cal Grant, scholarships, cost planning",
		},
		Topics:   topics,
		Fallback: "general",
		Data:     data,
	}, source)
}

func data(student domain.StudentContext) map[string]any {
	resident, known := Residency(student)
	label := "California Resident"
	if known && !resident {
		label = "Non-Resident"
	}
	return map[string]any{
		"Resident":       resident,
		"ResidencyKnown": known,
		"Residency":      label,
		"UC":             ucCosts.sheet(resident),
		"CSU":            csuCosts.sheet(resident),
	}
}

// Residency interprets the student's residency fact.
// Unknown residency is reported as resident, with known=false.
func Residency(student domain.StudentContext) (resident, known bool) {
	v := strings.ToLower(specialists.Text(student, domain.ContextResidency))
	switch {
	case v == "":
		return true, false
	case v == "no", v == "false",
		strings.Contains(v, "non"), strings.Contains(v, "out of state"),
		strings.Contains(v, "out-of-state"), strings.Contains(v, "international"):
		return false, true
	default:
		return true, true
	}
}
