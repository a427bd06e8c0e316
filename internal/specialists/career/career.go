// Package career implements the career counselor specialist: major
// selection, salaries, career paths, experience and UC vs CSU comparisons.
package career

import (
	"strings"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/counsel-cli/internal/specialists"
)

// Topics in match order.
var topics = []specialists.Topic{
	{Name: "major", Keywords: domain.KeywordSet{"major", "what should i study"}},
	{Name: "salary", Keywords: domain.KeywordSet{"salary", "pay", "money", "income"}},
	{Name: "paths", Keywords: domain.KeywordSet{"job", "career path", "employment"}},
	{Name: "experience", Keywords: domain.KeywordSet{"internship", "experience", "networking"}},
	{Name: "schools", Keywords: domain.KeywordSet{"uc vs csu", "which school"}},
}

// MajorProfile summarises outcomes for a popular transfer major.
type MajorProfile struct {
	Name        string
	UCPrograms  []string
	CSUPrograms []string
	CareerPaths []string
	AvgSalary   string
	JobGrowth   string
	GradSchool  string
}

var profiles = map[string]MajorProfile{
	"business": {
		Name:        "Business",
		UCPrograms:  []string{"UC Berkeley Haas", "UCLA", "UC Irvine"},
		CSUPrograms: []string{"SDSU", "Cal Poly SLO", "CSU Long Beach"},
		CareerPaths: []string{"Management", "Consulting", "Finance", "Marketing"},
		AvgSalary:   specialists.Dollars(65000),
		JobGrowth:   "stable",
	},
	"computer_science": {
		Name:        "Computer Science",
		UCPrograms:  []string{"UC Berkeley", "UCLA", "UC San Diego", "UC Irvine"},
		CSUPrograms: []string{"Cal Poly SLO", "SJSU", "SDSU"},
		CareerPaths: []string{"Software Engineer", "Data Scientist", "Product Manager"},
		AvgSalary:   specialists.Dollars(95000),
		JobGrowth:   "high",
	},
	"psychology": {
		Name:        "Psychology",
		UCPrograms:  []string{"UCLA", "UC Berkeley", "UC San Diego"},
		CSUPrograms: []string{"SDSU", "CSU Long Beach", "SF State"},
		CareerPaths: []string{"Counseling", "Research", "Human Resources"},
		AvgSalary:   specialists.Dollars(55000),
		JobGrowth:   "moderate",
		GradSchool:  "often required for clinical roles",
	},
	"engineering": {
		Name:        "Engineering",
		UCPrograms:  []string{"UC Berkeley", "UCLA", "UC San Diego", "UC Irvine"},
		CSUPrograms: []string{"Cal Poly SLO", "Cal Poly Pomona", "SJSU"},
		CareerPaths: []string{"Design Engineer", "Project Manager", "Research"},
		AvgSalary:   specialists.Dollars(85000),
		JobGrowth:   "high",
	},
}

// aliases map common spellings to profile keys.
var aliases = map[string]string{
	"cs":                      "computer_science",
	"comp sci":                "computer_science",
	"computer science":        "computer_science",
	"business administration": "business",
	"psych":                   "psychology",
}

// New creates the career counselor specialist.
func New(source driven.TemplateSource) *specialists.Specialist {
	return specialists.New(specialists.Definition{
		Info: domain.SpecialistInfo{
			ID:          domain.SpecialistCareerCounselor,
			Title:       "Career Counselor",
			Description: "Major selection, career paths, job prospects",
		},
		Topics:   topics,
		Fallback: "general",
		Data:     data,
	}, source)
}

func data(student domain.StudentContext) map[string]any {
	major := specialists.Text(student, domain.ContextMajor)
	var profile *MajorProfile
	if p, ok := Profile(major); ok {
		profile = &p
	}
	return map[string]any{
		"Major":   major,
		"Profile": profile,
	}
}

// Profile looks up outcomes for a major name as a student would type it.
func Profile(major string) (MajorProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(major))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	key = strings.ReplaceAll(key, " ", "_")
	p, ok := profiles[key]
	return p, ok
}
