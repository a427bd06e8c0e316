// Package academic implements the course difficulty specialist: hard
// courses, study strategies, course load, prerequisites, time management
// and GPA planning.
package academic

import (
	"fmt"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/counsel-cli/internal/specialists"
)

// Topics in match order.
var topics = []specialists.Topic{
	{Name: "difficulty", Keywords: domain.KeywordSet{"difficult", "hard", "struggling", "failing"}},
	{Name: "study", Keywords: domain.KeywordSet{"study", "how to", "strategies", "tips"}},
	{Name: "load", Keywords: domain.KeywordSet{"course load", "units", "how many classes"}},
	{Name: "prerequisites", Keywords: domain.KeywordSet{"prerequisite", "requirements", "sequence"}},
	{Name: "time", Keywords: domain.KeywordSet{"time management", "balance", "schedule"}},
	{Name: "gpa", Keywords: domain.KeywordSet{"gpa", "grades", "academic probation"}},
}

// New creates the course difficulty specialist.
func New(source driven.TemplateSource) *specialists.Specialist {
	return specialists.New(specialists.Definition{
		Info: domain.SpecialistInfo{
			ID:          domain.SpecialistCourseDifficulty,
			Title:       "Academic Advisor",
			Description: "Course planning, difficulty management, study strategies",
		},
		Topics:   topics,
		Fallback: "general",
		Data:     data,
	}, source)
}

func data(student domain.StudentContext) map[string]any {
	d := map[string]any{
		"GPAKnown":       false,
		"GPA":            "",
		"GPAStanding":    "",
		"WorkHoursKnown": false,
		"WorkHours":      0,
	}

	if gpa, ok := specialists.Float(student, domain.ContextGPA); ok {
		d["GPAKnown"] = true
		d["GPA"] = fmt.Sprintf("%.2f", gpa)
		d["GPAStanding"] = Standing(gpa)
	}

	hours, ok := specialists.Int(student, domain.ContextWorkHours)
	d["WorkHoursKnown"] = ok
	d["WorkHours"] = hours
	d["RecommendedUnits"] = RecommendedUnits(hours)

	return d
}

// Standing describes a transfer GPA against UC/CSU thresholds.
func Standing(gpa float64) string {
	switch {
	case gpa >= 3.5:
		return "you are competitive for most UC majors, including many impacted ones"
	case gpa >= 3.0:
		return "you meet the typical UC transfer range; impacted majors may expect more"
	case gpa >= 2.4:
		return "you meet the UC minimum for residents, but many majors admit higher"
	case gpa >= 2.0:
		return "you meet the CSU minimum; raising it would open UC options"
	default:
		return "you are below the CSU minimum of 2.0, so focus on raising it first"
	}
}

// RecommendedUnits suggests a sustainable unit range for weekly work hours.
func RecommendedUnits(workHours int) string {
	switch {
	case workHours >= 30:
		return "6-9"
	case workHours >= 20:
		return "9-12"
	default:
		return "12-15"
	}
}
