package domain

import (
	"strings"
	"unicode"
)

// Well-known specialist identifiers.
const (
	// SpecialistFinancialAid handles FAFSA, Cal Grant, scholarships and costs.
	SpecialistFinancialAid = "financial_aid"

	// SpecialistCareerCounselor handles majors, careers and job prospects.
	SpecialistCareerCounselor = "career_counselor"

	// SpecialistCourseDifficulty handles course planning and study strategies.
	SpecialistCourseDifficulty = "course_difficulty"
)

// SpecialistInfo describes a registered specialist for listings.
type SpecialistInfo struct {
	// ID is the registry key (e.g., "financial_aid").
	ID string `json:"id"`

	// Title is the display name (e.g., "Financial Aid Specialist").
	Title string `json:"title"`

	// Description summarises the topics the specialist covers.
	Description string `json:"description"`
}

// HumanizeID turns a snake_case identifier into title-cased words.
// E.g., "career_counselor" becomes "Career Counselor".
func HumanizeID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// SpecialistAnswer is one specialist's contribution to a composite answer.
type SpecialistAnswer struct {
	// SpecialistID identifies who answered.
	SpecialistID string

	// Text is the full, unmodified response.
	Text string
}
