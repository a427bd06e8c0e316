package services

import (
	"strings"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

const (
	synthesisHeader = "Here's comprehensive guidance for your question:\n\n"
	synthesisFooter = "---\n*This comprehensive answer combines insights from our specialized transfer counseling team.*"
)

// defaultSectionTitles label each specialist's section in a composite answer.
var defaultSectionTitles = map[string]string{
	domain.SpecialistFinancialAid:     "Financial Aid Perspective",
	domain.SpecialistCareerCounselor:  "Career Guidance",
	domain.SpecialistCourseDifficulty: "Academic Planning",
}

// Synthesizer merges several specialists' answers into one labelled reply.
// Answers are kept verbatim and in input order; nothing is summarised or cut.
type Synthesizer struct {
	titles map[string]string
}

// NewSynthesizer creates a synthesizer with the built-in section titles.
func NewSynthesizer() *Synthesizer {
	titles := make(map[string]string, len(defaultSectionTitles))
	for id, title := range defaultSectionTitles {
		titles[id] = title
	}
	return &Synthesizer{titles: titles}
}

// SetTitle overrides the section title for a specialist.
func (s *Synthesizer) SetTitle(id, title string) {
	s.titles[id] = title
}

// Title returns the section title for a specialist.
// Unknown ids fall back to the humanised id followed by "Advice".
func (s *Synthesizer) Title(id string) string {
	if title, ok := s.titles[id]; ok {
		return title
	}
	return domain.HumanizeID(id) + " Advice"
}

// Synthesize composes answers into a single text.
// Input is treated as an ordered mapping: a repeated id keeps its first
// position and takes the later text. Empty input yields header and footer only.
func (s *Synthesizer) Synthesize(answers []domain.SpecialistAnswer) string {
	answers = collapseAnswers(answers)

	var b strings.Builder
	b.WriteString(synthesisHeader)
	for _, a := range answers {
		b.WriteString("**")
		b.WriteString(s.Title(a.SpecialistID))
		b.WriteString(":**\n")
		b.WriteString(a.Text)
		b.WriteString("\n\n")
	}
	b.WriteString(synthesisFooter)
	return b.String()
}

func collapseAnswers(answers []domain.SpecialistAnswer) []domain.SpecialistAnswer {
	index := make(map[string]int, len(answers))
	out := make([]domain.SpecialistAnswer, 0, len(answers))
	for _, a := range answers {
		if i, seen := index[a.SpecialistID]; seen {
			out[i].Text = a.Text
			continue
		}
		index[a.SpecialistID] = len(out)
		out = append(out, a)
	}
	return out
}
