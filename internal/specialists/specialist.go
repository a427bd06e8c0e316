// Package specialists provides the template engine shared by the built-in
// specialists. Each specialist package declares its topics and the data its
// templates read; this package picks the topic for a query and renders it.
package specialists

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
)

// Topic is one sub-topic a specialist can answer.
type Topic struct {
	// Name is the template name within the specialist (e.g., "fafsa").
	Name string

	// Keywords select the topic. Matched case-insensitively as substrings.
	Keywords domain.KeywordSet
}

// DataFunc builds specialist-specific template data from the student context.
// It must only read student.
type DataFunc func(student domain.StudentContext) map[string]any

// Definition describes a specialist.
type Definition struct {
	Info domain.SpecialistInfo

	// Topics are tried in order; the first with a matching keyword wins.
	Topics []Topic

	// Fallback is the topic answered when no keyword matches.
	Fallback string

	// Data adds fields to the template data. May be nil.
	Data DataFunc
}

// Ensure Specialist implements the interfaces.
var (
	_ driven.Specialist = (*Specialist)(nil)
	_ driven.Describer  = (*Specialist)(nil)
)

// Specialist answers queries by rendering markdown templates.
type Specialist struct {
	def    Definition
	source driven.TemplateSource
	now    func() time.Time
}

// New creates a template-backed specialist.
func New(def Definition, source driven.TemplateSource) *Specialist {
	return &Specialist{
		def:    def,
		source: source,
		now:    time.Now,
	}
}

// SetClock replaces the clock used for deadline years.
func (s *Specialist) SetClock(now func() time.Time) {
	s.now = now
}

// Info describes the specialist.
func (s *Specialist) Info() domain.SpecialistInfo {
	return s.def.Info
}

// Topic returns the topic a query is answered with.
func (s *Specialist) Topic(query string) string {
	lower := strings.ToLower(query)
	for _, t := range s.def.Topics {
		if _, ok := t.Keywords.Match(lower); ok {
			return t.Name
		}
	}
	return s.def.Fallback
}

// Answer renders the template for the query's topic.
func (s *Specialist) Answer(ctx context.Context, query string, student domain.StudentContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.def.Info.ID + "/" + s.Topic(query)
	text, err := s.source.Template(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template %q: %w", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, s.data(query, student)); err != nil {
		return "", fmt.Errorf("render template %q: %w", name, err)
	}
	return strings.TrimSpace(b.String()), nil
}

func (s *Specialist) data(query string, student domain.StudentContext) map[string]any {
	year := s.now().Year()
	data := map[string]any{
		"Query":     query,
		"Year":      year,
		"NextYear":  year + 1,
		"YearAfter": year + 2,
		"LastYear":  year - 1,
	}
	if s.def.Data != nil {
		for k, v := range s.def.Data(student) {
			data[k] = v
		}
	}
	return data
}

var funcs = template.FuncMap{
	"join": strings.Join,
}
