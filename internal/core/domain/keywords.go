package domain

import (
	"fmt"
	"strings"
)

// KeywordSet is a list of lower-case substrings matched against a query.
type KeywordSet []string

// Match returns the first keyword contained in the lower-cased query.
func (k KeywordSet) Match(lowerQuery string) (string, bool) {
	for _, kw := range k {
		if strings.Contains(lowerQuery, kw) {
			return kw, true
		}
	}
	return "", false
}

// DisallowedRule blocks queries about a topic unrelated to transfer guidance.
type DisallowedRule struct {
	// Name identifies the rule (e.g., "medical").
	Name string

	// Description is shown to the student in the redirect message.
	Description string

	// Keywords trigger the rule.
	Keywords KeywordSet
}

// TopicRule assigns a category to queries containing any of its keywords.
type TopicRule struct {
	Category TopicCategory
	Keywords KeywordSet
}

// SpecialistRule selects a specialist for a query.
type SpecialistRule struct {
	// ID is the specialist registry key.
	ID string

	// Category is the topic this specialist is the default for.
	// Empty if the specialist is only selected by keyword.
	Category TopicCategory

	// Keywords select the specialist regardless of the assigned category.
	Keywords KeywordSet
}

// KeywordTable is the complete, declarative matching policy.
// Rule order is significant: disallowed rules are checked first, topics
// are matched first-wins, and specialists are selected in table order.
type KeywordTable struct {
	Disallowed  []DisallowedRule
	Topics      []TopicRule
	Specialists []SpecialistRule
}

// DefaultKeywordTable returns the built-in matching policy.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		Disallowed: []DisallowedRule{
			{
				Name:        "academic_dishonesty",
				Description: "completing assignments or exams on a student's behalf",
				Keywords:    KeywordSet{"write my essay", "do my homework", "take my exam", "cheat on"},
			},
			{
				Name:        "medical",
				Description: "medical or health advice",
				Keywords:    KeywordSet{"medical advice", "diagnose my", "diagnose me", "prescribe me", "my symptoms"},
			},
			{
				Name:        "legal",
				Description: "legal advice",
				Keywords:    KeywordSet{"legal advice", "sue my", "file a lawsuit", "need a lawyer"},
			},
			{
				Name:        "speculation",
				Description: "investing, gambling or cryptocurrency",
				Keywords:    KeywordSet{"stock tip", "cryptocurrency", "bitcoin", "gambling", "betting", "lottery"},
			},
			{
				Name:        "entertainment",
				Description: "entertainment and pop culture",
				Keywords:    KeywordSet{
					"video game", "movie recommendation", "recommend a movie", "celebrity gossip",
					"cooking recipe", "sports score",
				},
			},
			{
				Name:        "relationships",
				Description: "dating and relationships",
				Keywords:    KeywordSet{"dating advice", "dating app", "my girlfriend", "my boyfriend"},
			},
		},
		Topics: []TopicRule{
			{
				Category: CategoryFinancialAid,
				Keywords: KeywordSet{
					"financial aid", "fafsa", "scholarship", "grant", "tuition", "loan",
					"cost", "afford", "work-study", "pell", "dream act",
				},
			},
			{
				Category: CategoryCareer,
				Keywords: KeywordSet{
					"career", "major", "job", "internship", "salary", "profession",
					"resume", "employment", "networking",
				},
			},
			{
				Category: CategoryAcademic,
				Keywords: KeywordSet{
					"course", "class", "gpa", "study", "prerequisite", "units",
					"grade", "academic", "exam", "professor", "igetc",
				},
			},
		},
		Specialists: []SpecialistRule{
			{
				ID:       SpecialistFinancialAid,
				Category: CategoryFinancialAid,
				Keywords: KeywordSet{"financial", "cost", "tuition", "scholarship", "grant", "fafsa", "loan"},
			},
			{
				ID:       SpecialistCareerCounselor,
				Category: CategoryCareer,
				Keywords: KeywordSet{"career", "major", "job", "profession", "salary", "internship"},
			},
			{
				ID:       SpecialistCourseDifficulty,
				Category: CategoryAcademic,
				Keywords: KeywordSet{"course", "class", "difficult", "study", "grade", "academic"},
			},
		},
	}
}

// SpecialistIDs returns the specialist ids in table order.
func (t KeywordTable) SpecialistIDs() []string {
	ids := make([]string, len(t.Specialists))
	for i, rule := range t.Specialists {
		ids[i] = rule.ID
	}
	return ids
}

// Clone returns a deep copy so overrides never alias the defaults.
func (t KeywordTable) Clone() KeywordTable {
	out := KeywordTable{
		Disallowed:  make([]DisallowedRule, len(t.Disallowed)),
		Topics:      make([]TopicRule, len(t.Topics)),
		Specialists: make([]SpecialistRule, len(t.Specialists)),
	}
	for i, r := range t.Disallowed {
		r.Keywords = append(KeywordSet(nil), r.Keywords...)
		out.Disallowed[i] = r
	}
	for i, r := range t.Topics {
		r.Keywords = append(KeywordSet(nil), r.Keywords...)
		out.Topics[i] = r
	}
	for i, r := range t.Specialists {
		r.Keywords = append(KeywordSet(nil), r.Keywords...)
		out.Specialists[i] = r
	}
	return out
}

// WithSpecialistKeywords returns a copy with one specialist's keywords replaced.
func (t KeywordTable) WithSpecialistKeywords(id string, keywords []string) (KeywordTable, error) {
	kws, err := NormalizeKeywords(keywords)
	if err != nil {
		return t, fmt.Errorf("specialist %q: %w", id, err)
	}
	out := t.Clone()
	for i := range out.Specialists {
		if out.Specialists[i].ID == id {
			out.Specialists[i].Keywords = kws
			return out, nil
		}
	}
	return t, fmt.Errorf("unknown specialist %q: %w", id, ErrInvalidInput)
}

// WithTopicKeywords returns a copy with one category's scope keywords replaced.
func (t KeywordTable) WithTopicKeywords(category TopicCategory, keywords []string) (KeywordTable, error) {
	kws, err := NormalizeKeywords(keywords)
	if err != nil {
		return t, fmt.Errorf("category %q: %w", category, err)
	}
	out := t.Clone()
	for i := range out.Topics {
		if out.Topics[i].Category == category {
			out.Topics[i].Keywords = kws
			return out, nil
		}
	}
	return t, fmt.Errorf("unknown category %q: %w", category, ErrInvalidInput)
}

// WithDisallowed returns a copy with a disallowed rule added or replaced.
// A new rule is appended after the existing ones.
func (t KeywordTable) WithDisallowed(name string, keywords []string) (KeywordTable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return t, fmt.Errorf("disallowed rule name is empty: %w", ErrInvalidInput)
	}
	kws, err := NormalizeKeywords(keywords)
	if err != nil {
		return t, fmt.Errorf("disallowed %q: %w", name, err)
	}
	out := t.Clone()
	for i := range out.Disallowed {
		if out.Disallowed[i].Name == name {
			out.Disallowed[i].Keywords = kws
			return out, nil
		}
	}
	out.Disallowed = append(out.Disallowed, DisallowedRule{
		Name:        name,
		Description: strings.ToLower(HumanizeID(name)),
		Keywords:    kws,
	})
	return out, nil
}

// Validate checks the table for empty keyword sets, duplicate ids and
// categories that cannot carry scope keywords.
func (t KeywordTable) Validate() error {
	seen := make(map[string]bool)
	for _, r := range t.Disallowed {
		if r.Name == "" || len(r.Keywords) == 0 {
			return fmt.Errorf("disallowed rule %q has no keywords: %w", r.Name, ErrInvalidInput)
		}
		if seen["d:"+r.Name] {
			return fmt.Errorf("duplicate disallowed rule %q: %w", r.Name, ErrInvalidInput)
		}
		seen["d:"+r.Name] = true
	}
	for _, r := range t.Topics {
		if !r.Category.IsTopic() {
			return fmt.Errorf("category %q cannot carry keywords: %w", r.Category, ErrInvalidInput)
		}
		if len(r.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords: %w", r.Category, ErrInvalidInput)
		}
		if seen["t:"+string(r.Category)] {
			return fmt.Errorf("duplicate category %q: %w", r.Category, ErrInvalidInput)
		}
		seen["t:"+string(r.Category)] = true
	}
	for _, r := range t.Specialists {
		if r.ID == "" || len(r.Keywords) == 0 {
			return fmt.Errorf("specialist %q has no keywords: %w", r.ID, ErrInvalidInput)
		}
		if r.Category != "" && !r.Category.IsTopic() {
			return fmt.Errorf("specialist %q has invalid category %q: %w", r.ID, r.Category, ErrInvalidInput)
		}
		if seen["s:"+r.ID] {
			return fmt.Errorf("duplicate specialist %q: %w", r.ID, ErrInvalidInput)
		}
		seen["s:"+r.ID] = true
	}
	return nil
}

// NormalizeKeywords lower-cases and trims keywords, dropping blanks and duplicates.
// Returns ErrInvalidInput if nothing remains.
func NormalizeKeywords(keywords []string) (KeywordSet, error) {
	out := make(KeywordSet, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no keywords: %w", ErrInvalidInput)
	}
	return out, nil
}
