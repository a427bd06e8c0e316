package domain

const unknownDescription = "Unknown"

// TopicCategory is the coarse bucket the scope filter assigns to a query.
type TopicCategory string

// Available topic categories.
const (
	// CategoryFinancialAid covers FAFSA, grants, scholarships and cost planning.
	CategoryFinancialAid TopicCategory = "financial_aid"

	// CategoryCareer covers majors, career paths and job prospects.
	CategoryCareer TopicCategory = "career"

	// CategoryAcademic covers course planning, difficulty and study strategies.
	CategoryAcademic TopicCategory = "academic"

	// CategoryGeneral is assigned to allowed queries that match no topic.
	CategoryGeneral TopicCategory = "general"

	// CategoryOutOfScope is assigned to blocked queries.
	CategoryOutOfScope TopicCategory = "out_of_scope"
)

// AllCategories returns every category in classification order.
func AllCategories() []TopicCategory {
	return []TopicCategory{
		CategoryFinancialAid,
		CategoryCareer,
		CategoryAcademic,
		CategoryGeneral,
		CategoryOutOfScope,
	}
}

// IsValid returns true if the category is recognised.
func (c TopicCategory) IsValid() bool {
	switch c {
	case CategoryFinancialAid, CategoryCareer, CategoryAcademic, CategoryGeneral, CategoryOutOfScope:
		return true
	default:
		return false
	}
}

// IsTopic returns true for categories that carry their own scope keywords.
func (c TopicCategory) IsTopic() bool {
	return c == CategoryFinancialAid || c == CategoryCareer || c == CategoryAcademic
}

// String returns the string representation.
func (c TopicCategory) String() string {
	return string(c)
}

// Description returns a human-readable description of the category.
func (c TopicCategory) Description() string {
	switch c {
	case CategoryFinancialAid:
		return "Financial Aid"
	case CategoryCareer:
		return "Career Counseling"
	case CategoryAcademic:
		return "Academic Planning"
	case CategoryGeneral:
		return "General Transfer Guidance"
	case CategoryOutOfScope:
		return "Out of Scope"
	default:
		return unknownDescription
	}
}

// ScopeVerdict is the scope filter's decision for one query.
// It is produced fresh per query and never persisted.
type ScopeVerdict struct {
	// Allowed is false when the query touches a disallowed topic.
	Allowed bool

	// Category is the assigned topic, or CategoryOutOfScope when blocked.
	Category TopicCategory

	// Reason names the disallowed topic that blocked the query.
	// Empty for allowed queries.
	Reason string
}
