package driven

// TemplateSource provides the markdown templates specialists answer with.
// Names are "<specialist_id>/<topic>", e.g. "financial_aid/fafsa".
type TemplateSource interface {
	// Template returns the raw template text for name.
	// Returns domain.ErrNotFound if no template has that name.
	Template(name string) (string, error)
}
