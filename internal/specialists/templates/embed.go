// Package templates embeds the built-in answer templates of the specialists.
//
// Templates are text/template markdown files named <specialist_id>/<topic>.md.
// The config directory can shadow any of them (see config/file.TemplateStore).
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
)

// FS contains all built-in templates embedded at compile time.
//
//go:embed financial_aid career_counselor course_difficulty
var FS embed.FS

// Ext is the file extension of template files.
const Ext = ".md"

// Ensure Embedded implements the interface.
var _ driven.TemplateSource = Embedded{}

// Embedded serves templates straight from FS.
type Embedded struct{}

// Template returns the built-in template for name.
func (Embedded) Template(name string) (string, error) {
	data, err := fs.ReadFile(FS, name+Ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("template %q: %w", name, domain.ErrNotFound)
		}
		return "", fmt.Errorf("template %q: %w", name, err)
	}
	return string(data), nil
}
