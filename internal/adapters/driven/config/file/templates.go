package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
)

// templateExt is the file extension of answer templates.
const templateExt = ".md"

// Ensure TemplateStore implements the interface.
var _ driven.TemplateSource = (*TemplateStore)(nil)

// TemplateStore loads specialist answer templates from user-editable files,
// falling back to the built-in defaults.
//
// The store uses lazy initialisation - the directory and default files are only
// created when a template is first requested, not in the constructor.
type TemplateStore struct {
	mu       sync.RWMutex
	dir      string
	defaults fs.FS
	cache    map[string]string
	initOnce sync.Once
	initErr  error
}

// NewTemplateStore creates a file-based template store over defaults.
// If dir is empty, defaults to ~/.counsel/templates/.
func NewTemplateStore(dir string, defaults fs.FS) (*TemplateStore, error) {
	if dir == "" {
		configDir, err := ResolveDir("")
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(configDir, "templates")
	}

	return &TemplateStore{
		dir:      dir,
		defaults: defaults,
		cache:    make(map[string]string),
	}, nil
}

// Template returns the template for name ("<specialist_id>/<topic>").
// A file in the template directory wins over the built-in default.
func (s *TemplateStore) Template(name string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("template %q: %w", name, domain.ErrInvalidInput)
	}

	// Ensure directory and defaults exist (lazy init)
	if s.Init() != nil {
		return s.defaultTemplate(name)
	}

	s.mu.RLock()
	if text, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return text, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	text, err := s.loadFromFile(name)
	if err != nil {
		return s.defaultTemplate(name)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		text = cached
	} else {
		s.cache[name] = text
	}
	s.mu.Unlock()

	return text, nil
}

// Init creates the template directory and copies in missing defaults.
// Template does this on first use; call Init earlier when something must
// see the directory before any template is read, such as a file watcher.
func (s *TemplateStore) Init() error {
	s.initOnce.Do(s.initialise)
	return s.initErr
}

// Reload clears the cache, forcing fresh loads from disk.
func (s *TemplateStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the template directory path.
func (s *TemplateStore) Dir() string {
	return s.dir
}

// Err returns the error from initialising the template directory, if any.
// Templates are still served from the defaults when it is non-nil.
func (s *TemplateStore) Err() error {
	return s.initErr
}

// initialise copies missing default templates into the directory.
// Called once via sync.Once from Init.
func (s *TemplateStore) initialise() {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.initErr = fmt.Errorf("create template directory: %w", err)
		return
	}

	err := fs.WalkDir(s.defaults, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(s.dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0700)
		}
		if !strings.HasSuffix(p, templateExt) {
			return nil
		}
		if _, err := os.Stat(target); !errors.Is(err, fs.ErrNotExist) {
			return nil // Already exists or stat error (ignore)
		}
		content, err := fs.ReadFile(s.defaults, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, content, 0600)
	})
	if err != nil {
		s.initErr = fmt.Errorf("write default templates: %w", err)
		return
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

func (s *TemplateStore) defaultTemplate(name string) (string, error) {
	data, err := fs.ReadFile(s.defaults, name+templateExt)
	if err != nil {
		return "", fmt.Errorf("template %q: %w", name, domain.ErrNotFound)
	}
	return string(data), nil
}

// loadFromFile reads a template from disk.
func (s *TemplateStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(name)+templateExt))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("template %q is empty", name)
	}
	return string(data), nil
}

// createReadme writes a README file explaining the templates directory.
func (s *TemplateStore) createReadme() error {
	p := filepath.Join(s.dir, "README.md")
	if _, err := os.Stat(p); !errors.Is(err, fs.ErrNotExist) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Counsel Answer Templates

Each directory holds the answers of one specialist:

- ` + "`financial_aid/`" + ` - FAFSA, Cal Grant, costs, scholarships, deadlines
- ` + "`career_counselor/`" + ` - majors, salaries, career paths, experience
- ` + "`course_difficulty/`" + ` - difficult courses, study strategies, course load, GPA

## Customisation

Edit any file to change what a specialist says. Delete a file to restore the
built-in answer. ` + "`counsel mcp serve`" + ` picks up changes without a restart.

## Format

Templates use Go text/template syntax. Available fields include
` + "`{{.Query}}`" + `, ` + "`{{.Year}}`" + `, ` + "`{{.NextYear}}`" + ` and specialist-specific
values such as ` + "`{{.Residency}}`" + `, ` + "`{{.Major}}`" + ` or ` + "`{{.GPA}}`" + `.
`
	return os.WriteFile(p, []byte(content), 0600)
}

// validName rejects names that would escape the template directory.
func validName(name string) bool {
	if name == "" || strings.Contains(name, "\\") {
		return false
	}
	clean := path.Clean(name)
	return clean == name && !path.IsAbs(clean) && !strings.HasPrefix(clean, "..")
}
