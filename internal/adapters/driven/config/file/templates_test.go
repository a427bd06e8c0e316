package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/specialists/templates"
)

func testDefaults() fstest.MapFS {
	return fstest.MapFS{
		"financial_aid/fafsa.md":    {Data: []byte("default fafsa")},
		"financial_aid/general.md":  {Data: []byte("default general")},
		"career_counselor/major.md": {Data: []byte("default major")},
	}
}

func TestNewTemplateStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	store, err := NewTemplateStore("", testDefaults())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".counsel", "templates"), store.Dir())
}

func TestTemplateStore_ConstructorDoesNoIO(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	_, err := NewTemplateStore(dir, testDefaults())

	require.NoError(t, err)
	assert.NoDirExists(t, dir)
}

func TestTemplateStore_CreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTemplateStore(dir, testDefaults())
	require.NoError(t, err)

	text, err := store.Template("financial_aid/fafsa")

	require.NoError(t, err)
	assert.Equal(t, "default fafsa", text)
	assert.NoError(t, store.Err())
	for _, f := range []string{"financial_aid/fafsa.md", "financial_aid/general.md", "career_counselor/major.md", "README.md"} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(f)))
	}
}

func TestTemplateStore_InitCreatesDirectoryBeforeFirstRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	store, err := NewTemplateStore(dir, testDefaults())
	require.NoError(t, err)

	require.NoError(t, store.Init())

	assert.DirExists(t, filepath.Join(dir, "financial_aid"))
	assert.FileExists(t, filepath.Join(dir, "career_counselor", "major.md"))
	assert.Equal(t, []string{filepath.Dir(dir), dir, filepath.Join(dir, "career_counselor"), filepath.Join(dir, "financial_aid")},
		watchDirs(filepath.Dir(dir), dir))
	assert.NoError(t, store.Init())
}

func TestTemplateStore_CustomFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "financial_aid"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "financial_aid", "fafsa.md"), []byte("custom fafsa"), 0600))

	store, err := NewTemplateStore(dir, testDefaults())
	require.NoError(t, err)

	text, err := store.Template("financial_aid/fafsa")
	require.NoError(t, err)
	assert.Equal(t, "custom fafsa", text)

	// The custom file is not overwritten by initialisation.
	data, err := os.ReadFile(filepath.Join(dir, "financial_aid", "fafsa.md"))
	require.NoError(t, err)
	assert.Equal(t, "custom fafsa", string(data))
}

func TestTemplateStore_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTemplateStore(dir, testDefaults())
	require.NoError(t, err)
	_, err = store.Template("financial_aid/fafsa")
	require.NoError(t, err)

	t.Run("deleted file", func(t *testing.T) {
		require.NoError(t, os.Remove(filepath.Join(dir, "financial_aid", "general.md")))
		text, err := store.Template("financial_aid/general")
		require.NoError(t, err)
		assert.Equal(t, "default general", text)
	})

	t.Run("blank file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "career_counselor", "major.md"), []byte("  \n"), 0600))
		text, err := store.Template("career_counselor/major")
		require.NoError(t, err)
		assert.Equal(t, "default major", text)
	})
}

func TestTemplateStore_UnknownTemplate(t *testing.T) {
	store, err := NewTemplateStore(t.TempDir(), testDefaults())
	require.NoError(t, err)

	_, err = store.Template("financial_aid/housing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateStore_RejectsEscapingNames(t *testing.T) {
	store, err := NewTemplateStore(t.TempDir(), testDefaults())
	require.NoError(t, err)

	for _, name := range []string{"", "../secrets", "/etc/passwd", "financial_aid/../../x", `financial_aid\fafsa`} {
		_, err := store.Template(name)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestTemplateStore_CachesUntilReload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTemplateStore(dir, testDefaults())
	require.NoError(t, err)

	text, err := store.Template("financial_aid/fafsa")
	require.NoError(t, err)
	assert.Equal(t, "default fafsa", text)

	path := filepath.Join(dir, "financial_aid", "fafsa.md")
	require.NoError(t, os.WriteFile(path, []byte("edited"), 0600))

	text, err = store.Template("financial_aid/fafsa")
	require.NoError(t, err)
	assert.Equal(t, "default fafsa", text, "cached value expected before Reload")

	store.Reload()

	text, err = store.Template("financial_aid/fafsa")
	require.NoError(t, err)
	assert.Equal(t, "edited", text)
}

func TestTemplateStore_InitFailureServesDefaults(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	store, err := NewTemplateStore(filepath.Join(blocker, "templates"), testDefaults())
	require.NoError(t, err)

	text, err := store.Template("financial_aid/fafsa")

	require.NoError(t, err)
	assert.Equal(t, "default fafsa", text)
	assert.Error(t, store.Err())
}

func TestTemplateStore_ConcurrentAccess(t *testing.T) {
	store, err := NewTemplateStore(t.TempDir(), testDefaults())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, err := store.Template("financial_aid/fafsa")
			assert.NoError(t, err)
			assert.Equal(t, "default fafsa", text)
		}()
	}
	wg.Wait()
}

func TestTemplateStore_BuiltInTemplates(t *testing.T) {
	store, err := NewTemplateStore(t.TempDir(), templates.FS)
	require.NoError(t, err)

	text, err := store.Template("course_difficulty/gpa")

	require.NoError(t, err)
	assert.Contains(t, text, "GPA Planning for Transfer")
}
