package templates

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

func TestEmbedded_Template(t *testing.T) {
	text, err := Embedded{}.Template("financial_aid/fafsa")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "**FAFSA Guidance"))
}

func TestEmbedded_Template_NotFound(t *testing.T) {
	_, err := Embedded{}.Template("financial_aid/housing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFS_EverySpecialistHasGeneral(t *testing.T) {
	for _, id := range domain.DefaultKeywordTable().SpecialistIDs() {
		_, err := fs.Stat(FS, id+"/general"+Ext)
		assert.NoError(t, err, id)
	}
}
