package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	doc := Default()
	assert.NotEmpty(t, doc)
	assert.Contains(t, doc, `\begin{enumerate}[label=(\Alph*)]`)
}

func TestLoad(t *testing.T) {
	t.Run("Empty path returns embedded default", func(t *testing.T) {
		doc, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), doc)
	})

	t.Run("Reads document from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.tex")
		require.NoError(t, os.WriteFile(path, []byte(`\item custom`), 0o600))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, `\item custom`, doc)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.tex"))
		assert.Error(t, err)
	})
}
