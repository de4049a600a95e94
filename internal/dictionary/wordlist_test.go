package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordFile(t *testing.T) {
	t.Run("Normalizes and filters lines", func(t *testing.T) {
		// Given: a word list with comments, blanks and junk
		path := filepath.Join(t.TempDir(), "words.txt")
		content := "# common words\ncat\n  Dog  \n\nit's\nQUIZ\nx1\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the file is read
		words, err := ReadWordFile(path)

		// Then: only alphabetic words remain, upper-cased
		require.NoError(t, err)
		assert.Equal(t, []string{"CAT", "DOG", "QUIZ"}, words)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ReadWordFile(filepath.Join(t.TempDir(), "missing.txt"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
