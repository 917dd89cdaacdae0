package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile_Txt(t *testing.T) {
	path := writeTemp(t, "notes.txt", "First paragraph.\n\n\n\nSecond   paragraph with   spaces.")

	res, err := File(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", res.Filename)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph with spaces.", res.Text)
	require.NotEmpty(t, res.Chunks)
}

func TestFile_ChunkSizeHonored(t *testing.T) {
	path := writeTemp(t, "long.txt", strings.Repeat("word ", 200))

	res, err := File(path, 100)
	require.NoError(t, err)
	assert.Greater(t, len(res.Chunks), 1)
	for _, c := range res.Chunks {
		assert.LessOrEqual(t, len([]rune(c)), 100)
	}
}

func TestFile_InvalidUTF8Dropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.txt")
	require.NoError(t, os.WriteFile(path, []byte("ok \xff\xfe text"), 0o644))

	res, err := File(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "ok text", res.Text)
}

func TestFile_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "doc.docx", "content")
	_, err := File(path, 0)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestFile_EmptyDocument(t *testing.T) {
	path := writeTemp(t, "empty.txt", "   \n\n  ")
	_, err := File(path, 0)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.txt"), 0)
	assert.Error(t, err)
}
