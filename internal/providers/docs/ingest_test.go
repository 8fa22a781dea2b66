package docs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestor_FromFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	ing := NewIngestor(1 << 20)

	t.Run("plain text", func(t *testing.T) {
		path := writeFile(t, dir, "notes.txt", "The button is red.\n")
		doc, err := ing.FromFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", doc.Name)
		assert.Equal(t, "The button is red.", doc.Text)
	})

	t.Run("markdown stripped to text", func(t *testing.T) {
		path := writeFile(t, dir, "guide.md", "# Guide\n\nPress **enter** to send.")
		doc, err := ing.FromFile(ctx, path)
		require.NoError(t, err)
		assert.Contains(t, strings.ToLower(doc.Text), "press")
		assert.NotContains(t, doc.Text, "**")
		assert.NotContains(t, doc.Text, "#")
	})

	t.Run("html converted to text", func(t *testing.T) {
		path := writeFile(t, dir, "faq.html", "<html><body><p>Refunds take 30 days.</p></body></html>")
		doc, err := ing.FromFile(ctx, path)
		require.NoError(t, err)
		assert.Contains(t, doc.Text, "Refunds take 30 days.")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "image.png", "not really an image")
		_, err := ing.FromFile(ctx, path)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("empty document", func(t *testing.T) {
		path := writeFile(t, dir, "empty.txt", "   \n\t ")
		_, err := ing.FromFile(ctx, path)
		require.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ing.FromFile(ctx, filepath.Join(dir, "nope.txt"))
		require.Error(t, err)
	})
}

func TestIngestor_SizeLimit(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	ing := NewIngestor(16)

	path := writeFile(t, dir, "big.txt", strings.Repeat("x", 64))
	_, err := ing.FromFile(ctx, path)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestCountTokens_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, CountTokens(""))
}
