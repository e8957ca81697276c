package storage

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreKeepsExtensionAndBytes(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	content := []byte("evidence screenshot bytes")
	meta, err := store.Store("screenshot.png", "image/png", bytes.NewReader(content))
	assert.NoError(t, err)

	assert.Equal(t, "screenshot.png", meta.Name)
	assert.True(t, strings.HasSuffix(meta.Filename, ".png"))
	assert.NotEqual(t, "screenshot.png", meta.Filename)
	assert.Equal(t, int64(len(content)), meta.Size)
	assert.Equal(t, "image/png", meta.Type)
	assert.NotEmpty(t, meta.Id)

	onDisk, err := os.ReadFile(store.Path(meta.Filename))
	assert.NoError(t, err)
	assert.Equal(t, content, onDisk)
	assert.True(t, store.Exists(meta.Filename))
}

func TestStoreDefaultsContentType(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	meta, err := store.Store("notes", "", strings.NewReader("plain"))
	assert.NoError(t, err)
	assert.Equal(t, "application/octet-stream", meta.Type)
	// No extension on the original means none on disk either.
	assert.Equal(t, meta.Id, meta.Filename)
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	first, err := store.Store("same.pdf", "application/pdf", strings.NewReader("a"))
	assert.NoError(t, err)
	second, err := store.Store("same.pdf", "application/pdf", strings.NewReader("b"))
	assert.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestExistsMissingFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	assert.False(t, store.Exists("nope.png"))
}
