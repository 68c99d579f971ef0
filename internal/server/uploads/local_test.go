package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLocalSave(t *testing.T) {
	chdir(t, t.TempDir())

	storage, err := NewLocalStorage("uploads")
	require.NoError(t, err)

	stored, err := storage.Save(context.Background(), "markers.geojson", strings.NewReader(`{"type":"FeatureCollection"}`))
	require.NoError(t, err)

	assert.Equal(t, "markers.geojson", stored.FileName)
	assert.True(t, strings.HasPrefix(stored.FilePath, "uploads/"), "path is relative to the upload dir: %s", stored.FilePath)
	assert.NotContains(t, stored.FilePath, "markers.geojson", "stored name must be random, not the original")

	content, err := os.ReadFile(filepath.FromSlash(stored.FilePath))
	require.NoError(t, err)
	assert.Equal(t, `{"type":"FeatureCollection"}`, string(content))
}

func TestLocalSave_DistinctNames(t *testing.T) {
	chdir(t, t.TempDir())

	storage, err := NewLocalStorage("uploads")
	require.NoError(t, err)

	a, err := storage.Save(context.Background(), "same.geojson", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := storage.Save(context.Background(), "same.geojson", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.FilePath, b.FilePath)
}
