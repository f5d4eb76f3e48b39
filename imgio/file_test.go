package imgio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")

	require.NoError(t, SaveFile(path, []byte("hello")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	// Overwriting goes through the same rename, replacing atomically.
	require.NoError(t, SaveFile(path, []byte("goodbye")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("goodbye"), data)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.ppm", entries[0].Name())
}

func TestSavePNGAndPPM(t *testing.T) {
	dir := t.TempDir()
	pb := checkerboard(5, 5)

	pngPath := filepath.Join(dir, "img.png")
	require.NoError(t, SavePNG(pngPath, pb, nil))
	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, IsPNG(data))

	ppmPath := filepath.Join(dir, "img.ppm")
	require.NoError(t, SavePPM(ppmPath, pb))
	data, err = os.ReadFile(ppmPath)
	require.NoError(t, err)
	assert.Equal(t, byte('P'), data[0])
}
