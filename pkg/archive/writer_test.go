package archive

import (
	"archive/zip"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterStoresEntriesUnderGivenName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	fsys := fstest.MapFS{
		"server/lib/util.ts": {Data: []byte("util"), Mode: 0o640},
	}

	w, err := NewWriter(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.WriteFile(fsys, "server/lib/util.ts"))
	assert.Equal(t, 1, w.Files())
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	entries := readArchive(t, path)
	assert.Equal(t, map[string]string{"server/lib/util.ts": "util"}, entries)

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, "-rw-r-----", zr.File[0].Mode().String())
}

func TestWriterFailsOnMissingFile(t *testing.T) {
	w, err := NewWriter(filepath.Join(t.TempDir(), "out.zip"), nil)
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.WriteFile(fstest.MapFS{}, "gone.ts"))
	assert.Equal(t, 0, w.Files())
}
