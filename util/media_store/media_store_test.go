package media_store

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	return NewStore(fs, "/media", "/media/"), fs
}

func TestStageAndCleanup(t *testing.T) {
	store, fs := newTestStore()

	staged, err := store.Stage(strings.NewReader("hello"), "Track.MP3")
	require.NoError(t, err)
	assert.Equal(t, "Track.MP3", staged.Filename())
	assert.Equal(t, int64(5), staged.Size())

	data, err := io.ReadAll(staged)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, staged.Rewind())
	data, err = io.ReadAll(staged)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	entries, err := afero.ReadDir(fs, filepath.Join("/media", stagingDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".mp3"))

	require.NoError(t, staged.Cleanup())
	require.NoError(t, staged.Cleanup())

	entries, err = afero.ReadDir(fs, filepath.Join("/media", stagingDir))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveRemoveAndURL(t *testing.T) {
	store, fs := newTestStore()

	rel, err := store.Save(CategorySongs, ".MP3", bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "songs/"))
	assert.True(t, strings.HasSuffix(rel, ".mp3"))

	ok, err := afero.Exists(fs, filepath.Join("/media", rel))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/media/"+rel, store.URL(rel))

	other, err := store.Save(CategorySongs, ".mp3", bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)
	assert.NotEqual(t, rel, other)

	require.NoError(t, store.Remove(rel))
	ok, err = afero.Exists(fs, filepath.Join("/media", rel))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Remove(rel))
	assert.NoError(t, store.Remove(""))
}

func TestSaveRejectsUnknownCategory(t *testing.T) {
	store, _ := newTestStore()
	_, err := store.Save("tmp", ".mp3", bytes.NewReader(nil))
	assert.Error(t, err)
}
