package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/adapters/stamp"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newWriter(t *testing.T) (*fs.Writer, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := stamp.NewStore(filepath.Join(dir, "stamps.json"))
	require.NoError(t, err)
	return fs.NewWriter(store), dir
}

func TestWrite_CreatesFileAndParents(t *testing.T) {
	writer, dir := newWriter(t)
	path := filepath.Join(dir, "out", "nested", "suites.cmake")

	changed, err := writer.Write(path, []byte("content\n"))
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(data))
}

func TestWrite_SkipsUnchangedContent(t *testing.T) {
	writer, dir := newWriter(t)
	path := filepath.Join(dir, "suites.cmake")

	changed, err := writer.Write(path, []byte("content\n"))
	require.NoError(t, err)
	require.True(t, changed)

	info, err := os.Stat(path)
	require.NoError(t, err)
	mtime := info.ModTime()

	changed, err = writer.Write(path, []byte("content\n"))
	require.NoError(t, err)
	assert.False(t, changed)

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, mtime, info.ModTime())
}

func TestWrite_RewritesChangedContent(t *testing.T) {
	writer, dir := newWriter(t)
	path := filepath.Join(dir, "suites.cmake")

	_, err := writer.Write(path, []byte("old\n"))
	require.NoError(t, err)

	changed, err := writer.Write(path, []byte("new\n"))
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWrite_RewritesWhenFileRemovedExternally(t *testing.T) {
	writer, dir := newWriter(t)
	path := filepath.Join(dir, "suites.cmake")

	_, err := writer.Write(path, []byte("content\n"))
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	// The stamp still matches but the file is gone.
	changed, err := writer.Write(path, []byte("content\n"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.FileExists(t, path)
}

func TestWrite_RecordsStamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStampStore(ctrl)
	writer := fs.NewWriter(store)

	dir := t.TempDir()
	path := filepath.Join(dir, "suites.cmake")
	data := []byte("content\n")

	store.EXPECT().Get(path).Return(nil, nil)
	store.EXPECT().Put(domain.Stamp{Path: path, Fingerprint: fs.Fingerprint(data)}).Return(nil)

	changed, err := writer.Write(path, data)
	require.NoError(t, err)
	assert.True(t, changed)
}
