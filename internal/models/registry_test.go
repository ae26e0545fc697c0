package models

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExtensions = []string{".jpg", ".png", "gif"}

func newTestRegistry(t *testing.T, paths ...string) *FileRegistry {
	t.Helper()
	r := NewFileRegistry(testExtensions)
	for _, p := range paths {
		res, err := r.Add(p)
		require.NoError(t, err)
		require.Equal(t, Accepted, res, p)
	}
	return r
}

func TestAddAcceptsUniqueSupportedPaths(t *testing.T) {
	r := newTestRegistry(t, "/img/a.jpg", "/img/b.png", "/img/c.GIF")
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsEmpty())

	e, ok := r.Entry(2)
	require.True(t, ok)
	assert.Equal(t, "/img/c.GIF", e.Path)
	assert.Equal(t, ".gif", e.Ext)
	assert.Equal(t, "c.GIF", e.Name())
}

func TestAddRejectsUnsupported(t *testing.T) {
	r := NewFileRegistry(testExtensions)
	for _, p := range []string{"/img/notes.txt", "/img/noext", "/img/a.jpeg"} {
		res, err := r.Add(p)
		require.NoError(t, err)
		assert.Equal(t, Unsupported, res, p)
	}
	assert.True(t, r.IsEmpty())
}

func TestAddDuplicateNeverGrows(t *testing.T) {
	r := newTestRegistry(t, "/img/a.jpg")

	res, err := r.Add("/img/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, Duplicate, res)

	res, err = r.Add("/img/../img/./a.jpg")
	require.NoError(t, err)
	assert.Equal(t, Duplicate, res)

	assert.Equal(t, 1, r.Len())
}

func TestAddMakesRelativePathsAbsolute(t *testing.T) {
	r := NewFileRegistry(testExtensions)
	res, err := r.Add("rel/pic.png")
	require.NoError(t, err)
	require.Equal(t, Accepted, res)

	e, _ := r.Entry(0)
	assert.True(t, filepath.IsAbs(e.Path))
}

func TestReplaceKeepsIndexAndRefreshesEntry(t *testing.T) {
	r := newTestRegistry(t, "/img/a.jpg", "/img/b.png")
	later := time.Now().Add(time.Hour)
	r.now = func() time.Time { return later }

	index, err := r.Replace("/img/b.png")
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, 2, r.Len())

	e, _ := r.Entry(1)
	assert.Equal(t, later, e.AddedAt)

	_, err = r.Replace("/img/missing.png")
	assert.Error(t, err)
}

func TestReplaceRevivesRemovedEntry(t *testing.T) {
	r := newTestRegistry(t, "/img/a.jpg", "/img/b.png")
	r.RemoveByIndices([]int{0})
	require.True(t, r.IsRemoved(0))

	res, err := r.Add("/img/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, Duplicate, res)

	_, err = r.Replace("/img/a.jpg")
	require.NoError(t, err)
	assert.False(t, r.IsRemoved(0))
	assert.Len(t, r.Live(), 2)
}

func TestRemoveByIndicesReturnsMarkedPathsInOrder(t *testing.T) {
	r := newTestRegistry(t, "/img/a.jpg", "/img/b.png", "/img/c.gif", "/img/d.jpg")

	removed := r.RemoveByIndices([]int{3, 1, 9, -1})
	assert.Equal(t, []string{"/img/b.png", "/img/d.jpg"}, removed)

	again := r.RemoveByIndices([]int{1})
	assert.Empty(t, again)

	assert.Equal(t, 4, r.Len(), "removal never compacts")
	live := r.Live()
	require.Len(t, live, 2)
	assert.Equal(t, 0, live[0].Index)
	assert.Equal(t, 2, live[1].Index)
}

func TestHasLiveFollowsRemovals(t *testing.T) {
	r := newTestRegistry(t, "/img/a.jpg", "/img/b.png")
	assert.True(t, r.HasLive())

	r.RemoveByIndices([]int{0, 1})
	assert.False(t, r.HasLive())
	assert.False(t, r.IsEmpty())
}

func TestClearIsIdempotent(t *testing.T) {
	r := newTestRegistry(t, "/img/a.jpg", "/img/b.png")
	r.RemoveByIndices([]int{1})

	r.Clear()
	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsRemoved(1))

	r.Clear()
	assert.True(t, r.IsEmpty())
	assert.Empty(t, r.Live())

	res, err := r.Add("/img/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, Accepted, res, "cleared paths can be added again")
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, ".png", NormalizeExtension("PNG"))
	assert.Equal(t, ".jpg", NormalizeExtension(" .JPG "))
	assert.Equal(t, "", NormalizeExtension(""))
}
