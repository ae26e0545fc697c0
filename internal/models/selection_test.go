package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAllExcludesRemovedByOriginalIndex(t *testing.T) {
	r := newTestRegistry(t, "/img/0.jpg", "/img/1.jpg", "/img/2.jpg", "/img/3.jpg", "/img/4.jpg")
	r.RemoveByIndices([]int{0, 1, 3})

	got := NewSelectionResolver(r).Resolve(ModeAll, nil)
	assert.Equal(t, []string{"/img/2.jpg", "/img/4.jpg"}, got)
}

func TestResolveAllWithoutRemovalsReturnsRegistry(t *testing.T) {
	r := newTestRegistry(t, "/img/b.png", "/img/a.png")
	got := NewSelectionResolver(r).Resolve(ModeAll, []int{1})
	assert.Equal(t, []string{"/img/b.png", "/img/a.png"}, got, "selection is ignored in all mode")
}

func TestResolveSelectedUsesRegistryOrder(t *testing.T) {
	r := newTestRegistry(t, "/img/0.jpg", "/img/1.jpg", "/img/2.jpg", "/img/3.jpg")

	got := NewSelectionResolver(r).Resolve(ModeSelected, []int{3, 0, 2})
	assert.Equal(t, []string{"/img/0.jpg", "/img/2.jpg", "/img/3.jpg"}, got)
}

func TestResolveSelectedNeverIncludesRemoved(t *testing.T) {
	r := newTestRegistry(t, "/img/0.jpg", "/img/1.jpg", "/img/2.jpg")
	r.RemoveByIndices([]int{1})
	resolver := NewSelectionResolver(r)

	selected := resolver.Resolve(ModeSelected, []int{0, 1, 2, 7})
	all := resolver.Resolve(ModeAll, nil)

	assert.Equal(t, []string{"/img/0.jpg", "/img/2.jpg"}, selected)
	assert.Subset(t, all, selected)
}

func TestResolveSelectedEmptySelection(t *testing.T) {
	r := newTestRegistry(t, "/img/0.jpg")
	got := NewSelectionResolver(r).Resolve(ModeSelected, nil)
	assert.Empty(t, got)
}

func TestResolveHasNoSideEffects(t *testing.T) {
	r := newTestRegistry(t, "/img/0.jpg", "/img/1.jpg")
	r.RemoveByIndices([]int{0})
	resolver := NewSelectionResolver(r)

	first := resolver.Resolve(ModeAll, nil)
	second := resolver.Resolve(ModeAll, nil)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.IsRemoved(0))
}

func TestParseConversionMode(t *testing.T) {
	m, err := ParseConversionMode("selected")
	require.NoError(t, err)
	assert.Equal(t, ModeSelected, m)

	m, err = ParseConversionMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAll, m)

	_, err = ParseConversionMode("some")
	assert.Error(t, err)
}
