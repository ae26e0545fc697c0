package models

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// AddResult classifies the outcome of FileRegistry.Add
type AddResult int

const (
	Accepted AddResult = iota
	Duplicate
	Unsupported
)

func (r AddResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Duplicate:
		return "duplicate"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Entry is one input image known to the registry
type Entry struct {
	Path    string
	Ext     string
	AddedAt time.Time
}

// Name returns the file name shown in the list.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// IndexedEntry pairs an entry with its original registry index
type IndexedEntry struct {
	Index int
	Entry
}

// FileRegistry holds the ordered input paths and the soft-deleted indices.
// Indices are insertion positions and stay stable until Clear.
type FileRegistry struct {
	mu        sync.RWMutex
	entries   []Entry
	removed   map[int]struct{}
	positions map[string]int
	supported map[string]struct{}
	now       func() time.Time
}

// NewFileRegistry creates a registry accepting the given extensions.
func NewFileRegistry(supportedExtensions []string) *FileRegistry {
	supported := make(map[string]struct{}, len(supportedExtensions))
	for _, ext := range supportedExtensions {
		supported[NormalizeExtension(ext)] = struct{}{}
	}

	return &FileRegistry{
		removed:   make(map[int]struct{}),
		positions: make(map[string]int),
		supported: supported,
		now:       time.Now,
	}
}

// NormalizeExtension lower-cases ext and makes sure it starts with a dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// IsSupported reports whether path has an accepted extension.
func (r *FileRegistry) IsSupported(path string) bool {
	_, ok := r.supported[NormalizeExtension(filepath.Ext(path))]
	return ok
}

// Add stores path unless it is unsupported or already present. A Duplicate
// stores nothing; the caller settles it with Replace or by doing nothing.
func (r *FileRegistry) Add(path string) (AddResult, error) {
	if !r.IsSupported(path) {
		return Unsupported, nil
	}

	abs, err := canonicalPath(path)
	if err != nil {
		return Unsupported, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.positions[abs]; exists {
		return Duplicate, nil
	}

	r.positions[abs] = len(r.entries)
	r.entries = append(r.entries, Entry{
		Path:    abs,
		Ext:     NormalizeExtension(filepath.Ext(abs)),
		AddedAt: r.now(),
	})
	return Accepted, nil
}

// Replace is the overwrite answer to a Duplicate. The stored entry keeps its
// index, gets a fresh AddedAt and leaves the removal set if it was in it.
func (r *FileRegistry) Replace(path string) (int, error) {
	abs, err := canonicalPath(path)
	if err != nil {
		return -1, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	index, exists := r.positions[abs]
	if !exists {
		return -1, fmt.Errorf("replace %s: not in registry", abs)
	}

	r.entries[index].AddedAt = r.now()
	delete(r.removed, index)
	return index, nil
}

// RemoveByIndices soft-deletes the given indices and returns the newly marked
// paths in registry order. Out of range and already removed indices are skipped.
func (r *FileRegistry) RemoveByIndices(indices []int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	marked := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(r.entries) {
			continue
		}
		if _, done := r.removed[i]; done {
			continue
		}
		r.removed[i] = struct{}{}
		marked = append(marked, i)
	}

	sort.Ints(marked)
	paths := make([]string, len(marked))
	for n, i := range marked {
		paths[n] = r.entries[i].Path
	}
	return paths
}

// Clear drops every entry and every removal mark.
func (r *FileRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.removed = make(map[int]struct{})
	r.positions = make(map[string]int)
}

// IsEmpty reports whether the underlying sequence is empty. Soft-deleted
// entries still count; see HasLive.
func (r *FileRegistry) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries) == 0
}

// HasLive reports whether any entry is not marked removed.
func (r *FileRegistry) HasLive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries) > len(r.removed)
}

func (r *FileRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *FileRegistry) Entry(index int) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.entries) {
		return Entry{}, false
	}
	return r.entries[index], true
}

func (r *FileRegistry) IsRemoved(index int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.removed[index]
	return ok
}

// Live returns the entries not marked removed, in registry order.
func (r *FileRegistry) Live() []IndexedEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	live := make([]IndexedEntry, 0, len(r.entries)-len(r.removed))
	for i, e := range r.entries {
		if _, gone := r.removed[i]; gone {
			continue
		}
		live = append(live, IndexedEntry{Index: i, Entry: e})
	}
	return live
}

// snapshot copies the state the resolver needs under one lock.
func (r *FileRegistry) snapshot() ([]Entry, map[int]struct{}) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	removed := make(map[int]struct{}, len(r.removed))
	for i := range r.removed {
		removed[i] = struct{}{}
	}
	return entries, removed
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}
