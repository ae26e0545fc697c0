package models

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// OutputOptions holds the options panel values
type OutputOptions struct {
	mu      sync.RWMutex
	spec    OutputSpec
	formats []string
}

// NewOutputOptions starts from dir and format; formats limits SetFormat and
// may be empty to allow anything.
func NewOutputOptions(dir, format string, formats []string) *OutputOptions {
	normalized := make([]string, 0, len(formats))
	for _, f := range formats {
		normalized = append(normalized, NormalizeExtension(f))
	}
	return &OutputOptions{
		spec:    OutputSpec{TargetDirectory: dir, TargetExtension: NormalizeExtension(format)},
		formats: normalized,
	}
}

func (o *OutputOptions) OutputSpec() OutputSpec {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.spec
}

// Formats returns the selectable output extensions.
func (o *OutputOptions) Formats() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]string, len(o.formats))
	copy(out, o.formats)
	return out
}

// SetDirectory keeps the previous value when dir is empty or names something
// that exists and is not a directory. A missing directory is accepted; the
// runner creates it.
func (o *OutputOptions) SetDirectory(dir string) bool {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return false
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return false
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.spec.TargetDirectory = dir
	return true
}

func (o *OutputOptions) SetFormat(ext string) error {
	ext = NormalizeExtension(ext)
	if ext == "" {
		return fmt.Errorf("empty output format")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.formats) > 0 && !contains(o.formats, ext) {
		return fmt.Errorf("output format %s is not supported", ext)
	}
	o.spec.TargetExtension = ext
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
