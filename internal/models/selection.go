package models

import "fmt"

// ConversionMode chooses which registry entries a conversion covers
type ConversionMode int

const (
	ModeAll ConversionMode = iota
	ModeSelected
)

func (m ConversionMode) String() string {
	if m == ModeSelected {
		return "selected"
	}
	return "all"
}

// ParseConversionMode accepts "all" and "selected".
func ParseConversionMode(s string) (ConversionMode, error) {
	switch s {
	case "", "all":
		return ModeAll, nil
	case "selected":
		return ModeSelected, nil
	default:
		return ModeAll, fmt.Errorf("unknown conversion mode %q", s)
	}
}

// SelectionResolver computes the batch for a conversion request
type SelectionResolver struct {
	registry *FileRegistry
}

func NewSelectionResolver(registry *FileRegistry) *SelectionResolver {
	return &SelectionResolver{registry: registry}
}

// Resolve returns the paths to convert in registry order. Removal marks and
// selection both refer to original registry indices. Selection order is
// ignored and indices that are unknown or removed are dropped.
func (s *SelectionResolver) Resolve(mode ConversionMode, selection []int) []string {
	entries, removed := s.registry.snapshot()

	var selected map[int]struct{}
	if mode == ModeSelected {
		selected = make(map[int]struct{}, len(selection))
		for _, i := range selection {
			selected[i] = struct{}{}
		}
	}

	paths := make([]string, 0, len(entries))
	for i, e := range entries {
		if _, gone := removed[i]; gone {
			continue
		}
		if selected != nil {
			if _, ok := selected[i]; !ok {
				continue
			}
		}
		paths = append(paths, e.Path)
	}
	return paths
}
