// Package prefs persists the small set of user interface preferences.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zoop-converter/internal/logger"

	"gopkg.in/yaml.v3"
)

const (
	ThemeDark   = "dark"
	ThemeLight  = "light"
	ThemeSystem = "system"

	DefaultTheme = ThemeDark
)

// Themes lists the selectable theme names in menu order.
var Themes = []string{ThemeDark, ThemeLight, ThemeSystem}

type Preferences struct {
	Theme string `yaml:"theme"`
}

func Default() Preferences {
	return Preferences{Theme: DefaultTheme}
}

// Backend is the raw read/write capability a Store persists through
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

type Store struct {
	backend Backend
	logger  logger.Logger
}

func NewStore(backend Backend, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{backend: backend, logger: log}
}

// Load never fails: absent, unreadable or invalid data yields the defaults.
func (s *Store) Load() Preferences {
	data, err := s.backend.Read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warning("Preferences", "preferences unreadable, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return Default()
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		s.logger.Warning("Preferences", "preferences invalid, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return Default()
	}

	if !validTheme(p.Theme) {
		return Default()
	}
	p.Theme = strings.ToLower(p.Theme)
	return p
}

func (s *Store) Save(p Preferences) error {
	if !validTheme(p.Theme) {
		return fmt.Errorf("unknown theme %q", p.Theme)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	s.logger.Debug("Preferences", "preferences saved", map[string]interface{}{"theme": p.Theme})
	return nil
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// FileBackend keeps preferences in a YAML file
type FileBackend struct {
	Path string
}

func (f FileBackend) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

func (f FileBackend) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}
