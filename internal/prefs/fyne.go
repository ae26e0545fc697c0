package prefs

import (
	"os"

	"fyne.io/fyne/v2"
)

const fyneKey = "zoop.preferences"

// FyneBackend stores the YAML document under one key of the app preferences
type FyneBackend struct {
	Preferences fyne.Preferences
}

func (f FyneBackend) Read() ([]byte, error) {
	raw := f.Preferences.String(fyneKey)
	if raw == "" {
		return nil, os.ErrNotExist
	}
	return []byte(raw), nil
}

func (f FyneBackend) Write(data []byte) error {
	f.Preferences.SetString(fyneKey, string(data))
	return nil
}
