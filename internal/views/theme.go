package views

import (
	"image/color"

	"zoop-converter/internal/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantTheme pins the default theme to one variant regardless of the OS
type variantTheme struct {
	variant fyne.ThemeVariant
}

func (t variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t variantTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t variantTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t variantTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// ThemeFor maps a preferences theme name to a Fyne theme. Unknown names
// follow the system.
func ThemeFor(name string) fyne.Theme {
	switch name {
	case prefs.ThemeDark:
		return variantTheme{variant: theme.VariantDark}
	case prefs.ThemeLight:
		return variantTheme{variant: theme.VariantLight}
	default:
		return theme.DefaultTheme()
	}
}
