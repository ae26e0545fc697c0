package views

import (
	"zoop-converter/internal/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var (
	shortcutAdd        = &desktop.CustomShortcut{KeyName: fyne.KeyA, Modifier: fyne.KeyModifierControl}
	shortcutRemove     = &desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: fyne.KeyModifierControl}
	shortcutClear      = &desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: fyne.KeyModifierControl | fyne.KeyModifierAlt}
	shortcutConvertAll = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}
	shortcutConvertSel = &desktop.CustomShortcut{KeyName: fyne.KeyL, Modifier: fyne.KeyModifierControl}
)

var themeLabels = map[string]string{
	prefs.ThemeDark:   "Dark",
	prefs.ThemeLight:  "Light",
	prefs.ThemeSystem: "System",
}

func (mv *MainView) buildMainMenu() *fyne.MainMenu {
	addFiles := fyne.NewMenuItem("Add files...", func() { invoke(mv.addFilesHandler) })
	addFiles.Shortcut = shortcutAdd
	remove := fyne.NewMenuItem("Remove selected", func() { invoke(mv.removeHandler) })
	remove.Shortcut = shortcutRemove
	clearAll := fyne.NewMenuItem("Clear all", func() { invoke(mv.clearHandler) })
	clearAll.Shortcut = shortcutClear

	quit := fyne.NewMenuItem("Quit", func() { invoke(mv.quitHandler) })
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		addFiles,
		fyne.NewMenuItem("Add folder...", func() { invoke(mv.addFolderHandler) }),
		fyne.NewMenuItemSeparator(),
		remove,
		clearAll,
		fyne.NewMenuItemSeparator(),
		quit,
	)

	themeItems := make([]*fyne.MenuItem, 0, len(prefs.Themes))
	for _, name := range prefs.Themes {
		item := fyne.NewMenuItem(themeLabels[name], func() {
			if mv.themeHandler != nil {
				mv.themeHandler(name)
			}
		})
		item.Checked = name == mv.themeName
		themeItems = append(themeItems, item)
	}
	themeItem := fyne.NewMenuItem("Theme", nil)
	themeItem.ChildMenu = fyne.NewMenu("", themeItems...)
	viewMenu := fyne.NewMenu("View", themeItem)

	convertSel := fyne.NewMenuItem("Convert selected", func() { invoke(mv.convertSelHandler) })
	convertSel.Shortcut = shortcutConvertSel
	convertAll := fyne.NewMenuItem("Convert all", func() { invoke(mv.convertAllHandler) })
	convertAll.Shortcut = shortcutConvertAll
	convertMenu := fyne.NewMenu("Convert", convertSel, convertAll)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Credits", func() { invoke(mv.creditsHandler) }),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu, convertMenu, helpMenu)
}

func (mv *MainView) registerShortcuts() {
	c := mv.window.Canvas()

	bind := func(s fyne.Shortcut, handler *func()) {
		c.AddShortcut(s, func(fyne.Shortcut) { invoke(*handler) })
	}
	bind(shortcutAdd, &mv.addFilesHandler)
	bind(shortcutRemove, &mv.removeHandler)
	bind(shortcutClear, &mv.clearHandler)
	bind(shortcutConvertAll, &mv.convertAllHandler)
	bind(shortcutConvertSel, &mv.convertSelHandler)

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			invoke(mv.quitHandler)
		}
	})
}
