package views

import (
	"fmt"
	"path/filepath"

	"zoop-converter/internal/models"
	"zoop-converter/internal/report"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Credits is the body of the Help > Credits dialog.
const Credits = `Zoop image converter

Batch conversion between common image formats.
Built with Fyne and GoCV.`

// ShowDuplicate asks whether an already listed file should be replaced.
func (mv *MainView) ShowDuplicate(path string, callback func(replace bool)) {
	msg := fmt.Sprintf("%s is already in the list.\nDo you want to replace it?", filepath.Base(path))
	d := dialog.NewConfirm("Duplicate file", msg, callback, mv.window)
	d.SetConfirmText("Replace")
	d.SetDismissText("Skip")
	d.Show()
}

func (mv *MainView) ShowClearConfirm(callback func(bool)) {
	dialog.ShowConfirm("Clear all", "Remove every file from the list?", callback, mv.window)
}

func (mv *MainView) ShowReport(summary models.Summary) {
	dialog.ShowInformation("Conversion report", report.SummaryText(summary), mv.window)
}

func (mv *MainView) ShowCredits(version string) {
	content := container.NewVBox(
		widget.NewLabel(Credits),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
	)
	dialog.ShowCustom("Credits", "Close", content, mv.window)
}

func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowFileOpen lets the user pick one input file filtered to exts.
func (mv *MainView) ShowFileOpen(exts []string, callback func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path)
	}, mv.window)
	if len(exts) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(exts))
	}
	d.Show()
}

// ShowFolderOpen lets the user pick a directory. The callback gets the
// directory path and its direct children.
func (mv *MainView) ShowFolderOpen(callback func(dir string, children []string)) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			mv.ShowError(err)
			return
		}
		if uri == nil {
			return
		}

		items, err := uri.List()
		if err != nil {
			mv.ShowError(err)
			return
		}
		children := make([]string, 0, len(items))
		for _, item := range items {
			children = append(children, item.Path())
		}
		callback(uri.Path(), children)
	}, mv.window)
}
