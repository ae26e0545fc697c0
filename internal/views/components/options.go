package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// OptionsPanel edits the output format and target directory
type OptionsPanel struct {
	container    *fyne.Container
	formatSelect *widget.Select
	dirEntry     *widget.Entry
	browseButton *widget.Button

	formatHandler func(string)
	dirHandler    func(string) bool
	browseHandler func()

	// last accepted directory, restored when the handler rejects an edit
	directory string
}

func NewOptionsPanel(formats []string, format, directory string) *OptionsPanel {
	op := &OptionsPanel{directory: directory}

	op.formatSelect = widget.NewSelect(formats, nil)
	op.formatSelect.SetSelected(format)
	op.formatSelect.OnChanged = func(value string) {
		if op.formatHandler != nil {
			op.formatHandler(value)
		}
	}

	op.dirEntry = widget.NewEntry()
	op.dirEntry.SetText(directory)
	op.dirEntry.OnSubmitted = op.submitDirectory

	op.browseButton = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		if op.browseHandler != nil {
			op.browseHandler()
		}
	})

	op.container = container.NewBorder(nil, nil,
		container.NewHBox(widget.NewLabel("Output format"), op.formatSelect, widget.NewLabel("Save to")),
		op.browseButton,
		op.dirEntry,
	)
	return op
}

func (op *OptionsPanel) submitDirectory(value string) {
	if op.dirHandler != nil && op.dirHandler(value) {
		op.directory = value
		return
	}
	op.dirEntry.SetText(op.directory)
}

// SetFormatHandler receives the chosen output extension.
func (op *OptionsPanel) SetFormatHandler(handler func(string)) {
	op.formatHandler = handler
}

// SetDirectoryHandler receives typed or picked directories and reports
// whether the value was taken.
func (op *OptionsPanel) SetDirectoryHandler(handler func(string) bool) {
	op.dirHandler = handler
}

func (op *OptionsPanel) SetBrowseHandler(handler func()) {
	op.browseHandler = handler
}

// ApplyDirectory routes a picked directory through the same path as a typed one.
func (op *OptionsPanel) ApplyDirectory(dir string) {
	op.dirEntry.SetText(dir)
	op.submitDirectory(dir)
}

func (op *OptionsPanel) Directory() string {
	return op.directory
}

func (op *OptionsPanel) Format() string {
	return op.formatSelect.Selected
}

func (op *OptionsPanel) SetEnabled(enabled bool) {
	for _, w := range []fyne.Disableable{op.formatSelect, op.dirEntry, op.browseButton} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (op *OptionsPanel) GetContainer() *fyne.Container {
	return op.container
}
