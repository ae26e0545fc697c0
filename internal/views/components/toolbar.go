package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the file list and conversion actions
type Toolbar struct {
	container        *fyne.Container
	addButton        *widget.Button
	removeButton     *widget.Button
	clearButton      *widget.Button
	convertSelButton *widget.Button
	convertAllButton *widget.Button

	addHandler        func()
	removeHandler     func()
	clearHandler      func()
	convertSelHandler func()
	convertAllHandler func()

	converting bool
	hasFiles   bool
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	toolbar.applyState()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.addButton = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), nil)
	t.addButton.Importance = widget.HighImportance

	t.removeButton = widget.NewButtonWithIcon("Remove", theme.ContentRemoveIcon(), nil)
	t.clearButton = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), nil)

	t.convertSelButton = widget.NewButtonWithIcon("Convert selected", theme.MediaPlayIcon(), nil)
	t.convertAllButton = widget.NewButtonWithIcon("Convert all", theme.MediaFastForwardIcon(), nil)
	t.convertAllButton.Importance = widget.HighImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.addButton,
		t.removeButton,
		t.clearButton,
		widget.NewSeparator(),
		t.convertSelButton,
		t.convertAllButton,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.addButton.OnTapped = func() { call(t.addHandler) }
	t.removeButton.OnTapped = func() { call(t.removeHandler) }
	t.clearButton.OnTapped = func() { call(t.clearHandler) }
	t.convertSelButton.OnTapped = func() { call(t.convertSelHandler) }
	t.convertAllButton.OnTapped = func() { call(t.convertAllHandler) }
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

func (t *Toolbar) SetAddHandler(handler func())        { t.addHandler = handler }
func (t *Toolbar) SetRemoveHandler(handler func())     { t.removeHandler = handler }
func (t *Toolbar) SetClearHandler(handler func())      { t.clearHandler = handler }
func (t *Toolbar) SetConvertSelHandler(handler func()) { t.convertSelHandler = handler }
func (t *Toolbar) SetConvertAllHandler(handler func()) { t.convertAllHandler = handler }

// SetConverting disables every list mutation while a batch runs. Must be
// called on the UI goroutine.
func (t *Toolbar) SetConverting(active bool) {
	t.converting = active
	t.applyState()
}

// SetHasFiles enables the actions that need at least one live file. Must be
// called on the UI goroutine.
func (t *Toolbar) SetHasFiles(hasFiles bool) {
	t.hasFiles = hasFiles
	t.applyState()
}

func (t *Toolbar) applyState() {
	setEnabled(t.addButton, !t.converting)
	for _, b := range []*widget.Button{t.removeButton, t.clearButton, t.convertSelButton, t.convertAllButton} {
		setEnabled(b, !t.converting && t.hasFiles)
	}
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
