package components

import (
	"sort"

	"zoop-converter/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const emptyListText = "No files yet. Use File > Add files or Ctrl+A."

// FileList shows live registry entries with a check box each. Selection is
// kept as registry indices so it survives list refreshes.
type FileList struct {
	container   *fyne.Container
	list        *widget.List
	placeholder *fyne.Container

	thumbs  *ThumbnailCache
	rows    []models.IndexedEntry
	checked map[int]bool
}

func NewFileList(thumbs *ThumbnailCache) *FileList {
	fl := &FileList{
		thumbs:  thumbs,
		checked: make(map[int]bool),
	}
	fl.createComponents()
	fl.buildLayout()
	fl.showPlaceholder(true)
	return fl
}

func (fl *FileList) createComponents() {
	fl.list = widget.NewList(
		func() int { return len(fl.rows) },
		fl.createRow,
		fl.updateRow,
	)
	fl.list.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(fl.rows) {
			fl.toggle(fl.rows[id].Index)
		}
		fl.list.UnselectAll()
	}

	hint := widget.NewLabel(emptyListText)
	hint.Alignment = fyne.TextAlignCenter
	fl.placeholder = container.NewCenter(hint)
}

func (fl *FileList) buildLayout() {
	fl.container = container.NewStack(fl.list, fl.placeholder)
}

func (fl *FileList) createRow() fyne.CanvasObject {
	size := float32(32)
	if fl.thumbs != nil {
		size = float32(fl.thumbs.size)
	}

	thumb := canvas.NewImageFromImage(nil)
	thumb.FillMode = canvas.ImageFillContain
	thumb.ScaleMode = canvas.ImageScaleSmooth
	thumb.SetMinSize(fyne.NewSize(size, size))

	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis

	return container.NewBorder(nil, nil,
		container.NewHBox(widget.NewCheck("", nil), thumb),
		nil,
		label,
	)
}

func (fl *FileList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(fl.rows) {
		return
	}
	entry := fl.rows[id]

	row := obj.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	left := row.Objects[1].(*fyne.Container)
	check := left.Objects[0].(*widget.Check)
	thumb := left.Objects[1].(*canvas.Image)

	label.SetText(entry.Name())

	check.OnChanged = nil
	check.SetChecked(fl.checked[entry.Index])
	index := entry.Index
	check.OnChanged = func(on bool) {
		fl.setChecked(index, on)
	}

	if fl.thumbs != nil {
		thumb.Image = fl.thumbs.Get(entry.Path, func() {
			fyne.Do(fl.list.Refresh)
		})
		thumb.Refresh()
	}
}

func (fl *FileList) toggle(index int) {
	fl.setChecked(index, !fl.checked[index])
	fl.list.Refresh()
}

func (fl *FileList) setChecked(index int, on bool) {
	if on {
		fl.checked[index] = true
	} else {
		delete(fl.checked, index)
	}
}

// SetEntries replaces the shown rows and drops checks on entries no longer
// live. Must be called on the UI goroutine.
func (fl *FileList) SetEntries(entries []models.IndexedEntry) {
	fl.rows = entries

	live := make(map[int]bool, len(entries))
	for _, e := range entries {
		live[e.Index] = true
	}
	for index := range fl.checked {
		if !live[index] {
			delete(fl.checked, index)
		}
	}

	fl.showPlaceholder(len(entries) == 0)
	fl.list.Refresh()
}

// Selection returns the checked registry indices in ascending order.
func (fl *FileList) Selection() []int {
	out := make([]int, 0, len(fl.checked))
	for index := range fl.checked {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// SetChecked checks or unchecks the row for a registry index.
func (fl *FileList) SetChecked(index int, on bool) {
	fl.setChecked(index, on)
	fl.list.Refresh()
}

// Len returns the number of rows shown.
func (fl *FileList) Len() int {
	return len(fl.rows)
}

func (fl *FileList) PlaceholderVisible() bool {
	return fl.placeholder.Visible()
}

func (fl *FileList) showPlaceholder(show bool) {
	if show {
		fl.list.Hide()
		fl.placeholder.Show()
		return
	}
	fl.placeholder.Hide()
	fl.list.Show()
}

func (fl *FileList) GetContainer() *fyne.Container {
	return fl.container
}
