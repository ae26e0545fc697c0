package components

import (
	"zoop-converter/internal/models"
	"zoop-converter/internal/report"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MaxLogLines bounds the log pane; older lines are dropped first.
const MaxLogLines = 500

// LogPane shows the coloured conversion log
type LogPane struct {
	container *fyne.Container
	text      *widget.RichText
	scroll    *container.Scroll
}

func NewLogPane() *LogPane {
	lp := &LogPane{}
	lp.text = widget.NewRichText()
	lp.text.Wrapping = fyne.TextWrapWord
	lp.scroll = container.NewVScroll(lp.text)
	lp.scroll.SetMinSize(fyne.NewSize(0, 120))
	lp.container = container.NewStack(lp.scroll)
	return lp
}

// Append adds one line and scrolls to it. Must be called on the UI goroutine.
func (lp *LogPane) Append(color report.Color, message string) {
	segment := &widget.TextSegment{
		Text: message,
		Style: widget.RichTextStyle{
			ColorName: colorName(color),
			TextStyle: fyne.TextStyle{Monospace: true},
		},
	}

	lp.text.Segments = append(lp.text.Segments, segment)
	if extra := len(lp.text.Segments) - MaxLogLines; extra > 0 {
		lp.text.Segments = lp.text.Segments[extra:]
	}
	lp.text.Refresh()
	lp.scroll.ScrollToBottom()
}

// Lines returns the text of every line currently shown.
func (lp *LogPane) Lines() []string {
	lines := make([]string, 0, len(lp.text.Segments))
	for _, s := range lp.text.Segments {
		lines = append(lines, s.Textual())
	}
	return lines
}

func (lp *LogPane) Clear() {
	lp.text.Segments = nil
	lp.text.Refresh()
}

func (lp *LogPane) GetContainer() *fyne.Container {
	return lp.container
}

func colorName(c report.Color) fyne.ThemeColorName {
	switch c {
	case report.ColorInfo:
		return theme.ColorNamePrimary
	case report.ColorSuccess:
		return theme.ColorNameSuccess
	case report.ColorFailure:
		return theme.ColorNameError
	default:
		return theme.ColorNameForeground
	}
}

// StateLabel shows whether a conversion is running
type StateLabel struct {
	container *fyne.Container
	label     *widget.Label
	activity  *widget.Activity
}

func NewStateLabel() *StateLabel {
	sl := &StateLabel{
		label:    widget.NewLabel(models.StateIdle.String()),
		activity: widget.NewActivity(),
	}
	sl.activity.Hide()
	sl.container = container.NewHBox(sl.activity, sl.label)
	return sl
}

// SetState must be called on the UI goroutine.
func (sl *StateLabel) SetState(state models.ConversionState) {
	sl.label.SetText(state.String())
	if state == models.StateConverting {
		sl.activity.Show()
		sl.activity.Start()
		return
	}
	sl.activity.Stop()
	sl.activity.Hide()
}

func (sl *StateLabel) Text() string {
	return sl.label.Text
}

func (sl *StateLabel) GetContainer() *fyne.Container {
	return sl.container
}
