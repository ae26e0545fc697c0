package views

import (
	"zoop-converter/internal/models"
	"zoop-converter/internal/report"

	"fyne.io/fyne/v2"
)

// Emitter paints conversion events into the window. It is safe to call from
// the conversion goroutine.
type Emitter struct {
	view *MainView
}

func NewEmitter(view *MainView) *Emitter {
	return &Emitter{view: view}
}

func (e *Emitter) Log(color report.Color, message string) {
	fyne.Do(func() {
		e.view.AppendLog(color, message)
	})
}

func (e *Emitter) SetState(state models.ConversionState) {
	fyne.Do(func() {
		e.view.SetState(state)
	})
}

func (e *Emitter) Summary(summary models.Summary) {
	fyne.Do(func() {
		e.view.ShowReport(summary)
	})
}
