// Package report carries per-file lines, the conversion state and the batch
// summary from the core to whatever surface the user is looking at.
package report

import (
	"fmt"

	"zoop-converter/internal/logger"
	"zoop-converter/internal/models"
)

// Color tags a log line the way the log pane paints it
type Color string

const (
	ColorDefault Color = "default"
	ColorInfo    Color = "cyan"
	ColorSuccess Color = "green"
	ColorFailure Color = "red"
)

// Emitter receives everything a conversion run reports
type Emitter interface {
	Log(color Color, message string)
	SetState(state models.ConversionState)
	Summary(summary models.Summary)
}

// SummaryText is the report body shown after a batch.
func SummaryText(s models.Summary) string {
	return fmt.Sprintf("Conversion report :\n%d file(s) converted successfully.\n%d file(s) aborted.", s.Success, s.Aborted)
}

// Multi fans every event out to each emitter in order
type Multi []Emitter

func (m Multi) Log(color Color, message string) {
	for _, e := range m {
		e.Log(color, message)
	}
}

func (m Multi) SetState(state models.ConversionState) {
	for _, e := range m {
		e.SetState(state)
	}
}

func (m Multi) Summary(summary models.Summary) {
	for _, e := range m {
		e.Summary(summary)
	}
}

// Logging forwards report events to the structured logger
type Logging struct {
	log logger.Logger
}

func NewLogging(log logger.Logger) *Logging {
	return &Logging{log: log}
}

func (l *Logging) Log(color Color, message string) {
	fields := map[string]interface{}{"color": string(color)}
	if color == ColorFailure {
		l.log.Warning("Report", message, fields)
		return
	}
	l.log.Debug("Report", message, fields)
}

func (l *Logging) SetState(state models.ConversionState) {
	l.log.Debug("Report", "conversion state changed", map[string]interface{}{
		"state": state.String(),
	})
}

func (l *Logging) Summary(summary models.Summary) {
	l.log.Info("Report", "conversion report", map[string]interface{}{
		"success": summary.Success,
		"aborted": summary.Aborted,
	})
}
