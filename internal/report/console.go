package report

import (
	"fmt"
	"io"

	"zoop-converter/internal/models"

	"github.com/fatih/color"
)

// Console prints report events for the headless convert command
type Console struct {
	out     io.Writer
	palette map[Color]*color.Color
	state   *color.Color
	bold    *color.Color
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out: out,
		palette: map[Color]*color.Color{
			ColorInfo:    color.New(color.FgCyan),
			ColorSuccess: color.New(color.FgGreen),
			ColorFailure: color.New(color.FgRed),
		},
		state: color.New(color.Faint),
		bold:  color.New(color.Bold),
	}
}

func (c *Console) Log(tag Color, message string) {
	if painter, ok := c.palette[tag]; ok {
		painter.Fprintln(c.out, message)
		return
	}
	fmt.Fprintln(c.out, message)
}

func (c *Console) SetState(state models.ConversionState) {
	c.state.Fprintf(c.out, "[%s]\n", state)
}

func (c *Console) Summary(summary models.Summary) {
	c.bold.Fprintln(c.out, SummaryText(summary))
}
