package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorForcing pins the lipgloss colour profile. disable wins over force;
// with neither set the profile is detected from stdout.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
	}
}

// Printer writes one-line status messages in the ✔/✖ style.
type Printer struct {
	Out, Err io.Writer
}

func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{Out: out, Err: err}
}

func (p *Printer) OK(msg string) {
	t := Current()
	fmt.Fprintln(p.Out, t.Success.Render(t.SymOK+" "+msg))
}

func (p *Printer) Info(msg string) {
	t := Current()
	fmt.Fprintln(p.Out, t.Info.Render(t.SymInfo+" "+msg))
}

func (p *Printer) Warn(msg string) {
	t := Current()
	fmt.Fprintln(p.Err, t.Warning.Render(t.SymWarn+" "+msg))
}

func (p *Printer) Fail(msg string) {
	t := Current()
	fmt.Fprintln(p.Err, t.Fail.Render(t.SymFail+" "+msg))
}
