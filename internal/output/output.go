// Package output provides styled, user-facing terminal messages.
//
// Messages are status lines for people (created, failed, next steps). Data a
// command produces, like triangle rows, is written by the command itself so it
// stays pipeable.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled messages to a writer.
type Printer struct {
	w       io.Writer
	verbose bool
	quiet   bool
}

// New creates a Printer. A nil w writes to stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// SetVerbose enables or disables Verbose messages.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// SetQuiet suppresses everything except errors.
func (p *Printer) SetQuiet(q bool) {
	p.quiet = q
}

// Success prints a completed operation.
//
//	p.Success("Invalidation created: I2J0I21PCUYOIK")
func (p *Printer) Success(msg string) {
	p.print(successStyle, "✔ ", msg)
}

// Error prints a failure. It is shown even in quiet mode.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, errorStyle.Render("✘ "+msg))
}

// Warn prints something the user should look at.
func (p *Printer) Warn(msg string) {
	p.print(warnStyle, "! ", msg)
}

// Info prints a status update or heading.
func (p *Printer) Info(msg string) {
	p.print(infoStyle, "• ", msg)
}

// Step prints an indented sub-item.
//
//	p.Info("Next steps:")
//	p.Step("plume site check")
func (p *Printer) Step(msg string) {
	p.print(stepStyle, "   ", msg)
}

// Verbose prints a debug message only when verbose mode is on.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		p.print(stepStyle, "… ", msg)
	}
}

func (p *Printer) print(style lipgloss.Style, prefix, msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.w, style.Render(prefix+msg))
}
