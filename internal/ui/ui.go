// Package ui renders spur's terminal output: the dev-mode status lines, the
// create-app progress messages, and error reporting. Styling is done with
// lipgloss; every printer writes to an injectable io.Writer so tests can
// capture output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sigilStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Printer renders status lines to a single writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w. A nil w means os.Stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Status prints a steady-state line with the green sigil prefix.
func (p *Printer) Status(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", sigilStyle.Render("▲"), fmt.Sprintf(format, args...))
}

// Shutdown prints a teardown line with the yellow sigil prefix.
func (p *Printer) Shutdown(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", warnStyle.Render("▲"), fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error with the bold red prefix and, when present, a dimmed
// suggestion on the following line.
func (p *Printer) Error(err error, suggestion string) {
	fmt.Fprintf(p.w, "%s %v\n", errorStyle.Render("Error:"), err)
	if suggestion != "" {
		fmt.Fprintf(p.w, "%s\n", dimStyle.Render("  hint: "+suggestion))
	}
}

// Header prints a bold section header followed by a blank line.
func (p *Printer) Header(text string) {
	fmt.Fprintf(p.w, "%s\n\n", headerStyle.Render(text))
}

// Success prints a bold green message.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s\n", successStyle.Render(fmt.Sprintf(format, args...)))
}

// Hint prints a dimmed hint line.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Step prints an indented plain line, with accent styling applied to value.
func (p *Printer) Step(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", label, accentStyle.Render(value))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// JoinNames formats process names for the "watching:" line, e.g.
// "app" or "app + css".
func JoinNames(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " + ")
}
