package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status symbols
const (
	SymbolSuccess = "✓"
	SymbolFailure = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

// Printer writes styled lines to one stream
type Printer struct {
	w      io.Writer
	format Format
	styles map[string]lipgloss.Style
}

// NewPrinter binds the default styles to w. FormatAuto must be resolved by
// the caller; anything other than FormatTerminal renders plain text.
func NewPrinter(w io.Writer, format Format) *Printer {
	return NewPrinterWithStyles(w, format, DefaultStyles())
}

// NewPrinterWithStyles binds the given styles to w
func NewPrinterWithStyles(w io.Writer, format Format, cfg *StyleConfig) *Printer {
	r := lipgloss.NewRenderer(w)
	if format != FormatTerminal {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, format: format, styles: cfg.build(r)}
}

// Writer returns the underlying stream
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Format returns the format the printer renders
func (p *Printer) Format() Format {
	return p.format
}

// Style returns a named style; unknown names render unstyled
func (p *Printer) Style(name string) lipgloss.Style {
	if s, ok := p.styles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render renders s with a named style
func (p *Printer) Render(name, s string) string {
	return p.Style(name).Render(s)
}

// Println writes an unstyled line
func (p *Printer) Println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

// Line writes a line in a named style
func (p *Printer) Line(name, s string) {
	p.Println(p.Render(name, s))
}

func (p *Printer) Success(s string) { p.Line("success", SymbolSuccess+" "+s) }
func (p *Printer) Failure(s string) { p.Line("error", SymbolFailure+" "+s) }
func (p *Printer) Warning(s string) { p.Line("warning", SymbolWarning+" "+s) }
func (p *Printer) Info(s string)    { p.Line("info", SymbolInfo+" "+s) }
func (p *Printer) Heading(s string) { p.Line("heading", s) }
func (p *Printer) Muted(s string)   { p.Line("muted", s) }

// Rule writes a horizontal separator
func (p *Printer) Rule(width int) {
	p.Line("heading", strings.Repeat("=", width))
}

// Blank writes an empty line
func (p *Printer) Blank() {
	p.Println("")
}
