// Package ui prints styled status lines for commands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the styles used for each kind of line.
type Palette struct {
	Title   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Accent  lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultPalette returns the colored palette.
func DefaultPalette() Palette {
	return Palette{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")).Bold(true),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")).Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// Printer writes styled lines to an output stream.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
	p Palette
}

// New returns a Printer for w. With color disabled every style renders as
// plain text.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, r: r, p: bind(r, DefaultPalette())}
}

func bind(r *lipgloss.Renderer, p Palette) Palette {
	return Palette{
		Title:   p.Title.Renderer(r),
		Info:    p.Info.Renderer(r),
		Success: p.Success.Renderer(r),
		Warn:    p.Warn.Renderer(r),
		Error:   p.Error.Renderer(r),
		Accent:  p.Accent.Renderer(r),
		Dim:     p.Dim.Renderer(r),
	}
}

// Writer returns the underlying stream.
func (p *Printer) Writer() io.Writer { return p.w }

// Title prints a heading such as "Create Aury Web".
func (p *Printer) Title(format string, args ...any) {
	fmt.Fprintln(p.w, p.p.Title.Render(fmt.Sprintf(format, args...)))
}

// Step prints a progress line.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintln(p.w, p.p.Dim.Render("•")+" "+fmt.Sprintf(format, args...))
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.w, p.p.Info.Render("ℹ")+" "+fmt.Sprintf(format, args...))
}

// Success prints a completion line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.p.Success.Render("✔ "+fmt.Sprintf(format, args...)))
}

// Warn prints a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.w, p.p.Warn.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Error prints a failure line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, p.p.Error.Render("Error:")+" "+fmt.Sprintf(format, args...))
}

// Item prints an indented key with an optional description.
func (p *Printer) Item(key, desc string) {
	line := "  " + p.p.Accent.Render(key)
	if desc != "" {
		line += " - " + desc
	}
	fmt.Fprintln(p.w, line)
}

// Detail prints an indented dimmed line.
func (p *Printer) Detail(format string, args ...any) {
	fmt.Fprintln(p.w, "    "+p.p.Dim.Render(fmt.Sprintf(format, args...)))
}

// Command prints a shell command for the user to run.
func (p *Printer) Command(cmd string) {
	fmt.Fprintln(p.w, "  "+p.p.Accent.Render(cmd))
}

// Accent styles s inline.
func (p *Printer) Accent(s string) string { return p.p.Accent.Render(s) }

// Blank prints an empty line.
func (p *Printer) Blank() { fmt.Fprintln(p.w) }

// Table prints aligned key/value rows.
func (p *Printer) Table(rows [][2]string) {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", width-len(r[0]))
		fmt.Fprintln(p.w, "  "+p.p.Accent.Render(r[0])+pad+"  "+r[1])
	}
}
