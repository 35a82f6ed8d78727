package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors
var (
	colorAlias   = lipgloss.Color("#00BFFF")
	colorSuccess = lipgloss.Color("#00FF7F")
	colorMuted   = lipgloss.Color("#808080")
	colorTag     = lipgloss.Color("#FFD700")
)

// styles renders CLI output, plain when color is off
type styles struct {
	color bool

	alias   lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
	tag     lipgloss.Style
	header  lipgloss.Style
}

func newStyles(color bool) styles {
	return styles{
		color:   color,
		alias:   lipgloss.NewStyle().Foreground(colorAlias).Bold(true),
		success: lipgloss.NewStyle().Foreground(colorSuccess),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
		tag:     lipgloss.NewStyle().Foreground(colorTag),
		header:  lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

func (s styles) Alias(text string) string   { return s.render(s.alias, text) }
func (s styles) Success(text string) string { return s.render(s.success, text) }
func (s styles) Muted(text string) string   { return s.render(s.muted, text) }
func (s styles) Tag(text string) string     { return s.render(s.tag, text) }
func (s styles) Header(text string) string  { return s.render(s.header, text) }

// isTerminal reports whether w is an interactive terminal that accepts color
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
