package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorSuccess = lipgloss.Color("#39FF14")
	colorError   = lipgloss.Color("#FF3131")
	colorMuted   = lipgloss.Color("#888888")
)

// styles are bound to the output writer so colours are dropped when it is
// not a terminal.
type styles struct {
	header  lipgloss.Style
	muted   lipgloss.Style
	banner  lipgloss.Style
	field   lipgloss.Style
	success lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		muted: r.NewStyle().
			Foreground(colorMuted),
		banner: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		field: r.NewStyle().
			Foreground(colorError).
			PaddingLeft(2),
		success: r.NewStyle().
			Foreground(colorSuccess),
	}
}
