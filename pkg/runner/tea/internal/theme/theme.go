package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI. The accent colour
// follows the theme of the list on screen.
type Theme struct {
	Accent lipgloss.Color

	Title    lipgloss.Style
	Mode     lipgloss.Style
	Section  lipgloss.Style
	Item     lipgloss.Style
	Done     lipgloss.Style
	Count    lipgloss.Style
	Cursor   lipgloss.Style
	Dragging lipgloss.Style
	Footer   FooterTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return ForAccent("")
}

// ForAccent returns the theme tinted with accent, a hex or ANSI colour. An
// empty accent keeps the default blue.
func ForAccent(accent string) Theme {
	accent = strings.TrimSpace(accent)
	if accent == "" {
		accent = "#4a90e2"
	}
	c := lipgloss.Color(accent)

	return Theme{
		Accent: c,
		Title: lipgloss.NewStyle().
			Foreground(c).
			Bold(true).
			Padding(0, 1),
		Mode: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(c).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Foreground(c).
			Bold(true).
			Underline(true),
		Item:  lipgloss.NewStyle(),
		Done:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Count: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Cursor: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		Dragging: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Reverse(true),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
			Prompt: lipgloss.NewStyle().Foreground(c),
		},
	}
}
