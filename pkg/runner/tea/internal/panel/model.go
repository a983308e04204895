package panel

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Model renders a bordered panel listing key bindings, one per row.
type Model struct {
	title    string
	bindings []key.Binding

	frame lipgloss.Style
	head  lipgloss.Style
	keys  lipgloss.Style
	desc  lipgloss.Style
}

// New returns a panel drawn in the list's accent colour.
func New(accent lipgloss.Color) Model {
	return Model{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2),
		head: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		keys: lipgloss.NewStyle().Foreground(accent),
		desc: lipgloss.NewStyle().Faint(true),
	}
}

// SetBindings replaces the panel content. Bindings without help text are
// skipped.
func (m *Model) SetBindings(title string, bindings []key.Binding) {
	m.title = title
	m.bindings = m.bindings[:0:0]
	for _, b := range bindings {
		if b.Help().Key == "" {
			continue
		}
		m.bindings = append(m.bindings, b)
	}
}

// Reset clears the panel.
func (m *Model) Reset() {
	m.title = ""
	m.bindings = nil
}

// Empty reports whether there is nothing to show.
func (m Model) Empty() bool {
	return m.title == "" && len(m.bindings) == 0
}

// View renders the panel, or "" when empty.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}
	width := 0
	for _, b := range m.bindings {
		width = max(width, lipgloss.Width(b.Help().Key))
	}
	col := m.keys.Width(width + 2)

	rows := make([]string, 0, len(m.bindings)+1)
	if m.title != "" {
		rows = append(rows, m.head.Render(m.title))
	}
	for _, b := range m.bindings {
		h := b.Help()
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, col.Render(h.Key), m.desc.Render(h.Desc)))
	}
	return m.frame.Render(strings.Join(rows, "\n"))
}
