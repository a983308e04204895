package options

import "strings"

// Wrap80 wraps help text for an 80 column terminal.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap fills text to width. Blank lines separate paragraphs and survive
// wrapping; words longer than width get a line of their own.
func Wrap(text string, width int) string {
	paras := strings.Split(strings.TrimSpace(text), "\n\n")
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		var b strings.Builder
		line := 0
		for _, w := range strings.Fields(p) {
			switch {
			case line == 0:
			case line+1+len(w) > width:
				b.WriteByte('\n')
				line = 0
			default:
				b.WriteByte(' ')
				line++
			}
			b.WriteString(w)
			line += len(w)
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n\n")
}
