package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	// UUIDv7 ids are 36 characters.
	spacing = strings.Repeat(" ", 38)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.out(), id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
	}
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(id, title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	pp.id(id)
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Banner prints the list name in its theme colour with the active mode.
func (pp *PrettyPrint) Banner(v view.View) {
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.Theme)).Render(v.ListName)
	if color.NoColor {
		name = v.ListName
	}
	c := color.New(color.Faint)
	pp.id(v.ListID)
	_, _ = fmt.Fprint(pp.out(), name)
	_, _ = c.Fprintf(pp.out(), "  [%s]\n\n", v.Mode)
}

// View prints every section of v with its items.
func (pp *PrettyPrint) View(v view.View) {
	pp.Banner(v)
	for _, s := range v.Sections {
		pp.TitleWithCount(s.Section.ID, s.Section.Name, len(s.Items))
		pp.Section(v.Mode, s.Items...)
	}
}

// Section prints items in the style of mode.
func (pp *PrettyPrint) Section(mode list.Mode, items ...*list.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	need := color.New(color.FgHiRed)

	for _, it := range items {
		pp.id(it.ID)
		switch mode {
		case list.Shop:
			if it.ShopCompleted {
				_, _ = done.Fprintf(pp.out(), "[x] %s\n", it.Text)
				continue
			}
			_, _ = t.Fprintf(pp.out(), "[ ] %s", it.Text)
			_, _ = need.Fprintf(pp.out(), "  ×%d\n", view.ToBuy(it))
		default:
			_, _ = t.Fprintf(pp.out(), "%2d/%-2d %s", it.HaveCount, it.WantCount, it.Text)
			if n := view.ToBuy(it); n > 0 {
				_, _ = need.Fprintf(pp.out(), "  need %d", n)
			}
			_, _ = fmt.Fprintln(pp.out(), "")
		}
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Lists renders a table of lists, marking the current one.
func (pp *PrettyPrint) Lists(lists []*list.List, currentID string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Theme"), bold.Sprint("Items"), bold.Sprint("Sections"))
	for _, l := range lists {
		marker := ""
		if l.ID == currentID {
			marker = "*"
		}
		tbl.AddRow(marker, l.ID, l.Name, l.Theme, len(l.Items),
			fmt.Sprintf("%d home / %d shop", len(l.HomeSections), len(l.ShopSections)))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Warn prints a non-fatal notice.
func (pp *PrettyPrint) Warn(format string, args ...any) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), format+"\n", args...)
}
