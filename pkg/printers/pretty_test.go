package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/view"
)

func sample() *list.List {
	l := list.NewList("Groceries", "#00ff00")
	milk := list.NewItem("milk")
	milk.WantCount = 3
	milk.At(list.Home).SectionID = list.DefaultSectionID(list.Home)
	milk.At(list.Shop).SectionID = list.DefaultSectionID(list.Shop)
	eggs := list.NewItem("eggs")
	eggs.ShopCompleted = true
	eggs.At(list.Home).SectionID = list.DefaultSectionID(list.Home)
	eggs.At(list.Home).Index = 1
	eggs.At(list.Shop).SectionID = list.DefaultSectionID(list.Shop)
	eggs.At(list.Shop).Index = 1
	l.Items = []*list.Item{milk, eggs}
	return l
}

func TestViewHome(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.View(view.Project(sample(), list.Home))

	out := buf.String()
	for _, want := range []string{"Groceries  [home]", "Uncategorized - 2 items", " 0/3  milk  need 3", " 0/1  eggs  need 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestViewShop(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.View(view.Project(sample(), list.Shop))

	out := buf.String()
	if !strings.Contains(out, "[ ] milk  ×3") || !strings.Contains(out, "[x] eggs") {
		t.Fatalf("unexpected shop output:\n%s", out)
	}
}

func TestEmptySectionAndIDs(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	l := list.NewList("Empty", "")
	pp.View(view.Project(l, list.Home))

	out := buf.String()
	if !strings.Contains(out, "none") {
		t.Fatalf("expected empty marker:\n%s", out)
	}
	if !strings.Contains(out, list.DefaultSectionID(list.Home)) {
		t.Fatalf("expected section id with ShowID:\n%s", out)
	}
}

func TestLists(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	a := sample()
	b := list.NewList("Hardware", "")
	pp.Lists([]*list.List{a, b}, b.ID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "*") {
		t.Fatalf("expected current marker on Hardware row: %q", lines[2])
	}
	if !strings.Contains(lines[1], "1 home / 1 shop") {
		t.Fatalf("expected section counts: %q", lines[1])
	}
}
