package order

import (
	"fmt"
	"sort"

	"tableflip.dev/pantry/pkg/list"
)

// Verify checks the structural invariants of l in both modes: every mode has
// a section, every item references an existing section, and the ranks of
// every partition are exactly 0..n-1.
func Verify(l *list.List) error {
	for _, mode := range list.Modes() {
		if err := verifyMode(l, mode); err != nil {
			return fmt.Errorf("list %s (%s): %w", l.ID, mode, err)
		}
	}
	return nil
}

func verifyMode(l *list.List, mode list.Mode) error {
	sections := l.Sections(mode)
	if len(sections) == 0 {
		return fmt.Errorf("no sections")
	}
	known := make(map[string]bool, len(sections))
	for _, s := range sections {
		if known[s.ID] {
			return fmt.Errorf("duplicate section %s", s.ID)
		}
		known[s.ID] = true
	}
	ranks := map[string][]int{}
	for _, it := range l.Items {
		if it == nil {
			continue
		}
		sid := it.SectionID(mode)
		if !known[sid] {
			return fmt.Errorf("item %s references missing section %q", it.ID, sid)
		}
		ranks[sid] = append(ranks[sid], it.Index(mode))
	}
	for sid, idx := range ranks {
		sort.Ints(idx)
		for want, got := range idx {
			if want != got {
				return fmt.Errorf("section %s ranks %v are not dense", sid, idx)
			}
		}
	}
	return nil
}
