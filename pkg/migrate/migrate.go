// Package migrate turns whatever was persisted or imported into a State that
// satisfies the list invariants. Older documents are upgraded in place:
// a bare item array becomes a single list, lists without sections get the
// default ones, and every partition is re-ranked densely.
package migrate

import (
	"bytes"
	"encoding/json"
	"errors"

	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/order"
)

// Decode reads a persisted document. It accepts the current state object and
// the legacy flat item array. Empty input decodes to a state with no lists.
func Decode(data []byte) (*list.State, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &list.State{Lists: []*list.List{}}, nil
	}
	if data[0] == '[' {
		items, err := DecodeLegacy(data)
		if err != nil {
			return nil, err
		}
		return WrapLegacy(items, list.NewID()), nil
	}
	var raw list.State
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Upgrade(&raw), nil
}

// DecodeLegacy reads the flat item array written before lists existed.
func DecodeLegacy(data []byte) ([]*list.Item, error) {
	var items []*list.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Parse validates an imported backup and upgrades it. Only structure is
// checked: the document must be an object whose lists field is a non-empty
// array of list objects.
func Parse(data []byte) (*list.State, error) {
	var probe struct {
		Lists json.RawMessage `json:"lists"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, list.MalformedImportError{Reason: "not a JSON object", Err: err}
	}
	lists := bytes.TrimSpace(probe.Lists)
	if len(lists) == 0 || lists[0] != '[' {
		return nil, list.MalformedImportError{Reason: "missing lists array"}
	}
	var raw list.State
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, list.MalformedImportError{Reason: "unreadable lists", Err: err}
	}
	st := Upgrade(&raw)
	if len(st.Lists) == 0 {
		return nil, list.MalformedImportError{Reason: "no lists"}
	}
	return st, nil
}

// WrapLegacy places items into one synthesized list with the given id. Each
// item lands in the default section of both modes, keeping its old ranks as
// the ordering hint.
func WrapLegacy(items []*list.Item, id string) *list.State {
	l := &list.List{
		ID:           id,
		Name:         list.DefaultListName,
		HomeSections: []list.Section{list.DefaultSection(list.Home)},
		ShopSections: []list.Section{list.DefaultSection(list.Shop)},
		Items:        make([]*list.Item, 0, len(items)),
	}
	for _, it := range items {
		if it == nil {
			continue
		}
		cp := it.Clone()
		for _, mode := range list.Modes() {
			cp.At(mode).SectionID = list.DefaultSectionID(mode)
		}
		l.Items = append(l.Items, cp)
	}
	return Upgrade(&list.State{Lists: []*list.List{l}, CurrentListID: id})
}

// Upgrade returns a repaired deep copy of raw. It is idempotent: upgrading an
// upgraded state returns an equal state.
func Upgrade(raw *list.State) *list.State {
	st := raw.Clone()
	if st == nil {
		st = &list.State{}
	}
	lists := make([]*list.List, 0, len(st.Lists))
	seen := map[string]bool{}
	for _, l := range st.Lists {
		if l == nil {
			continue
		}
		if l.ID == "" || seen[l.ID] {
			l.ID = list.NewID()
		}
		seen[l.ID] = true
		upgradeList(l)
		lists = append(lists, l)
	}
	st.Lists = lists
	st.RepairCurrent()
	return st
}

func upgradeList(l *list.List) {
	if l.Theme == "" {
		l.Theme = list.DefaultTheme
	}
	for _, mode := range list.Modes() {
		l.SetSections(mode, dedupeSections(l.Sections(mode), mode))
	}

	items := make([]*list.Item, 0, len(l.Items))
	seen := map[string]bool{}
	for _, it := range l.Items {
		if it == nil {
			continue
		}
		if it.ID == "" || seen[it.ID] {
			it.ID = list.NewID()
		}
		seen[it.ID] = true
		if it.HaveCount < 0 {
			it.HaveCount = 0
		}
		if it.WantCount < 0 {
			it.WantCount = 0
		}
		for _, mode := range list.Modes() {
			p := it.At(mode)
			if !l.HasSection(mode, p.SectionID) {
				first, _ := l.FirstSection(mode)
				p.SectionID = first.ID
			}
		}
		items = append(items, it)
	}
	l.Items = items

	for _, mode := range list.Modes() {
		order.Compact(l.Items, mode)
	}
}

func dedupeSections(sections []list.Section, mode list.Mode) []list.Section {
	out := make([]list.Section, 0, len(sections))
	seen := map[string]bool{}
	for _, s := range sections {
		if s.ID == "" || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		out = append(out, list.DefaultSection(mode))
	}
	return out
}

// IsMalformed reports whether err came from a rejected import.
func IsMalformed(err error) bool {
	return errors.Is(err, list.ErrMalformedImport)
}
