// Package view derives what a list looks like in one mode: its sections in
// sequence order, each holding its members sorted by rank, and in shop mode
// only the items still worth showing on a trip.
package view

import (
	"sort"

	"tableflip.dev/pantry/pkg/list"
)

// View is the projected, render-ready shape of one list in one mode.
type View struct {
	ListID   string
	ListName string
	Theme    string
	Mode     list.Mode
	Sections []SectionView
}

// SectionView is one section and its visible members in rank order.
type SectionView struct {
	Section list.Section
	Items   []*list.Item
}

// Count returns the number of visible items across all sections.
func (v View) Count() int {
	n := 0
	for _, s := range v.Sections {
		n += len(s.Items)
	}
	return n
}

// Option customises Project behaviour.
type Option func(*projectOptions)

// WithStocked keeps fully stocked items in the shop projection.
func WithStocked() Option {
	return func(opts *projectOptions) {
		opts.stocked = true
	}
}

type projectOptions struct {
	stocked bool
}

// ToBuy is max(0, want-have).
func ToBuy(it *list.Item) int {
	return it.ToBuy()
}

// Visible reports whether it belongs in the given mode's view. Home shows
// everything; shop hides items that are stocked and not checked off.
func Visible(it *list.Item, mode list.Mode) bool {
	if mode != list.Shop {
		return true
	}
	return ToBuy(it) > 0 || it.ShopCompleted
}

// Project builds the view of l in mode. It never writes to l; items in the
// result are the list's own pointers and must be treated as read-only.
func Project(l *list.List, mode list.Mode, opts ...Option) View {
	config := &projectOptions{}
	for _, opt := range opts {
		opt(config)
	}
	if l == nil {
		return View{Mode: mode}
	}

	v := View{
		ListID:   l.ID,
		ListName: l.Name,
		Theme:    l.Theme,
		Mode:     mode,
	}
	if v.Theme == "" {
		v.Theme = list.DefaultTheme
	}

	buckets := make(map[string][]*list.Item, len(l.Sections(mode)))
	for _, it := range l.Items {
		if it == nil {
			continue
		}
		if !config.stocked && !Visible(it, mode) {
			continue
		}
		sid := it.SectionID(mode)
		buckets[sid] = append(buckets[sid], it)
	}

	v.Sections = make([]SectionView, 0, len(l.Sections(mode)))
	for _, sec := range l.Sections(mode) {
		members := buckets[sec.ID]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Index(mode) < members[j].Index(mode)
		})
		if members == nil {
			members = []*list.Item{}
		}
		v.Sections = append(v.Sections, SectionView{Section: sec, Items: members})
	}
	return v
}

// Find returns the section view with id.
func (v View) Find(sectionID string) (SectionView, bool) {
	for _, s := range v.Sections {
		if s.Section.ID == sectionID {
			return s, true
		}
	}
	return SectionView{}, false
}
