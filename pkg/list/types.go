// Package list defines the persisted shopping list schema: lists, the two
// per-mode section sequences, and items with one placement per mode.
package list

import (
	"fmt"
	"strings"
)

// Mode identifies one of the two independent views over a list.
type Mode string

const (
	// Home is the inventory view grouped into home sections.
	Home Mode = "home"
	// Shop is the trip-planning view, filtered to items still needed.
	Shop Mode = "shop"
)

// Modes returns both modes in a stable order.
func Modes() []Mode {
	return []Mode{Home, Shop}
}

// ParseMode converts user input into a Mode.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case Home, Shop:
		return m, nil
	default:
		return Home, InvalidOperationError{Op: "mode", Reason: fmt.Sprintf("unknown mode %q", raw)}
	}
}

// Other returns the mode not equal to m.
func (m Mode) Other() Mode {
	if m == Shop {
		return Home
	}
	return Shop
}

func (m Mode) String() string {
	return string(m)
}

const (
	// DefaultTheme is the accent colour given to lists created without one.
	DefaultTheme = "#4a90e2"
	// DefaultListName names the list synthesized on a fresh start or legacy upgrade.
	DefaultListName = "Grocery List"
	// DefaultSectionName names the first section of each mode.
	DefaultSectionName = "Uncategorized"

	defaultHomeSectionID = "sec-h-def"
	defaultShopSectionID = "sec-s-def"
)

// DefaultSectionID is the id of the default section synthesized for mode.
func DefaultSectionID(m Mode) string {
	if m == Shop {
		return defaultShopSectionID
	}
	return defaultHomeSectionID
}

// DefaultSection returns a fresh default section for mode.
func DefaultSection(m Mode) Section {
	return Section{ID: DefaultSectionID(m), Name: DefaultSectionName}
}

// Section is a named group of items within one mode of one list. Sections
// carry no index of their own; their order is their position in the list's
// section sequence.
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewSection creates a section with a fresh id.
func NewSection(name string) Section {
	return Section{ID: "sec-" + NewID(), Name: name}
}

// List owns its sections and items.
type List struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Theme        string    `json:"theme,omitempty"`
	HomeSections []Section `json:"homeSections"`
	ShopSections []Section `json:"shopSections"`
	Items        []*Item   `json:"items"`
}

// NewList returns an empty list with one default section per mode.
func NewList(name, theme string) *List {
	if strings.TrimSpace(theme) == "" {
		theme = DefaultTheme
	}
	return &List{
		ID:           NewID(),
		Name:         name,
		Theme:        theme,
		HomeSections: []Section{DefaultSection(Home)},
		ShopSections: []Section{DefaultSection(Shop)},
		Items:        []*Item{},
	}
}

// Sections returns the section sequence for mode.
func (l *List) Sections(m Mode) []Section {
	if m == Shop {
		return l.ShopSections
	}
	return l.HomeSections
}

// SetSections replaces the section sequence for mode.
func (l *List) SetSections(m Mode, sections []Section) {
	if m == Shop {
		l.ShopSections = sections
		return
	}
	l.HomeSections = sections
}

// Section looks up a section by id within mode.
func (l *List) Section(m Mode, id string) (*Section, error) {
	sections := l.Sections(m)
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i], nil
		}
	}
	return nil, NotFoundError{Kind: "section", ID: id}
}

// SectionByRef finds a section of mode by id, falling back to a
// case-insensitive name match.
func (l *List) SectionByRef(m Mode, ref string) (Section, error) {
	ref = strings.TrimSpace(ref)
	if s, err := l.Section(m, ref); err == nil {
		return *s, nil
	}
	for _, s := range l.Sections(m) {
		if strings.EqualFold(s.Name, ref) {
			return s, nil
		}
	}
	return Section{}, NotFoundError{Kind: "section", ID: ref}
}

// HasSection reports whether id names a section in mode.
func (l *List) HasSection(m Mode, id string) bool {
	_, err := l.Section(m, id)
	return err == nil
}

// FirstSection returns the default (first) section of mode.
func (l *List) FirstSection(m Mode) (Section, bool) {
	sections := l.Sections(m)
	if len(sections) == 0 {
		return Section{}, false
	}
	return sections[0], true
}

// Item looks up an item by id.
func (l *List) Item(id string) (*Item, error) {
	for _, it := range l.Items {
		if it != nil && it.ID == id {
			return it, nil
		}
	}
	return nil, NotFoundError{Kind: "item", ID: id}
}

// State is the whole persisted document.
type State struct {
	Lists         []*List `json:"lists"`
	CurrentListID string  `json:"currentListId"`
}

// NewState returns a state holding a single fresh list.
func NewState() *State {
	l := NewList(DefaultListName, DefaultTheme)
	return &State{Lists: []*List{l}, CurrentListID: l.ID}
}

// List looks up a list by id.
func (s *State) List(id string) (*List, error) {
	for _, l := range s.Lists {
		if l != nil && l.ID == id {
			return l, nil
		}
	}
	return nil, NotFoundError{Kind: "list", ID: id}
}

// Current returns the current list.
func (s *State) Current() (*List, error) {
	return s.List(s.CurrentListID)
}

// RepairCurrent points CurrentListID at the first list when it no longer
// resolves. It reports whether a repair happened.
func (s *State) RepairCurrent() bool {
	if _, err := s.Current(); err == nil {
		return false
	}
	if len(s.Lists) == 0 {
		changed := s.CurrentListID != ""
		s.CurrentListID = ""
		return changed
	}
	s.CurrentListID = s.Lists[0].ID
	return true
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	cp := *l
	cp.HomeSections = append([]Section(nil), l.HomeSections...)
	cp.ShopSections = append([]Section(nil), l.ShopSections...)
	cp.Items = make([]*Item, 0, len(l.Items))
	for _, it := range l.Items {
		cp.Items = append(cp.Items, it.Clone())
	}
	return &cp
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	cp := &State{CurrentListID: s.CurrentListID, Lists: make([]*List, 0, len(s.Lists))}
	for _, l := range s.Lists {
		cp.Lists = append(cp.Lists, l.Clone())
	}
	return cp
}
