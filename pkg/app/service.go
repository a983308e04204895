package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/pantry/pkg/drag"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/migrate"
	"tableflip.dev/pantry/pkg/order"
	"tableflip.dev/pantry/pkg/store"
	"tableflip.dev/pantry/pkg/view"
)

// Service owns the in-memory state and is the only thing that mutates it.
// Every mutation runs against a copy, is persisted, and only then replaces the
// live state, so a failed save or a rejected request leaves nothing behind.
// UIs and CLIs share it; calls are serialized.
type Service struct {
	mu    sync.Mutex
	store store.Persistence
	state *list.State
	mode  list.Mode

	theme string
	now   func() time.Time
	log   *slog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source used for export names.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDefaultTheme sets the theme given to lists added without one.
func WithDefaultTheme(theme string) Option {
	return func(s *Service) {
		s.theme = strings.TrimSpace(theme)
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// ErrNoPersistence is returned by New without a gateway.
var ErrNoPersistence = errors.New("app: no persistence configured")

// New loads state and mode through p.
func New(ctx context.Context, p store.Persistence, opts ...Option) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	s := &Service{
		store: p,
		theme: list.DefaultTheme,
		now:   time.Now,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory state with what is persisted.
func (s *Service) Reload(ctx context.Context) error {
	st, err := s.store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("app: load state: %w", err)
	}
	mode, err := s.store.LoadMode()
	if err != nil {
		return fmt.Errorf("app: load mode: %w", err)
	}
	st = migrate.Upgrade(st)
	if len(st.Lists) == 0 {
		st = list.NewState()
		if err := s.store.SaveState(st); err != nil {
			return fmt.Errorf("app: save state: %w", err)
		}
	}

	s.mu.Lock()
	s.state = st
	s.mode = mode
	s.mu.Unlock()
	return nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.store.Watch(ctx)
}

// mutate runs fn against a copy of the state and commits it once persisted.
func (s *Service) mutate(op string, fn func(st *list.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(op, fn)
}

// apply is mutate for callers already holding mu.
func (s *Service) apply(op string, fn func(st *list.State) error) error {
	next, err := s.stage(op, fn)
	if err != nil {
		return err
	}
	s.state = next
	s.log.Debug("applied", "op", op)
	return nil
}

// stage runs fn against a copy of the state and saves the copy without
// committing it.
func (s *Service) stage(op string, fn func(st *list.State) error) (*list.State, error) {
	next := s.state.Clone()
	if err := fn(next); err != nil {
		s.log.Debug("rejected", "op", op, "err", err)
		return nil, err
	}
	if err := s.store.SaveState(next); err != nil {
		s.log.Error("persist failed", "op", op, "err", err)
		return nil, fmt.Errorf("app: %s: %w", op, err)
	}
	return next, nil
}

// onCurrent is mutate scoped to the current list.
func (s *Service) onCurrent(op string, fn func(l *list.List) error) error {
	return s.mutate(op, current(fn))
}

func current(fn func(l *list.List) error) func(st *list.State) error {
	return func(st *list.State) error {
		l, err := st.Current()
		if err != nil {
			return err
		}
		return fn(l)
	}
}

func required(op, field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", list.InvalidOperationError{Op: op, Reason: field + " is required"}
	}
	return v, nil
}

// Lists returns a copy of every list.
func (s *Service) Lists() []*list.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*list.List, 0, len(s.state.Lists))
	for _, l := range s.state.Lists {
		out = append(out, l.Clone())
	}
	return out
}

// Current returns a copy of the current list.
func (s *Service) Current() *list.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.state.Current()
	if err != nil {
		return nil
	}
	return l.Clone()
}

// State returns a copy of the whole document.
func (s *Service) State() *list.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Mode returns the active mode.
func (s *Service) Mode() list.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// View projects the current list in the active mode.
func (s *Service) View(opts ...view.Option) view.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, _ := s.state.Current()
	return view.Project(l.Clone(), s.mode, opts...)
}

// ViewOf projects the list id in mode without changing the active mode or
// current list.
func (s *Service) ViewOf(id string, mode list.Mode, opts ...view.Option) (view.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.state.List(id)
	if err != nil {
		return view.View{}, err
	}
	return view.Project(l.Clone(), mode, opts...), nil
}

// AddList creates a list and makes it current.
func (s *Service) AddList(name, theme string) (*list.List, error) {
	name, err := required("add list", "name", name)
	if err != nil {
		return nil, err
	}
	theme = strings.TrimSpace(theme)
	if theme == "" {
		theme = s.theme
	}
	l := list.NewList(name, theme)
	err = s.mutate("add list", func(st *list.State) error {
		st.Lists = append(st.Lists, l)
		st.CurrentListID = l.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l.Clone(), nil
}

// RenameList updates the name and theme of id. Empty values keep the
// existing ones.
func (s *Service) RenameList(id, name, theme string) error {
	name = strings.TrimSpace(name)
	theme = strings.TrimSpace(theme)
	return s.mutate("rename list", func(st *list.State) error {
		l, err := st.List(id)
		if err != nil {
			return err
		}
		if name != "" {
			l.Name = name
		}
		if theme != "" {
			l.Theme = theme
		}
		return nil
	})
}

// SwitchList makes id the current list.
func (s *Service) SwitchList(id string) error {
	return s.mutate("switch list", func(st *list.State) error {
		if _, err := st.List(id); err != nil {
			return err
		}
		st.CurrentListID = id
		return nil
	})
}

// DeleteList removes id. The last remaining list cannot be deleted.
func (s *Service) DeleteList(id string) error {
	return s.mutate("delete list", func(st *list.State) error {
		if _, err := st.List(id); err != nil {
			return err
		}
		if len(st.Lists) <= 1 {
			return list.InvalidOperationError{Op: "delete list", Reason: "at least one list must remain"}
		}
		kept := make([]*list.List, 0, len(st.Lists)-1)
		for _, l := range st.Lists {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		st.Lists = kept
		st.RepairCurrent()
		return nil
	})
}

// AddSection appends a section to mode of the current list.
func (s *Service) AddSection(mode list.Mode, name string) (list.Section, error) {
	name, err := required("add section", "name", name)
	if err != nil {
		return list.Section{}, err
	}
	sec := list.NewSection(name)
	err = s.onCurrent("add section", func(l *list.List) error {
		l.SetSections(mode, append(l.Sections(mode), sec))
		return nil
	})
	return sec, err
}

// RenameSection renames id in mode. An empty name is ignored.
func (s *Service) RenameSection(mode list.Mode, id, name string) error {
	name = strings.TrimSpace(name)
	return s.onCurrent("rename section", func(l *list.List) error {
		sec, err := l.Section(mode, id)
		if err != nil {
			return err
		}
		if name != "" {
			sec.Name = name
		}
		return nil
	})
}

// DeleteSection removes id from mode, moving its members to the end of the
// mode's default section in their existing order. The default section itself
// can be emptied but not deleted.
func (s *Service) DeleteSection(mode list.Mode, id string) error {
	return s.onCurrent("delete section", func(l *list.List) error {
		if _, err := l.Section(mode, id); err != nil {
			return err
		}
		def := defaultSection(l, mode)
		if id == def {
			return list.InvalidOperationError{Op: "delete section", Reason: "the default section cannot be deleted"}
		}
		moved := order.MergeInto(l.Items, mode, id, def)
		l.SetSections(mode, order.RemoveSection(l.Sections(mode), id))
		s.log.Debug("section deleted", "mode", mode, "section", id, "moved", moved, "into", def)
		return nil
	})
}

// defaultSection is the section that collects orphans in mode: the
// synthesized default when present, otherwise the first section.
func defaultSection(l *list.List, mode list.Mode) string {
	if _, err := l.Section(mode, list.DefaultSectionID(mode)); err == nil {
		return list.DefaultSectionID(mode)
	}
	return l.Sections(mode)[0].ID
}

// MoveSection places id immediately before beforeID in mode.
func (s *Service) MoveSection(mode list.Mode, id, beforeID string) error {
	if id == beforeID {
		return list.InvalidOperationError{Op: "move section", Reason: "section cannot be moved onto itself"}
	}
	return s.onCurrent("move section", func(l *list.List) error {
		if _, err := l.Section(mode, id); err != nil {
			return err
		}
		if _, err := l.Section(mode, beforeID); err != nil {
			return err
		}
		sections, _ := order.MoveSection(l.Sections(mode), id, beforeID)
		l.SetSections(mode, sections)
		return nil
	})
}

// AddItem appends a new item to sectionID in mode, or to the mode's first
// section when sectionID is empty. The other mode receives it at the end of
// its first section.
func (s *Service) AddItem(mode list.Mode, sectionID, text string) (*list.Item, error) {
	text, err := required("add item", "text", text)
	if err != nil {
		return nil, err
	}
	it := list.NewItem(text)
	err = s.onCurrent("add item", func(l *list.List) error {
		if sectionID == "" {
			first, _ := l.FirstSection(mode)
			sectionID = first.ID
		}
		if _, err := l.Section(mode, sectionID); err != nil {
			return err
		}
		other, ok := l.FirstSection(mode.Other())
		if !ok {
			return list.InvalidOperationError{Op: "add item", Reason: "no " + mode.Other().String() + " section"}
		}
		order.Append(l.Items, mode, sectionID, it)
		order.Append(l.Items, mode.Other(), other.ID, it)
		l.Items = append(l.Items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return it.Clone(), nil
}

// RenameItem changes the text of id. Empty text is ignored.
func (s *Service) RenameItem(id, text string) error {
	text = strings.TrimSpace(text)
	return s.onCurrent("rename item", func(l *list.List) error {
		it, err := l.Item(id)
		if err != nil {
			return err
		}
		if text != "" {
			it.Text = text
		}
		return nil
	})
}

// DeleteItem removes id and compacts its partition in both modes.
func (s *Service) DeleteItem(id string) error {
	return s.onCurrent("delete item", func(l *list.List) error {
		it, err := l.Item(id)
		if err != nil {
			return err
		}
		for _, mode := range list.Modes() {
			order.RemoveAndCompact(l.Items, mode, it.SectionID(mode), id)
		}
		kept := make([]*list.Item, 0, len(l.Items))
		for _, x := range l.Items {
			if x.ID != id {
				kept = append(kept, x)
			}
		}
		l.Items = kept
		return nil
	})
}

func (s *Service) updateItem(op, id string, fn func(it *list.Item)) (*list.Item, error) {
	var out *list.Item
	err := s.onCurrent(op, func(l *list.List) error {
		it, err := l.Item(id)
		if err != nil {
			return err
		}
		fn(it)
		out = it.Clone()
		return nil
	})
	return out, err
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// AdjustHave adds delta to the on-hand count, never going below zero.
func (s *Service) AdjustHave(id string, delta int) (*list.Item, error) {
	return s.updateItem("adjust have", id, func(it *list.Item) {
		it.HaveCount = clamp(it.HaveCount + delta)
	})
}

// AdjustWant adds delta to the wanted count, never going below zero.
func (s *Service) AdjustWant(id string, delta int) (*list.Item, error) {
	return s.updateItem("adjust want", id, func(it *list.Item) {
		it.WantCount = clamp(it.WantCount + delta)
	})
}

// ToggleShopCompleted flips the checked-off flag. Order is untouched.
func (s *Service) ToggleShopCompleted(id string) (*list.Item, error) {
	return s.updateItem("toggle completed", id, func(it *list.Item) {
		it.ShopCompleted = !it.ShopCompleted
	})
}

// MoveItem moves id in mode to sit before beforeID in destSectionID, or at the
// end of destSectionID when beforeID is empty or not there. An empty
// destSectionID means the item's current section.
func (s *Service) MoveItem(mode list.Mode, id, destSectionID, beforeID string) error {
	return s.onCurrent("move item", func(l *list.List) error {
		it, err := l.Item(id)
		if err != nil {
			return err
		}
		if destSectionID == "" {
			if beforeID == "" {
				return nil
			}
			_, err := order.MoveWithin(l.Items, mode, id, beforeID)
			return err
		}
		if _, err := l.Section(mode, destSectionID); err != nil {
			return err
		}
		if destSectionID == it.SectionID(mode) && beforeID != "" {
			_, err := order.MoveWithin(l.Items, mode, id, beforeID)
			return err
		}
		_, err = order.MoveAcross(l.Items, mode, id, destSectionID, beforeID)
		return err
	})
}

// Apply executes a resolved drop in the active mode.
func (s *Service) Apply(cmd drag.Command) error {
	mode := s.Mode()
	switch cmd.Op {
	case drag.OpMoveItem:
		return s.MoveItem(mode, cmd.ID, cmd.DestSectionID, cmd.BeforeID)
	case drag.OpMoveSection:
		return s.MoveSection(mode, cmd.ID, cmd.BeforeID)
	default:
		return nil
	}
}

// SetMode switches the active mode. Leaving shop for home settles the trip on
// the current list: every checked-off item is assumed fully restocked.
func (s *Service) SetMode(m list.Mode) error {
	if _, err := list.ParseMode(string(m)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next, settled := s.state, 0
	if s.mode == list.Shop && m == list.Home {
		var err error
		next, err = s.stage("settle trip", current(func(l *list.List) error {
			for _, it := range l.Items {
				if it.ShopCompleted {
					it.HaveCount = it.WantCount
					it.ShopCompleted = false
					settled++
				}
			}
			return nil
		}))
		if err != nil {
			return err
		}
	}
	if err := s.store.SaveMode(m); err != nil {
		s.log.Error("persist failed", "op", "set mode", "err", err)
		if next != s.state {
			if rerr := s.store.SaveState(s.state); rerr != nil {
				s.log.Error("restore failed", "op", "set mode", "err", rerr)
			}
		}
		return fmt.Errorf("app: set mode: %w", err)
	}
	if next != s.state {
		s.log.Debug("trip settled", "items", settled)
	}
	s.state, s.mode = next, m
	return nil
}

// ExportName is the file name for an export taken now.
func (s *Service) ExportName() string {
	return s.now().UTC().Format("2006-01-02T15-04-05") + ".json"
}

// Export writes the whole document as indented JSON.
func (s *Service) Export(w io.Writer) error {
	s.mu.Lock()
	st := s.state.Clone()
	s.mu.Unlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("app: export: %w", err)
	}
	return nil
}

// Import replaces the whole document with the backup read from r. A
// malformed backup leaves the current state untouched.
func (s *Service) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return list.MalformedImportError{Reason: "unreadable file", Err: err}
	}
	st, err := migrate.Parse(data)
	if err != nil {
		return err
	}
	return s.mutate("import", func(cur *list.State) error {
		*cur = *st
		return nil
	})
}
