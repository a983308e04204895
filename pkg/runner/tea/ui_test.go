package teaui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/store"
)

type memoryStore struct {
	state *list.State
	mode  list.Mode
}

func (m *memoryStore) LoadState(context.Context) (*list.State, error) {
	if m.state == nil {
		return &list.State{}, nil
	}
	return m.state.Clone(), nil
}

func (m *memoryStore) SaveState(st *list.State) error {
	m.state = st.Clone()
	return nil
}

func (m *memoryStore) LoadMode() (list.Mode, error) {
	if m.mode == "" {
		return list.Home, nil
	}
	return m.mode, nil
}

func (m *memoryStore) SaveMode(mode list.Mode) error {
	m.mode = mode
	return nil
}

func (m *memoryStore) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func (m *memoryStore) BasePath() string {
	return ""
}

func newTestModel(t *testing.T, items ...string) (Model, *app.Service, *memoryStore) {
	t.Helper()
	ms := &memoryStore{}
	svc, err := app.New(context.Background(), ms)
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	for _, text := range items {
		if _, err := svc.AddItem(list.Home, "", text); err != nil {
			t.Fatalf("AddItem(%q) failed: %v", text, err)
		}
	}
	return New(svc), svc, ms
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func homeOrder(t *testing.T, svc *app.Service, sectionID string) []string {
	t.Helper()
	v, err := svc.ViewOf(svc.Current().ID, list.Home)
	if err != nil {
		t.Fatalf("ViewOf failed: %v", err)
	}
	sv, ok := v.Find(sectionID)
	if !ok {
		t.Fatalf("section %s not in view", sectionID)
	}
	var out []string
	for _, it := range sv.Items {
		out = append(out, it.Text)
	}
	return out
}

func TestNewFlattensSectionsAndItems(t *testing.T) {
	m, _, _ := newTestModel(t, "apples", "bread")

	if len(m.rows) != 3 {
		t.Fatalf("expected header plus two items, got %d rows", len(m.rows))
	}
	if m.rows[0].kind != rowSection || m.rows[0].section.ID != list.DefaultSectionID(list.Home) {
		t.Fatalf("expected default section header first, got %+v", m.rows[0])
	}
	if m.rows[2].item.Text != "bread" {
		t.Fatalf("expected bread last, got %q", m.rows[2].item.Text)
	}

	out := m.View()
	for _, want := range []string{list.DefaultListName, "apples", "bread", "home"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestAddItemFromInput(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m = press(t, m, "a")
	if m.mode != modeInsert || m.action != actionAddItem {
		t.Fatalf("expected insert mode for add, got mode=%d action=%d", m.mode, m.action)
	}
	m = press(t, m, "milk", "enter")
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after enter")
	}
	if got := homeOrder(t, svc, list.DefaultSectionID(list.Home)); len(got) != 1 || got[0] != "milk" {
		t.Fatalf("expected milk to be added, got %v", got)
	}
	if r, ok := m.selected(); !ok || r.kind != rowItem || r.item.Text != "milk" {
		t.Fatalf("expected cursor on the new item")
	}
}

func TestEscCancelsInput(t *testing.T) {
	m, svc, _ := newTestModel(t)
	m = press(t, m, "a", "eggs", "esc")
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after esc")
	}
	if n := len(svc.Current().Items); n != 0 {
		t.Fatalf("expected no items, got %d", n)
	}
}

func TestRenameItemPrefillsText(t *testing.T) {
	m, svc, _ := newTestModel(t, "app")
	m = press(t, m, "j", "r", "le", "enter")

	it := svc.Current().Items[0]
	if it.Text != "apple" {
		t.Fatalf("expected renamed text apple, got %q", it.Text)
	}
}

func TestKeyboardDragReordersItems(t *testing.T) {
	m, svc, _ := newTestModel(t, "a", "b", "c")
	def := list.DefaultSectionID(list.Home)

	m = press(t, m, "j", "j", "j", " ")
	if !m.drag.Active() {
		t.Fatalf("expected drag to start")
	}
	m = press(t, m, "k", "k", " ")
	if m.drag.Active() {
		t.Fatalf("expected drag to end on drop")
	}

	got := strings.Join(homeOrder(t, svc, def), ",")
	if got != "c,a,b" {
		t.Fatalf("expected c,a,b, got %s", got)
	}
	if r, _ := m.selected(); r.item == nil || r.item.Text != "c" {
		t.Fatalf("expected cursor to follow the dragged item")
	}
}

func TestDragCancelLeavesOrder(t *testing.T) {
	m, svc, _ := newTestModel(t, "a", "b")
	m = press(t, m, "j", " ", "j", "x", "esc")
	if m.drag.Active() {
		t.Fatalf("expected esc to end the drag")
	}
	if got := strings.Join(homeOrder(t, svc, list.DefaultSectionID(list.Home)), ","); got != "a,b" {
		t.Fatalf("expected order unchanged, got %s", got)
	}
	if svc.Current().Items[1].ShopCompleted {
		t.Fatalf("keys other than drop should be ignored while dragging")
	}

	// a fresh drag works after a cancel
	m = press(t, m, " ", "k", " ")
	if got := strings.Join(homeOrder(t, svc, list.DefaultSectionID(list.Home)), ","); got != "b,a" {
		t.Fatalf("expected b,a, got %s", got)
	}
}

func TestDragItemOntoSectionHeaderAppends(t *testing.T) {
	m, svc, _ := newTestModel(t, "a", "b")
	sec, err := svc.AddSection(list.Home, "Freezer")
	if err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	m.refresh()

	// rows: [Uncategorized, a, b, Freezer]
	m = press(t, m, "j", " ", "j", "j", " ")
	if got := homeOrder(t, svc, sec.ID); len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected a in Freezer, got %v", got)
	}
	if got := homeOrder(t, svc, list.DefaultSectionID(list.Home)); len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected only b left, got %v", got)
	}
}

func TestDragSectionReordersSections(t *testing.T) {
	m, svc, _ := newTestModel(t, "a")
	if _, err := svc.AddSection(list.Home, "Freezer"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	m.refresh()

	// rows: [Uncategorized, a, Freezer]; drop Freezer on the item row of the first section
	m = press(t, m, "j", "j", " ", "k", " ")
	sections := svc.Current().HomeSections
	if sections[0].Name != "Freezer" {
		t.Fatalf("expected Freezer first, got %+v", sections)
	}
}

func TestModeToggleFiltersAndSettles(t *testing.T) {
	m, svc, _ := newTestModel(t, "milk", "salt")
	if _, err := svc.AdjustHave(svc.Current().Items[1].ID, 1); err != nil {
		t.Fatalf("AdjustHave failed: %v", err)
	}
	m.refresh()

	m = press(t, m, "tab")
	if svc.Mode() != list.Shop {
		t.Fatalf("expected shop mode")
	}
	// salt is stocked and hidden: rows are [Uncategorized, milk]
	if len(m.rows) != 2 || m.rows[1].item.Text != "milk" {
		t.Fatalf("expected only milk in shop, got %d rows", len(m.rows))
	}

	m = press(t, m, "j", "x")
	if !svc.Current().Items[0].ShopCompleted {
		t.Fatalf("expected milk checked off")
	}
	m = press(t, m, "tab")
	milk := svc.Current().Items[0]
	if svc.Mode() != list.Home || milk.ShopCompleted || milk.HaveCount != milk.WantCount {
		t.Fatalf("expected trip settled, got %+v", milk)
	}
}

func TestCountKeysClampAtZero(t *testing.T) {
	m, svc, _ := newTestModel(t, "milk")
	m = press(t, m, "j", "-", "-", ">", ">", "+")
	it := svc.Current().Items[0]
	if it.HaveCount != 1 || it.WantCount != 3 {
		t.Fatalf("expected have=1 want=3, got have=%d want=%d", it.HaveCount, it.WantCount)
	}
}

func TestDeleteLastListIsRefused(t *testing.T) {
	m, svc, _ := newTestModel(t, "milk")
	m = press(t, m, "D")
	if !m.failed {
		t.Fatalf("expected an error status, got %q", m.status)
	}
	if len(svc.Lists()) != 1 {
		t.Fatalf("expected the list to survive")
	}
}

func TestNewListAndCycle(t *testing.T) {
	m, svc, _ := newTestModel(t)
	first := svc.Current().ID

	m = press(t, m, "L", "Hardware", "enter")
	if m.view.ListName != "Hardware" {
		t.Fatalf("expected new list on screen, got %q", m.view.ListName)
	}
	m = press(t, m, "n")
	if svc.Current().ID != first {
		t.Fatalf("expected to cycle back to the first list")
	}
}

func TestDeleteSectionMergesIntoDefault(t *testing.T) {
	m, svc, _ := newTestModel(t, "a")
	sec, err := svc.AddSection(list.Home, "Freezer")
	if err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	if _, err := svc.AddItem(list.Home, sec.ID, "peas"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	m.refresh()

	// rows: [Uncategorized, a, Freezer, peas]
	m = press(t, m, "j", "j", "d")
	if svc.Current().HasSection(list.Home, sec.ID) {
		t.Fatalf("expected Freezer deleted")
	}
	if got := strings.Join(homeOrder(t, svc, list.DefaultSectionID(list.Home)), ","); got != "a,peas" {
		t.Fatalf("expected a,peas, got %s", got)
	}
}

func TestDeleteDefaultSectionRefused(t *testing.T) {
	m, svc, _ := newTestModel(t, "a")
	if _, err := svc.AddSection(list.Home, "Freezer"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	m.refresh()

	// cursor starts on the Uncategorized header
	m = press(t, m, "d")
	if !svc.Current().HasSection(list.Home, list.DefaultSectionID(list.Home)) {
		t.Fatalf("expected the default section to survive")
	}
	if !m.failed {
		t.Fatalf("expected a failed status, got %q", m.status)
	}
}

func TestStoreEventReloads(t *testing.T) {
	m, _, ms := newTestModel(t, "milk")

	st := list.NewState()
	st.Lists[0].Name = "Elsewhere"
	if err := ms.SaveState(st); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	next, _ := m.Update(storeEventMsg{store.Event{Type: store.EventStateChanged}})
	m = next.(Model)
	if m.view.ListName != "Elsewhere" {
		t.Fatalf("expected reloaded list, got %q", m.view.ListName)
	}
}

func TestHelpPanel(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, "?")
	if m.mode != modeHelp || !strings.Contains(m.View(), "grab / drop") {
		t.Fatalf("expected help panel")
	}
	m = press(t, m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("expected help to close")
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	msgs := []tea.Msg{cmd()}
	if batch, ok := msgs[0].(tea.BatchMsg); ok {
		msgs = msgs[:0]
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	}
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
	}
	t.Fatalf("expected tea.QuitMsg, got %v", msgs)
}
