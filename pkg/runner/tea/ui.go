package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/drag"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/runner/tea/internal/panel"
	"tableflip.dev/pantry/pkg/runner/tea/internal/theme"
	"tableflip.dev/pantry/pkg/store"
	"tableflip.dev/pantry/pkg/view"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAddItem
	actionAddSection
	actionAddList
	actionRename
)

type rowKind int

const (
	rowSection rowKind = iota
	rowItem
)

// row is one line of the flattened view: a section header followed by its
// visible items. A header doubles as the section's drop zone.
type row struct {
	kind    rowKind
	section list.Section
	item    *list.Item
}

func (r row) id() string {
	if r.kind == rowItem {
		return r.item.ID
	}
	return r.section.ID
}

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	mode   mode
	action action
	keys   KeyMap
	theme  theme.Theme

	view   view.View
	rows   []row
	cursor int

	drag drag.Tracker

	input    textinput.Model
	renameID string

	status   string
	failed   bool
	events   <-chan store.Event
	help     panel.Model
	termW    int
	termH    int
	quitting bool
}

// messages
type storeEventMsg struct{ ev store.Event }

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		mode:   modeNormal,
		action: actionNone,
		keys:   DefaultKeyMap(),
		theme:  theme.Default(),
		input:  ti,
		status: "j/k move, space grab/drop, tab home/shop, a add, x check off, ? help",
	}
	m.refresh()
	return m
}

// WithEvents makes the model reload whenever the store reports an external
// change.
func (m Model) WithEvents(ctx context.Context, events <-chan store.Event) Model {
	if ctx != nil {
		m.ctx = ctx
	}
	m.events = events
	return m
}

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan store.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{ev}
	}
}

// refresh re-projects the current list and keeps the cursor on the same row
// when it still exists.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	keep := ""
	if r, ok := m.selected(); ok {
		keep = r.id()
	}

	m.view = m.svc.View()
	m.theme = theme.ForAccent(m.view.Theme)
	m.rows = make([]row, 0, len(m.rows))
	for _, sv := range m.view.Sections {
		m.rows = append(m.rows, row{kind: rowSection, section: sv.Section})
		for _, it := range sv.Items {
			m.rows = append(m.rows, row{kind: rowItem, section: sv.Section, item: it})
		}
	}

	for i, r := range m.rows {
		if keep != "" && r.id() == keep {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) selectedItem() *list.Item {
	if r, ok := m.selected(); ok && r.kind == rowItem {
		return r.item
	}
	return nil
}

// report turns the outcome of a mutation into a status line. A stale id is
// not an error worth showing; the view is simply refreshed.
func (m *Model) report(err error, ok string) {
	switch {
	case err == nil:
		m.status, m.failed = ok, false
	case errors.Is(err, list.ErrNotFound):
		m.status, m.failed = "Already gone", false
	case errors.Is(err, list.ErrInvalidOperation):
		m.status, m.failed = err.Error(), true
	default:
		m.status, m.failed = "ERR: "+err.Error(), true
	}
	m.refresh()
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.input.Width = max(10, msg.Width-12)
	case storeEventMsg:
		if m.svc != nil {
			if err := m.svc.Reload(m.ctx); err != nil {
				m.status, m.failed = "ERR: reload: "+err.Error(), true
			}
		}
		m.refresh()
		cmds = append(cmds, waitForEvent(m.events))
	case tea.KeyMsg:
		switch m.mode {
		case modeHelp:
			if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) {
				m.mode = modeNormal
				m.help.Reset()
			}
		case modeInsert:
			cmds = append(cmds, m.updateInsert(msg))
		default:
			cmds = append(cmds, m.updateNormal(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateInsert(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.commitInput(input)
		m.endInsert()
		return nil
	case tea.KeyEsc:
		m.endInsert()
		m.status, m.failed = "Cancelled", false
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) commitInput(input string) {
	if m.svc == nil {
		return
	}
	mode := m.svc.Mode()
	switch m.action {
	case actionAddItem:
		if input == "" {
			return
		}
		sectionID := ""
		if r, ok := m.selected(); ok {
			sectionID = r.section.ID
		}
		it, err := m.svc.AddItem(mode, sectionID, input)
		m.report(err, "Added "+input)
		if err == nil {
			m.focus(it.ID)
		}
	case actionAddSection:
		if input == "" {
			return
		}
		sec, err := m.svc.AddSection(mode, input)
		m.report(err, "Added section "+input)
		if err == nil {
			m.focus(sec.ID)
		}
	case actionAddList:
		if input == "" {
			return
		}
		_, err := m.svc.AddList(input, "")
		m.cursor = 0
		m.report(err, "Created list "+input)
	case actionRename:
		r, ok := m.selected()
		if !ok || r.id() != m.renameID {
			m.report(list.NotFoundError{Kind: "row", ID: m.renameID}, "")
			return
		}
		if r.kind == rowItem {
			m.report(m.svc.RenameItem(r.item.ID, input), "Renamed")
		} else {
			m.report(m.svc.RenameSection(mode, r.section.ID, input), "Renamed")
		}
	}
}

func (m *Model) focus(id string) {
	for i, r := range m.rows {
		if r.id() == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) beginInsert(a action, value string) tea.Cmd {
	m.mode = modeInsert
	m.action = a
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) endInsert() {
	m.mode = modeNormal
	m.action = actionNone
	m.renameID = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.drag.End()
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, k.Cancel):
		if m.drag.Active() {
			m.drag.End()
			m.status, m.failed = "Drag cancelled", false
		}
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Grab):
		m.grabOrDrop()
	case m.drag.Active():
		// Other keys are ignored until the drag is dropped or cancelled.
		m.status, m.failed = "Dragging: space to drop, esc to cancel", false
	case key.Matches(msg, k.Help):
		m.mode = modeHelp
		m.help = panel.New(m.theme.Accent)
		m.help.SetBindings("Keys", k.FullHelp())
	case key.Matches(msg, k.Mode):
		if m.svc != nil {
			next := m.svc.Mode().Other()
			m.report(m.svc.SetMode(next), "Switched to "+next.String())
		}
	case key.Matches(msg, k.AddItem):
		return m.beginInsert(actionAddItem, "")
	case key.Matches(msg, k.AddSect):
		return m.beginInsert(actionAddSection, "")
	case key.Matches(msg, k.AddList):
		return m.beginInsert(actionAddList, "")
	case key.Matches(msg, k.Rename):
		r, ok := m.selected()
		if !ok {
			return nil
		}
		m.renameID = r.id()
		if r.kind == rowItem {
			return m.beginInsert(actionRename, r.item.Text)
		}
		return m.beginInsert(actionRename, r.section.Name)
	case key.Matches(msg, k.Delete):
		m.deleteSelected()
	case key.Matches(msg, k.HaveUp):
		m.adjust(m.svc.AdjustHave, 1)
	case key.Matches(msg, k.HaveDown):
		m.adjust(m.svc.AdjustHave, -1)
	case key.Matches(msg, k.WantUp):
		m.adjust(m.svc.AdjustWant, 1)
	case key.Matches(msg, k.WantDown):
		m.adjust(m.svc.AdjustWant, -1)
	case key.Matches(msg, k.Done):
		if it := m.selectedItem(); it != nil {
			_, err := m.svc.ToggleShopCompleted(it.ID)
			m.report(err, "Toggled "+it.Text)
		}
	case key.Matches(msg, k.NextList):
		m.cycleList(1)
	case key.Matches(msg, k.PrevList):
		m.cycleList(-1)
	case key.Matches(msg, k.DelList):
		if m.svc != nil {
			name := m.view.ListName
			m.cursor = 0
			m.report(m.svc.DeleteList(m.view.ListID), "Deleted list "+name)
		}
	}
	return nil
}

func (m *Model) adjust(fn func(id string, delta int) (*list.Item, error), delta int) {
	it := m.selectedItem()
	if it == nil {
		return
	}
	_, err := fn(it.ID, delta)
	m.report(err, "Updated "+it.Text)
}

func (m *Model) deleteSelected() {
	r, ok := m.selected()
	if !ok || m.svc == nil {
		return
	}
	if r.kind == rowItem {
		m.report(m.svc.DeleteItem(r.item.ID), "Deleted "+r.item.Text)
		return
	}
	m.report(m.svc.DeleteSection(m.svc.Mode(), r.section.ID), "Deleted section "+r.section.Name)
}

func (m *Model) cycleList(step int) {
	if m.svc == nil {
		return
	}
	lists := m.svc.Lists()
	if len(lists) < 2 {
		return
	}
	at := 0
	for i, l := range lists {
		if l.ID == m.view.ListID {
			at = i
		}
	}
	next := lists[(at+step+len(lists))%len(lists)]
	m.cursor = 0
	m.report(m.svc.SwitchList(next.ID), next.Name)
}

// grabOrDrop starts a drag on the selected row or, with a drag in flight,
// drops it there.
func (m *Model) grabOrDrop() {
	r, ok := m.selected()
	if !ok {
		return
	}
	if !m.drag.Active() {
		kind, label := drag.KindSection, r.section.Name
		if r.kind == rowItem {
			kind, label = drag.KindItem, r.item.Text
		}
		if err := m.drag.Start(kind, r.id()); err != nil {
			m.status, m.failed = err.Error(), true
			return
		}
		m.status, m.failed = fmt.Sprintf("Dragging %s %q: move and press space to drop", kind, label), false
		return
	}

	src, _ := m.drag.Source()
	cmd := m.drag.Drop(dropTarget(src, r))
	if cmd.Op == drag.OpNone || m.svc == nil {
		m.status, m.failed = "Dropped in place", false
		return
	}
	m.report(m.svc.Apply(cmd), "Moved")
	m.focus(src.ID)
}

// dropTarget maps the row under the cursor to a drop target for src. Item
// drags land before an item row or at the end of a section via its header.
// Section drags land before whichever section owns the row.
func dropTarget(src drag.Source, r row) drag.Target {
	if src.Kind == drag.KindSection {
		return drag.Target{Kind: drag.TargetSection, ID: r.section.ID, SectionID: r.section.ID}
	}
	if r.kind == rowItem {
		return drag.Target{Kind: drag.TargetItem, ID: r.item.ID, SectionID: r.section.ID}
	}
	return drag.Target{Kind: drag.TargetPlaceholder, SectionID: r.section.ID}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	th := m.theme
	var b strings.Builder

	b.WriteString(th.Title.Render(m.view.ListName))
	b.WriteString(th.Mode.Render(m.view.Mode.String()))
	b.WriteString(th.Count.Render(fmt.Sprintf("  %d shown", m.view.Count())))
	b.WriteString("\n\n")

	src, dragging := m.drag.Source()
	for i, r := range m.rows {
		line := m.renderRow(r)
		if dragging && src.ID == r.id() {
			line = th.Dragging.Render(line)
		}
		if i == m.cursor {
			b.WriteString(th.Cursor.Render("› "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch m.mode {
	case modeInsert:
		prompt := map[action]string{
			actionAddItem:    "Add item: ",
			actionAddSection: "Add section: ",
			actionAddList:    "New list: ",
			actionRename:     "Rename: ",
		}[m.action]
		b.WriteString("\n" + th.Footer.Prompt.Render(prompt) + m.input.View() + "\n")
	case modeHelp:
		b.WriteString("\n" + m.help.View() + "\n")
	}

	status := th.Footer.Status.Render(m.status)
	if m.failed {
		status = th.Footer.Error.Render(m.status)
	}
	b.WriteString("\n" + status)
	return b.String()
}

func (m Model) renderRow(r row) string {
	th := m.theme
	if r.kind == rowSection {
		s := th.Section.Render(r.section.Name)
		if sv, ok := m.view.Find(r.section.ID); ok && len(sv.Items) == 0 {
			s += th.Count.Render("  (empty)")
		}
		return s
	}
	it := r.item
	if m.view.Mode == list.Shop {
		if it.ShopCompleted {
			return "  " + th.Done.Render("[x] "+it.Text)
		}
		return "  [ ] " + th.Item.Render(it.Text) + th.Count.Render(fmt.Sprintf("  ×%d", it.ToBuy()))
	}
	counts := th.Count.Render(fmt.Sprintf("%2d/%-2d", it.HaveCount, it.WantCount))
	line := "  " + counts + " " + th.Item.Render(it.Text)
	if n := it.ToBuy(); n > 0 {
		line += lipgloss.NewStyle().Foreground(th.Accent).Render(fmt.Sprintf("  need %d", n))
	}
	return line
}
