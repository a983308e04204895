package mcp

import (
	"context"
	"errors"
	"testing"

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

func newTestService(t *testing.T) *Service {
	t.Helper()
	a, err := app.New(context.Background(), &memoryStore{})
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	return NewService(a)
}

func TestServiceListLists(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.App.AddItem(list.Home, "", "milk"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := svc.App.AddList("Hardware", "#123456"); err != nil {
		t.Fatalf("AddList failed: %v", err)
	}

	lists, err := svc.ListLists()
	if err != nil {
		t.Fatalf("ListLists failed: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].Current || !lists[1].Current {
		t.Fatalf("expected the new list to be current: %+v", lists)
	}
	if lists[0].ItemCount != 1 || lists[0].ToBuyCount != 1 {
		t.Fatalf("unexpected counts: %+v", lists[0])
	}
}

func TestServiceViewListFiltersShop(t *testing.T) {
	svc := newTestService(t)
	milk, _ := svc.App.AddItem(list.Home, "", "milk")
	eggs, _ := svc.App.AddItem(list.Home, "", "eggs")
	if _, err := svc.App.AdjustHave(eggs.ID, 1); err != nil {
		t.Fatalf("AdjustHave failed: %v", err)
	}

	v, err := svc.ViewList("", "shop", false)
	if err != nil {
		t.Fatalf("ViewList failed: %v", err)
	}
	if v.Mode != "shop" || v.Count != 1 {
		t.Fatalf("expected one shop item, got %+v", v)
	}
	if got := v.Sections[0].Items[0]; got.ID != milk.ID || got.ToBuy != 1 {
		t.Fatalf("unexpected item %+v", got)
	}

	all, err := svc.ViewList(v.ListID, "shop", true)
	if err != nil {
		t.Fatalf("ViewList failed: %v", err)
	}
	if all.Count != 2 {
		t.Fatalf("expected stocked items included, got %d", all.Count)
	}

	if _, err := svc.ViewList("", "garage", false); !errors.Is(err, list.ErrInvalidOperation) {
		t.Fatalf("expected invalid mode error, got %v", err)
	}
	if _, err := svc.ViewList("missing", "", false); !errors.Is(err, list.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceItemByID(t *testing.T) {
	svc := newTestService(t)
	it, _ := svc.App.AddItem(list.Shop, "", "bread")

	dto, err := svc.ItemByID(it.ID)
	if err != nil {
		t.Fatalf("ItemByID failed: %v", err)
	}
	if dto.ShopSectionID != list.DefaultSectionID(list.Shop) || dto.HomeSectionID != list.DefaultSectionID(list.Home) {
		t.Fatalf("unexpected placements %+v", dto)
	}
	if _, err := svc.ItemByID("nope"); !errors.Is(err, list.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceMode(t *testing.T) {
	svc := newTestService(t)
	if m, err := svc.Mode(""); err != nil || m != list.Home {
		t.Fatalf("expected active mode home, got %q (%v)", m, err)
	}
	if m, err := svc.Mode("SHOP"); err != nil || m != list.Shop {
		t.Fatalf("expected shop, got %q (%v)", m, err)
	}
	if _, err := (&Service{}).ListLists(); !errors.Is(err, ErrNoApp) {
		t.Fatalf("expected ErrNoApp, got %v", err)
	}
}

func TestTemplateArg(t *testing.T) {
	if got := templateArg("x"); got != "x" {
		t.Fatalf("got %q", got)
	}
	if got := templateArg([]string{"y", "z"}); got != "y" {
		t.Fatalf("got %q", got)
	}
	if got := templateArg(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}
