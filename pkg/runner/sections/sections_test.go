package sections

import (
	"bytes"
	"context"
	"testing"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/store/storetest"
)

func TestSectionsByName(t *testing.T) {
	svc, err := app.New(context.Background(), storetest.NewMemory())
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	run := func(s Sections) {
		t.Helper()
		s.App = svc
		s.Out = &bytes.Buffer{}
		if err := s.Do(context.Background()); err != nil {
			t.Fatalf("%s failed: %v", s.Action, err)
		}
	}

	run(Sections{Action: Create, Mode: "shop", Name: "Dairy"})
	run(Sections{Action: Create, Mode: "shop", Name: "Bakery"})
	run(Sections{Action: Move, Mode: "shop", Ref: "bakery", Before: "dairy"})
	run(Sections{Action: Rename, Mode: "shop", Ref: "Dairy", Name: "Dairy & Eggs"})

	got := svc.Current().ShopSections
	names := []string{}
	for _, s := range got {
		names = append(names, s.Name)
	}
	want := []string{list.DefaultSectionName, "Bakery", "Dairy & Eggs"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if len(svc.Current().HomeSections) != 1 {
		t.Fatalf("home sections should be untouched")
	}

	run(Sections{Action: Delete, Mode: "shop", Ref: "Bakery"})
	if len(svc.Current().ShopSections) != 2 {
		t.Fatalf("expected Bakery removed")
	}
}
