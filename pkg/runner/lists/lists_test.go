package lists

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/store/storetest"
)

func TestListsLifecycleByName(t *testing.T) {
	svc, err := app.New(context.Background(), storetest.NewMemory())
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	run := func(l Lists) error {
		l.App = svc
		l.Out = &bytes.Buffer{}
		return l.Do(context.Background())
	}

	if err := run(Lists{Action: Create, Name: "Hardware"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if svc.Current().Name != "Hardware" {
		t.Fatalf("expected new list to become current")
	}
	if err := run(Lists{Action: Switch, Ref: "grocery list"}); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if svc.Current().Name != list.DefaultListName {
		t.Fatalf("expected switch by name, got %q", svc.Current().Name)
	}
	if err := run(Lists{Action: Edit, Ref: "Hardware", Name: "Tools", Theme: "#00ff00"}); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if err := run(Lists{Action: Delete, Ref: "Tools"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(svc.Lists()) != 1 {
		t.Fatalf("expected one list left")
	}

	err = run(Lists{Action: Delete})
	if !errors.Is(err, list.ErrInvalidOperation) {
		t.Fatalf("expected deleting the last list to be refused, got %v", err)
	}
	err = run(Lists{Action: Switch, Ref: "nope"})
	if !errors.Is(err, list.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
