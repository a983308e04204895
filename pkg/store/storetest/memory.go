// Package storetest provides an in-memory Persistence for tests.
package storetest

import (
	"context"
	"errors"
	"sync"

	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/store"
)

// ErrFailing is returned by saves while Failing or FailMode is set.
var ErrFailing = errors.New("storetest: save failed")

// Memory keeps the state document and mode in memory.
type Memory struct {
	mu      sync.Mutex
	state   *list.State
	mode    list.Mode
	saves   int
	events  chan store.Event

	// Failing fails every save. FailMode fails only mode saves.
	Failing  bool
	FailMode bool
}

// NewMemory returns an empty store; the first load synthesizes a fresh list.
func NewMemory() *Memory {
	return &Memory{events: make(chan store.Event, 8)}
}

func (m *Memory) LoadState(context.Context) (*list.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return &list.State{}, nil
	}
	return m.state.Clone(), nil
}

func (m *Memory) SaveState(st *list.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing {
		return ErrFailing
	}
	m.state = st.Clone()
	m.saves++
	return nil
}

func (m *Memory) LoadMode() (list.Mode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode == "" {
		return list.Home, nil
	}
	return m.mode, nil
}

func (m *Memory) SaveMode(mode list.Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing || m.FailMode {
		return ErrFailing
	}
	m.mode = mode
	return nil
}

// Watch returns a channel fed by Touch. It closes when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan store.Event, error) {
	out := make(chan store.Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-m.events:
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (m *Memory) BasePath() string {
	return ""
}

// Replace swaps the stored state as another process would, then emits an
// EventStateChanged.
func (m *Memory) Replace(st *list.State) {
	m.mu.Lock()
	m.state = st.Clone()
	m.mu.Unlock()
	m.events <- store.Event{Type: store.EventStateChanged}
}

// Saves reports how many state saves succeeded.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Seed stores st and mode without emitting an event.
func (m *Memory) Seed(st *list.State, mode list.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st.Clone()
	m.mode = mode
}

// Saved returns a copy of the last saved state, or nil.
func (m *Memory) Saved() *list.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil
	}
	return m.state.Clone()
}

// SavedMode returns the last saved mode, home when none was saved.
func (m *Memory) SavedMode() list.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode == "" {
		return list.Home
	}
	return m.mode
}
