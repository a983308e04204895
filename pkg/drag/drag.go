// Package drag tracks a single in-flight drag gesture and resolves a drop
// into a reorder command. It holds no list state; applying the command is the
// caller's job.
package drag

import (
	"errors"
	"fmt"
)

// Kind is what is being dragged.
type Kind int

const (
	KindItem Kind = iota + 1
	KindSection
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindSection:
		return "section"
	default:
		return "unknown"
	}
}

// TargetKind is what the drag was released over.
type TargetKind int

const (
	// TargetItem is a sibling item row.
	TargetItem TargetKind = iota + 1
	// TargetPlaceholder is the trailing drop zone of a section, present even
	// when the section is empty.
	TargetPlaceholder
	// TargetSection is a section header.
	TargetSection
)

// Target describes the drop location. SectionID is the section the target
// belongs to; for TargetSection it equals ID.
type Target struct {
	Kind      TargetKind
	ID        string
	SectionID string
}

// Source is the captured start of a drag.
type Source struct {
	Kind Kind
	ID   string
}

// Op is the reorder a drop resolves to.
type Op int

const (
	OpNone Op = iota
	OpMoveItem
	OpMoveSection
)

// Command is a resolved drop. For OpMoveItem an empty BeforeID means append
// to DestSectionID.
type Command struct {
	Op            Op
	ID            string
	DestSectionID string
	BeforeID      string
}

// None is the no-op command.
var None = Command{Op: OpNone}

func (c Command) String() string {
	switch c.Op {
	case OpMoveItem:
		if c.BeforeID == "" {
			return fmt.Sprintf("move item %s to end of %s", c.ID, c.DestSectionID)
		}
		return fmt.Sprintf("move item %s before %s in %s", c.ID, c.BeforeID, c.DestSectionID)
	case OpMoveSection:
		return fmt.Sprintf("move section %s before %s", c.ID, c.BeforeID)
	default:
		return "none"
	}
}

// ErrActive is returned when a drag starts while another is in flight.
var ErrActive = errors.New("drag: a drag is already in progress")

// Tracker is the Idle -> Dragging(kind, id) -> Idle state machine. The zero
// value is idle.
type Tracker struct {
	src    Source
	active bool
}

// Start captures the dragged entity.
func (t *Tracker) Start(kind Kind, id string) error {
	if t.active {
		return ErrActive
	}
	if id == "" {
		return errors.New("drag: empty id")
	}
	t.src = Source{Kind: kind, ID: id}
	t.active = true
	return nil
}

// Active reports whether a drag is in flight.
func (t *Tracker) Active() bool {
	return t.active
}

// Source returns the captured entity and whether a drag is in flight.
func (t *Tracker) Source() (Source, bool) {
	return t.src, t.active
}

// Drop resolves target against the captured source and returns to idle.
func (t *Tracker) Drop(target Target) Command {
	if !t.active {
		return None
	}
	cmd := Resolve(t.src, target)
	t.End()
	return cmd
}

// End returns to idle without resolving. Cancelled gestures end here.
func (t *Tracker) End() {
	t.src = Source{}
	t.active = false
}

// Resolve maps a source and a drop target to a command. It is pure.
func Resolve(src Source, target Target) Command {
	switch src.Kind {
	case KindItem:
		switch target.Kind {
		case TargetItem:
			if target.ID == src.ID || target.ID == "" {
				return None
			}
			return Command{Op: OpMoveItem, ID: src.ID, DestSectionID: target.SectionID, BeforeID: target.ID}
		case TargetPlaceholder:
			if target.SectionID == "" {
				return None
			}
			return Command{Op: OpMoveItem, ID: src.ID, DestSectionID: target.SectionID}
		}
	case KindSection:
		if target.Kind == TargetSection && target.ID != "" && target.ID != src.ID {
			return Command{Op: OpMoveSection, ID: src.ID, BeforeID: target.ID}
		}
	}
	return None
}
