// Package order keeps item ranks dense. Every function recomputes the order
// keys of exactly the partitions a change touches; a partition is the set of
// items sharing one (list, mode, section).
package order

import (
	"sort"

	"tableflip.dev/pantry/pkg/list"
)

// Members returns the partition (mode, sectionID) in rank order. Equal ranks
// fall back to position in items.
func Members(items []*list.Item, mode list.Mode, sectionID string) []*list.Item {
	out := make([]*list.Item, 0)
	for _, it := range items {
		if it != nil && it.SectionID(mode) == sectionID {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Index(mode) < out[j].Index(mode)
	})
	return out
}

// Append places it at the end of the (mode, sectionID) partition. No other
// item's rank changes.
func Append(items []*list.Item, mode list.Mode, sectionID string, it *list.Item) {
	n := 0
	for _, x := range items {
		if x == nil || x == it || x.ID == it.ID {
			continue
		}
		if x.SectionID(mode) == sectionID {
			n++
		}
	}
	p := it.At(mode)
	p.SectionID = sectionID
	p.Index = n
}

// RemoveAndCompact re-ranks the (mode, sectionID) partition to 0..n-2 as if
// itemID were gone, keeping the relative order of the rest. The item itself
// is left untouched; removing it from the list is the caller's job.
func RemoveAndCompact(items []*list.Item, mode list.Mode, sectionID, itemID string) {
	rank(without(Members(items, mode, sectionID), itemID), mode)
}

// MoveWithin moves itemID to sit immediately before beforeID inside its
// current partition. It reports whether the order changed. A beforeID that is
// not in the partition makes the move a no-op.
func MoveWithin(items []*list.Item, mode list.Mode, itemID, beforeID string) (bool, error) {
	if itemID == beforeID {
		return false, list.InvalidOperationError{Op: "move", Reason: "item cannot be moved onto itself"}
	}
	it, err := find(items, itemID)
	if err != nil {
		return false, err
	}
	members := Members(items, mode, it.SectionID(mode))
	rest := without(members, itemID)
	pos := indexOf(rest, beforeID)
	if pos < 0 {
		return false, nil
	}
	final := insertAt(rest, pos, it)
	changed := !sameOrder(members, final)
	rank(final, mode)
	return changed, nil
}

// MoveAcross moves itemID into destSectionID, immediately before beforeID when
// it is a member of the destination, otherwise at its end. The source
// partition is compacted and the destination re-ranked. When the destination
// is the item's current section this is a move within the partition.
func MoveAcross(items []*list.Item, mode list.Mode, itemID, destSectionID, beforeID string) (bool, error) {
	if itemID == beforeID {
		return false, list.InvalidOperationError{Op: "move", Reason: "item cannot be moved onto itself"}
	}
	it, err := find(items, itemID)
	if err != nil {
		return false, err
	}
	source := it.SectionID(mode)
	before := Members(items, mode, destSectionID)
	dest := without(before, itemID)

	pos := len(dest)
	if beforeID != "" {
		if p := indexOf(dest, beforeID); p >= 0 {
			pos = p
		}
	}
	if source != destSectionID {
		RemoveAndCompact(items, mode, source, itemID)
	}
	final := insertAt(dest, pos, it)
	it.At(mode).SectionID = destSectionID
	rank(final, mode)
	return source != destSectionID || !sameOrder(before, final), nil
}

// MergeInto empties fromSectionID into toSectionID. Members are appended one
// at a time in their existing order, so their relative order survives.
func MergeInto(items []*list.Item, mode list.Mode, fromSectionID, toSectionID string) int {
	if fromSectionID == toSectionID {
		return 0
	}
	moving := Members(items, mode, fromSectionID)
	for _, it := range moving {
		RemoveAndCompact(items, mode, fromSectionID, it.ID)
		Append(items, mode, toSectionID, it)
	}
	return len(moving)
}

// Compact re-ranks every partition of mode densely, keeping relative order.
func Compact(items []*list.Item, mode list.Mode) {
	seen := map[string]bool{}
	for _, it := range items {
		if it == nil {
			continue
		}
		sid := it.SectionID(mode)
		if seen[sid] {
			continue
		}
		seen[sid] = true
		rank(Members(items, mode, sid), mode)
	}
}

func rank(members []*list.Item, mode list.Mode) {
	for i, it := range members {
		it.At(mode).Index = i
	}
}

func find(items []*list.Item, id string) (*list.Item, error) {
	for _, it := range items {
		if it != nil && it.ID == id {
			return it, nil
		}
	}
	return nil, list.NotFoundError{Kind: "item", ID: id}
}

func without(members []*list.Item, id string) []*list.Item {
	out := make([]*list.Item, 0, len(members))
	for _, it := range members {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func indexOf(members []*list.Item, id string) int {
	if id == "" {
		return -1
	}
	for i, it := range members {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func insertAt(members []*list.Item, pos int, it *list.Item) []*list.Item {
	out := make([]*list.Item, 0, len(members)+1)
	out = append(out, members[:pos]...)
	out = append(out, it)
	out = append(out, members[pos:]...)
	return out
}

func sameOrder(a, b []*list.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
