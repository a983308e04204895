package order

import "tableflip.dev/pantry/pkg/list"

// MoveSection returns sections with id re-inserted immediately before
// beforeID, and whether anything moved. The input slice is not modified. A
// missing id or beforeID leaves the order as it was.
func MoveSection(sections []list.Section, id, beforeID string) ([]list.Section, bool) {
	if id == beforeID {
		return sections, false
	}
	from := sectionIndex(sections, id)
	if from < 0 {
		return sections, false
	}
	rest := make([]list.Section, 0, len(sections))
	rest = append(rest, sections[:from]...)
	rest = append(rest, sections[from+1:]...)
	pos := sectionIndex(rest, beforeID)
	if pos < 0 {
		return sections, false
	}
	out := make([]list.Section, 0, len(sections))
	out = append(out, rest[:pos]...)
	out = append(out, sections[from])
	out = append(out, rest[pos:]...)
	for i := range out {
		if out[i].ID != sections[i].ID {
			return out, true
		}
	}
	return sections, false
}

// RemoveSection returns sections without id.
func RemoveSection(sections []list.Section, id string) []list.Section {
	out := make([]list.Section, 0, len(sections))
	for _, s := range sections {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

func sectionIndex(sections []list.Section, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
