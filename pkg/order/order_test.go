package order

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/pantry/pkg/list"
)

const (
	secA = "sec-a"
	secB = "sec-b"
)

func newTestList(t *testing.T) *list.List {
	t.Helper()
	l := list.NewList("Test", "")
	l.HomeSections = append(l.HomeSections, list.Section{ID: secA, Name: "Fridge"}, list.Section{ID: secB, Name: "Freezer"})
	return l
}

func add(l *list.List, id, section string) *list.Item {
	it := list.NewItem(id)
	it.ID = id
	Append(l.Items, list.Home, section, it)
	Append(l.Items, list.Shop, list.DefaultSectionID(list.Shop), it)
	l.Items = append(l.Items, it)
	return it
}

func ids(members []*list.Item) []string {
	out := make([]string, 0, len(members))
	for _, it := range members {
		out = append(out, it.ID)
	}
	return out
}

func TestAppendAssignsInsertionOrder(t *testing.T) {
	l := newTestList(t)
	for i := 0; i < 5; i++ {
		add(l, fmt.Sprintf("i%d", i), secA)
	}
	members := Members(l.Items, list.Home, secA)
	require.Len(t, members, 5)
	for i, it := range members {
		assert.Equal(t, fmt.Sprintf("i%d", i), it.ID)
		assert.Equal(t, i, it.Index(list.Home))
	}
	require.NoError(t, Verify(l))
}

func TestAppendLeavesOtherPartitionsAlone(t *testing.T) {
	l := newTestList(t)
	a := add(l, "a", secA)
	b := add(l, "b", secB)
	add(l, "c", secA)

	assert.Equal(t, 0, a.Index(list.Home))
	assert.Equal(t, 0, b.Index(list.Home))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Members(l.Items, list.Shop, list.DefaultSectionID(list.Shop))))
}

func TestRemoveAndCompact(t *testing.T) {
	l := newTestList(t)
	for _, id := range []string{"a", "b", "c", "d"} {
		add(l, id, secA)
	}
	RemoveAndCompact(l.Items, list.Home, secA, "b")
	RemoveAndCompact(l.Items, list.Shop, list.DefaultSectionID(list.Shop), "b")
	l.Items = append(l.Items[:1], l.Items[2:]...)

	members := Members(l.Items, list.Home, secA)
	assert.Equal(t, []string{"a", "c", "d"}, ids(members))
	for i, it := range members {
		assert.Equal(t, i, it.Index(list.Home))
	}
	require.NoError(t, Verify(l))
}

func TestMoveWithin(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		before  string
		want    []string
		changed bool
	}{
		{name: "down", item: "a", before: "d", want: []string{"b", "c", "a", "d"}, changed: true},
		{name: "up", item: "d", before: "b", want: []string{"a", "d", "b", "c"}, changed: true},
		{name: "to front", item: "c", before: "a", want: []string{"c", "a", "b", "d"}, changed: true},
		{name: "already before", item: "b", before: "c", want: []string{"a", "b", "c", "d"}},
		{name: "missing target", item: "b", before: "zz", want: []string{"a", "b", "c", "d"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestList(t)
			for _, id := range []string{"a", "b", "c", "d"} {
				add(l, id, secA)
			}
			changed, err := MoveWithin(l.Items, list.Home, tc.item, tc.before)
			require.NoError(t, err)
			assert.Equal(t, tc.changed, changed)
			assert.Equal(t, tc.want, ids(Members(l.Items, list.Home, secA)))
			require.NoError(t, Verify(l))
		})
	}
}

func TestMoveWithinTargetInOtherSectionIsNoop(t *testing.T) {
	l := newTestList(t)
	add(l, "a", secA)
	add(l, "b", secA)
	add(l, "x", secB)

	changed, err := MoveWithin(l.Items, list.Home, "b", "x")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "b"}, ids(Members(l.Items, list.Home, secA)))
}

func TestMoveOntoSelfIsRejected(t *testing.T) {
	l := newTestList(t)
	add(l, "a", secA)
	add(l, "b", secA)

	_, err := MoveWithin(l.Items, list.Home, "a", "a")
	assert.True(t, errors.Is(err, list.ErrInvalidOperation))

	_, err = MoveAcross(l.Items, list.Home, "a", secB, "a")
	assert.True(t, errors.Is(err, list.ErrInvalidOperation))
	assert.Equal(t, []string{"a", "b"}, ids(Members(l.Items, list.Home, secA)))
}

func TestMoveUnknownItem(t *testing.T) {
	l := newTestList(t)
	_, err := MoveAcross(l.Items, list.Home, "ghost", secA, "")
	assert.True(t, errors.Is(err, list.ErrNotFound))
}

func TestMoveAcrossBefore(t *testing.T) {
	l := newTestList(t)
	for _, id := range []string{"a", "b", "c"} {
		add(l, id, secA)
	}
	for _, id := range []string{"x", "y"} {
		add(l, id, secB)
	}

	changed, err := MoveAcross(l.Items, list.Home, "b", secB, "y")
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, []string{"a", "c"}, ids(Members(l.Items, list.Home, secA)))
	assert.Equal(t, []string{"x", "b", "y"}, ids(Members(l.Items, list.Home, secB)))
	require.NoError(t, Verify(l))

	// shop placement is untouched
	it, err := l.Item("b")
	require.NoError(t, err)
	assert.Equal(t, list.DefaultSectionID(list.Shop), it.SectionID(list.Shop))
	assert.Equal(t, 1, it.Index(list.Shop))
}

func TestMoveAcrossAppendsWithoutTarget(t *testing.T) {
	l := newTestList(t)
	add(l, "a", secA)
	add(l, "x", secB)

	_, err := MoveAcross(l.Items, list.Home, "a", secB, "")
	require.NoError(t, err)
	assert.Empty(t, Members(l.Items, list.Home, secA))
	assert.Equal(t, []string{"x", "a"}, ids(Members(l.Items, list.Home, secB)))

	// unknown target falls back to append
	add(l, "b", secA)
	_, err = MoveAcross(l.Items, list.Home, "b", secB, "nope")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "b"}, ids(Members(l.Items, list.Home, secB)))
	require.NoError(t, Verify(l))
}

func TestMoveAcrossIntoEmptySection(t *testing.T) {
	l := newTestList(t)
	add(l, "a", secA)
	add(l, "b", secA)

	_, err := MoveAcross(l.Items, list.Home, "a", secB, "")
	require.NoError(t, err)
	it, _ := l.Item("a")
	assert.Equal(t, secB, it.SectionID(list.Home))
	assert.Equal(t, 0, it.Index(list.Home))
	assert.Equal(t, []string{"b"}, ids(Members(l.Items, list.Home, secA)))
	require.NoError(t, Verify(l))
}

func TestMoveAcrossSameSectionMovesToEnd(t *testing.T) {
	l := newTestList(t)
	for _, id := range []string{"a", "b", "c"} {
		add(l, id, secA)
	}
	changed, err := MoveAcross(l.Items, list.Home, "a", secA, "")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"b", "c", "a"}, ids(Members(l.Items, list.Home, secA)))

	changed, err = MoveAcross(l.Items, list.Home, "a", secA, "")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMergeIntoPreservesRelativeOrder(t *testing.T) {
	l := newTestList(t)
	def := list.DefaultSectionID(list.Home)
	add(l, "d1", def)
	for _, id := range []string{"a", "b", "c"} {
		add(l, id, secA)
	}
	_, err := MoveWithin(l.Items, list.Home, "c", "a")
	require.NoError(t, err)

	n := MergeInto(l.Items, list.Home, secA, def)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"d1", "c", "a", "b"}, ids(Members(l.Items, list.Home, def)))
	assert.Empty(t, Members(l.Items, list.Home, secA))
	require.NoError(t, Verify(l))
}

func TestCompactRepairsGapsAndDuplicates(t *testing.T) {
	l := newTestList(t)
	a := add(l, "a", secA)
	b := add(l, "b", secA)
	c := add(l, "c", secA)
	a.At(list.Home).Index = 4
	b.At(list.Home).Index = 4
	c.At(list.Home).Index = 1

	require.Error(t, Verify(l))
	Compact(l.Items, list.Home)
	require.NoError(t, Verify(l))
	assert.Equal(t, []string{"c", "a", "b"}, ids(Members(l.Items, list.Home, secA)))
}

func TestMoveSection(t *testing.T) {
	sections := []list.Section{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}, {ID: "s4"}}
	sectionIDs := func(ss []list.Section) []string {
		out := []string{}
		for _, s := range ss {
			out = append(out, s.ID)
		}
		return out
	}

	got, moved := MoveSection(sections, "s4", "s2")
	assert.True(t, moved)
	assert.Equal(t, []string{"s1", "s4", "s2", "s3"}, sectionIDs(got))
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, sectionIDs(sections), "input must not change")

	got, moved = MoveSection(sections, "s1", "s3")
	assert.True(t, moved)
	assert.Equal(t, []string{"s2", "s1", "s3", "s4"}, sectionIDs(got))

	_, moved = MoveSection(sections, "s1", "s2")
	assert.False(t, moved)
	_, moved = MoveSection(sections, "s1", "missing")
	assert.False(t, moved)
	_, moved = MoveSection(sections, "s2", "s2")
	assert.False(t, moved)
}

func TestVerifyCatchesDanglingSection(t *testing.T) {
	l := newTestList(t)
	it := add(l, "a", secA)
	it.At(list.Home).SectionID = "gone"
	assert.Error(t, Verify(l))
}

func TestRandomMutationsKeepRanksDense(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := newTestList(t)
	sections := []string{list.DefaultSectionID(list.Home), secA, secB}
	next := 0

	for step := 0; step < 500; step++ {
		switch op := rng.Intn(4); {
		case op == 0 || len(l.Items) < 3:
			add(l, fmt.Sprintf("i%d", next), sections[rng.Intn(len(sections))])
			next++
		case op == 1:
			victim := l.Items[rng.Intn(len(l.Items))]
			for _, mode := range list.Modes() {
				RemoveAndCompact(l.Items, mode, victim.SectionID(mode), victim.ID)
			}
			kept := l.Items[:0]
			for _, it := range l.Items {
				if it.ID != victim.ID {
					kept = append(kept, it)
				}
			}
			l.Items = kept
		case op == 2:
			a := l.Items[rng.Intn(len(l.Items))]
			b := l.Items[rng.Intn(len(l.Items))]
			if a.ID != b.ID {
				_, err := MoveWithin(l.Items, list.Home, a.ID, b.ID)
				require.NoError(t, err)
			}
		default:
			a := l.Items[rng.Intn(len(l.Items))]
			before := ""
			if rng.Intn(2) == 0 {
				before = l.Items[rng.Intn(len(l.Items))].ID
			}
			if a.ID != before {
				_, err := MoveAcross(l.Items, list.Home, a.ID, sections[rng.Intn(len(sections))], before)
				require.NoError(t, err)
			}
		}
		require.NoError(t, Verify(l), "step %d", step)
	}
}
