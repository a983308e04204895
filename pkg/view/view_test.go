package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/pantry/pkg/list"
)

func item(id, home string, homeIdx int, shop string, shopIdx, have, want int, done bool) *list.Item {
	return &list.Item{
		ID:            id,
		Text:          id,
		HaveCount:     have,
		WantCount:     want,
		ShopCompleted: done,
		Placements: map[list.Mode]*list.Placement{
			list.Home: {SectionID: home, Index: homeIdx},
			list.Shop: {SectionID: shop, Index: shopIdx},
		},
	}
}

func fixture() *list.List {
	l := list.NewList("Groceries", "")
	l.HomeSections = append(l.HomeSections, list.Section{ID: "pantry", Name: "Pantry"})
	l.ShopSections = []list.Section{{ID: "produce", Name: "Produce"}, list.DefaultSection(list.Shop)}
	l.Items = []*list.Item{
		item("milk", "pantry", 1, "produce", 0, 0, 2, false),
		item("eggs", "pantry", 0, list.DefaultSectionID(list.Shop), 1, 12, 12, false),
		item("rice", list.DefaultSectionID(list.Home), 0, list.DefaultSectionID(list.Shop), 0, 3, 3, true),
	}
	return l
}

func sectionIDs(v View) []string {
	out := []string{}
	for _, s := range v.Sections {
		out = append(out, s.Section.ID)
	}
	return out
}

func itemIDs(s SectionView) []string {
	out := []string{}
	for _, it := range s.Items {
		out = append(out, it.ID)
	}
	return out
}

func TestProjectHomeShowsEverythingInRankOrder(t *testing.T) {
	v := Project(fixture(), list.Home)

	assert.Equal(t, list.DefaultTheme, v.Theme)
	assert.Equal(t, []string{list.DefaultSectionID(list.Home), "pantry"}, sectionIDs(v))
	assert.Equal(t, []string{"rice"}, itemIDs(v.Sections[0]))
	assert.Equal(t, []string{"eggs", "milk"}, itemIDs(v.Sections[1]))
	assert.Equal(t, 3, v.Count())
}

func TestProjectShopFiltersStockedItems(t *testing.T) {
	v := Project(fixture(), list.Shop)

	assert.Equal(t, []string{"produce", list.DefaultSectionID(list.Shop)}, sectionIDs(v))
	assert.Equal(t, []string{"milk"}, itemIDs(v.Sections[0]))
	// eggs are stocked and not checked off; rice is checked off mid-trip
	assert.Equal(t, []string{"rice"}, itemIDs(v.Sections[1]))
	assert.Equal(t, 2, v.Count())

	all := Project(fixture(), list.Shop, WithStocked())
	assert.Equal(t, 3, all.Count())
}

func TestProjectKeepsEmptySections(t *testing.T) {
	l := list.NewList("Empty", "#ff0000")
	v := Project(l, list.Shop)
	require.Len(t, v.Sections, 1)
	assert.NotNil(t, v.Sections[0].Items)
	assert.Empty(t, v.Sections[0].Items)
	assert.Equal(t, "#ff0000", v.Theme)
}

func TestProjectDoesNotMutate(t *testing.T) {
	l := fixture()
	l.Items[0].At(list.Home).Index = 7 // gap left on purpose
	before, err := json.Marshal(l)
	require.NoError(t, err)

	first := Project(l, list.Home)
	second := Project(l, list.Home)

	after, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	assert.Equal(t, sectionIDs(first), sectionIDs(second))
	assert.Equal(t, itemIDs(first.Sections[1]), itemIDs(second.Sections[1]))
	assert.Equal(t, []string{"milk", "eggs", "rice"}, []string{l.Items[0].ID, l.Items[1].ID, l.Items[2].ID})
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name       string
		have, want int
		done       bool
		shop       bool
	}{
		{name: "needed", have: 0, want: 1, shop: true},
		{name: "stocked", have: 2, want: 2, shop: false},
		{name: "overstocked", have: 5, want: 2, shop: false},
		{name: "stocked but checked", have: 2, want: 2, done: true, shop: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := item("x", "", 0, "", 0, tc.have, tc.want, tc.done)
			assert.Equal(t, tc.shop, Visible(it, list.Shop))
			assert.True(t, Visible(it, list.Home))
		})
	}
	assert.Equal(t, 0, ToBuy(item("x", "", 0, "", 0, 5, 2, false)))
	assert.Equal(t, 3, ToBuy(item("x", "", 0, "", 0, 1, 4, false)))
}

func TestProjectNilList(t *testing.T) {
	v := Project(nil, list.Home)
	assert.Equal(t, 0, v.Count())
	_, ok := v.Find("anything")
	assert.False(t, ok)
}
