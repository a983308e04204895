package list

import (
	"encoding/json"
)

// Placement is an item's position in one mode: the section it belongs to and
// its dense rank within that section.
type Placement struct {
	SectionID string
	Index     int
}

// Item is a single thing to keep stocked. Counts and completion are shared by
// both modes; section membership and order are per mode.
type Item struct {
	ID            string
	Text          string
	HaveCount     int
	WantCount     int
	ShopCompleted bool

	Placements map[Mode]*Placement
}

// NewItem returns an item wanting one unit, with no placements yet.
func NewItem(text string) *Item {
	return &Item{
		ID:        NewID(),
		Text:      text,
		WantCount: 1,
		Placements: map[Mode]*Placement{
			Home: {},
			Shop: {},
		},
	}
}

// At returns the placement for mode, creating an empty one if needed.
func (i *Item) At(m Mode) *Placement {
	if i.Placements == nil {
		i.Placements = make(map[Mode]*Placement, 2)
	}
	p, ok := i.Placements[m]
	if !ok || p == nil {
		p = &Placement{}
		i.Placements[m] = p
	}
	return p
}

func (i *Item) placement(m Mode) Placement {
	if p := i.Placements[m]; p != nil {
		return *p
	}
	return Placement{}
}

// SectionID returns the item's section in mode without allocating.
func (i *Item) SectionID(m Mode) string {
	return i.placement(m).SectionID
}

// Index returns the item's rank in mode without allocating.
func (i *Item) Index(m Mode) int {
	return i.placement(m).Index
}

// ToBuy is how many more units are wanted than are on hand.
func (i *Item) ToBuy() int {
	if n := i.WantCount - i.HaveCount; n > 0 {
		return n
	}
	return 0
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	cp := *i
	cp.Placements = make(map[Mode]*Placement, len(i.Placements))
	for m, p := range i.Placements {
		if p == nil {
			continue
		}
		pp := *p
		cp.Placements[m] = &pp
	}
	return &cp
}

// itemJSON is the flat persisted shape of an item.
type itemJSON struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	HomeSectionID string `json:"homeSectionId,omitempty"`
	ShopSectionID string `json:"shopSectionId,omitempty"`
	HomeIndex     int    `json:"homeIndex"`
	ShopIndex     int    `json:"shopIndex"`
	HaveCount     int    `json:"haveCount"`
	WantCount     int    `json:"wantCount"`
	ShopCompleted bool   `json:"shopCompleted"`
}

// MarshalJSON writes the flat persisted shape.
func (i *Item) MarshalJSON() ([]byte, error) {
	home := i.placement(Home)
	shop := i.placement(Shop)
	return json.Marshal(itemJSON{
		ID:            i.ID,
		Text:          i.Text,
		HomeSectionID: home.SectionID,
		ShopSectionID: shop.SectionID,
		HomeIndex:     home.Index,
		ShopIndex:     shop.Index,
		HaveCount:     i.HaveCount,
		WantCount:     i.WantCount,
		ShopCompleted: i.ShopCompleted,
	})
}

// UnmarshalJSON reads the flat persisted shape.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Item{
		ID:            raw.ID,
		Text:          raw.Text,
		HaveCount:     raw.HaveCount,
		WantCount:     raw.WantCount,
		ShopCompleted: raw.ShopCompleted,
		Placements: map[Mode]*Placement{
			Home: {SectionID: raw.HomeSectionID, Index: raw.HomeIndex},
			Shop: {SectionID: raw.ShopSectionID, Index: raw.ShopIndex},
		},
	}
	return nil
}
