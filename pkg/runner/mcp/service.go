// Package mcp provides the Model Context Protocol server integration for pantry.
package mcp

import (
	"errors"
	"strings"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/view"
)

// Service projects the mutation API into transport-friendly shapes shared by
// the MCP tools and resources.
type Service struct {
	App *app.Service
}

// ErrNoApp is returned when the service was built without an app.Service.
var ErrNoApp = errors.New("mcp: app service is not configured")

// ListSummary describes a list and basic aggregate counts.
type ListSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Theme      string `json:"theme"`
	Current    bool   `json:"current"`
	ItemCount  int    `json:"itemCount"`
	ToBuyCount int    `json:"toBuyCount"`
}

// ItemDTO is a transport-friendly projection of an item.
type ItemDTO struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	HaveCount     int    `json:"haveCount"`
	WantCount     int    `json:"wantCount"`
	ToBuy         int    `json:"toBuy"`
	ShopCompleted bool   `json:"shopCompleted"`
	HomeSectionID string `json:"homeSectionId"`
	ShopSectionID string `json:"shopSectionId"`
	HomeIndex     int    `json:"homeIndex"`
	ShopIndex     int    `json:"shopIndex"`
}

// SectionDTO is one section of a projected view.
type SectionDTO struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Items []ItemDTO `json:"items"`
}

// ViewDTO is a projected list in one mode.
type ViewDTO struct {
	ListID   string       `json:"listId"`
	ListName string       `json:"listName"`
	Theme    string       `json:"theme"`
	Mode     string       `json:"mode"`
	Count    int          `json:"count"`
	Sections []SectionDTO `json:"sections"`
}

// NewService wraps svc.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

func toItemDTO(it *list.Item) ItemDTO {
	return ItemDTO{
		ID:            it.ID,
		Text:          it.Text,
		HaveCount:     it.HaveCount,
		WantCount:     it.WantCount,
		ToBuy:         view.ToBuy(it),
		ShopCompleted: it.ShopCompleted,
		HomeSectionID: it.SectionID(list.Home),
		ShopSectionID: it.SectionID(list.Shop),
		HomeIndex:     it.Index(list.Home),
		ShopIndex:     it.Index(list.Shop),
	}
}

func toViewDTO(v view.View) ViewDTO {
	out := ViewDTO{
		ListID:   v.ListID,
		ListName: v.ListName,
		Theme:    v.Theme,
		Mode:     v.Mode.String(),
		Count:    v.Count(),
		Sections: make([]SectionDTO, 0, len(v.Sections)),
	}
	for _, s := range v.Sections {
		sec := SectionDTO{ID: s.Section.ID, Name: s.Section.Name, Items: make([]ItemDTO, 0, len(s.Items))}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, toItemDTO(it))
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}

// ListLists summarises every list.
func (s *Service) ListLists() ([]ListSummary, error) {
	if s.App == nil {
		return nil, ErrNoApp
	}
	cur := s.App.Current()
	lists := s.App.Lists()
	out := make([]ListSummary, 0, len(lists))
	for _, l := range lists {
		sum := ListSummary{
			ID:        l.ID,
			Name:      l.Name,
			Theme:     l.Theme,
			Current:   cur != nil && cur.ID == l.ID,
			ItemCount: len(l.Items),
		}
		for _, it := range l.Items {
			if view.ToBuy(it) > 0 {
				sum.ToBuyCount++
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

// ViewList projects listID (the current list when empty) in mode (the active
// mode when empty).
func (s *Service) ViewList(listID, mode string, stocked bool) (ViewDTO, error) {
	if s.App == nil {
		return ViewDTO{}, ErrNoApp
	}
	m := s.App.Mode()
	if strings.TrimSpace(mode) != "" {
		var err error
		if m, err = list.ParseMode(mode); err != nil {
			return ViewDTO{}, err
		}
	}
	if listID == "" {
		cur := s.App.Current()
		if cur == nil {
			return ViewDTO{}, list.NotFoundError{Kind: "list", ID: "current"}
		}
		listID = cur.ID
	}
	var opts []view.Option
	if stocked {
		opts = append(opts, view.WithStocked())
	}
	v, err := s.App.ViewOf(listID, m, opts...)
	if err != nil {
		return ViewDTO{}, err
	}
	return toViewDTO(v), nil
}

// ItemByID looks up an item on the current list.
func (s *Service) ItemByID(id string) (ItemDTO, error) {
	if s.App == nil {
		return ItemDTO{}, ErrNoApp
	}
	cur := s.App.Current()
	if cur == nil {
		return ItemDTO{}, list.NotFoundError{Kind: "item", ID: id}
	}
	it, err := cur.Item(id)
	if err != nil {
		return ItemDTO{}, err
	}
	return toItemDTO(it), nil
}

// Mode parses raw, falling back to the active mode when it is empty.
func (s *Service) Mode(raw string) (list.Mode, error) {
	if strings.TrimSpace(raw) == "" {
		return s.App.Mode(), nil
	}
	return list.ParseMode(raw)
}
