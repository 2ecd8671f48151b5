// Package stock turns generated items into labelled row groups and runs the
// bounded scan every vendor shares.
package stock

import (
	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
)

// Item is one generated offer, resolved against the catalog.
type Item struct {
	ID       uint16
	Entry    catalog.Entry
	Price    uint32
	Quantity uint8
	// Slot names the source of the item when a group has fixed positions
	// (the geode kinds). Empty for ordinary shops.
	Slot string
}

// Name is the display name used for filtering.
func (it Item) Name() string { return it.Entry.DisplayName(it.ID) }

// Row is a display-ready offer.
type Row struct {
	ID       uint16         `json:"id"`
	Name     string         `json:"name"`
	Price    uint32         `json:"price,omitempty"`
	Quantity uint8          `json:"quantity"`
	Sprite   catalog.Sprite `json:"sprite"`
	Slot     string         `json:"slot,omitempty"`
}

// Group is the output for one date or cracked count.
type Group struct {
	Index int32  `json:"index"`
	Label string `json:"label"`
	Rows  []Row  `json:"rows"`
}

// Query is the input of one vendor computation.
type Query struct {
	Config config.Configuration
	// Start is the first date (or cracked count) of the window.
	Start  int32
	Filter Filter
}

// Assemble keeps the items matching filter and labels them with the date.
// It reports false when nothing matched.
func Assemble(items []Item, date int32, filter Filter) (Group, bool) {
	return AssembleLabel(items, date, calendar.Format(date), filter)
}

// AssembleLabel is Assemble with a caller-supplied label.
func AssembleLabel(items []Item, index int32, label string, filter Filter) (Group, bool) {
	g := Group{Index: index, Label: label}
	for _, it := range items {
		name := it.Name()
		if !filter.Match(name) {
			continue
		}
		g.Rows = append(g.Rows, Row{
			ID:       it.ID,
			Name:     name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Sprite:   it.Entry.Sprite(it.ID),
			Slot:     it.Slot,
		})
	}
	return g, len(g.Rows) > 0
}
