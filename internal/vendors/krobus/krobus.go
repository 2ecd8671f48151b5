// Package krobus predicts Krobus's rotating daily item in the sewers.
package krobus

import (
	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
	"github.com/vovakirdan/valleyseer/internal/vendors"
)

const ID = "krobus"

const plainWindow int32 = 112

func init() {
	registry.Register(Vendor{})
}

// Vendor is Krobus's shop. Only Wednesdays and Saturdays have a random item.
type Vendor struct{}

func (Vendor) ID() string { return ID }
func (Vendor) Title() string { return "Krobus" }
func (Vendor) Kind() registry.Kind { return registry.KindDated }
func (Vendor) Step() int32 { return plainWindow }

func (Vendor) Notices(cfg config.Configuration) []string {
	return vendors.DatedNotices("Random stock from Krobus.", cfg)
}

func (Vendor) Stock(cat *catalog.Catalog, q stock.Query) ([]stock.Group, error) {
	w := stock.Window{Plain: plainWindow, Filtered: vendors.FilteredWindow, Matches: stock.DefaultMatches}
	return stock.Scan(q.Start, q.Filter, w, func(date int32) (stock.Group, bool, error) {
		if !Open(date) {
			return stock.Group{}, false, nil
		}
		items, err := Day(cat, q.Config, date)
		if err != nil {
			return stock.Group{}, false, err
		}
		g, ok := stock.Assemble(items, date, q.Filter)
		return g, ok, nil
	})
}

// Open reports whether date has a random item.
func Open(date int32) bool {
	wd := calendar.Weekday(date)
	return wd == calendar.Wednesday || wd == calendar.Saturday
}

// Seed returns the generator seed for date. Consecutive days share a seed.
func Seed(cfg config.Configuration, date int32) int32 {
	return cfg.Seed + date/2
}

// Day generates the item for an open date.
func Day(cat *catalog.Catalog, cfg config.Configuration, date int32) ([]stock.Item, error) {
	src, err := vendors.Source(ID, cfg, Seed(cfg, date))
	if err != nil {
		return nil, err
	}

	var it stock.Item
	switch calendar.Weekday(date) {
	case calendar.Wednesday:
		id, err := vendors.Range(src, 698, 709)
		if err != nil {
			return nil, err
		}
		it, err = vendors.Object(cat, id, 200, 5)
		if err != nil {
			return nil, err
		}
	case calendar.Saturday:
		id, err := vendors.Range(src, 194, 245)
		if err != nil {
			return nil, err
		}
		if id == 217 {
			id = 216
		}
		price, err := src.Range(5, 51)
		if err != nil {
			return nil, err
		}
		it, err = vendors.Object(cat, id, uint32(price)*10, 5)
		if err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	return []stock.Item{it}, nil
}
