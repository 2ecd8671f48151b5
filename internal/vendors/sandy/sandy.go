// Package sandy predicts Sandy's daily shirt and Tuesday furniture.
package sandy

import (
	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
	"github.com/vovakirdan/valleyseer/internal/vendors"
)

const ID = "sandy"

func init() {
	registry.Register(Vendor{})
}

type Vendor struct{}

func (Vendor) ID() string { return ID }
func (Vendor) Title() string { return "Sandy" }
func (Vendor) Kind() registry.Kind { return registry.KindDated }
func (Vendor) Step() int32 { return vendors.PlainWindow }

func (Vendor) Notices(cfg config.Configuration) []string {
	return vendors.DatedNotices("Random stock from Sandy.", cfg)
}

func (Vendor) Stock(cat *catalog.Catalog, q stock.Query) ([]stock.Group, error) {
	w := stock.Window{Plain: vendors.PlainWindow, Filtered: vendors.FilteredWindow, Matches: stock.DefaultMatches}
	return stock.Scan(q.Start, q.Filter, w, func(date int32) (stock.Group, bool, error) {
		items, err := Day(cat, q.Config, date)
		if err != nil {
			return stock.Group{}, false, err
		}
		g, ok := stock.Assemble(items, date, q.Filter)
		return g, ok, nil
	})
}

func Seed(cfg config.Configuration, date int32) int32 {
	return cfg.Seed/2 + date
}

// Day generates the stock for date.
func Day(cat *catalog.Catalog, cfg config.Configuration, date int32) ([]stock.Item, error) {
	src, err := vendors.Source(ID, cfg, Seed(cfg, date))
	if err != nil {
		return nil, err
	}

	n, err := vendors.Range(src, 0, 127)
	if err != nil {
		return nil, err
	}
	shirtID := 1000 + n
	shirt, err := cat.Clothing(shirtID)
	if err != nil {
		return nil, err
	}
	items := []stock.Item{{ID: shirtID, Entry: shirt, Price: 700, Quantity: 1}}

	if calendar.Weekday(date) == calendar.Tuesday {
		n, err := vendors.Range(src, 0, 4)
		if err != nil {
			return nil, err
		}
		it, err := vendors.Furniture(cat, 2734+n*2, 500)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}
