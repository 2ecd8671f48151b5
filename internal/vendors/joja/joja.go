// Package joja predicts JojaMart's daily wallpaper and flooring.
package joja

import (
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
	"github.com/vovakirdan/valleyseer/internal/vendors"
)

const ID = "joja"

const price = 250

func init() {
	registry.Register(Vendor{})
}

type Vendor struct{}

func (Vendor) ID() string { return ID }
func (Vendor) Title() string { return "Joja" }
func (Vendor) Kind() registry.Kind { return registry.KindDated }
func (Vendor) Step() int32 { return vendors.PlainWindow }

func (Vendor) Notices(cfg config.Configuration) []string {
	return vendors.DatedNotices("Random stock from Joja.", cfg)
}

func (Vendor) Stock(cat *catalog.Catalog, q stock.Query) ([]stock.Group, error) {
	w := stock.Window{Plain: vendors.PlainWindow, Filtered: vendors.FilteredWindow, Matches: stock.DefaultMatches}
	return stock.Scan(q.Start, q.Filter, w, func(date int32) (stock.Group, bool, error) {
		items, err := Day(q.Config, date)
		if err != nil {
			return stock.Group{}, false, err
		}
		g, ok := stock.Assemble(items, date, q.Filter)
		return g, ok, nil
	})
}

func Seed(cfg config.Configuration, date int32) int32 {
	return cfg.Seed/2 + date + 1
}

// Day generates the stock for date. Patterns are numbered, so no catalog
// lookup is involved.
func Day(cfg config.Configuration, date int32) ([]stock.Item, error) {
	src, err := vendors.Source(ID, cfg, Seed(cfg, date))
	if err != nil {
		return nil, err
	}

	wallpaper, err := vendors.Range(src, 0, 112)
	if err != nil {
		return nil, err
	}
	if wallpaper == 21 {
		wallpaper = 22
	}
	flooring, err := vendors.Range(src, 0, 40)
	if err != nil {
		return nil, err
	}

	return []stock.Item{
		{ID: wallpaper, Entry: catalog.Wallpaper{}, Price: price, Quantity: 1},
		{ID: flooring, Entry: catalog.Wallpaper{Flooring: true}, Price: price, Quantity: 1},
	}, nil
}
