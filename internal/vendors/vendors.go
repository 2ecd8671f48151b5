// Package vendors holds helpers shared by the vendor implementations in its
// subpackages. Each subpackage registers its vendor with the registry when
// imported.
package vendors

import (
	"fmt"

	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/prng"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

// Windows shared by most vendors.
const (
	PlainWindow    int32 = 28
	FilteredWindow int32 = 1120
)

// DateNotice is the hint shown by dated vendors when no date is configured.
const DateNotice = "Use the date optional configuration parameter to always display from that date."

// DatedNotices returns the info line plus the date hint when applicable.
func DatedNotices(info string, cfg config.Configuration) []string {
	notices := []string{info}
	if cfg.Date == nil {
		notices = append(notices, DateNotice)
	}
	return notices
}

// Source creates the generator for one derived seed, naming the vendor on error.
func Source(vendor string, cfg config.Configuration, seed int32) (prng.Source, error) {
	src, err := prng.New(cfg.Platform, seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", vendor, err)
	}
	return src, nil
}

// Object resolves an object offer.
func Object(cat *catalog.Catalog, id uint16, price uint32, quantity uint8) (stock.Item, error) {
	o, err := cat.Object(id)
	if err != nil {
		return stock.Item{}, err
	}
	return stock.Item{ID: id, Entry: o, Price: price, Quantity: quantity}, nil
}

// Furniture resolves a furniture offer.
func Furniture(cat *catalog.Catalog, id uint16, price uint32) (stock.Item, error) {
	f, err := cat.Furniture(id)
	if err != nil {
		return stock.Item{}, err
	}
	return stock.Item{ID: id, Entry: f, Price: price, Quantity: 1}, nil
}

// Range draws from src and narrows the result to an id.
func Range(src prng.Source, lo, hi int32) (uint16, error) {
	n, err := src.Range(lo, hi)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
