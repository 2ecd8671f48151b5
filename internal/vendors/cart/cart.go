// Package cart predicts the traveling cart's stock.
//
// The cart is open on Fridays and Sundays and during the night market
// (Winter 15-17). Each open day sells ten random objects, one random piece
// of furniture, a seasonal extra and sometimes a coffee bean.
package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/prng"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
	"github.com/vovakirdan/valleyseer/internal/vendors"
)

// ID is the registry id of the cart.
const ID = "cart"

const (
	plainWindow    int32 = 28
	filteredWindow int32 = 1000

	objectSlots    = 10
	objectIDLimit  = 790
	furnitureLimit = 1613

	rareSeedID   = 347
	rarecrowID   = 136
	coffeeBeanID = 433

	// A full walk of the id space without an accepted object means the
	// catalog cannot satisfy the cart.
	maxWalk = 2 * objectIDLimit
	// Rejection draws allowed for the furniture pick.
	maxFurnitureDraws = 1 << 16
)

// ErrExhausted is returned when the catalog has nothing left to offer.
var ErrExhausted = errors.New("cart: no eligible item")

func init() {
	registry.Register(Vendor{})
}

// Vendor is the traveling cart.
type Vendor struct{}

func (Vendor) ID() string { return ID }
func (Vendor) Title() string { return "Traveling Cart" }
func (Vendor) Kind() registry.Kind { return registry.KindDated }
func (Vendor) Step() int32 { return plainWindow }

func (Vendor) Notices(cfg config.Configuration) []string {
	return vendors.DatedNotices("Random stock from the traveling cart.", cfg)
}

func (Vendor) Stock(cat *catalog.Catalog, q stock.Query) ([]stock.Group, error) {
	w := stock.Window{Plain: plainWindow, Filtered: filteredWindow, Matches: stock.DefaultMatches}
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

// Open reports whether the cart sells on date.
func Open(date int32) bool {
	switch calendar.Weekday(date) {
	case calendar.Friday, calendar.Sunday:
		return true
	}
	day := calendar.DayNumber(date)
	return calendar.SeasonNumber(date) == calendar.Winter && day >= 14 && day <= 16
}

// Seed returns the generator seed for date.
func Seed(cfg config.Configuration, date int32) int32 {
	return cfg.Seed + date
}

// picker draws one object slot. The two platforms order the category check
// and the multiplier draws differently, which changes what a rejected
// candidate consumes.
type picker func(cat *catalog.Catalog, src prng.Source, used map[uint16]struct{}) (stock.Item, error)

// Day generates the full stock for one open day.
func Day(cat *catalog.Catalog, cfg config.Configuration, date int32) ([]stock.Item, error) {
	var pick picker
	switch cfg.Platform {
	case config.PlatformPC:
		pick = pickPC
	case config.PlatformSwitch:
		pick = pickSwitch
	default:
		return nil, fmt.Errorf("cart: %w: %q", config.ErrUnknownPlatform, cfg.Platform)
	}

	if err := walkable(cat); err != nil {
		return nil, err
	}

	src, err := vendors.Source(ID, cfg, Seed(cfg, date))
	if err != nil {
		return nil, err
	}

	items := make([]stock.Item, 0, objectSlots+3)
	used := make(map[uint16]struct{}, objectSlots)
	for i := 0; i < objectSlots; i++ {
		it, err := pick(cat, src, used)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	mult, err := src.Range(1, 11)
	if err != nil {
		return nil, err
	}
	furnitureID, err := randomFurniture(cat, src)
	if err != nil {
		return nil, err
	}
	it, err := vendors.Furniture(cat, furnitureID, uint32(mult)*250)
	if err != nil {
		return nil, err
	}
	items = append(items, it)

	if calendar.SeasonNumber(date) < calendar.Fall {
		quantity := uint8(1)
		if src.Float64() < 0.1 {
			quantity = 5
		}
		it, err := vendors.Object(cat, rareSeedID, 1000, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	} else if src.Float64() < 0.4 {
		bc, err := cat.BigCraftable(rarecrowID)
		if err != nil {
			return nil, err
		}
		items = append(items, stock.Item{ID: rarecrowID, Entry: bc, Price: 4000, Quantity: 1})
	}

	if src.Float64() < 0.25 {
		it, err := vendors.Object(cat, coffeeBeanID, 2500, 1)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}

// rejected reports objects the cart never sells even though they are not
// on the off-limit list.
func rejected(o *catalog.Object) bool {
	return !strings.Contains(o.TypeAndCategory, "-") ||
		o.Price == 0 ||
		strings.Contains(o.TypeAndCategory, "-13") ||
		o.TypeAndCategory == "Quest" ||
		o.Name == "Weeds" ||
		strings.Contains(o.TypeAndCategory, "Minerals") ||
		strings.Contains(o.TypeAndCategory, "Arch")
}

// multipliers are the per-candidate price and quantity draws.
type multipliers struct {
	constant uint32
	variable uint32
	quantity float64
}

func drawMultipliers(src prng.Source) (multipliers, error) {
	c, err := src.Range(1, 11)
	if err != nil {
		return multipliers{}, err
	}
	v, err := src.Range(3, 6)
	if err != nil {
		return multipliers{}, err
	}
	return multipliers{constant: uint32(c), variable: uint32(v), quantity: src.Float64()}, nil
}

func offer(id uint16, o *catalog.Object, m multipliers) stock.Item {
	price := max(100*m.constant, uint32(o.Price)*m.variable)
	quantity := uint8(1)
	if m.quantity < 0.1 {
		quantity = 5
	}
	return stock.Item{ID: id, Entry: o, Price: price, Quantity: quantity}
}

// candidate advances the id walk to the next catalog object that is not off
// limit.
func candidate(cat *catalog.Catalog, id uint16) uint16 {
	for {
		id = (id + 1) % objectIDLimit
		if cat.HasObject(id) && !cat.ObjectOffLimit(id) {
			return id
		}
	}
}

// pickPC checks the category before drawing the multipliers.
func pickPC(cat *catalog.Catalog, src prng.Source, used map[uint16]struct{}) (stock.Item, error) {
	id, err := vendors.Range(src, 2, objectIDLimit)
	if err != nil {
		return stock.Item{}, err
	}
	for step := 0; step < maxWalk; step++ {
		id = candidate(cat, id)
		o, err := cat.Object(id)
		if err != nil {
			return stock.Item{}, err
		}

		if rejected(o) {
			continue
		}
		m, err := drawMultipliers(src)
		if err != nil {
			return stock.Item{}, err
		}

		if _, dup := used[id]; dup {
			continue
		}
		used[id] = struct{}{}
		return offer(id, o, m), nil
	}
	return stock.Item{}, ErrExhausted
}

// pickSwitch draws the multipliers before checking the category.
func pickSwitch(cat *catalog.Catalog, src prng.Source, used map[uint16]struct{}) (stock.Item, error) {
	id, err := vendors.Range(src, 2, objectIDLimit)
	if err != nil {
		return stock.Item{}, err
	}
	for step := 0; step < maxWalk; step++ {
		id = candidate(cat, id)
		o, err := cat.Object(id)
		if err != nil {
			return stock.Item{}, err
		}

		m, err := drawMultipliers(src)
		if err != nil {
			return stock.Item{}, err
		}
		if rejected(o) {
			continue
		}

		if _, dup := used[id]; dup {
			continue
		}
		used[id] = struct{}{}
		return offer(id, o, m), nil
	}
	return stock.Item{}, ErrExhausted
}

// walkable guards the id walk against a catalog with no object to land on.
func walkable(cat *catalog.Catalog) error {
	for id := uint16(0); id < objectIDLimit; id++ {
		if cat.HasObject(id) && !cat.ObjectOffLimit(id) {
			return nil
		}
	}
	return ErrExhausted
}

func randomFurniture(cat *catalog.Catalog, src prng.Source) (uint16, error) {
	for i := 0; i < maxFurnitureDraws; i++ {
		id, err := vendors.Range(src, 0, furnitureLimit)
		if err != nil {
			return 0, err
		}
		if cat.HasFurniture(id) && !cat.FurnitureOffLimit(id) {
			return id, nil
		}
	}
	return 0, ErrExhausted
}
