// Package geodes predicts what the blacksmith finds in each kind of geode.
//
// The contents depend on how many geodes have been cracked so far, not on the
// date. Every kind is rolled from a fresh generator seeded with the same count,
// so one row shows what the next geode of each kind would give.
package geodes

import (
	"strconv"

	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/prng"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
	"github.com/vovakirdan/valleyseer/internal/vendors"
)

const ID = "geodes"

// Slot is a kind of geode.
type Slot int

const (
	Geode Slot = iota
	FrozenGeode
	MagmaGeode
	OmniGeode
	ArtifactTrove
	GoldenCoconut
)

// Slots lists every kind in display order.
var Slots = []Slot{Geode, FrozenGeode, MagmaGeode, OmniGeode, ArtifactTrove, GoldenCoconut}

var slotNames = [...]string{"Geode", "Frozen Geode", "Magma Geode", "Omni Geode", "Artifact Trove", "Golden Coconut"}

func (s Slot) String() string { return slotNames[s] }

// geodeObject is the catalog object whose treasure list the slot draws from.
var geodeObject = [...]uint16{535, 536, 537, 749, 275}

const (
	qiBeanID        = 890
	prismaticID     = 74
	goldenHelmetID  = 75
	stoneID         = 390
	clayID          = 330
	copperOreID     = 378
	ironOreID       = 380
	coalID          = 382
	goldOreID       = 384
	iridiumOreID    = 386
	earthCrystalID  = 86
	frozenTearID    = 84
	fireQuartzID    = 82
	omniAfterCracks = 15
)

func init() {
	registry.Register(Vendor{})
}

type Vendor struct{}

func (Vendor) ID() string { return ID }
func (Vendor) Title() string { return "Geodes" }
func (Vendor) Kind() registry.Kind { return registry.KindCounter }
func (Vendor) Step() int32 { return vendors.PlainWindow }

func (Vendor) Notices(cfg config.Configuration) []string {
	notices := []string{"Items from geodes."}
	if cfg.GeodesCracked == nil {
		notices = append(notices, "Use the geodes cracked optional configuration parameter to always display from there.")
	}
	if cfg.MineLevel == nil {
		notices = append(notices, "The deepest mine level you have reached can be specified using the optional configuration parameter. We assume 120 by default.")
	}
	if cfg.QisCrop == nil {
		notices = append(notices, "Whether you are on a Qi's crop quest can be specified using the optional configuration parameter. We assume not by default.")
	}
	if cfg.GoldenHelmet == nil {
		notices = append(notices, "Whether you have received the golden helmet can be specified using the optional configuration parameter. We assume so by default.")
	}
	return notices
}

func (Vendor) Stock(cat *catalog.Catalog, q stock.Query) ([]stock.Group, error) {
	w := stock.Window{Plain: vendors.PlainWindow, Filtered: vendors.FilteredWindow, Matches: stock.DefaultMatches}
	return stock.Scan(q.Start, q.Filter, w, func(cracked int32) (stock.Group, bool, error) {
		items, err := Crack(cat, q.Config, cracked)
		if err != nil {
			return stock.Group{}, false, err
		}
		g, ok := stock.AssembleLabel(items, cracked, strconv.Itoa(int(cracked)), q.Filter)
		return g, ok, nil
	})
}

// Seed returns the generator seed shared by every slot at a cracked count.
func Seed(cfg config.Configuration, cracked int32) int32 {
	return cfg.Seed/2 + cracked
}

// Crack returns the contents of the next geode of every kind, in Slots order.
func Crack(cat *catalog.Catalog, cfg config.Configuration, cracked int32) ([]stock.Item, error) {
	items := make([]stock.Item, 0, len(Slots))
	for _, slot := range Slots {
		src, err := vendors.Source(ID, cfg, Seed(cfg, cracked))
		if err != nil {
			return nil, err
		}
		it, err := roll(cat, cfg, src, slot, cracked)
		if err != nil {
			return nil, err
		}
		it.Slot = slot.String()
		items = append(items, it)
	}
	return items, nil
}

// burn discards a random number of floats.
func burn(src prng.Source) error {
	n, err := src.Range(1, 10)
	if err != nil {
		return err
	}
	for i := int32(0); i < n; i++ {
		src.Float64()
	}
	return nil
}

func roll(cat *catalog.Catalog, cfg config.Configuration, src prng.Source, slot Slot, cracked int32) (stock.Item, error) {
	if err := burn(src); err != nil {
		return stock.Item{}, err
	}
	if err := burn(src); err != nil {
		return stock.Item{}, err
	}

	if src.Float64() <= 0.1 && cfg.QisCropOrDefault() {
		quantity := uint8(1)
		if src.Float64() < 0.25 {
			quantity = 5
		}
		return vendors.Object(cat, qiBeanID, 0, quantity)
	}

	if slot == GoldenCoconut {
		return coconut(cat, cfg, src)
	}
	if slot == ArtifactTrove || src.Float64() >= 0.5 {
		return treasure(cat, src, slot, cracked)
	}
	return ore(cat, cfg, src, slot)
}

// treasure picks from the geode's own treasure list.
func treasure(cat *catalog.Catalog, src prng.Source, slot Slot, cracked int32) (stock.Item, error) {
	geode, err := cat.Object(geodeObject[slot])
	if err != nil {
		return stock.Item{}, err
	}
	if len(geode.Treasure) == 0 {
		return stock.Item{}, &catalog.MissingError{Kind: catalog.KindObject, ID: geodeObject[slot]}
	}

	n, err := src.Range(0, int32(len(geode.Treasure)))
	if err != nil {
		return stock.Item{}, err
	}
	id := geode.Treasure[n]

	if slot == OmniGeode && src.Float64() < 0.008 && cracked > omniAfterCracks {
		id = prismaticID
	}
	return vendors.Object(cat, id, 0, 1)
}

// ore picks the common minerals branch.
func ore(cat *catalog.Catalog, cfg config.Configuration, src prng.Source, slot Slot) (stock.Item, error) {
	n, err := src.Range(0, 3)
	if err != nil {
		return stock.Item{}, err
	}
	quantity := uint8(n)*2 + 1
	if src.Float64() < 0.1 {
		quantity = 10
	}
	if src.Float64() < 0.01 {
		quantity = 20
	}

	if src.Float64() < 0.5 {
		r, err := src.Range(0, 4)
		if err != nil {
			return stock.Item{}, err
		}
		switch r {
		case 0, 1:
			return vendors.Object(cat, stoneID, 0, quantity)
		case 2:
			return vendors.Object(cat, clayID, 0, 1)
		}
		switch slot {
		case Geode:
			return vendors.Object(cat, earthCrystalID, 0, 1)
		case FrozenGeode:
			return vendors.Object(cat, frozenTearID, 0, 1)
		case MagmaGeode:
			return vendors.Object(cat, fireQuartzID, 0, 1)
		default:
			k, err := src.Range(0, 3)
			if err != nil {
				return stock.Item{}, err
			}
			return vendors.Object(cat, fireQuartzID+uint16(k)*2, 0, 1)
		}
	}

	mineLevel := cfg.MineLevelOrDefault()
	switch slot {
	case Geode:
		r, err := src.Range(0, 3)
		if err != nil {
			return stock.Item{}, err
		}
		switch r {
		case 0:
			return vendors.Object(cat, copperOreID, 0, quantity)
		case 1:
			id := uint16(copperOreID)
			if mineLevel > 25 {
				id = ironOreID
			}
			return vendors.Object(cat, id, 0, quantity)
		default:
			return vendors.Object(cat, coalID, 0, quantity)
		}
	case FrozenGeode:
		r, err := src.Range(0, 4)
		if err != nil {
			return stock.Item{}, err
		}
		switch r {
		case 0:
			return vendors.Object(cat, copperOreID, 0, quantity)
		case 1:
			return vendors.Object(cat, ironOreID, 0, quantity)
		case 2:
			return vendors.Object(cat, coalID, 0, quantity)
		default:
			id := uint16(ironOreID)
			if mineLevel > 75 {
				id = goldOreID
			}
			return vendors.Object(cat, id, 0, quantity)
		}
	default:
		r, err := src.Range(0, 5)
		if err != nil {
			return stock.Item{}, err
		}
		switch r {
		case 0:
			return vendors.Object(cat, copperOreID, 0, quantity)
		case 1:
			return vendors.Object(cat, ironOreID, 0, quantity)
		case 2:
			return vendors.Object(cat, coalID, 0, quantity)
		case 3:
			return vendors.Object(cat, goldOreID, 0, quantity)
		default:
			return vendors.Object(cat, iridiumOreID, 0, quantity/2+1)
		}
	}
}

// coconutTable is the golden coconut's regular loot.
var coconutTable = [...]struct {
	id       uint16
	quantity uint8
}{
	{69, 1},
	{835, 1},
	{833, 5},
	{831, 5},
	{820, 1},
	{292, 1},
	{386, 5},
}

func coconut(cat *catalog.Catalog, cfg config.Configuration, src prng.Source) (stock.Item, error) {
	if src.Float64() < 0.05 && !cfg.GoldenHelmetOrDefault() {
		h, err := cat.Hat(goldenHelmetID)
		if err != nil {
			return stock.Item{}, err
		}
		return stock.Item{ID: goldenHelmetID, Entry: h, Quantity: 1}, nil
	}

	r, err := src.Range(0, int32(len(coconutTable)))
	if err != nil {
		return stock.Item{}, err
	}
	e := coconutTable[r]
	return vendors.Object(cat, e.id, 0, e.quantity)
}
