package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one raw game data entry: the slash-delimited value keyed by id.
type Record struct {
	Kind Kind
	ID   uint16
	Raw  string
}

// Builder assembles a Catalog from raw records.
type Builder struct {
	cat      *Catalog
	offLimit OffLimit
}

// NewBuilder returns a builder using the built-in off-limit lists.
func NewBuilder() *Builder {
	return &Builder{
		cat: &Catalog{
			objects:       make(map[uint16]*Object),
			bigCraftables: make(map[uint16]*BigCraftable),
			furniture:     make(map[uint16]*Furniture),
			clothing:      make(map[uint16]*Clothing),
			hats:          make(map[uint16]*Hat),
		},
		offLimit: DefaultOffLimit(),
	}
}

// SetOffLimit replaces the blocklists.
func (b *Builder) SetOffLimit(ol OffLimit) *Builder {
	b.offLimit = ol
	return b
}

// AddAll adds every record, stopping at the first malformed one.
func (b *Builder) AddAll(records []Record) error {
	for _, r := range records {
		if err := b.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// Add parses and adds a single record.
func (b *Builder) Add(r Record) error {
	fields := strings.Split(r.Raw, "/")

	var err error
	switch r.Kind {
	case KindObject:
		var o *Object
		if o, err = parseObject(fields); err == nil {
			b.cat.objects[r.ID] = o
		}
	case KindBigCraftable:
		var bc *BigCraftable
		if bc, err = parseBigCraftable(fields); err == nil {
			b.cat.bigCraftables[r.ID] = bc
		}
	case KindFurniture:
		var f *Furniture
		if f, err = parseFurniture(fields); err == nil {
			b.cat.furniture[r.ID] = f
		}
	case KindClothing:
		var c *Clothing
		if c, err = parseClothing(fields); err == nil {
			b.cat.clothing[r.ID] = c
		}
	case KindHat:
		var h *Hat
		if h, err = parseHat(fields); err == nil {
			b.cat.hats[r.ID] = h
		}
	default:
		return fmt.Errorf("catalog: unknown kind %q", r.Kind)
	}

	if err != nil {
		return fmt.Errorf("catalog: %s %d: %w", r.Kind, r.ID, err)
	}
	return nil
}

// Build finalises the catalog. The builder must not be used afterwards.
func (b *Builder) Build() *Catalog {
	c := b.cat
	b.cat = nil

	c.objectsOffLimit = toSet(b.offLimit.Objects)
	c.furnitureOffLimit = toSet(b.offLimit.Furniture)
	c.genericShirt = &Clothing{Name: genericShirtName, LocalizedName: genericShirtName, MaleIndex: -1, FemaleIndex: -1, Price: 50}
	c.genericPants = &Clothing{Name: genericPantsName, LocalizedName: genericPantsName, MaleIndex: -1, FemaleIndex: -1, Price: 50}
	return c
}

func need(fields []string, n int) error {
	if len(fields) < n {
		return fmt.Errorf("expected at least %d fields, got %d", n, len(fields))
	}
	return nil
}

func parseObject(f []string) (*Object, error) {
	if err := need(f, 6); err != nil {
		return nil, err
	}
	price, err := strconv.ParseUint(f[1], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	edibility, err := strconv.ParseInt(f[2], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("edibility: %w", err)
	}

	o := &Object{
		Name:            f[0],
		Price:           uint16(price),
		Edibility:       int16(edibility),
		TypeAndCategory: f[3],
		LocalizedName:   f[4],
		Description:     f[5],
	}
	// Geodes and troves list their possible contents in the seventh field.
	if o.TypeAndCategory == "Basic" && len(f) > 6 {
		o.Treasure = parseIDList(f[6])
	}
	return o, nil
}

// parseIDList returns nil unless every space-separated token is an id.
func parseIDList(s string) []uint16 {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil
	}
	ids := make([]uint16, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.ParseUint(tok, 10, 16)
		if err != nil {
			return nil
		}
		ids = append(ids, uint16(n))
	}
	return ids
}

func parseBigCraftable(f []string) (*BigCraftable, error) {
	if err := need(f, 8); err != nil {
		return nil, err
	}
	price, err := strconv.ParseUint(f[1], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	edibility, err := strconv.ParseInt(f[2], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("edibility: %w", err)
	}
	fragility, err := strconv.ParseUint(f[7], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("fragility: %w", err)
	}

	return &BigCraftable{
		Name:             f[0],
		Price:            uint16(price),
		Edibility:        int16(edibility),
		TypeAndCategory:  f[3],
		Description:      f[4],
		CanBeSetOutdoors: strings.EqualFold(f[5], "true"),
		CanBeSetIndoors:  strings.EqualFold(f[6], "true"),
		Fragility:        uint8(fragility),
		LocalizedName:    f[len(f)-1],
	}, nil
}

// defaultFurnitureSize is the sprite size in tiles for furniture whose
// record leaves it at -1.
func defaultFurnitureSize(typ string) (w, h uint8) {
	switch typ {
	case "chair", "decor", "window", "sconce":
		return 1, 2
	case "bench", "armchair", "dresser", "painting":
		return 2, 2
	case "couch", "rug":
		return 3, 2
	case "long table":
		return 5, 3
	case "lamp", "torch":
		return 1, 3
	case "bookcase", "table":
		return 2, 3
	case "fireplace":
		return 2, 5
	default:
		return 1, 2
	}
}

func parseFurniture(f []string) (*Furniture, error) {
	if err := need(f, 6); err != nil {
		return nil, err
	}

	fur := &Furniture{
		Name:          f[0],
		Type:          f[1],
		LocalizedName: f[len(f)-1],
	}

	size := strings.Fields(f[2])
	if len(size) == 2 {
		w, err := strconv.ParseUint(size[0], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("source width: %w", err)
		}
		h, err := strconv.ParseUint(size[1], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("source height: %w", err)
		}
		fur.SourceWidth, fur.SourceHeight = uint8(w), uint8(h)
	} else {
		fur.SourceWidth, fur.SourceHeight = defaultFurnitureSize(fur.Type)
	}

	rotations, err := strconv.ParseUint(f[4], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("rotations: %w", err)
	}
	fur.Rotations = uint8(rotations)

	price, err := strconv.ParseUint(f[5], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	fur.Price = uint32(price)
	return fur, nil
}

func parseClothing(f []string) (*Clothing, error) {
	if err := need(f, 6); err != nil {
		return nil, err
	}
	male, err := strconv.ParseInt(f[3], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("male index: %w", err)
	}
	female, err := strconv.ParseInt(f[4], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("female index: %w", err)
	}
	price, err := strconv.ParseUint(f[5], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}

	return &Clothing{
		Name:          f[0],
		LocalizedName: f[1],
		Description:   f[2],
		MaleIndex:     int32(male),
		FemaleIndex:   int32(female),
		Price:         uint32(price),
	}, nil
}

func parseHat(f []string) (*Hat, error) {
	if err := need(f, 2); err != nil {
		return nil, err
	}
	return &Hat{
		Name:          f[0],
		Description:   f[1],
		LocalizedName: f[len(f)-1],
	}, nil
}
