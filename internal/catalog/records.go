package catalog

import "fmt"

// Sprite locates an item's icon on one of the game's sprite sheets.
type Sprite struct {
	Sheet       string `json:"sheet"`
	X           uint16 `json:"x"`
	Y           uint16 `json:"y"`
	Width       uint16 `json:"width"`
	Height      uint16 `json:"height"`
	SheetWidth  uint16 `json:"sheet_width"`
	SheetHeight uint16 `json:"sheet_height"`
}

// Entry is anything a vendor can put on sale. Some names and sprites depend
// on the id the entry was reached through, so both take it.
type Entry interface {
	DisplayName(id uint16) string
	Sprite(id uint16) Sprite
}

// Object is a regular item (ObjectInformation).
type Object struct {
	Name            string
	Price           uint16
	Edibility       int16
	TypeAndCategory string
	LocalizedName   string
	Description     string
	// Treasure lists the possible contents of geodes and artifact troves.
	Treasure []uint16
}

func (o *Object) DisplayName(uint16) string { return o.Name }

func (o *Object) Sprite(id uint16) Sprite {
	return Sprite{
		Sheet:       "springobjects.png",
		X:           (id % 24) * 16,
		Y:           (id / 24) * 16,
		Width:       16,
		Height:      16,
		SheetWidth:  384,
		SheetHeight: 624,
	}
}

// BigCraftable is a placeable machine or decoration (BigCraftablesInformation).
type BigCraftable struct {
	Name             string
	Price            uint16
	Edibility        int16
	TypeAndCategory  string
	Description      string
	CanBeSetOutdoors bool
	CanBeSetIndoors  bool
	Fragility        uint8
	LocalizedName    string
}

func (b *BigCraftable) DisplayName(uint16) string { return b.Name }

func (b *BigCraftable) Sprite(id uint16) Sprite {
	return Sprite{
		Sheet:       "Craftables.png",
		X:           (id % 8) * 16,
		Y:           (id / 8) * 32,
		Width:       16,
		Height:      32,
		SheetWidth:  128,
		SheetHeight: 1152,
	}
}

// Furniture is a furniture item. SourceWidth and SourceHeight are in tiles.
type Furniture struct {
	Name          string
	Type          string
	SourceWidth   uint8
	SourceHeight  uint8
	Rotations     uint8
	Price         uint32
	LocalizedName string
}

func (f *Furniture) DisplayName(uint16) string { return f.Name }

func (f *Furniture) Sprite(id uint16) Sprite {
	return Sprite{
		Sheet:       "furniture.png",
		X:           (id % 32) * 16,
		Y:           (id / 32) * 16,
		Width:       uint16(f.SourceWidth) * 16,
		Height:      uint16(f.SourceHeight) * 16,
		SheetWidth:  512,
		SheetHeight: 1488,
	}
}

// Clothing is a shirt or pair of pants (ClothingInformation).
type Clothing struct {
	Name          string
	LocalizedName string
	Description   string
	MaleIndex     int32
	FemaleIndex   int32
	Price         uint32
}

// DisplayName appends the clothing number, since many shirts share a name.
func (c *Clothing) DisplayName(id uint16) string {
	n := id
	if id >= 1000 {
		n = id - 1000
	}
	return fmt.Sprintf("%s (%d)", c.Name, n)
}

func (c *Clothing) Sprite(id uint16) Sprite {
	var index uint16
	if c.Name == genericShirtName && id >= 1000 {
		// The generic shirt draws from the id itself.
		index = id - 1000
	} else if c.MaleIndex > 0 {
		index = uint16(c.MaleIndex)
	}

	return Sprite{
		Sheet:       "shirts.png",
		X:           (index % 16) * 8,
		Y:           (index / 16) * 8 * 4,
		Width:       8,
		Height:      8,
		SheetWidth:  256,
		SheetHeight: 608,
	}
}

// Hat is a hat (hats).
type Hat struct {
	Name          string
	Description   string
	LocalizedName string
}

func (h *Hat) DisplayName(uint16) string { return h.Name }

func (h *Hat) Sprite(id uint16) Sprite {
	return Sprite{
		Sheet:       "hats.png",
		X:           (id % 12) * 20,
		Y:           (id / 12) * 80,
		Width:       20,
		Height:      20,
		SheetWidth:  240,
		SheetHeight: 1040,
	}
}

// Wallpaper is a wallpaper or flooring pattern, identified only by number.
type Wallpaper struct {
	Flooring bool
}

func (w Wallpaper) DisplayName(id uint16) string {
	if w.Flooring {
		return fmt.Sprintf("Flooring (%d)", id)
	}
	return fmt.Sprintf("Wallpaper (%d)", id)
}

func (w Wallpaper) Sprite(id uint16) Sprite {
	if w.Flooring {
		return Sprite{
			Sheet:       "walls_and_floors.png",
			X:           (id % 8) * 32,
			Y:           (id/8)*32 + 336,
			Width:       28,
			Height:      26,
			SheetWidth:  256,
			SheetHeight: 560,
		}
	}
	return Sprite{
		Sheet:       "walls_and_floors.png",
		X:           (id % 16) * 16,
		Y:           (id/16)*48 + 8,
		Width:       16,
		Height:      28,
		SheetWidth:  256,
		SheetHeight: 560,
	}
}

var (
	_ Entry = (*Object)(nil)
	_ Entry = (*BigCraftable)(nil)
	_ Entry = (*Furniture)(nil)
	_ Entry = (*Clothing)(nil)
	_ Entry = (*Hat)(nil)
	_ Entry = Wallpaper{}
)
