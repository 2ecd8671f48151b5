// Package catalog holds the static item metadata the vendors resolve their
// draws against: objects, big craftables, furniture, clothing and hats, plus
// the ids each table must never hand out.
//
// A Catalog is built once (from unpacked game data or the local store) and is
// read-only afterwards; it is safe to share between goroutines.
package catalog

import (
	"errors"
	"fmt"
)

// Kind names one of the catalog tables.
type Kind string

const (
	KindObject       Kind = "objects"
	KindBigCraftable Kind = "big_craftables"
	KindFurniture    Kind = "furniture"
	KindClothing     Kind = "clothing"
	KindHat          Kind = "hats"
)

// Kinds lists every table in load order.
var Kinds = []Kind{KindObject, KindBigCraftable, KindFurniture, KindClothing, KindHat}

// ErrMissing marks a lookup of an id the catalog does not know. Vendors only
// produce ids the catalog should contain, so this signals a generator or data
// bug and is never defaulted away.
var ErrMissing = errors.New("catalog: entry not found")

// MissingError reports which table and id were missing.
type MissingError struct {
	Kind Kind
	ID   uint16
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("catalog: %s %d not found", e.Kind, e.ID)
}

func (e *MissingError) Unwrap() error { return ErrMissing }

const (
	genericShirtName = "Shirt"
	genericPantsName = "Pants"
)

// Catalog is the immutable item lookup.
type Catalog struct {
	objects       map[uint16]*Object
	bigCraftables map[uint16]*BigCraftable
	furniture     map[uint16]*Furniture
	clothing      map[uint16]*Clothing
	hats          map[uint16]*Hat

	objectsOffLimit   map[uint16]struct{}
	furnitureOffLimit map[uint16]struct{}

	genericShirt *Clothing
	genericPants *Clothing
}

// Object returns the object with the given id.
func (c *Catalog) Object(id uint16) (*Object, error) {
	if o, ok := c.objects[id]; ok {
		return o, nil
	}
	return nil, &MissingError{Kind: KindObject, ID: id}
}

// HasObject reports whether id is a known object.
func (c *Catalog) HasObject(id uint16) bool {
	_, ok := c.objects[id]
	return ok
}

// ObjectOffLimit reports whether id may never be sold by random stock.
func (c *Catalog) ObjectOffLimit(id uint16) bool {
	_, ok := c.objectsOffLimit[id]
	return ok
}

// BigCraftable returns the big craftable with the given id.
func (c *Catalog) BigCraftable(id uint16) (*BigCraftable, error) {
	if b, ok := c.bigCraftables[id]; ok {
		return b, nil
	}
	return nil, &MissingError{Kind: KindBigCraftable, ID: id}
}

// Furniture returns the furniture with the given id.
func (c *Catalog) Furniture(id uint16) (*Furniture, error) {
	if f, ok := c.furniture[id]; ok {
		return f, nil
	}
	return nil, &MissingError{Kind: KindFurniture, ID: id}
}

// HasFurniture reports whether id is a known furniture item.
func (c *Catalog) HasFurniture(id uint16) bool {
	_, ok := c.furniture[id]
	return ok
}

// FurnitureOffLimit reports whether id may never be sold by random stock.
func (c *Catalog) FurnitureOffLimit(id uint16) bool {
	_, ok := c.furnitureOffLimit[id]
	return ok
}

// Clothing returns the clothing with the given id. Ids without their own
// record are the game's dyeable generic pieces: a shirt from 1000 up, pants below.
func (c *Catalog) Clothing(id uint16) (*Clothing, error) {
	if cl, ok := c.clothing[id]; ok {
		return cl, nil
	}
	if id >= 1000 && c.genericShirt != nil {
		return c.genericShirt, nil
	}
	if id < 1000 && c.genericPants != nil {
		return c.genericPants, nil
	}
	return nil, &MissingError{Kind: KindClothing, ID: id}
}

// Hat returns the hat with the given id.
func (c *Catalog) Hat(id uint16) (*Hat, error) {
	if h, ok := c.hats[id]; ok {
		return h, nil
	}
	return nil, &MissingError{Kind: KindHat, ID: id}
}

// Len returns the number of records in a table.
func (c *Catalog) Len(kind Kind) int {
	switch kind {
	case KindObject:
		return len(c.objects)
	case KindBigCraftable:
		return len(c.bigCraftables)
	case KindFurniture:
		return len(c.furniture)
	case KindClothing:
		return len(c.clothing)
	case KindHat:
		return len(c.hats)
	default:
		return 0
	}
}

// Empty reports whether no records were loaded at all.
func (c *Catalog) Empty() bool {
	for _, k := range Kinds {
		if c.Len(k) > 0 {
			return false
		}
	}
	return true
}
