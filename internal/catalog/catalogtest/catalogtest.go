// Package catalogtest builds a small synthetic catalog that covers every id
// the vendors can produce, without the game's data files.
package catalogtest

import (
	"fmt"

	"github.com/vovakirdan/valleyseer/internal/catalog"
)

// MaxObject is the highest object id in the synthetic catalog.
const MaxObject = 935

var namedObjects = map[uint16]string{
	0:   "Weeds",
	69:  "Banana Sapling",
	74:  "Prismatic Shard",
	82:  "Fire Quartz",
	84:  "Frozen Tear",
	86:  "Earth Crystal",
	275: "Artifact Trove",
	292: "Mahogany Seed",
	330: "Clay",
	347: "Rare Seed",
	378: "Copper Ore",
	380: "Iron Ore",
	382: "Coal",
	384: "Gold Ore",
	386: "Iridium Ore",
	390: "Stone",
	433: "Coffee Bean",
	535: "Geode",
	536: "Frozen Geode",
	537: "Magma Geode",
	749: "Omni Geode",
	820: "Fossilized Skull",
	831: "Taro Tuber",
	833: "Pineapple Seeds",
	835: "Mango Sapling",
	890: "Qi Bean",
}

var treasure = map[uint16]string{
	535: "538 542 548 549 552 555 556 557 558 566 568 569 571 574 576 121",
	536: "541 544 545 546 550 551 559 560 561 564 567 572 573 577 123",
	537: "539 540 543 547 553 554 562 563 565 570 575 578 122",
	749: "538 542 548 549 552 555 556 557 558 566 568 569 571 574 576 541 544 545 546 550 551 559 560 561 564 567 572 573 577 539 540 543 547 553 554 562 563 565 570 575 578 121 122 123",
	275: "100 101 103 104 105 106 108 109 110 111 112 114 115 116 117 118 119 120 121 122 123 125 166 373 797",
}

// hole reports ids deliberately left out so the rejection loops skip them.
func hole(id uint16) bool {
	return id%11 == 3 && ((id >= 100 && id < 190) || (id >= 250 && id < 320))
}

// objectCategory rotates through categories the cart accepts and rejects.
func objectCategory(id uint16) string {
	switch id % 6 {
	case 0:
		return "Basic"
	case 1:
		return "Basic -13"
	case 2:
		return "Minerals -2"
	default:
		return fmt.Sprintf("Basic -%d", 74+id%3)
	}
}

func objectPrice(id uint16) uint16 {
	if id%7 == 0 {
		return 0
	}
	return (id%40 + 1) * 5
}

// Records returns the raw records of the synthetic catalog.
func Records() []catalog.Record {
	var recs []catalog.Record

	for id := uint16(0); id <= MaxObject; id++ {
		if hole(id) {
			continue
		}
		name, ok := namedObjects[id]
		if !ok {
			name = fmt.Sprintf("Object %d", id)
		}
		raw := fmt.Sprintf("%s/%d/-300/%s/%s/Synthetic object.", name, objectPrice(id), objectCategory(id), name)
		if t, ok := treasure[id]; ok {
			raw = fmt.Sprintf("%s/%d/-300/Basic/%s/Crack it open./%s", name, objectPrice(id), name, t)
		}
		recs = append(recs, catalog.Record{Kind: catalog.KindObject, ID: id, Raw: raw})
	}

	recs = append(recs, catalog.Record{
		Kind: catalog.KindBigCraftable, ID: 136,
		Raw: "Rarecrow/4000/-300/Crafting -9/Collect them all!/true/true/0/Rarecrow",
	})

	types := []string{"chair", "table", "decor", "rug", "lamp"}
	for id := uint16(0); id < 1613; id += 4 {
		typ := types[int(id/4)%len(types)]
		recs = append(recs, catalog.Record{
			Kind: catalog.KindFurniture, ID: id,
			Raw: fmt.Sprintf("Furniture %d/%s/-1/-1/1/%d/-1/Furniture %d", id, typ, 100+int(id), id),
		})
	}
	for id := uint16(2734); id <= 2740; id += 2 {
		recs = append(recs, catalog.Record{
			Kind: catalog.KindFurniture, ID: id,
			Raw: fmt.Sprintf("Desert Rug %d/rug/3 2/3 2/1/500/-1/Desert Rug %d", id, id),
		})
	}

	for id := uint16(1000); id < 1127; id += 3 {
		n := id - 1000
		recs = append(recs, catalog.Record{
			Kind: catalog.KindClothing, ID: id,
			Raw: fmt.Sprintf("Tunic/Tunic/A synthetic shirt./%d/-1/50/255 255 255/true/Shirt/", n),
		})
	}

	recs = append(recs, catalog.Record{
		Kind: catalog.KindHat, ID: 75,
		Raw: "Golden Helmet/Shiny./true/true//Golden Helmet",
	})

	return recs
}

// New builds the synthetic catalog with the built-in off-limit lists.
func New() *catalog.Catalog {
	b := catalog.NewBuilder()
	if err := b.AddAll(Records()); err != nil {
		panic(err)
	}
	return b.Build()
}
