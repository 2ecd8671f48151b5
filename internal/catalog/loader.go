package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// DataFiles maps each table to its unpacked game data file.
var DataFiles = map[Kind]string{
	KindObject:       "ObjectInformation.json",
	KindBigCraftable: "BigCraftablesInformation.json",
	KindFurniture:    "Furniture.json",
	KindClothing:     "ClothingInformation.json",
	KindHat:          "hats.json",
}

// ReadDir reads the raw records from a directory of unpacked game data.
// Each file is a JSON document whose "content" object maps ids to
// slash-delimited records. Records are returned sorted by kind then id.
func ReadDir(dir string) ([]Record, error) {
	var records []Record

	for _, kind := range Kinds {
		path := filepath.Join(dir, DataFiles[kind])
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot read %s: %w", path, err)
		}

		content := gjson.GetBytes(data, "content")
		if !content.IsObject() {
			return nil, fmt.Errorf("catalog: %s has no content object", path)
		}

		var parseErr error
		start := len(records)
		content.ForEach(func(key, value gjson.Result) bool {
			id, err := strconv.ParseUint(key.String(), 10, 16)
			if err != nil {
				parseErr = fmt.Errorf("catalog: %s: invalid id %q: %w", path, key.String(), err)
				return false
			}
			records = append(records, Record{Kind: kind, ID: uint16(id), Raw: value.String()})
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}

		batch := records[start:]
		sort.Slice(batch, func(i, j int) bool { return batch[i].ID < batch[j].ID })
	}

	return records, nil
}

// LoadDir reads and builds a catalog from unpacked game data.
func LoadDir(dir string, offLimit OffLimit) (*Catalog, error) {
	records, err := ReadDir(dir)
	if err != nil {
		return nil, err
	}
	b := NewBuilder().SetOffLimit(offLimit)
	if err := b.AddAll(records); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
