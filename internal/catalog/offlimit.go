package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed offlimit.yaml
var defaultOffLimitYAML []byte

// OffLimit holds the per-table blocklists.
type OffLimit struct {
	Objects   []uint16 `yaml:"objects"`
	Furniture []uint16 `yaml:"furniture"`
}

// DefaultOffLimit returns the built-in blocklists.
func DefaultOffLimit() OffLimit {
	var ol OffLimit
	if err := yaml.Unmarshal(defaultOffLimitYAML, &ol); err != nil {
		panic(fmt.Sprintf("catalog: embedded off-limit data is invalid: %v", err))
	}
	return ol
}

// LoadOffLimit reads replacement blocklists from a YAML file.
// Tables absent from the file keep the built-in list.
func LoadOffLimit(path string) (OffLimit, error) {
	ol := DefaultOffLimit()

	data, err := os.ReadFile(path)
	if err != nil {
		return ol, fmt.Errorf("catalog: cannot read off-limit file %s: %w", path, err)
	}

	var override OffLimit
	if err := yaml.Unmarshal(data, &override); err != nil {
		return ol, fmt.Errorf("catalog: cannot parse off-limit file %s: %w", path, err)
	}
	if override.Objects != nil {
		ol.Objects = override.Objects
	}
	if override.Furniture != nil {
		ol.Furniture = override.Furniture
	}
	return ol, nil
}

func toSet(ids []uint16) map[uint16]struct{} {
	set := make(map[uint16]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
