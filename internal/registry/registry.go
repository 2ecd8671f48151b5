// Package registry provides a global registry of vendors.
// Vendors register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

// ErrUnknownVendor is returned when a vendor id is not registered.
var ErrUnknownVendor = errors.New("registry: unknown vendor")

// Kind tells what a vendor's start index counts.
type Kind string

const (
	// KindDated vendors are indexed by calendar date.
	KindDated Kind = "dated"
	// KindCounter vendors are indexed by an event count (geodes cracked).
	KindCounter Kind = "counter"
)

// Vendor is a shop or event whose offers are derived from the world seed.
// Implementations are stateless; Stock is a pure function of its inputs.
type Vendor interface {
	// ID returns a unique identifier (e.g., "cart", "krobus").
	// Used for CLI arguments, API paths and saved state.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Kind reports whether the start index is a date or a counter.
	Kind() Kind

	// Step is the size of an unfiltered window, used to page
	// forward and backward.
	Step() int32

	// Notices returns informational lines about the vendor, including
	// hints about configuration values that were left at their defaults.
	Notices(cfg config.Configuration) []string

	// Stock computes one window of groups starting at q.Start.
	Stock(cat *catalog.Catalog, q stock.Query) ([]stock.Group, error)
}

// VendorInfo contains metadata about a registered vendor.
type VendorInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`
	Step  int32  `json:"step"`
}

var (
	vendors = make(map[string]Vendor)
	mu      sync.RWMutex
)

// Register adds a vendor to the registry.
// Typically called from a vendor's init() function.
// Panics if a vendor with the same ID is already registered.
func Register(v Vendor) {
	mu.Lock()
	defer mu.Unlock()

	id := v.ID()
	if _, exists := vendors[id]; exists {
		panic(fmt.Sprintf("registry: vendor %q already registered", id))
	}
	vendors[id] = v
}

// Info returns the metadata of v.
func Info(v Vendor) VendorInfo {
	return VendorInfo{ID: v.ID(), Title: v.Title(), Kind: v.Kind(), Step: v.Step()}
}

// List returns information about all registered vendors, sorted by ID.
func List() []VendorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VendorInfo, 0, len(vendors))
	for _, v := range vendors {
		result = append(result, Info(v))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the vendor registered under id.
func Get(id string) (Vendor, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := vendors[id]
	if !ok {
		if s := suggest(id); s != "" {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownVendor, id, s)
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownVendor, id)
	}
	return v, nil
}

// Exists checks if a vendor with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := vendors[id]
	return ok
}

// Suggest returns the registered id closest to id, or "" when nothing is
// close enough to be a likely typo.
func Suggest(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	return suggest(id)
}

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 2

func suggest(id string) string {
	best, bestDist := "", maxSuggestDistance+1
	for candidate := range vendors {
		d := levenshtein.ComputeDistance(id, candidate)
		if d < bestDist || (d == bestDist && candidate < best) {
			best, bestDist = candidate, d
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}

// DefaultStart returns the window start implied by cfg: the configured date
// for dated vendors, the configured cracked count for counters.
func DefaultStart(v Vendor, cfg config.Configuration) int32 {
	if v.Kind() == KindCounter {
		return cfg.StartCracked()
	}
	return cfg.StartDate()
}

// MinStart is the smallest valid window start for a vendor kind.
func MinStart(k Kind) int32 {
	if k == KindCounter {
		return 0
	}
	return 1
}

// CheckStart reports whether n is a valid window start for a vendor kind:
// a date in 1..calendar.MaxDate, or a geode count in 0..65535.
func CheckStart(k Kind, n int32) error {
	if k == KindCounter {
		if n < 0 || n > math.MaxUint16 {
			return fmt.Errorf("registry: geode count %d out of range", n)
		}
		return nil
	}
	if n < 1 || n > calendar.MaxDate {
		return fmt.Errorf("registry: date %d out of range", n)
	}
	return nil
}

// ParseStart reads a window start for a vendor kind: a date (index or
// "year season day") for dated vendors, a geode count for counters.
func ParseStart(k Kind, s string) (int32, error) {
	if k != KindCounter {
		return calendar.Parse(s)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil || CheckStart(k, int32(n)) != nil {
		return 0, fmt.Errorf("registry: invalid geode count %q", s)
	}
	return int32(n), nil
}
