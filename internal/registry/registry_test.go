package registry

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

type fakeVendor struct {
	id   string
	kind Kind
}

func (f fakeVendor) ID() string { return f.id }
func (f fakeVendor) Title() string { return "Fake " + f.id }
func (f fakeVendor) Kind() Kind {
	if f.kind == "" {
		return KindDated
	}
	return f.kind
}
func (f fakeVendor) Step() int32 { return 28 }
func (f fakeVendor) Notices(config.Configuration) []string { return nil }
func (f fakeVendor) Stock(*catalog.Catalog, stock.Query) ([]stock.Group, error) {
	return nil, nil
}

// withVendors swaps the global registry for the duration of a test.
func withVendors(t *testing.T, ids ...string) {
	t.Helper()
	mu.Lock()
	saved := vendors
	vendors = make(map[string]Vendor)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		vendors = saved
		mu.Unlock()
	})
	for _, id := range ids {
		Register(fakeVendor{id: id})
	}
}

func TestListSorted(t *testing.T) {
	withVendors(t, "sandy", "cart", "krobus")

	list := List()
	if len(list) != 3 {
		t.Fatalf("expected 3 vendors, got %d", len(list))
	}
	if list[0].ID != "cart" || list[2].ID != "sandy" {
		t.Errorf("expected sorted ids, got %v", list)
	}
	if list[0].Title != "Fake cart" || list[0].Step != 28 {
		t.Errorf("unexpected info %+v", list[0])
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withVendors(t, "cart")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register(fakeVendor{id: "cart"})
}

func TestGetUnknownSuggests(t *testing.T) {
	withVendors(t, "cart", "krobus")

	if _, err := Get("cart"); err != nil {
		t.Fatalf("Get(cart): %v", err)
	}

	_, err := Get("krobsu")
	if !errors.Is(err, ErrUnknownVendor) {
		t.Fatalf("expected ErrUnknownVendor, got %v", err)
	}
	if got := Suggest("krobsu"); got != "krobus" {
		t.Errorf("expected suggestion 'krobus', got %q", got)
	}
	if got := Suggest("pierre"); got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
	if !Exists("krobus") || Exists("pierre") {
		t.Error("unexpected Exists result")
	}
}

func TestDefaultStart(t *testing.T) {
	cfg := config.Configuration{Platform: config.PlatformPC, Seed: 1}
	dated := fakeVendor{id: "cart"}
	counter := fakeVendor{id: "geodes", kind: KindCounter}

	if DefaultStart(dated, cfg) != 1 || DefaultStart(counter, cfg) != 0 {
		t.Error("expected day 1 and count 0 without hints")
	}

	cfg.Date = config.Ptr(int32(40))
	cfg.GeodesCracked = config.Ptr(uint16(12))
	if got := DefaultStart(dated, cfg); got != 40 {
		t.Errorf("expected configured date 40, got %d", got)
	}
	if got := DefaultStart(counter, cfg); got != 12 {
		t.Errorf("expected configured count 12, got %d", got)
	}

	if MinStart(KindDated) != 1 || MinStart(KindCounter) != 0 {
		t.Error("unexpected minimum starts")
	}
}

func TestParseStart(t *testing.T) {
	if got, err := ParseStart(KindDated, "1 summer 1"); err != nil || got != 29 {
		t.Errorf("expected 29, got %d (%v)", got, err)
	}
	if _, err := ParseStart(KindDated, "0"); err == nil {
		t.Error("expected day 0 to be rejected")
	}
	if got, err := ParseStart(KindCounter, " 17 "); err != nil || got != 17 {
		t.Errorf("expected 17, got %d (%v)", got, err)
	}
	for _, bad := range []string{"-1", "65536", "many"} {
		if _, err := ParseStart(KindCounter, bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestCheckStart(t *testing.T) {
	if err := CheckStart(KindDated, 1); err != nil {
		t.Errorf("expected day 1 to be valid, got %v", err)
	}
	if err := CheckStart(KindDated, calendar.MaxDate); err != nil {
		t.Errorf("expected the last date to be valid, got %v", err)
	}
	for _, bad := range []int32{0, -5, calendar.MaxDate + 1, math.MaxInt32} {
		if err := CheckStart(KindDated, bad); err == nil {
			t.Errorf("expected date %d to be rejected", bad)
		}
	}
	if err := CheckStart(KindCounter, 0); err != nil {
		t.Errorf("expected count 0 to be valid, got %v", err)
	}
	for _, bad := range []int32{-1, 65536} {
		if err := CheckStart(KindCounter, bad); err == nil {
			t.Errorf("expected count %d to be rejected", bad)
		}
	}
}
