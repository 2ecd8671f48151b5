package cart

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/catalog/catalogtest"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/prng"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

type sale struct {
	id       uint16
	price    uint32
	quantity uint8
}

func sales(items []stock.Item) []sale {
	out := make([]sale, len(items))
	for i, it := range items {
		out[i] = sale{it.ID, it.Price, it.Quantity}
	}
	return out
}

func cfg(p config.Platform, seed int32) config.Configuration {
	return config.Configuration{Platform: p, Seed: seed}
}

func TestOpenDays(t *testing.T) {
	n := 0
	for d := int32(1); d <= 28; d++ {
		if Open(d) {
			n++
		}
	}
	if n != 8 {
		t.Errorf("expected 8 open days in Spring, got %d", n)
	}

	// Winter adds the three night market days.
	n = 0
	for d := int32(85); d <= 112; d++ {
		if Open(d) {
			n++
		}
	}
	if n != 11 {
		t.Errorf("expected 11 open days in Winter, got %d", n)
	}
	if !Open(99) || !Open(100) || !Open(101) {
		t.Error("expected Winter 15-17 to be open")
	}
	if Open(1) {
		t.Error("expected Monday to be closed")
	}
}

func TestSwitchGoldenDay(t *testing.T) {
	c := cfg(config.PlatformSwitch, 12345)

	if Seed(c, 5) != 12350 {
		t.Fatalf("expected derived seed 12350, got %d", Seed(c, 5))
	}
	src, _ := prng.New(c.Platform, Seed(c, 5))
	if got := src.Uint32(); got != 93169684 {
		t.Fatalf("expected first draw 93169684, got %d", got)
	}

	items, err := Day(catalogtest.New(), c, 5)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	want := []sale{
		{507, 1000, 1}, {683, 900, 1}, {347, 700, 1}, {370, 600, 1}, {317, 760, 1},
		{165, 500, 1}, {405, 700, 1}, {395, 1000, 1}, {213, 350, 1}, {29, 800, 5},
		{44, 2500, 1},
		{347, 1000, 5},
	}
	if got := sales(items); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected stock\n got: %v\nwant: %v", got, want)
	}
}

func TestPCGoldenDay(t *testing.T) {
	items, err := Day(catalogtest.New(), cfg(config.PlatformPC, 12345), 5)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	want := []sale{
		{538, 600, 1}, {46, 200, 1}, {695, 400, 1}, {519, 800, 1}, {237, 1000, 1},
		{610, 800, 1}, {58, 900, 1}, {615, 320, 1}, {419, 700, 1}, {117, 900, 1},
		{1488, 1500, 1},
		{347, 1000, 1},
	}
	if got := sales(items); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected stock\n got: %v\nwant: %v", got, want)
	}
}

func TestWinterExtras(t *testing.T) {
	cat := catalogtest.New()
	c := cfg(config.PlatformSwitch, 12345)

	items, err := Day(cat, c, 100)
	if err != nil {
		t.Fatal(err)
	}
	tail := sales(items[len(items)-3:])
	want := []sale{{1064, 1500, 1}, {136, 4000, 1}, {433, 2500, 1}}
	if !reflect.DeepEqual(tail, want) {
		t.Errorf("expected furniture, rarecrow and coffee bean, got %v", tail)
	}
	if items[len(items)-2].Name() != "Rarecrow" {
		t.Errorf("expected Rarecrow, got %q", items[len(items)-2].Name())
	}
}

func TestUniqueObjects(t *testing.T) {
	cat := catalogtest.New()
	for _, p := range config.Platforms {
		for d := int32(1); d <= 224; d++ {
			if !Open(d) {
				continue
			}
			items, err := Day(cat, cfg(p, -424242), d)
			if err != nil {
				t.Fatalf("%s day %d: %v", p, d, err)
			}
			seen := make(map[uint16]bool)
			for _, it := range items[:objectSlots] {
				if seen[it.ID] {
					t.Fatalf("%s day %d: object %d offered twice", p, d, it.ID)
				}
				seen[it.ID] = true
				if cat.ObjectOffLimit(it.ID) {
					t.Fatalf("%s day %d: off-limit object %d offered", p, d, it.ID)
				}
			}
		}
	}
}

func TestStockDeterministic(t *testing.T) {
	cat := catalogtest.New()
	q := stock.Query{Config: cfg(config.PlatformPC, 99), Start: 1}

	a, err := Vendor{}.Stock(cat, q)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Vendor{}.Stock(cat, q)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs produced different stock")
	}
	if len(a) != 8 {
		t.Errorf("expected 8 open days in the first window, got %d", len(a))
	}
	if a[0].Label != "Friday Spring 5, Year 1" {
		t.Errorf("unexpected first label %q", a[0].Label)
	}
}

func TestFilteredScan(t *testing.T) {
	q := stock.Query{
		Config: cfg(config.PlatformSwitch, 12345),
		Start:  1,
		Filter: stock.MustFilter("Coffee"),
	}
	groups, err := Vendor{}.Stock(catalogtest.New(), q)
	if err != nil {
		t.Fatal(err)
	}

	var dates []int32
	for _, g := range groups {
		dates = append(dates, g.Index)
		if len(g.Rows) != 1 || g.Rows[0].ID != coffeeBeanID {
			t.Errorf("day %d: expected only the coffee bean, got %+v", g.Index, g.Rows)
		}
	}
	want := []int32{40, 42, 63, 100, 105, 126, 145, 147}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected dates %v, got %v", want, dates)
	}
}

func TestFilterWithoutMatchesIsEmpty(t *testing.T) {
	q := stock.Query{
		Config: cfg(config.PlatformPC, 1),
		Start:  1,
		Filter: stock.MustFilter("no such item anywhere"),
	}
	groups, err := Vendor{}.Stock(catalogtest.New(), q)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestEmptyCatalogIsExhausted(t *testing.T) {
	_, err := Day(catalog.NewBuilder().Build(), cfg(config.PlatformPC, 1), 5)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestMissingRarecrowIsSurfaced(t *testing.T) {
	b := catalog.NewBuilder()
	for _, r := range catalogtest.Records() {
		if r.Kind == catalog.KindBigCraftable {
			continue
		}
		if err := b.Add(r); err != nil {
			t.Fatal(err)
		}
	}

	_, err := Day(b.Build(), cfg(config.PlatformSwitch, 12345), 100)
	if !errors.Is(err, catalog.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestNotices(t *testing.T) {
	c := cfg(config.PlatformPC, 1)
	if n := (Vendor{}).Notices(c); len(n) != 2 {
		t.Errorf("expected info and date hint, got %v", n)
	}
	c.Date = config.Ptr(int32(10))
	if n := (Vendor{}).Notices(c); len(n) != 1 {
		t.Errorf("expected only the info line, got %v", n)
	}
}
