package krobus

import (
	"testing"

	"github.com/vovakirdan/valleyseer/internal/catalog/catalogtest"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

func TestOpenOnWednesdayAndSaturday(t *testing.T) {
	n := 0
	for d := int32(1); d <= 112; d++ {
		if Open(d) {
			n++
		}
	}
	if n != 32 {
		t.Errorf("expected 32 open days in a year, got %d", n)
	}
	if !Open(3) || !Open(6) || Open(4) {
		t.Error("expected Wednesday 3 and Saturday 6 open, Thursday 4 closed")
	}
}

func TestSeedSharedByDayPairs(t *testing.T) {
	c := config.Configuration{Platform: config.PlatformPC, Seed: 100}
	if Seed(c, 6) != 103 || Seed(c, 7) != 103 {
		t.Errorf("expected days 6 and 7 to share seed 103")
	}
}

func TestGoldenDays(t *testing.T) {
	cat := catalogtest.New()
	cases := []struct {
		platform config.Platform
		date     int32
		id       uint16
		price    uint32
	}{
		{config.PlatformSwitch, 3, 703, 200},
		{config.PlatformSwitch, 6, 242, 250},
		{config.PlatformPC, 3, 704, 200},
		{config.PlatformPC, 6, 226, 480},
	}
	for _, tc := range cases {
		items, err := Day(cat, config.Configuration{Platform: tc.platform, Seed: 12345}, tc.date)
		if err != nil {
			t.Fatalf("%s day %d: %v", tc.platform, tc.date, err)
		}
		if len(items) != 1 {
			t.Fatalf("%s day %d: expected one item, got %d", tc.platform, tc.date, len(items))
		}
		it := items[0]
		if it.ID != tc.id || it.Price != tc.price || it.Quantity != 5 {
			t.Errorf("%s day %d: got %d %dg x%d, want %d %dg x5",
				tc.platform, tc.date, it.ID, it.Price, it.Quantity, tc.id, tc.price)
		}
	}
}

func TestNeverSellsObject217(t *testing.T) {
	cat := catalogtest.New()
	for d := int32(6); d < 6+7*400; d += 7 {
		items, err := Day(cat, config.Configuration{Platform: config.PlatformSwitch, Seed: 5}, d)
		if err != nil {
			t.Fatal(err)
		}
		if items[0].ID == 217 {
			t.Fatalf("day %d: object 217 offered", d)
		}
	}
}

func TestFilteredScan(t *testing.T) {
	q := stock.Query{
		Config: config.Configuration{Platform: config.PlatformPC, Seed: 777},
		Start:  1,
		Filter: stock.MustFilter("object 70"),
	}
	groups, err := Vendor{}.Stock(catalogtest.New(), q)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		date int32
		id   uint16
	}{{10, 700}, {17, 707}, {24, 708}, {31, 703}, {38, 704}, {52, 700}, {59, 706}, {66, 707}}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, g := range groups {
		if g.Index != want[i].date || g.Rows[0].ID != want[i].id {
			t.Errorf("group %d: got day %d id %d, want day %d id %d",
				i, g.Index, g.Rows[0].ID, want[i].date, want[i].id)
		}
	}
}

func TestUnfilteredWindow(t *testing.T) {
	q := stock.Query{Config: config.Configuration{Platform: config.PlatformSwitch, Seed: 1}, Start: 1}
	groups, err := Vendor{}.Stock(catalogtest.New(), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 32 {
		t.Errorf("expected 32 groups in a year-long window, got %d", len(groups))
	}
}
