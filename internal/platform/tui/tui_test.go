package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/catalog/catalogtest"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
	"github.com/vovakirdan/valleyseer/internal/storage"
	"github.com/vovakirdan/valleyseer/internal/vendors/geodes"
	"github.com/vovakirdan/valleyseer/internal/vendors/krobus"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(t *testing.T, m StockModel, msgs ...tea.Msg) StockModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(StockModel)
		if !ok {
			t.Fatalf("expected StockModel, got %T", next)
		}
		m = sm
	}
	return m
}

func krobusModel() StockModel {
	cfg := config.Configuration{Platform: config.PlatformPC, Seed: 777}
	return NewStockModel(krobus.Vendor{}, catalogtest.New(), cfg, 100, 40)
}

func emptyCatalog() *catalog.Catalog {
	return catalog.NewBuilder().Build()
}

func TestMenuKeyMapping(t *testing.T) {
	km := NewKeyMapper()
	cases := map[string]MenuAction{
		"k":     MenuActionUp,
		"j":     MenuActionDown,
		"q":     MenuActionQuit,
		"b":     MenuActionBack,
		"x":     MenuActionNone,
		"enter": MenuActionSelect,
	}
	for k, want := range cases {
		msg := runes(k)
		if k == "enter" {
			msg = enter
		}
		if got := km.MapKeyToMenuAction(msg); got != want {
			t.Errorf("key %q: expected %d, got %d", k, want, got)
		}
	}
}

func TestRowsLabelFirstRowOnly(t *testing.T) {
	groups := []stock.Group{{
		Index: 1,
		Label: "Monday Spring 1, Year 1",
		Rows: []stock.Row{
			{ID: 1, Name: "A", Price: 100, Quantity: 1},
			{ID: 2, Name: "B", Quantity: 5},
		},
	}}

	rows := Rows(groups, registry.KindDated)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Monday Spring 1, Year 1" || rows[1][0] != "" {
		t.Errorf("expected label on the first row only, got %q and %q", rows[0][0], rows[1][0])
	}
	if rows[0][2] != "100g" || rows[1][2] != "-" {
		t.Errorf("unexpected prices %q and %q", rows[0][2], rows[1][2])
	}
	if rows[1][3] != "x5" {
		t.Errorf("expected quantity x5, got %q", rows[1][3])
	}
}

func TestRowsCounterShowsSlot(t *testing.T) {
	groups := []stock.Group{{
		Index: 3,
		Label: "3",
		Rows:  []stock.Row{{ID: 378, Name: "Copper Ore", Quantity: 3, Slot: "Geode"}},
	}}
	rows := Rows(groups, registry.KindCounter)
	want := []string{"3", "Geode", "Copper Ore", "x3"}
	for i := range want {
		if rows[0][i] != want[i] {
			t.Fatalf("expected %v, got %v", want, rows[0])
		}
	}
}

func TestRenderTablePlain(t *testing.T) {
	if got := RenderTable(nil, registry.KindDated, false); got != "No matching stock.\n" {
		t.Errorf("unexpected empty rendering %q", got)
	}

	groups := []stock.Group{{
		Index: 3,
		Label: "Wednesday Spring 3, Year 1",
		Rows:  []stock.Row{{ID: 703, Name: "Object 703", Price: 200, Quantity: 5}},
	}}
	out := RenderTable(groups, registry.KindDated, false)
	for _, s := range []string{"Date", "Price", "Wednesday Spring 3, Year 1", "Object 703", "200g", "x5"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q:\n%s", s, out)
		}
	}
}

func TestRenderNotices(t *testing.T) {
	out := RenderNotices([]string{"info line", "hint line"})
	if !strings.Contains(out, "info line") || !strings.Contains(out, "hint line") {
		t.Errorf("expected both notices, got %q", out)
	}
	if RenderNotices(nil) != "" {
		t.Error("expected no output for no notices")
	}
}

func TestStockModelPaging(t *testing.T) {
	m := krobusModel()
	if m.Start() != 1 {
		t.Fatalf("expected start 1, got %d", m.Start())
	}
	if len(m.Groups()) != 32 {
		t.Fatalf("expected 32 open days in the first window, got %d", len(m.Groups()))
	}

	m = send(t, m, runes("n"))
	if m.Start() != 113 {
		t.Errorf("expected next window at 113, got %d", m.Start())
	}

	m = send(t, m, runes("p"), runes("p"))
	if m.Start() != 1 {
		t.Errorf("expected paging back to clamp at 1, got %d", m.Start())
	}
}

func TestStockModelFilterDisablesPaging(t *testing.T) {
	m := krobusModel()
	m = send(t, m, runes("/"), runes("object 70"), enter)

	groups := m.Groups()
	if len(groups) != stock.DefaultMatches {
		t.Fatalf("expected %d matching days, got %d", stock.DefaultMatches, len(groups))
	}
	if groups[0].Index != 10 || groups[0].Rows[0].ID != 700 {
		t.Errorf("expected day 10 with object 700, got %+v", groups[0])
	}

	m = send(t, m, runes("n"))
	if m.Start() != 1 {
		t.Errorf("expected paging to be ignored while filtering, start %d", m.Start())
	}
	if m.status == "" {
		t.Error("expected a status message explaining paging is disabled")
	}

	m = send(t, m, runes("x"))
	if len(m.Groups()) != 32 {
		t.Errorf("expected the full window after clearing the filter, got %d", len(m.Groups()))
	}
}

func TestStockModelInvalidFilter(t *testing.T) {
	m := krobusModel()
	m = send(t, m, runes("/"), runes("glob:[abc"), enter)
	if m.status == "" {
		t.Error("expected an error status for an invalid glob")
	}
	if len(m.Groups()) != 32 {
		t.Errorf("expected the previous window to stay, got %d groups", len(m.Groups()))
	}
}

func TestStockModelJumpDate(t *testing.T) {
	m := krobusModel()
	m = send(t, m, runes("g"), runes("1 summer 1"), enter)
	if m.Start() != 29 {
		t.Errorf("expected jump to day 29, got %d", m.Start())
	}

	m = send(t, m, runes("g"), runes("nonsense"), enter)
	if m.Start() != 29 {
		t.Errorf("expected invalid date to keep start 29, got %d", m.Start())
	}
	if m.status == "" {
		t.Error("expected an error status for an invalid date")
	}

	// Cancelling discards the typed value.
	m = send(t, m, runes("g"), runes("57"), esc)
	if m.Start() != 29 {
		t.Errorf("expected cancel to keep start 29, got %d", m.Start())
	}
	if m.IsGoingBack() {
		t.Error("esc inside an input should not leave the view")
	}
}

func TestStockModelJumpCount(t *testing.T) {
	cfg := config.Configuration{Platform: config.PlatformSwitch, Seed: 12345}
	m := NewStockModel(geodes.Vendor{}, catalogtest.New(), cfg, 100, 40)
	if m.Start() != 0 {
		t.Fatalf("expected counter start 0, got %d", m.Start())
	}

	m = send(t, m, runes("g"), runes("20"), enter)
	if m.Start() != 20 {
		t.Errorf("expected jump to 20, got %d", m.Start())
	}
	if m.Groups()[0].Label != "20" {
		t.Errorf("expected first label 20, got %q", m.Groups()[0].Label)
	}

	m = send(t, m, runes("g"), runes("-1"), enter)
	if m.Start() != 20 {
		t.Errorf("expected negative count to be rejected, got %d", m.Start())
	}
}

func TestStockModelPagingStopsAtLastCount(t *testing.T) {
	cfg := config.Configuration{Platform: config.PlatformSwitch, Seed: 12345}
	m := NewStockModel(geodes.Vendor{}, catalogtest.New(), cfg, 100, 40)

	m = send(t, m, runes("g"), runes("65530"), enter)
	if m.Start() != 65530 {
		t.Fatalf("expected jump to 65530, got %d", m.Start())
	}
	m = send(t, m, runes("n"))
	if m.Start() != 65530 {
		t.Errorf("expected paging past 65535 to be ignored, got %d", m.Start())
	}
}

func TestStockModelStatusExpires(t *testing.T) {
	m := krobusModel()
	m = send(t, m, runes("/"), runes("object"), enter, runes("n"))
	if m.status == "" {
		t.Fatal("expected a status message")
	}

	// A stale expiry must not clear a newer message.
	m = send(t, m, clearStatusMsg{seq: m.statusSeq - 1})
	if m.status == "" {
		t.Error("stale expiry cleared the status")
	}
	m = send(t, m, clearStatusMsg{seq: m.statusSeq})
	if m.status != "" {
		t.Errorf("expected status to clear, got %q", m.status)
	}
}

func TestStockModelViewShowsError(t *testing.T) {
	cfg := config.Configuration{Platform: config.PlatformPC, Seed: 1}
	m := NewStockModel(krobus.Vendor{}, emptyCatalog(), cfg, 100, 40)
	if m.Err() == nil {
		t.Fatal("expected a catalog error")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Error("expected the view to show the error")
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := config.Configuration{Platform: config.PlatformPC, Seed: 777}
	var m tea.Model = NewSessionModel(catalogtest.New(), cfg, 100, 40)

	step := func(msg tea.Msg) SessionModel {
		t.Helper()
		next, _ := m.Update(msg)
		m = next
		return next.(SessionModel)
	}

	s := step(enter)
	if !s.InStock() {
		t.Fatal("expected enter to open the selected vendor")
	}

	s = step(esc)
	if s.InStock() {
		t.Fatal("expected esc to return to the menu")
	}

	s = step(runes("q"))
	if !s.quitting {
		t.Error("expected q to quit the session")
	}
}

func TestVendorSessionStartsInStock(t *testing.T) {
	cfg := config.Configuration{Platform: config.PlatformPC, Seed: 777}
	m := NewVendorSessionModel(krobus.Vendor{}, catalogtest.New(), cfg, 100, 40)
	if !m.InStock() {
		t.Fatal("expected the session to open on the vendor")
	}
	if !strings.Contains(m.View(), "Krobus") {
		t.Error("expected the view to show the vendor title")
	}
}

func TestSSHSessionConfigUsesProfile(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "valleyseer.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if err := store.SaveProfile("alice", config.File{
		Platform: config.Ptr("switch"),
		Seed:     config.Ptr(int32(42)),
	}); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.Catalog = catalogtest.New()
	cfg.Store = store
	cfg.Defaults = config.File{Date: config.Ptr(int32(9))}

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	got, err := srv.SessionConfig("alice")
	if err != nil {
		t.Fatalf("SessionConfig: %v", err)
	}
	if got.Platform != config.PlatformSwitch || got.Seed != 42 || got.StartDate() != 9 {
		t.Errorf("unexpected configuration %+v", got)
	}

	if _, err := srv.SessionConfig("bob"); !errors.Is(err, config.ErrMissingPlatform) {
		t.Errorf("expected ErrMissingPlatform for an unknown user, got %v", err)
	}
}

func TestSSHServerNeedsCatalog(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig()); err == nil {
		t.Error("expected an error without a catalog")
	}
}
