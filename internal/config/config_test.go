package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRequiresPlatformAndSeed(t *testing.T) {
	if _, err := (File{Seed: Ptr(int32(1))}).Resolve(); !errors.Is(err, ErrMissingPlatform) {
		t.Errorf("expected ErrMissingPlatform, got %v", err)
	}
	if _, err := (File{Platform: Ptr("pc")}).Resolve(); !errors.Is(err, ErrMissingSeed) {
		t.Errorf("expected ErrMissingSeed, got %v", err)
	}
	if _, err := (File{Platform: Ptr("ps4"), Seed: Ptr(int32(1))}).Resolve(); !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("expected ErrUnknownPlatform, got %v", err)
	}
}

func TestResolveCopiesHints(t *testing.T) {
	date := int32(30)
	f := File{Platform: Ptr("Switch"), Seed: Ptr(int32(-42)), Date: &date}

	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if cfg.Platform != PlatformSwitch || cfg.Seed != -42 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	// Later edits to the file must not leak into the resolved configuration.
	date = 99
	if cfg.StartDate() != 30 {
		t.Errorf("StartDate() = %d, want 30", cfg.StartDate())
	}
}

func TestOptionalDefaults(t *testing.T) {
	cfg := Configuration{Platform: PlatformPC}
	if cfg.MineLevelOrDefault() != 120 {
		t.Errorf("MineLevelOrDefault() = %d", cfg.MineLevelOrDefault())
	}
	if cfg.QisCropOrDefault() {
		t.Error("QisCropOrDefault() should be false")
	}
	if !cfg.GoldenHelmetOrDefault() {
		t.Error("GoldenHelmetOrDefault() should be true")
	}
	if cfg.StartDate() != 1 || cfg.StartCracked() != 0 {
		t.Errorf("unexpected start: %d %d", cfg.StartDate(), cfg.StartCracked())
	}
}

func TestMergeOverlaysSetFields(t *testing.T) {
	base := File{Platform: Ptr("pc"), Seed: Ptr(int32(1)), MineLevel: Ptr(uint8(40))}
	over := File{Seed: Ptr(int32(2)), QisCrop: Ptr(true)}

	merged := base.Merge(over)
	if *merged.Platform != "pc" || *merged.Seed != 2 || *merged.MineLevel != 40 || !*merged.QisCrop {
		t.Errorf("unexpected merge result: %+v", merged)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "platform: switch\nseed: 12345\ndate: 15\ngeodes_cracked: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	cfg, err := DefaultFile().Merge(f).Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if cfg.Platform != PlatformSwitch || cfg.Seed != 12345 || cfg.StartDate() != 15 || cfg.StartCracked() != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.MineLevelOrDefault() != 120 {
		t.Errorf("defaults were not merged: %d", cfg.MineLevelOrDefault())
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	data := "platform = \"pc\"\nseed = -7\nmine_level = 30\nqis_crop = true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if cfg.Platform != PlatformPC || cfg.Seed != -7 || cfg.MineLevelOrDefault() != 30 || !cfg.QisCropOrDefault() {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Configuration{Platform: PlatformPC, Seed: 99, GoldenHelmet: Ptr(false)}

	if err := Save(path, FileOf(cfg)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Seed != 99 || got.GoldenHelmetOrDefault() {
		t.Errorf("unexpected config after round trip: %+v", got)
	}
}
