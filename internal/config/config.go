// Package config provides the prediction configuration (platform, world seed
// and optional progress hints) and its YAML/TOML loading.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Platform selects the game build whose generator is replayed.
type Platform string

const (
	PlatformSwitch Platform = "switch"
	PlatformPC     Platform = "pc"
)

// Platforms lists the supported platforms in display order.
var Platforms = []Platform{PlatformPC, PlatformSwitch}

// Configuration errors, reported before any vendor runs.
var (
	ErrMissingPlatform = errors.New("config: platform must be set")
	ErrMissingSeed     = errors.New("config: seed must be set")
	ErrUnknownPlatform = errors.New("config: unknown platform")
)

// String returns the display name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformPC:
		return "PC"
	case PlatformSwitch:
		return "Switch"
	default:
		return string(p)
	}
}

// ParsePlatform accepts "pc" or "switch" in any case.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformPC:
		return PlatformPC, nil
	case PlatformSwitch:
		return PlatformSwitch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
}

// Defaults applied when the optional hints are not given.
const (
	DefaultMineLevel    uint8 = 120
	DefaultQisCrop            = false
	DefaultGoldenHelmet       = true
)

// Configuration is the resolved, immutable input to every vendor.
// Pointer fields are optional hints; nil means "not given".
type Configuration struct {
	Platform      Platform
	Seed          int32
	Date          *int32
	GeodesCracked *uint16
	MineLevel     *uint8
	QisCrop       *bool
	GoldenHelmet  *bool
}

// MineLevelOrDefault returns the deepest mine level reached, assuming the bottom.
func (c Configuration) MineLevelOrDefault() uint8 {
	if c.MineLevel == nil {
		return DefaultMineLevel
	}
	return *c.MineLevel
}

// QisCropOrDefault reports whether the Qi's crop quest is active.
func (c Configuration) QisCropOrDefault() bool {
	if c.QisCrop == nil {
		return DefaultQisCrop
	}
	return *c.QisCrop
}

// GoldenHelmetOrDefault reports whether the golden helmet was already received.
func (c Configuration) GoldenHelmetOrDefault() bool {
	if c.GoldenHelmet == nil {
		return DefaultGoldenHelmet
	}
	return *c.GoldenHelmet
}

// StartDate returns the configured date, or 1.
func (c Configuration) StartDate() int32 {
	if c.Date == nil {
		return 1
	}
	return *c.Date
}

// StartCracked returns the configured number of geodes cracked, or 0.
func (c Configuration) StartCracked() int32 {
	if c.GeodesCracked == nil {
		return 0
	}
	return int32(*c.GeodesCracked)
}

// File is the on-disk form of a configuration. Every field is optional so
// that files, profiles and flags can be layered with Merge.
type File struct {
	Platform      *string `yaml:"platform,omitempty" toml:"platform" json:"platform,omitempty"`
	Seed          *int32  `yaml:"seed,omitempty" toml:"seed" json:"seed,omitempty"`
	Date          *int32  `yaml:"date,omitempty" toml:"date" json:"date,omitempty"`
	GeodesCracked *uint16 `yaml:"geodes_cracked,omitempty" toml:"geodes_cracked" json:"geodes_cracked,omitempty"`
	MineLevel     *uint8  `yaml:"mine_level,omitempty" toml:"mine_level" json:"mine_level,omitempty"`
	QisCrop       *bool   `yaml:"qis_crop,omitempty" toml:"qis_crop" json:"qis_crop,omitempty"`
	GoldenHelmet  *bool   `yaml:"golden_helmet,omitempty" toml:"golden_helmet" json:"golden_helmet,omitempty"`
}

// Merge returns f overlaid with every field set in other.
func (f File) Merge(other File) File {
	if other.Platform != nil {
		f.Platform = other.Platform
	}
	if other.Seed != nil {
		f.Seed = other.Seed
	}
	if other.Date != nil {
		f.Date = other.Date
	}
	if other.GeodesCracked != nil {
		f.GeodesCracked = other.GeodesCracked
	}
	if other.MineLevel != nil {
		f.MineLevel = other.MineLevel
	}
	if other.QisCrop != nil {
		f.QisCrop = other.QisCrop
	}
	if other.GoldenHelmet != nil {
		f.GoldenHelmet = other.GoldenHelmet
	}
	return f
}

// Resolve validates the file and produces a Configuration.
// Platform and seed are required.
func (f File) Resolve() (Configuration, error) {
	if f.Platform == nil || strings.TrimSpace(*f.Platform) == "" {
		return Configuration{}, ErrMissingPlatform
	}
	platform, err := ParsePlatform(*f.Platform)
	if err != nil {
		return Configuration{}, err
	}
	if f.Seed == nil {
		return Configuration{}, ErrMissingSeed
	}

	return Configuration{
		Platform:      platform,
		Seed:          *f.Seed,
		Date:          clonePtr(f.Date),
		GeodesCracked: clonePtr(f.GeodesCracked),
		MineLevel:     clonePtr(f.MineLevel),
		QisCrop:       clonePtr(f.QisCrop),
		GoldenHelmet:  clonePtr(f.GoldenHelmet),
	}, nil
}

// FileOf is the inverse of Resolve, used when saving profiles.
func FileOf(c Configuration) File {
	platform := string(c.Platform)
	seed := c.Seed
	return File{
		Platform:      &platform,
		Seed:          &seed,
		Date:          clonePtr(c.Date),
		GeodesCracked: clonePtr(c.GeodesCracked),
		MineLevel:     clonePtr(c.MineLevel),
		QisCrop:       clonePtr(c.QisCrop),
		GoldenHelmet:  clonePtr(c.GoldenHelmet),
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
