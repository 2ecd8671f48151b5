// Package prng reproduces the two pseudo-random generators the game uses on
// its target platforms. Both are bit-exact replays: stock predictions are only
// correct if every draw matches the game's own generator.
package prng

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/valleyseer/internal/config"
)

// ErrEmptyRange is returned by Range when hi <= lo.
var ErrEmptyRange = errors.New("prng: empty range")

// Source is the capability shared by both generators.
type Source interface {
	// Uint32 advances the generator once and returns the raw output word.
	Uint32() uint32

	// Range draws an integer in [lo, hi) consuming the generator's usual
	// number of raw outputs for that span.
	Range(lo, hi int32) (int32, error)

	// Float64 draws a value in [0, 1) from exactly one raw output.
	Float64() float64
}

// New creates a fresh generator for the platform, seeded with seed.
// This is the only place a platform picks an engine.
func New(platform config.Platform, seed int32) (Source, error) {
	switch platform {
	case config.PlatformSwitch:
		return NewJKISS(seed), nil
	case config.PlatformPC:
		return NewDotNet(seed), nil
	default:
		return nil, fmt.Errorf("prng: %w: %q", config.ErrUnknownPlatform, platform)
	}
}

func emptyRange(lo, hi int32) error {
	return fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, lo, hi)
}
