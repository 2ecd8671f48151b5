package prng

import (
	"errors"
	"math"
	"testing"
)

func TestDotNetReferenceVector(t *testing.T) {
	// new System.Random(0).Next() x5 on the legacy runtime.
	want := []uint32{1559595546, 1755192844, 1649316166, 1198642031, 442452829}

	d := NewDotNet(0)
	for i, w := range want {
		if got := d.Uint32(); got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}
}

func TestDotNetRange(t *testing.T) {
	// new System.Random(42).Next(0, 100) x8.
	want := []int32{66, 14, 12, 52, 16, 26, 72, 51}

	d := NewDotNet(42)
	for i, w := range want {
		got, err := d.Range(0, 100)
		if err != nil {
			t.Fatalf("Range() failed: %v", err)
		}
		if got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}
}

func TestDotNetFloat(t *testing.T) {
	d := NewDotNet(12345)
	if got := d.Float64(); got != 0.06674693481379511 {
		t.Errorf("first Float64() = %v", got)
	}
	if got := d.Float64(); got != 0.07015950887937075 {
		t.Errorf("second Float64() = %v", got)
	}
}

func TestDotNetNegativeSeedMirrorsPositive(t *testing.T) {
	a := NewDotNet(-12345)
	b := NewDotNet(12345)
	for i := 0; i < 10; i++ {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("draw %d: %d vs %d", i, x, y)
		}
	}
}

func TestDotNetExtremeSeeds(t *testing.T) {
	// MinInt32 has no absolute value and is folded to MaxInt32, which in turn
	// collides with seed 0 modulo MBIG.
	for _, seed := range []int32{math.MinInt32, math.MaxInt32} {
		if got := NewDotNet(seed).Uint32(); got != 1559595546 {
			t.Errorf("seed %d: first draw %d", seed, got)
		}
	}
}

func TestDotNetLargeRange(t *testing.T) {
	d := NewDotNet(7)
	for i := 0; i < 1000; i++ {
		v, err := d.Range(math.MinInt32, math.MaxInt32)
		if err != nil {
			t.Fatalf("Range() failed: %v", err)
		}
		if v == math.MaxInt32 {
			t.Fatalf("Range() returned the exclusive bound")
		}
	}
}

func TestDotNetEmptyRange(t *testing.T) {
	d := NewDotNet(1)
	if _, err := d.Range(5, 5); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("expected ErrEmptyRange, got %v", err)
	}
}
