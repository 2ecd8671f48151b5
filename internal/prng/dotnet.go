package prng

import "math"

const (
	dotnetMBIG  = math.MaxInt32
	dotnetMSEED = 161803398
)

// DotNet replays the legacy .NET runtime's System.Random: Knuth's subtractive
// generator over a 56-slot table whose slot 0 is never used.
type DotNet struct {
	inext     int32
	inextp    int32
	seedArray [56]int32
}

// NewDotNet seeds the table the way System.Random(int) does, including the
// four mixing passes that run before the first visible draw.
func NewDotNet(seed int32) *DotNet {
	d := &DotNet{}

	var subtraction int32
	if seed == math.MinInt32 {
		subtraction = math.MaxInt32
	} else {
		subtraction = seed
		if subtraction < 0 {
			subtraction = -subtraction
		}
	}

	mj := dotnetMSEED - subtraction
	d.seedArray[55] = mj
	mk := int32(1)
	for i := int32(1); i < 55; i++ {
		ii := (21 * i) % 55
		d.seedArray[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += dotnetMBIG
		}
		mj = d.seedArray[ii]
	}

	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			d.seedArray[i] -= d.seedArray[1+(i+30)%55]
			if d.seedArray[i] < 0 {
				d.seedArray[i] += dotnetMBIG
			}
		}
	}

	d.inext = 0
	d.inextp = 21
	return d
}

func (d *DotNet) internalSample() int32 {
	locINext := d.inext + 1
	if locINext >= 56 {
		locINext = 1
	}
	locINextp := d.inextp + 1
	if locINextp >= 56 {
		locINextp = 1
	}

	retVal := d.seedArray[locINext] - d.seedArray[locINextp]
	if retVal == dotnetMBIG {
		retVal--
	}
	if retVal < 0 {
		retVal += dotnetMBIG
	}

	d.seedArray[locINext] = retVal
	d.inext = locINext
	d.inextp = locINextp
	return retVal
}

// Uint32 returns the raw sample, always in [0, MaxInt32).
func (d *DotNet) Uint32() uint32 {
	return uint32(d.internalSample())
}

// Float64 is Random.NextDouble.
func (d *DotNet) Float64() float64 {
	return float64(d.internalSample()) * (1.0 / dotnetMBIG)
}

// largeRangeSample covers spans wider than MaxInt32 and consumes two samples.
func (d *DotNet) largeRangeSample() float64 {
	result := d.internalSample()
	if d.internalSample()%2 == 0 {
		result = -result
	}
	v := float64(result)
	v += math.MaxInt32 - 1
	v /= 2*float64(uint32(math.MaxInt32)) - 1
	return v
}

// Range is Random.Next(lo, hi): truncation of sample*span, which is floor for
// the non-negative product.
func (d *DotNet) Range(lo, hi int32) (int32, error) {
	if hi <= lo {
		return 0, emptyRange(lo, hi)
	}
	span := int64(hi) - int64(lo)
	if span <= math.MaxInt32 {
		return int32(d.Float64()*float64(span)) + lo, nil
	}
	return int32(int64(d.largeRangeSample()*float64(span)) + int64(lo)), nil
}
