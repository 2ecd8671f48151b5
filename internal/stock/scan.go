package stock

import "math"

// Window bounds a scan. Plain is the number of indices examined without a
// filter; Filtered the number examined with one. A filtered scan also stops
// after Matches groups.
type Window struct {
	Plain    int32
	Filtered int32
	Matches  int
}

// DefaultMatches is how many groups a filtered scan collects.
const DefaultMatches = 8

// Size returns how many indices the scan examines for filter.
func (w Window) Size(filter Filter) int32 {
	if filter.Empty() {
		return w.Plain
	}
	return w.Filtered
}

// Generator produces the group for one index. ok is false when the index is
// skipped or nothing on it matched.
type Generator func(index int32) (g Group, ok bool, err error)

// Scan walks the window from start and collects the generated groups. The
// first error aborts the scan and no groups are returned.
func Scan(start int32, filter Filter, w Window, gen Generator) ([]Group, error) {
	var groups []Group
	size := w.Size(filter)
	// Never step past the last int32 index.
	if rest := int64(math.MaxInt32) - int64(start) + 1; int64(size) > rest {
		size = int32(rest)
	}
	for i := int32(0); i < size; i++ {
		g, ok, err := gen(start + i)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		groups = append(groups, g)
		if !filter.Empty() && w.Matches > 0 && len(groups) >= w.Matches {
			break
		}
	}
	return groups, nil
}
