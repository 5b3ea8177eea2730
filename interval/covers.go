package interval

// Covers reports whether iv covers other: every point admitted by
// other is admitted by iv. The relation is deliberately conservative —
// endpoints are compared by exact equality, not by inclusion
// arithmetic, so [1,5] does not cover [2,3]. It holds iff one of:
//
//  1. both endpoints match exactly;
//  2. the lower endpoints match and iv is unbounded above;
//  3. iv is unbounded below and the upper endpoints match;
//  4. iv is unbounded on both sides.
//
// No numeric tolerance is applied; endpoint equality is IEEE ==.
// Known limitation: values differing by rounding error do not match.
func (iv Interval) Covers(other Interval) bool {
	lowerMatch := iv.Lower.Equal(other.Lower)
	upperMatch := iv.Upper.Equal(other.Upper)
	openBelow := iv.Lower.Kind() == KindAnyLower
	openAbove := iv.Upper.Kind() == KindAnyUpper

	switch {
	case lowerMatch && upperMatch:
		return true
	case lowerMatch && openAbove:
		return true
	case openBelow && upperMatch:
		return true
	case openBelow && openAbove:
		return true
	}
	return false
}
