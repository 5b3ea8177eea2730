package interval

// Pairs splits a flat bound sequence (lo1, up1, lo2, up2, …) into its
// (lower, upper) intervals. This is the reading used for one axis of a
// limits-by-dimension encoding: k consecutive pairs form a union of k
// intervals on that axis.
//
// Returns ErrOddPairs if flat has odd length. An empty sequence yields
// an empty result.
//
// Complexity: O(len(flat)), Memory: O(len(flat)/2).
func Pairs(flat []Bound) ([]Interval, error) {
	if len(flat)%2 != 0 {
		return nil, ErrOddPairs
	}
	pairs := make([]Interval, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		pairs = append(pairs, Interval{Lower: flat[i], Upper: flat[i+1]})
	}
	return pairs, nil
}

// Flatten is the inverse of Pairs: it concatenates intervals back into
// a flat (lo1, up1, lo2, up2, …) sequence.
func Flatten(intervals []Interval) []Bound {
	flat := make([]Bound, 0, 2*len(intervals))
	for _, iv := range intervals {
		flat = append(flat, iv.Lower, iv.Upper)
	}
	return flat
}
