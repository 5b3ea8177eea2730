package region

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/ndrange/interval"
)

// BoundariesFromLimits expands a per-axis limits encoding into the
// explicit rectangle (boundaries) encoding: the full cross-product of
// one interval per axis.
//
// Algorithm: take axis 0's intervals one at a time; recursively expand
// the remaining axes and prepend the current (lower, upper) pair to
// every corner of the recursive result. A single axis yields its
// intervals directly as 1-D rectangles; an empty limits sequence
// yields zero rectangles.
//
// The output has exactly ∏ k_i rectangles for per-axis union sizes
// k_0..k_{n-1} — this is the one place combinatorial blow-up occurs,
// so callers must budget for the product of their union sizes.
//
// Returns interval.ErrOddPairs if any axis row has odd length.
//
// Complexity: O(n·∏ k_i), Memory: O(n·∏ k_i).
func BoundariesFromLimits(limits [][]interval.Bound) (lower, upper [][]interval.Bound, err error) {
	if len(limits) == 0 {
		return nil, nil, nil
	}
	head, err := interval.Pairs(limits[0])
	if err != nil {
		return nil, nil, err
	}
	restLower, restUpper, err := BoundariesFromLimits(limits[1:])
	if err != nil {
		return nil, nil, err
	}

	for _, iv := range head {
		if len(restLower) == 0 { // last axis: intervals become 1-D corners
			lower = append(lower, []interval.Bound{iv.Lower})
			upper = append(upper, []interval.Bound{iv.Upper})
			continue
		}
		for i := range restLower {
			lower = append(lower, prepend(iv.Lower, restLower[i]))
			upper = append(upper, prepend(iv.Upper, restUpper[i]))
		}
	}
	return lower, upper, nil
}

// prepend returns a fresh corner with b ahead of rest.
func prepend(b interval.Bound, rest []interval.Bound) []interval.Bound {
	corner := make([]interval.Bound, 0, len(rest)+1)
	corner = append(corner, b)
	return append(corner, rest...)
}

// LimitsFromBoundaries reconstructs the per-axis limits encoding from
// explicit rectangles, verifying that the conversion is
// information-preserving.
//
// For each axis position the distinct (lower, upper) pairs observed
// across the rectangles are collected in first-seen order and
// concatenated into that axis's flat limits row. The reconstruction is
// then re-expanded and compared — as an unordered corner set and by
// cardinality — against the input. A mismatch means the rectangles do
// not form a per-axis product ("patchwork" boundaries) and yields
// ErrConversion; the check is mandatory, never an optimization.
//
// Returns ErrShapeMismatch for malformed input shapes.
//
// Complexity: O(m·n) reconstruction + O(n·∏ k_i) verification.
func LimitsFromBoundaries(lower, upper [][]interval.Bound) ([][]interval.Bound, error) {
	if len(lower) == 0 || len(lower) != len(upper) {
		return nil, fmt.Errorf("%d lower vs %d upper corners: %w", len(lower), len(upper), ErrShapeMismatch)
	}
	width := len(lower[0])
	for i := range lower {
		if len(lower[i]) != width || len(upper[i]) != width {
			return nil, fmt.Errorf("corner %d is not %d-dimensional: %w", i, width, ErrShapeMismatch)
		}
	}

	// Per-axis dedup of observed (lower, upper) pairs, first-seen order.
	limits := make([][]interval.Bound, width)
	seen := make([]map[interval.Interval]struct{}, width)
	for i := range seen {
		seen[i] = make(map[interval.Interval]struct{})
	}
	for r := range lower {
		for axis := 0; axis < width; axis++ {
			pair := interval.Interval{Lower: lower[r][axis], Upper: upper[r][axis]}
			if _, ok := seen[axis][pair]; ok {
				continue
			}
			seen[axis][pair] = struct{}{}
			limits[axis] = append(limits[axis], pair.Lower, pair.Upper)
		}
	}

	// Bijectivity: re-expansion must reproduce the input exactly.
	checkLower, checkUpper, err := BoundariesFromLimits(limits)
	if err != nil {
		return nil, err
	}
	if len(checkLower) != len(lower) ||
		!sameCornerSet(checkLower, lower) || !sameCornerSet(checkUpper, upper) {
		return nil, fmt.Errorf("rectangles do not form a per-axis product: %w", ErrConversion)
	}
	return limits, nil
}

// sameCornerSet compares two corner lists as unordered sets.
func sameCornerSet(a, b [][]interval.Bound) bool {
	setA := make(map[string]struct{}, len(a))
	for _, corner := range a {
		setA[cornerKey(corner)] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, corner := range b {
		setB[cornerKey(corner)] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for key := range setB {
		if _, ok := setA[key]; !ok {
			return false
		}
	}
	return true
}

// cornerKey encodes a corner tuple into a comparable byte string:
// one kind byte plus the IEEE bits of the value per bound.
func cornerKey(corner []interval.Bound) string {
	buf := make([]byte, 0, 9*len(corner))
	var bits [8]byte
	for _, b := range corner {
		buf = append(buf, byte(b.Kind()))
		v, _ := b.Value()
		binary.BigEndian.PutUint64(bits[:], math.Float64bits(v))
		buf = append(buf, bits[:]...)
	}
	return string(buf)
}
