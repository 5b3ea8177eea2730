package region

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/ndrange/interval"
)

// Region is an immutable multidimensional domain: m axis-aligned
// hyper-rectangles over an ordered tuple of distinct axis indices,
// stored canonically in the boundaries (per-rectangle) encoding.
//
// A Region is constructed once from either encoding and never mutated;
// derived views (area, per-rectangle volumes) are computed on first
// access under sync.Once, so one instance is safe for concurrent use.
type Region struct {
	lower [][]interval.Bound // m corners, each of width n
	upper [][]interval.Bound
	axes  []int // n distinct axis indices

	areaOnce sync.Once
	area     float64

	volumesOnce sync.Once
	volumes     []float64
}

// FromLimits builds a Region from the per-dimension encoding: for each
// axis one flat even-length interval union, implicitly forming the
// Cartesian product across axes. The expansion materializes ∏ k_i
// rectangles (see BoundariesFromLimits).
//
// A scalar or flat Values is read as a single axis. axes selects the
// dimension indices (Full infers 0..n-1); opts may be nil for
// defaults.
func FromLimits(limits Values, axes Axes, opts *Options) (*Region, error) {
	o := opts.resolve()
	rows, err := sanitizeLimits(limits)
	if err != nil {
		return nil, err
	}
	lower, upper, err := BoundariesFromLimits(rows)
	if err != nil {
		return nil, err
	}
	return assemble(Nested(lower...), Nested(upper...), axes, o)
}

// FromBoundaries builds a Region from the per-region encoding: paired
// lower and upper corner rows, one pair per rectangle. A scalar or
// flat Values is promoted to a single corner (one rectangle). The
// rectangles are fully independent; they need not form a product
// structure.
func FromBoundaries(lower, upper Values, axes Axes, opts *Options) (*Region, error) {
	return assemble(lower, upper, axes, opts.resolve())
}

// Convert builds a Region from whichever encoding is supplied.
// Exactly one of limits or the lower/upper pair must be non-zero;
// supplying both (or a half-supplied pair) is ErrEncodingChoice.
// Supplying neither yields (nil, nil), meaning "no region given".
func Convert(limits, lower, upper Values, axes Axes, opts *Options) (*Region, error) {
	limitsGiven := !limits.IsZero()
	boundsGiven := !lower.IsZero() || !upper.IsZero()
	switch {
	case limitsGiven && boundsGiven:
		return nil, fmt.Errorf("both encodings supplied: %w", ErrEncodingChoice)
	case limitsGiven:
		return FromLimits(limits, axes, opts)
	case lower.IsZero() != upper.IsZero():
		return nil, fmt.Errorf("lower and upper must be supplied together: %w", ErrEncodingChoice)
	case boundsGiven:
		return FromBoundaries(lower, upper, axes, opts)
	default:
		return nil, nil
	}
}

// assemble sanitizes corner input, resolves axes against the sanitized
// width, and builds the Region.
func assemble(lowerV, upperV Values, axes Axes, o Options) (*Region, error) {
	lower, upper, inferred, err := sanitizeBoundaries(lowerV, upperV, o.ConvertUnset)
	if err != nil {
		return nil, err
	}
	ids, err := sanitizeAxes(axes, inferred)
	if err != nil {
		return nil, err
	}
	if len(ids) != len(inferred) {
		return nil, fmt.Errorf("%d axes for width %d: %w", len(ids), len(inferred), ErrAxesMismatch)
	}
	return &Region{lower: lower, upper: upper, axes: ids}, nil
}

// fromCanonical wraps already-sanitized rows without re-validation.
// Callers guarantee matching shapes and distinct axes.
func fromCanonical(lower, upper [][]interval.Bound, axes []int) *Region {
	return &Region{lower: lower, upper: upper, axes: axes}
}

// Axes returns a copy of the region's axis-index tuple.
func (r *Region) Axes() []int {
	return append([]int(nil), r.axes...)
}

// NDims returns the region's dimensionality n.
func (r *Region) NDims() int { return len(r.axes) }

// Len returns the number of stored rectangles m.
func (r *Region) Len() int { return len(r.lower) }

// Boundaries returns deep copies of the canonical lower and upper
// corner rows. It always succeeds; this is the representation external
// integrators iterate to evaluate per-rectangle contributions.
func (r *Region) Boundaries() (lower, upper [][]interval.Bound) {
	return copyRows(r.lower), copyRows(r.upper)
}

// Limits reconstructs the per-dimension encoding. It propagates
// ErrConversion unmodified when the stored rectangles do not admit a
// per-axis product decomposition.
func (r *Region) Limits() ([][]interval.Bound, error) {
	return LimitsFromBoundaries(r.lower, r.upper)
}

// LimitsOn returns the per-axis limits rows restricted to the
// requested axes, in request order. Requires a product-decomposable
// region; an axis the region does not own is ErrAxisNotFound.
func (r *Region) LimitsOn(axes ...int) ([][]interval.Bound, error) {
	limits, err := r.Limits()
	if err != nil {
		return nil, err
	}
	out := make([][]interval.Bound, 0, len(axes))
	for _, axis := range axes {
		pos, err := r.axisPos(axis)
		if err != nil {
			return nil, err
		}
		out = append(out, append([]interval.Bound(nil), limits[pos]...))
	}
	return out, nil
}

// Area returns the total volume over all rectangles, computed once and
// cached. A rectangle with any zero-width axis contributes exactly 0;
// a rectangle with a wildcard (and no degenerate) axis contributes
// +Inf.
func (r *Region) Area() float64 {
	r.areaOnce.Do(func() {
		for _, v := range r.rectVolumes() {
			r.area += v
		}
	})
	return r.area
}

// AreaByBoundaries returns a fresh slice of per-rectangle volumes, in
// storage order. If rel is true each volume is divided by Area(); for
// a zero total area the relative entries follow IEEE division.
func (r *Region) AreaByBoundaries(rel bool) []float64 {
	volumes := r.rectVolumes()
	out := make([]float64, len(volumes))
	copy(out, volumes)
	if rel {
		total := r.Area()
		for i := range out {
			out[i] /= total
		}
	}
	return out
}

// rectVolumes computes each rectangle's volume once, under the cache.
func (r *Region) rectVolumes() []float64 {
	r.volumesOnce.Do(func() {
		r.volumes = make([]float64, len(r.lower))
		for i := range r.lower {
			r.volumes[i] = rectVolume(r.lower[i], r.upper[i])
		}
	})
	return r.volumes
}

// rectVolume multiplies per-axis widths. Degeneracy wins over
// unboundedness: any exactly-zero width makes the volume exactly 0,
// avoiding the IEEE 0·Inf trap for degenerate-but-open rectangles.
func rectVolume(lower, upper []interval.Bound) float64 {
	volume := 1.0
	for axis := range lower {
		width := interval.Interval{Lower: lower[axis], Upper: upper[axis]}.Width()
		if width == 0 {
			return 0
		}
		volume *= width
	}
	return volume
}

// Subspace projects the region onto the requested axes, reordering
// corners per the request and dropping duplicate rectangles that the
// projection collapses (set semantics, first occurrence order kept).
// The result owns the requested axis indices. Requesting an axis the
// region does not own is ErrAxisNotFound.
func (r *Region) Subspace(axes ...int) (*Region, error) {
	ids, err := sanitizeAxes(On(axes...), nil)
	if err != nil {
		return nil, err
	}
	positions := make([]int, len(ids))
	for i, axis := range ids {
		if positions[i], err = r.axisPos(axis); err != nil {
			return nil, err
		}
	}

	var lower, upper [][]interval.Bound
	seen := make(map[string]struct{}, len(r.lower))
	for rect := range r.lower {
		lo := make([]interval.Bound, len(positions))
		up := make([]interval.Bound, len(positions))
		for i, pos := range positions {
			lo[i] = r.lower[rect][pos]
			up[i] = r.upper[rect][pos]
		}
		key := cornerKey(lo) + "|" + cornerKey(up)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		lower = append(lower, lo)
		upper = append(upper, up)
	}
	return fromCanonical(lower, upper, ids), nil
}

// Decompose splits the region into one single-rectangle Region per
// stored rectangle, each retaining the parent's axis indices. Useful
// for integrators that handle one simple rectangle at a time.
func (r *Region) Decompose() []*Region {
	parts := make([]*Region, len(r.lower))
	for i := range r.lower {
		parts[i] = fromCanonical(
			copyRows(r.lower[i:i+1]),
			copyRows(r.upper[i:i+1]),
			append([]int(nil), r.axes...),
		)
	}
	return parts
}

// At is intentionally unsupported: positional indexing into the mixed
// limits/boundaries data invites silent misreads. Use Limits or
// Boundaries explicitly.
func (r *Region) At(int) ([]interval.Bound, error) {
	return nil, fmt.Errorf("indexing accessor disabled, use Limits or Boundaries: %w", ErrUnsupported)
}

// SortLimits is intentionally unsupported: a canonical sort order for
// rows holding wildcard bounds is not defined.
func SortLimits([][]interval.Bound) ([][]interval.Bound, error) {
	return nil, fmt.Errorf("sort-and-canonicalize not implemented: %w", ErrUnsupported)
}

// axisPos maps an owned axis index to its position in the corner rows.
func (r *Region) axisPos(axis int) (int, error) {
	for pos, id := range r.axes {
		if id == axis {
			return pos, nil
		}
	}
	return 0, fmt.Errorf("axis %d: %w", axis, ErrAxisNotFound)
}

// hasNaNBound reports whether any stored bound is a NaN finite value.
func (r *Region) hasNaNBound() bool {
	for _, rows := range [2][][]interval.Bound{r.lower, r.upper} {
		for _, row := range rows {
			for _, b := range row {
				if v, ok := b.Value(); ok && math.IsNaN(v) {
					return true
				}
			}
		}
	}
	return false
}

// copyRows deep-copies corner rows.
func copyRows(rows [][]interval.Bound) [][]interval.Bound {
	out := make([][]interval.Bound, len(rows))
	for i, row := range rows {
		out[i] = append([]interval.Bound(nil), row...)
	}
	return out
}
