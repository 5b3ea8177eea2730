// Package region: input shape variants, axis selection, and options.
package region

import "github.com/katalvlaran/ndrange/interval"

// valuesShape discriminates the closed set of raw input shapes.
type valuesShape int

const (
	shapeNone valuesShape = iota
	shapeScalar
	shapeFlat
	shapeNested
)

// Values is a raw nested numeric input: a bare scalar, a flat bound
// sequence, or a nested per-row sequence. The shape is tagged at the
// API boundary instead of probed at runtime; the sanitizer resolves
// every shape into one canonical 2-D form.
//
// The zero value means "not supplied" (see Convert).
type Values struct {
	shape  valuesShape
	scalar interval.Bound
	flat   []interval.Bound
	nested [][]interval.Bound
}

// Scalar wraps a single bound as raw input. As a boundary corner it is
// promoted to a one-axis corner; as limits it is rejected for odd
// pairing.
func Scalar(b interval.Bound) Values {
	return Values{shape: shapeScalar, scalar: b}
}

// Flat wraps a flat bound sequence. As limits it is one axis's
// flattened interval union; as boundary corners it is a single corner
// (one rectangle).
func Flat(bounds ...interval.Bound) Values {
	return Values{shape: shapeFlat, flat: bounds}
}

// Nested wraps a per-row bound sequence. As limits each row is one
// axis's flattened union; as boundary corners each row is one
// rectangle's corner.
func Nested(rows ...[]interval.Bound) Values {
	return Values{shape: shapeNested, nested: rows}
}

// IsZero reports whether v was left unsupplied.
func (v Values) IsZero() bool { return v.shape == shapeNone }

// Axes selects which dimensions a region's data applies to: either an
// explicit ordered list of distinct indices (On) or the Full marker,
// which resolves to 0..n-1 from the sanitized data. The zero value
// means "not supplied" and is rejected where axes are required.
type Axes struct {
	ids  []int
	full bool
}

// On selects the given axis indices, in order.
func On(ids ...int) Axes {
	return Axes{ids: append([]int(nil), ids...)}
}

// Full marks "all dimensions": axis indices are inferred as 0..n-1
// from the sanitized input shape.
var Full = Axes{full: true}

// IsZero reports whether a was left unsupplied.
func (a Axes) IsZero() bool { return !a.full && a.ids == nil }

// Options tunes region construction.
//
// Fields:
//   - ConvertUnset — if true, Unset placeholder bounds in input are
//     substituted per position: AnyLower in lower corners, AnyUpper in
//     upper corners. If false, any Unset bound is an input error.
type Options struct {
	ConvertUnset bool
}

// DefaultOptions returns the default construction options:
// ConvertUnset disabled, so Unset bounds are rejected.
func DefaultOptions() Options {
	return Options{}
}

// resolve applies defaults for a nil options pointer.
func (o *Options) resolve() Options {
	if o == nil {
		return DefaultOptions()
	}
	return *o
}
