// Package interval: core Bound and Interval types plus sentinel errors.
package interval

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors for interval operations.
var (
	// ErrOddPairs indicates a flat bound sequence with an odd number of entries.
	ErrOddPairs = errors.New("interval: flat bound sequence must have even length")
)

// Kind discriminates the closed set of bound variants.
//
// The zero value is KindUnset: a placeholder for "no value given", which
// region construction either rejects or substitutes with a directional
// wildcard, depending on options.
type Kind int

const (
	// KindUnset marks a bound slot with no value; only valid as input.
	KindUnset Kind = iota
	// KindFinite marks a concrete numeric bound.
	KindFinite
	// KindAnyLower marks an unbounded-below wildcard.
	KindAnyLower
	// KindAnyUpper marks an unbounded-above wildcard.
	KindAnyUpper
	// KindAny marks a generically unconstrained bound.
	KindAny
)

// Bound is one endpoint of a one-dimensional interval. It is an
// immutable value; the zero value is the Unset placeholder.
type Bound struct {
	kind  Kind
	value float64
}

// Wildcard and placeholder bounds. These are plain values: two AnyLower
// bounds are equal by value, not by pointer identity.
var (
	// Unset is the "no value given" placeholder (zero value of Bound).
	Unset = Bound{}
	// AnyLower is the unbounded-below wildcard.
	AnyLower = Bound{kind: KindAnyLower}
	// AnyUpper is the unbounded-above wildcard.
	AnyUpper = Bound{kind: KindAnyUpper}
	// Any is the generically unconstrained wildcard.
	Any = Bound{kind: KindAny}
)

// Finite returns a concrete numeric bound holding v.
// NaN is representable; see Region.Hash for the consequence.
func Finite(v float64) Bound {
	return Bound{kind: KindFinite, value: v}
}

// Of converts plain numbers into finite bounds. NaN entries become
// Unset placeholders, mirroring "value not given" in raw input.
func Of(values ...float64) []Bound {
	bounds := make([]Bound, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			bounds[i] = Unset
			continue
		}
		bounds[i] = Finite(v)
	}
	return bounds
}

// Kind reports the variant of b.
func (b Bound) Kind() Kind { return b.kind }

// IsFinite reports whether b carries a concrete numeric value.
func (b Bound) IsFinite() bool { return b.kind == KindFinite }

// IsUnset reports whether b is the "no value given" placeholder.
func (b Bound) IsUnset() bool { return b.kind == KindUnset }

// IsWildcard reports whether b is one of AnyLower, AnyUpper or Any.
func (b Bound) IsWildcard() bool {
	return b.kind == KindAnyLower || b.kind == KindAnyUpper || b.kind == KindAny
}

// Value returns the numeric value and true for finite bounds,
// and (0, false) for every other kind.
func (b Bound) Value() (float64, bool) {
	if b.kind != KindFinite {
		return 0, false
	}
	return b.value, true
}

// Equal reports exact equality: same kind and, for finite bounds, the
// same value under IEEE ==. A NaN finite bound therefore never equals
// anything, itself included.
func (b Bound) Equal(other Bound) bool {
	if b.kind != other.kind {
		return false
	}
	if b.kind != KindFinite {
		return true
	}
	return b.value == other.value
}

// String renders b for error messages and debugging.
func (b Bound) String() string {
	switch b.kind {
	case KindFinite:
		return strconv.FormatFloat(b.value, 'g', -1, 64)
	case KindAnyLower:
		return "-inf"
	case KindAnyUpper:
		return "+inf"
	case KindAny:
		return "any"
	default:
		return "unset"
	}
}

// numeric maps b onto the extended real line for width arithmetic.
// Directional wildcards pin their own sign; Any takes the sign of the
// slot it occupies (negative for lower slots, positive for upper).
func (b Bound) numeric(slotSign int) float64 {
	switch b.kind {
	case KindFinite:
		return b.value
	case KindAnyLower:
		return math.Inf(-1)
	case KindAnyUpper:
		return math.Inf(1)
	case KindAny:
		return math.Inf(slotSign)
	default:
		return math.NaN()
	}
}

// Interval is one 1-D interval given by its two endpoints.
// Endpoints are not required to be ordered; a degenerate interval has
// Lower equal to Upper and zero width.
type Interval struct {
	Lower Bound
	Upper Bound
}

// Width returns Upper minus Lower on the extended real line: wildcard
// endpoints contribute ±infinity, and a degenerate finite interval has
// width exactly 0.
func (iv Interval) Width() float64 {
	lo := iv.Lower.numeric(-1)
	up := iv.Upper.numeric(1)
	return up - lo
}

// String renders iv as "[lo, up]".
func (iv Interval) String() string {
	return "[" + iv.Lower.String() + ", " + iv.Upper.String() + "]"
}
