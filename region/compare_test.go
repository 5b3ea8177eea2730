package region_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndrange/interval"
	"github.com/katalvlaran/ndrange/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// axis0Region builds a 1-D region on axis 0 from a flat bound list.
func axis0Region(t *testing.T, bounds ...interval.Bound) *region.Region {
	t.Helper()
	r, err := region.FromLimits(region.Flat(bounds...), region.On(0), nil)
	require.NoError(t, err)
	return r
}

// TestSubsetOf_ExactAndDisjoint verifies the basic partial order:
// identical intervals are subsets, disjoint intervals are not.
func TestSubsetOf_ExactAndDisjoint(t *testing.T) {
	a := axis0Region(t, interval.Of(1, 4)...)
	same := axis0Region(t, interval.Of(1, 4)...)
	disjoint := axis0Region(t, interval.Of(5, 9)...)

	ok, err := a.SubsetOf(same)
	require.NoError(t, err)
	assert.True(t, ok, "region is a subset of itself")

	ok, err = a.SubsetOf(disjoint)
	require.NoError(t, err)
	assert.False(t, ok, "disjoint intervals are not subsets")
}

// TestSubsetOf_Wildcards verifies the wildcard rules: matching lower
// with open upper covers, and a fully open axis covers everything.
func TestSubsetOf_Wildcards(t *testing.T) {
	a := axis0Region(t, interval.Of(1, 4)...)
	openAbove := axis0Region(t, interval.Finite(1), interval.AnyUpper)
	openBoth := axis0Region(t, interval.AnyLower, interval.AnyUpper)
	shifted := axis0Region(t, interval.Finite(2), interval.AnyUpper)

	ok, err := a.SubsetOf(openAbove)
	require.NoError(t, err)
	assert.True(t, ok, "(1,4) ⊆ (1, any-upper)")

	ok, err = a.SubsetOf(openBoth)
	require.NoError(t, err)
	assert.True(t, ok, "everything ⊆ fully open axis")

	ok, err = a.SubsetOf(shifted)
	require.NoError(t, err)
	assert.False(t, ok, "mismatched lower bound does not cover")

	ok, err = openBoth.SupersetOf(a)
	require.NoError(t, err)
	assert.True(t, ok, "SupersetOf mirrors SubsetOf")
}

// TestSubsetOf_MultiAxisUnions verifies the per-axis all-intervals
// requirement: every interval of every axis must be covered.
func TestSubsetOf_MultiAxisUnions(t *testing.T) {
	small, err := region.FromLimits(
		region.Nested(interval.Of(1, 4), interval.Of(-1, 4)),
		region.On(0, 1), nil,
	)
	require.NoError(t, err)

	big, err := region.FromLimits(
		region.Nested(interval.Of(1, 4), interval.Of(-1, 4, 6, 8)),
		region.On(0, 1), nil,
	)
	require.NoError(t, err)

	ok, err := small.SubsetOf(big)
	require.NoError(t, err)
	assert.True(t, ok, "axis-1 union (-1,4) is covered by (-1,4) ∪ (6,8)")

	ok, err = big.SubsetOf(small)
	require.NoError(t, err)
	assert.False(t, ok, "(6,8) has no cover in the smaller region")
}

// TestSubsetOf_IncompatibleAxes verifies that regions over different
// axis tuples (order included) are ErrIncomparable, never false.
func TestSubsetOf_IncompatibleAxes(t *testing.T) {
	a, err := region.FromLimits(
		region.Nested(interval.Of(1, 4), interval.Of(5, 6)), region.On(0, 1), nil)
	require.NoError(t, err)
	b, err := region.FromLimits(
		region.Nested(interval.Of(1, 4), interval.Of(5, 6)), region.On(1, 0), nil)
	require.NoError(t, err)

	_, err = a.SubsetOf(b)
	assert.ErrorIs(t, err, region.ErrIncomparable, "axis order matters")

	_, err = a.Equal(b)
	assert.ErrorIs(t, err, region.ErrIncomparable, "equality needs one axis tuple")
}

// TestSubsetOf_NonProductOperand verifies that ErrConversion
// propagates unmodified out of the subset test.
func TestSubsetOf_NonProductOperand(t *testing.T) {
	patchwork := scenario2(t)
	ok, err := patchwork.SubsetOf(patchwork)
	assert.ErrorIs(t, err, region.ErrConversion, "subset is defined via limits")
	assert.False(t, ok)
}

// TestEqual_SetBasedAndSymmetric verifies that insertion order of
// rectangles does not affect equality, and that equality is symmetric.
func TestEqual_SetBasedAndSymmetric(t *testing.T) {
	a, err := region.FromBoundaries(
		region.Nested(interval.Of(1, -1), interval.Of(1, 6)),
		region.Nested(interval.Of(4, 4), interval.Of(4, 8)),
		region.On(0, 1), nil,
	)
	require.NoError(t, err)
	b, err := region.FromBoundaries(
		region.Nested(interval.Of(1, 6), interval.Of(1, -1)),
		region.Nested(interval.Of(4, 8), interval.Of(4, 4)),
		region.On(0, 1), nil,
	)
	require.NoError(t, err)

	ok, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, ok, "rectangle order must not matter")

	ok, err = b.Equal(a)
	require.NoError(t, err)
	assert.True(t, ok, "equality is symmetric")

	other := scenario2(t)
	ok, err = a.Equal(other)
	require.NoError(t, err)
	assert.False(t, ok, "different corner sets differ")
}

// TestHash_ConsistentWithEqual verifies that equal regions hash
// equally regardless of rectangle insertion order, and that different
// regions (very likely) do not collide.
func TestHash_ConsistentWithEqual(t *testing.T) {
	a, err := region.FromBoundaries(
		region.Nested(interval.Of(1, -1), interval.Of(1, 6)),
		region.Nested(interval.Of(4, 4), interval.Of(4, 8)),
		region.On(0, 1), nil,
	)
	require.NoError(t, err)
	b, err := region.FromBoundaries(
		region.Nested(interval.Of(1, 6), interval.Of(1, -1)),
		region.Nested(interval.Of(4, 8), interval.Of(4, 4)),
		region.On(0, 1), nil,
	)
	require.NoError(t, err)

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb, "Equal regions must hash equally")

	hc, err := scenario2(t).Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc, "distinct regions should not collide")
}

// TestHash_AxesParticipate verifies that the axis tuple is part of the
// digest: same corners on different axes hash differently.
func TestHash_AxesParticipate(t *testing.T) {
	a := axis0Region(t, interval.Of(1, 4)...)
	b, err := region.FromLimits(region.Flat(interval.Of(1, 4)...), region.On(3), nil)
	require.NoError(t, err)

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb, "axis indices participate in the hash")
}

// TestHash_NaNBoundIsUnhashable verifies the named unhashable-value
// error instead of an opaque crash or a silently broken digest.
func TestHash_NaNBoundIsUnhashable(t *testing.T) {
	r, err := region.FromBoundaries(
		region.Scalar(interval.Finite(math.NaN())), region.Scalar(interval.Finite(4)),
		region.On(0), nil,
	)
	require.NoError(t, err, "NaN is a representable finite bound")

	_, err = r.Hash()
	assert.ErrorIs(t, err, region.ErrUnhashable, "NaN bound breaks hash/equality consistency")
}
