// Package interval defines one-dimensional interval primitives used by
// the ndrange region algebra: tagged bounds, (lower, upper) pairs, and
// the wildcard-aware covering test.
//
// What:
//
//   - Bound is a closed tagged variant over {Unset, Finite(v), AnyLower,
//     AnyUpper, Any}; wildcards are values, never compared by identity.
//   - Interval couples a lower and an upper Bound.
//   - Pairs splits a flat even-length bound sequence (lo1, up1, lo2,
//     up2, …) into Intervals.
//   - Covers implements the exact-equality covering relation used by
//     the region subset test.
//
// Why:
//
//   - Integration domains: each axis of a fit/integration region is a
//     union of such intervals.
//   - Open-ended limits: AnyLower/AnyUpper express "unbounded" without
//     overloading any finite value.
//
// Errors:
//
//   - ErrOddPairs: a flat bound sequence has odd length.
//
// Bound comparison is exact; no numeric tolerance is applied anywhere
// in this package.
package interval
