// Package region implements an interval algebra for multidimensional
// integration and fit domains, where each axis may span a union of
// disjoint sub-intervals.
//
// What:
//
//   - Two canonical encodings of one domain:
//     limits — per axis, a flat union of (lower, upper) pairs, the full
//     region being the implicit Cartesian product across axes;
//     boundaries — an explicit list of axis-aligned hyper-rectangles
//     given by paired lower/upper corner tuples.
//   - Region: the immutable value type, stored as boundaries plus an
//     ordered tuple of distinct axis indices.
//   - BoundariesFromLimits / LimitsFromBoundaries: the bijective
//     conversion between the encodings. Reconstruction re-expands and
//     compares, rejecting "patchwork" rectangle sets that admit no
//     per-axis product encoding.
//   - Area, AreaByBoundaries, Subspace, Decompose, SubsetOf, Equal,
//     Hash on Region.
//
// Why:
//
//   - Monte Carlo integration: total and per-rectangle volumes drive
//     sample budgeting; Boundaries() yields the iteration surface.
//   - Fit domains: declare a domain per axis, project subspaces, and
//     compare declared vs. supported domains with wildcard bounds.
//
// Complexity:
//
//   - BoundariesFromLimits: O(n·∏ k_i) — combinatorial in the per-axis
//     union sizes; callers must budget for ∏ k_i rectangles.
//   - LimitsFromBoundaries: O(m·n) + the verification re-expansion.
//   - Area/AreaByBoundaries: O(m·n), computed once and cached (safe
//     under concurrent access).
//   - SubsetOf: O(n·k²) interval covering tests.
//
// Errors:
//
//   - ErrShapeMismatch, ErrMixedShape, ErrUnsetBound, ErrAxesRequired,
//     ErrAxesMismatch, ErrDuplicateAxis: malformed construction input.
//   - ErrConversion: boundaries admit no per-axis product encoding.
//   - ErrIncomparable: comparison across different axis tuples.
//   - ErrAxisNotFound: projection onto an unowned axis.
//   - ErrUnhashable: Hash over a NaN bound.
//   - ErrEncodingChoice: Convert given both or half an encoding.
//   - ErrUnsupported: intentionally disabled operations (At,
//     SortLimits).
//
// All errors surface synchronously at the call site and propagate
// unmodified; the package performs no I/O and starts no goroutines.
package region
