// Package ndrange is an interval algebra for describing integration
// and fit domains over any number of dimensions, where each dimension
// may itself be a union of disjoint sub-intervals (say, axis 0 spans
// [1,4] while axis 1 spans [-1,4] ∪ [6,8]).
//
// 🚀 What is ndrange?
//
//	A small, thread-safe, zero-dependency library offering:
//		• Tagged bounds: finite values and explicit wildcards, never
//		  magic sentinels
//		• Two canonical encodings of one region — per-axis limits and
//		  per-rectangle boundaries — with bijective conversion between
//		  them (and loud rejection when no safe conversion exists)
//		• Region: an immutable value with areas, subspace projection,
//		  rectangle decomposition, set-based equality and a
//		  wildcard-aware ⊆ partial order
//
// ✨ Why choose ndrange?
//
//   - Honest conversions – "patchwork" rectangle sets never silently
//     collapse into wrong per-axis limits
//   - Rock-solid guarantees – immutable values, once-guarded caches,
//     sentinel errors matched with errors.Is
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	interval/ — 1-D primitives: tagged Bound, Interval, pairing, the
//	            covering relation
//	region/   — the algebra: sanitizing constructors, limits ↔
//	            boundaries conversion, the Region value type
//
// Quick ASCII example, limits ((1,4), (-1,4,6,8)) on axes (0,1):
//
//	axis 1
//	  8 ┤        ┌────┐
//	  6 ┤        └────┘
//	  4 ┤   ┌────┐
//	 -1 ┤   └────┘
//	    └───┴────┴──── axis 0
//	        1    4
//
//	two rectangles, total area 3·5 + 3·2 = 21.
//
// Dive into the examples/ directory for integrator-shaped scenarios.
//
//	go get github.com/katalvlaran/ndrange
package ndrange
