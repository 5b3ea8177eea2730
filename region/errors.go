// SPDX-License-Identifier: MIT
// Package region: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// context via fmt.Errorf("…: %w", ErrX)); callers match with errors.Is.
// No operation panics on user-triggered conditions.

package region

import "errors"

var (
	// ErrShapeMismatch indicates malformed boundary input: lower and upper
	// do not share the same shape, corner rows have differing widths, or
	// the input is empty.
	ErrShapeMismatch = errors.New("region: lower and upper boundaries must share one non-empty shape")

	// ErrMixedShape indicates ambiguous input whose rows cannot be read
	// consistently as corners of one dimensionality.
	ErrMixedShape = errors.New("region: mixed scalar and sequence entries are ambiguous")

	// ErrUnsetBound indicates an Unset bound in input while the
	// ConvertUnset option is disabled.
	ErrUnsetBound = errors.New("region: unset bound present but ConvertUnset not enabled")

	// ErrAxesRequired indicates construction without axis indices where
	// they cannot be inferred.
	ErrAxesRequired = errors.New("region: axes must be specified")

	// ErrAxesMismatch indicates that the axis count does not match the
	// per-rectangle corner width.
	ErrAxesMismatch = errors.New("region: axes do not match boundary width")

	// ErrDuplicateAxis indicates a repeated axis index.
	ErrDuplicateAxis = errors.New("region: duplicate axis index")

	// ErrAxisNotFound indicates a projection onto an axis the region does
	// not own.
	ErrAxisNotFound = errors.New("region: axis not owned by region")

	// ErrConversion indicates boundaries that admit no per-axis product
	// encoding: reconstructing limits and re-expanding does not reproduce
	// the original rectangle set.
	ErrConversion = errors.New("region: boundaries cannot be converted to per-axis limits")

	// ErrIncomparable indicates comparison or equality between regions
	// spanning different axis-index tuples.
	ErrIncomparable = errors.New("region: regions span different axes and cannot be compared")

	// ErrUnhashable indicates a hash request on a region holding a bound
	// value that breaks hash/equality consistency (a NaN finite bound).
	ErrUnhashable = errors.New("region: region holds an unhashable bound value")

	// ErrEncodingChoice indicates that both or neither of the limits and
	// boundaries encodings were supplied where exactly one is required.
	ErrEncodingChoice = errors.New("region: specify exactly one of limits or boundaries")

	// ErrUnsupported marks operations that are intentionally not
	// implemented; callers must not rely on them gaining semantics.
	ErrUnsupported = errors.New("region: operation intentionally unsupported")
)
