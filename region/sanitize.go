package region

import (
	"fmt"

	"github.com/katalvlaran/ndrange/interval"
)

// canonicalRows resolves a tagged Values input into the canonical 2-D
// row form. A scalar becomes one single-entry row, a flat sequence one
// row, a nested sequence its rows verbatim. Rows are copied so the
// caller's slices stay untouched.
func canonicalRows(v Values) ([][]interval.Bound, error) {
	switch v.shape {
	case shapeScalar:
		return [][]interval.Bound{{v.scalar}}, nil
	case shapeFlat:
		if len(v.flat) == 0 {
			return nil, fmt.Errorf("empty flat input: %w", ErrShapeMismatch)
		}
		return [][]interval.Bound{append([]interval.Bound(nil), v.flat...)}, nil
	case shapeNested:
		if len(v.nested) == 0 {
			return nil, fmt.Errorf("empty nested input: %w", ErrShapeMismatch)
		}
		rows := make([][]interval.Bound, len(v.nested))
		for i, row := range v.nested {
			if len(row) == 0 {
				return nil, fmt.Errorf("empty row %d: %w", i, ErrShapeMismatch)
			}
			rows[i] = append([]interval.Bound(nil), row...)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("no input given: %w", ErrShapeMismatch)
	}
}

// rowWidth verifies that every row of rows has one common width and
// returns it. Ragged rows cannot be read as corners of one
// dimensionality and are rejected as ambiguous.
func rowWidth(rows [][]interval.Bound) (int, error) {
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return 0, fmt.Errorf("row widths %d vs %d: %w", width, len(row), ErrMixedShape)
		}
	}
	return width, nil
}

// substituteUnset walks corner rows and resolves Unset placeholder
// bounds: substituted with repl when convert is true, rejected
// otherwise. Rows are mutated in place (they are already private
// copies).
func substituteUnset(rows [][]interval.Bound, repl interval.Bound, convert bool) error {
	for _, row := range rows {
		for i, b := range row {
			if !b.IsUnset() {
				continue
			}
			if !convert {
				return ErrUnsetBound
			}
			row[i] = repl
		}
	}
	return nil
}

// sanitizeBoundaries normalizes raw lower/upper corner input into the
// canonical m×n form: shapes resolved and matched, Unset placeholders
// substituted per corner role (AnyLower below, AnyUpper above) when
// convertUnset is set. Returns the cleaned rows plus the inferred axis
// indices 0..n-1.
func sanitizeBoundaries(lowerV, upperV Values, convertUnset bool) (lower, upper [][]interval.Bound, inferred []int, err error) {
	if lower, err = canonicalRows(lowerV); err != nil {
		return nil, nil, nil, err
	}
	if upper, err = canonicalRows(upperV); err != nil {
		return nil, nil, nil, err
	}
	if len(lower) != len(upper) {
		return nil, nil, nil, fmt.Errorf("%d lower vs %d upper corners: %w", len(lower), len(upper), ErrShapeMismatch)
	}
	lowerWidth, err := rowWidth(lower)
	if err != nil {
		return nil, nil, nil, err
	}
	upperWidth, err := rowWidth(upper)
	if err != nil {
		return nil, nil, nil, err
	}
	if lowerWidth != upperWidth {
		return nil, nil, nil, fmt.Errorf("corner widths %d vs %d: %w", lowerWidth, upperWidth, ErrShapeMismatch)
	}
	if err = substituteUnset(lower, interval.AnyLower, convertUnset); err != nil {
		return nil, nil, nil, err
	}
	if err = substituteUnset(upper, interval.AnyUpper, convertUnset); err != nil {
		return nil, nil, nil, err
	}

	inferred = make([]int, lowerWidth)
	for i := range inferred {
		inferred[i] = i
	}
	return lower, upper, inferred, nil
}

// sanitizeLimits normalizes raw limits input into canonical per-axis
// rows. A scalar or flat input is read as a single axis; every row
// must pair up evenly. Unset handling is deferred to the boundary
// sanitize that follows expansion, so here rows pass through verbatim.
func sanitizeLimits(limitsV Values) ([][]interval.Bound, error) {
	rows, err := canonicalRows(limitsV)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if _, err = interval.Pairs(row); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// sanitizeAxes resolves an Axes selection against the inferred
// 0..n-1 indices: Full adopts the inferred tuple, an explicit list is
// checked for duplicates, a missing selection is an error.
func sanitizeAxes(a Axes, inferred []int) ([]int, error) {
	if a.IsZero() {
		return nil, ErrAxesRequired
	}
	if a.full {
		return append([]int(nil), inferred...), nil
	}
	seen := make(map[int]struct{}, len(a.ids))
	for _, id := range a.ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("axis %d: %w", id, ErrDuplicateAxis)
		}
		seen[id] = struct{}{}
	}
	return append([]int(nil), a.ids...), nil
}
