package region

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/katalvlaran/ndrange/interval"
)

// SubsetOf reports whether r ⊆ other under the wildcard-aware covering
// relation: for every 1-D interval on every axis of r, some interval
// on the corresponding axis of other covers it (interval.Covers).
//
// Both regions must span the same axis-index tuple, order included;
// otherwise the comparison is meaningless and yields ErrIncomparable
// rather than a silent false. Both operands must be
// product-decomposable, so a non-product region propagates
// ErrConversion.
func (r *Region) SubsetOf(other *Region) (bool, error) {
	if err := r.comparableTo(other); err != nil {
		return false, err
	}
	ownLimits, err := r.Limits()
	if err != nil {
		return false, err
	}
	otherLimits, err := other.Limits()
	if err != nil {
		return false, err
	}

	for axis := range ownLimits {
		ownIvs, err := interval.Pairs(ownLimits[axis])
		if err != nil {
			return false, err
		}
		otherIvs, err := interval.Pairs(otherLimits[axis])
		if err != nil {
			return false, err
		}
		for _, iv := range ownIvs {
			if !coveredByAny(iv, otherIvs) {
				return false, nil
			}
		}
	}
	return true, nil
}

// SupersetOf reports whether r ⊇ other; it is SubsetOf with the
// operands swapped and shares its error conditions.
func (r *Region) SupersetOf(other *Region) (bool, error) {
	return other.SubsetOf(r)
}

// coveredByAny reports whether any candidate covers iv.
func coveredByAny(iv interval.Interval, candidates []interval.Interval) bool {
	for _, c := range candidates {
		if c.Covers(iv) {
			return true
		}
	}
	return false
}

// Equal reports whether r and other describe the same rectangle set:
// the unordered sets of lower corners and of upper corners match
// exactly, insertion order ignored. Regions over different axis
// tuples are ErrIncomparable.
func (r *Region) Equal(other *Region) (bool, error) {
	if err := r.comparableTo(other); err != nil {
		return false, err
	}
	return sameCornerSet(r.lower, other.lower) && sameCornerSet(r.upper, other.upper), nil
}

// comparableTo verifies that both regions span one axis tuple.
func (r *Region) comparableTo(other *Region) error {
	if len(r.axes) != len(other.axes) {
		return fmt.Errorf("axes %v vs %v: %w", r.axes, other.axes, ErrIncomparable)
	}
	for i, axis := range r.axes {
		if other.axes[i] != axis {
			return fmt.Errorf("axes %v vs %v: %w", r.axes, other.axes, ErrIncomparable)
		}
	}
	return nil
}

// Hash returns a digest of (boundaries, axes) suitable for hash-based
// containers. Corners are combined order-independently within the
// lower and upper sets, so regions that compare Equal hash equally
// regardless of insertion order.
//
// A region holding a NaN finite bound is ErrUnhashable: NaN breaks the
// Equal-implies-equal-hash contract, so such regions must not be
// placed in hash-based containers.
func (r *Region) Hash() (uint64, error) {
	if r.hasNaNBound() {
		return 0, fmt.Errorf("NaN bound: %w", ErrUnhashable)
	}

	digest := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], cornerSetHash(r.lower))
	digest.Write(buf[:])
	digest.Write([]byte{0xff}) // delimiter between the lower and upper sets
	binary.BigEndian.PutUint64(buf[:], cornerSetHash(r.upper))
	digest.Write(buf[:])
	for _, axis := range r.axes {
		binary.BigEndian.PutUint64(buf[:], uint64(axis))
		digest.Write(buf[:])
	}
	return digest.Sum64(), nil
}

// cornerSetHash folds per-corner digests with addition, ignoring both
// order and duplicates to mirror the set semantics of Equal.
func cornerSetHash(rows [][]interval.Bound) uint64 {
	seen := make(map[string]struct{}, len(rows))
	var sum uint64
	for _, row := range rows {
		key := cornerKey(row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		h := fnv.New64a()
		h.Write([]byte(key))
		sum += h.Sum64()
	}
	return sum
}
