// Package ordinal computes fractional ordering positions for issues inside a column.
//
// New positions are derived only from the immediate neighbors of the insertion
// point, so moving one issue never rewrites the positions of the others. When
// repeated midpoint inserts shrink a gap below MinGap the caller is expected to
// renumber the column with Spread.
package ordinal

import "github.com/thenoetrevino/issueboard/internal/models"

// Allocator holds the spacing constants. The zero value is not usable; use New
// or Default.
type Allocator struct {
	Base   float64 // position of the only issue in an empty column
	Gap    float64 // distance added when appending to a tail
	MinGap float64 // smallest separation a new position may have from a neighbor
}

// Default returns an allocator with the standard 1000-spaced layout
func Default() Allocator {
	return Allocator{
		Base:   models.DefaultBasePosition,
		Gap:    models.DefaultPositionGap,
		MinGap: models.DefaultMinPositionGap,
	}
}

// New builds an allocator, falling back to the defaults for non-positive values
func New(base, gap, minGap float64) Allocator {
	a := Default()
	if base > 0 {
		a.Base = base
	}
	if gap > 0 {
		a.Gap = gap
	}
	if minGap > 0 {
		a.MinGap = minGap
	}
	return a
}

// Allocate returns the position for an issue inserted between prev and next.
// A nil neighbor means the insertion point is at that end of the column.
func (a Allocator) Allocate(prev, next *float64) float64 {
	switch {
	case prev == nil && next == nil:
		return a.Base
	case prev == nil:
		// Halving only moves toward the head while next is positive.
		if *next <= 0 {
			return *next - a.Gap
		}
		return *next / 2
	case next == nil:
		return *prev + a.Gap
	default:
		return (*prev + *next) / 2
	}
}

// Fits reports whether Allocate can still produce a position that is at least
// MinGap away from each neighbor. When it returns false the column should be
// renumbered instead.
func (a Allocator) Fits(prev, next *float64) bool {
	pos := a.Allocate(prev, next)
	if prev != nil && pos-*prev < a.MinGap {
		return false
	}
	if next != nil && *next-pos < a.MinGap {
		return false
	}
	return true
}

// Spread returns n evenly spaced positions starting at Base
func (a Allocator) Spread(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = a.Base + float64(i)*a.Gap
	}
	return out
}
