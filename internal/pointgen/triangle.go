// Package pointgen is the point-generator collaborator of spec.md §6: a
// forEachPoint(bounds, spacing, cb) primitive, with the triangular-lattice
// tiling as the only implementation the volume emitter and SPH mass
// calibration need.
package pointgen

import (
	"math"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// TriangleLattice enumerates points of a regular triangular tiling.
// Rows are offset by half a spacing every other row, giving each
// interior point six equidistant neighbors at `spacing`.
type TriangleLattice struct{}

// ForEachPoint2 calls cb for every lattice point at the given spacing
// inside bounds, stopping early if cb returns false.
func (TriangleLattice) ForEachPoint2(bounds vecmath.AABB2, spacing float64, cb func(vecmath.Vector2) bool) {
	if spacing <= 0 {
		return
	}
	rowHeight := spacing * math.Sqrt(3) / 2
	row := 0
	for y := bounds.LowerCorner.Y; y <= bounds.UpperCorner.Y; y += rowHeight {
		offset := 0.0
		if row%2 == 1 {
			offset = spacing / 2
		}
		for x := bounds.LowerCorner.X + offset; x <= bounds.UpperCorner.X; x += spacing {
			if !cb(vecmath.Vector2{X: x, Y: y}) {
				return
			}
		}
		row++
	}
}

// ForEachPoint3 stacks 2D triangular layers along Z at `spacing`
// vertical separation.
func (g TriangleLattice) ForEachPoint3(bounds vecmath.AABB3, spacing float64, cb func(vecmath.Vector3) bool) {
	if spacing <= 0 {
		return
	}
	bounds2 := vecmath.NewAABB2(
		vecmath.Vector2{X: bounds.LowerCorner.X, Y: bounds.LowerCorner.Y},
		vecmath.Vector2{X: bounds.UpperCorner.X, Y: bounds.UpperCorner.Y},
	)
	stop := false
	for z := bounds.LowerCorner.Z; z <= bounds.UpperCorner.Z && !stop; z += spacing {
		zz := z
		g.ForEachPoint2(bounds2, spacing, func(p vecmath.Vector2) bool {
			ok := cb(vecmath.Vector3{X: p.X, Y: p.Y, Z: zz})
			if !ok {
				stop = true
			}
			return ok
		})
	}
}
