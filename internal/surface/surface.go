// Package surface is the implicit-surface collaborator of spec.md §6: a
// signed-distance / closest-point / closest-normal / ray-intersection
// contract, and the handful of concrete shapes (plane, sphere, box, and
// a min-composing set) the collider and volume emitter need.
//
// This is deliberately thin -- spec.md §1 treats implicit surface
// queries as an external dependency beyond the interface the collider
// and emitter consume.
package surface

import "github.com/san-kum/particlesim/internal/vecmath"

// Intersection describes a ray/surface hit.
type Intersection struct {
	Hit    bool
	T      float64
	Point  vecmath.Vector3
	Normal vecmath.Vector3
}

// Implicit3 is a 3D implicit surface (or a 2D one embedded in the XY
// plane with Z == 0, as used by the 2D scenarios in spec.md §8).
type Implicit3 interface {
	SignedDistance(p vecmath.Vector3) float64
	ClosestPoint(p vecmath.Vector3) vecmath.Vector3
	ClosestNormal(p vecmath.Vector3) vecmath.Vector3
	Intersects(r vecmath.Ray3) bool
	ClosestIntersection(r vecmath.Ray3) Intersection
	BoundingBox() vecmath.AABB3
}

// IsInside reports whether p is on the interior side of the surface.
func IsInside(s Implicit3, p vecmath.Vector3) bool {
	return s.SignedDistance(p) <= 0
}
