package surface

import (
	"math"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// Plane is an infinite plane through Point with unit Normal pointing
// toward the "outside" (the collider's resolveCollision treats anything
// on the negative side of Normal as inside the surface).
type Plane struct {
	Point  vecmath.Vector3
	Normal vecmath.Vector3
}

func NewPlane(point, normal vecmath.Vector3) Plane {
	return Plane{Point: point, Normal: normal.Normalized()}
}

func (p Plane) SignedDistance(q vecmath.Vector3) float64 {
	return q.Sub(p.Point).Dot(p.Normal)
}

func (p Plane) ClosestPoint(q vecmath.Vector3) vecmath.Vector3 {
	d := p.SignedDistance(q)
	return q.Sub(p.Normal.Mul(d))
}

func (p Plane) ClosestNormal(q vecmath.Vector3) vecmath.Vector3 {
	return p.Normal
}

func (p Plane) Intersects(r vecmath.Ray3) bool {
	denom := r.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-12 {
		return false
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	return t >= 0
}

func (p Plane) ClosestIntersection(r vecmath.Ray3) Intersection {
	denom := r.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-12 {
		return Intersection{}
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return Intersection{}
	}
	pt := r.PointAt(t)
	return Intersection{Hit: true, T: t, Point: pt, Normal: p.Normal}
}

func (p Plane) BoundingBox() vecmath.AABB3 {
	const big = 1e9
	return vecmath.NewAABB3(
		vecmath.Vector3{X: -big, Y: -big, Z: -big},
		vecmath.Vector3{X: big, Y: big, Z: big},
	)
}
