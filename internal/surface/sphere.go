package surface

import (
	"math"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// Sphere is a solid ball; points inside have negative signed distance.
type Sphere struct {
	Center vecmath.Vector3
	Radius float64
}

func NewSphere(center vecmath.Vector3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

func (s Sphere) SignedDistance(q vecmath.Vector3) float64 {
	return q.DistanceTo(s.Center) - s.Radius
}

func (s Sphere) ClosestPoint(q vecmath.Vector3) vecmath.Vector3 {
	dir := q.Sub(s.Center)
	if dir.Length() < 1e-12 {
		dir = vecmath.Vector3{X: 1}
	}
	return s.Center.Add(dir.Normalized().Mul(s.Radius))
}

func (s Sphere) ClosestNormal(q vecmath.Vector3) vecmath.Vector3 {
	dir := q.Sub(s.Center)
	if dir.Length() < 1e-12 {
		return vecmath.Vector3{X: 1}
	}
	return dir.Normalized()
}

func (s Sphere) Intersects(r vecmath.Ray3) bool {
	hit := s.ClosestIntersection(r)
	return hit.Hit
}

func (s Sphere) ClosestIntersection(r vecmath.Ray3) Intersection {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersection{}
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return Intersection{}
	}
	pt := r.PointAt(t)
	return Intersection{Hit: true, T: t, Point: pt, Normal: s.ClosestNormal(pt)}
}

func (s Sphere) BoundingBox() vecmath.AABB3 {
	r := vecmath.Vector3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return vecmath.NewAABB3(s.Center.Sub(r), s.Center.Add(r))
}
