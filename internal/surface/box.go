package surface

import (
	"math"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// Box is an axis-aligned solid box. By default the interior has negative
// signed distance, as for a solid obstacle. Setting FlipNormal inverts
// the sense -- the region *outside* the box becomes "inside" the
// surface -- which is how a domain-boundary collider is built: particles
// are meant to stay within the box, so anything beyond its walls is the
// penetrating side (spec.md §4.4's "static rigid-body collider" applied
// to a container rather than an obstacle).
type Box struct {
	Bounds     vecmath.AABB3
	FlipNormal bool
}

func NewBox(bounds vecmath.AABB3) Box { return Box{Bounds: bounds} }

func NewInwardBox(bounds vecmath.AABB3) Box { return Box{Bounds: bounds, FlipNormal: true} }

func (b Box) signedDistanceUnflipped(q vecmath.Vector3) float64 {
	lo, hi := b.Bounds.LowerCorner, b.Bounds.UpperCorner
	dx := math.Max(lo.X-q.X, q.X-hi.X)
	dy := math.Max(lo.Y-q.Y, q.Y-hi.Y)
	dz := math.Max(lo.Z-q.Z, q.Z-hi.Z)

	outside := vecmath.Vector3{X: math.Max(dx, 0), Y: math.Max(dy, 0), Z: math.Max(dz, 0)}
	outsideDist := outside.Length()
	insideDist := math.Min(math.Max(dx, math.Max(dy, dz)), 0)
	return outsideDist + insideDist
}

func (b Box) SignedDistance(q vecmath.Vector3) float64 {
	d := b.signedDistanceUnflipped(q)
	if b.FlipNormal {
		return -d
	}
	return d
}

func (b Box) ClosestPoint(q vecmath.Vector3) vecmath.Vector3 {
	lo, hi := b.Bounds.LowerCorner, b.Bounds.UpperCorner
	clamped := vecmath.Vector3{
		X: math.Min(math.Max(q.X, lo.X), hi.X),
		Y: math.Min(math.Max(q.Y, lo.Y), hi.Y),
		Z: math.Min(math.Max(q.Z, lo.Z), hi.Z),
	}
	if clamped != q {
		// q is outside: clamped point is the closest point on the surface.
		return clamped
	}
	// q is inside: push to the nearest face.
	dists := []struct {
		d float64
		p vecmath.Vector3
	}{
		{q.X - lo.X, vecmath.Vector3{X: lo.X, Y: q.Y, Z: q.Z}},
		{hi.X - q.X, vecmath.Vector3{X: hi.X, Y: q.Y, Z: q.Z}},
		{q.Y - lo.Y, vecmath.Vector3{X: q.X, Y: lo.Y, Z: q.Z}},
		{hi.Y - q.Y, vecmath.Vector3{X: q.X, Y: hi.Y, Z: q.Z}},
		{q.Z - lo.Z, vecmath.Vector3{X: q.X, Y: q.Y, Z: lo.Z}},
		{hi.Z - q.Z, vecmath.Vector3{X: q.X, Y: q.Y, Z: hi.Z}},
	}
	best := dists[0]
	for _, d := range dists[1:] {
		if d.d < best.d {
			best = d
		}
	}
	return best.p
}

func (b Box) ClosestNormal(q vecmath.Vector3) vecmath.Vector3 {
	cp := b.ClosestPoint(q)
	lo, hi := b.Bounds.LowerCorner, b.Bounds.UpperCorner
	const eps = 1e-9
	n := vecmath.Vector3{}
	switch {
	case math.Abs(cp.X-lo.X) < eps:
		n = vecmath.Vector3{X: -1}
	case math.Abs(cp.X-hi.X) < eps:
		n = vecmath.Vector3{X: 1}
	case math.Abs(cp.Y-lo.Y) < eps:
		n = vecmath.Vector3{Y: -1}
	case math.Abs(cp.Y-hi.Y) < eps:
		n = vecmath.Vector3{Y: 1}
	case math.Abs(cp.Z-lo.Z) < eps:
		n = vecmath.Vector3{Z: -1}
	case math.Abs(cp.Z-hi.Z) < eps:
		n = vecmath.Vector3{Z: 1}
	default:
		n = q.Sub(b.Bounds.Center()).Normalized()
	}
	if b.FlipNormal {
		return n.Mul(-1)
	}
	return n
}

func (b Box) Intersects(r vecmath.Ray3) bool {
	return b.ClosestIntersection(r).Hit
}

func (b Box) ClosestIntersection(r vecmath.Ray3) Intersection {
	lo, hi := b.Bounds.LowerCorner, b.Bounds.UpperCorner
	tMin, tMax := 0.0, math.Inf(1)

	axes := [3]struct{ o, d, lo, hi float64 }{
		{r.Origin.X, r.Direction.X, lo.X, hi.X},
		{r.Origin.Y, r.Direction.Y, lo.Y, hi.Y},
		{r.Origin.Z, r.Direction.Z, lo.Z, hi.Z},
	}
	for _, a := range axes {
		if math.Abs(a.d) < 1e-12 {
			if a.o < a.lo || a.o > a.hi {
				return Intersection{}
			}
			continue
		}
		t1 := (a.lo - a.o) / a.d
		t2 := (a.hi - a.o) / a.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return Intersection{}
		}
	}

	pt := r.PointAt(tMin)
	return Intersection{Hit: true, T: tMin, Point: pt, Normal: b.ClosestNormal(pt)}
}

func (b Box) BoundingBox() vecmath.AABB3 { return b.Bounds }
