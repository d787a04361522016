package vecmath

import "math"

// AABB2 is an axis-aligned bounding box in 2D.
type AABB2 struct {
	LowerCorner, UpperCorner Vector2
}

func NewAABB2(a, b Vector2) AABB2 {
	return AABB2{
		LowerCorner: Vector2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		UpperCorner: Vector2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

func (b AABB2) Width() float64  { return b.UpperCorner.X - b.LowerCorner.X }
func (b AABB2) Height() float64 { return b.UpperCorner.Y - b.LowerCorner.Y }
func (b AABB2) Center() Vector2 {
	return b.LowerCorner.Add(b.UpperCorner).Mul(0.5)
}

func (b AABB2) Contains(p Vector2) bool {
	return p.X >= b.LowerCorner.X && p.X <= b.UpperCorner.X &&
		p.Y >= b.LowerCorner.Y && p.Y <= b.UpperCorner.Y
}

func (b AABB2) Overlaps(o AABB2) bool {
	if b.UpperCorner.X < o.LowerCorner.X || b.LowerCorner.X > o.UpperCorner.X {
		return false
	}
	if b.UpperCorner.Y < o.LowerCorner.Y || b.LowerCorner.Y > o.UpperCorner.Y {
		return false
	}
	return true
}

func (b AABB2) Expanded(delta float64) AABB2 {
	return AABB2{
		LowerCorner: Vector2{b.LowerCorner.X - delta, b.LowerCorner.Y - delta},
		UpperCorner: Vector2{b.UpperCorner.X + delta, b.UpperCorner.Y + delta},
	}
}

func (b AABB2) Merged(o AABB2) AABB2 {
	return NewAABB2(
		Vector2{math.Min(b.LowerCorner.X, o.LowerCorner.X), math.Min(b.LowerCorner.Y, o.LowerCorner.Y)},
		Vector2{math.Max(b.UpperCorner.X, o.UpperCorner.X), math.Max(b.UpperCorner.Y, o.UpperCorner.Y)},
	)
}

func (b AABB2) Corners() [4]Vector2 {
	return [4]Vector2{
		b.LowerCorner,
		{b.UpperCorner.X, b.LowerCorner.Y},
		b.UpperCorner,
		{b.LowerCorner.X, b.UpperCorner.Y},
	}
}

// AABB3 is an axis-aligned bounding box in 3D.
type AABB3 struct {
	LowerCorner, UpperCorner Vector3
}

func NewAABB3(a, b Vector3) AABB3 {
	return AABB3{
		LowerCorner: Vector3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		UpperCorner: Vector3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

func (b AABB3) Center() Vector3 {
	return b.LowerCorner.Add(b.UpperCorner).Mul(0.5)
}

func (b AABB3) Contains(p Vector3) bool {
	return p.X >= b.LowerCorner.X && p.X <= b.UpperCorner.X &&
		p.Y >= b.LowerCorner.Y && p.Y <= b.UpperCorner.Y &&
		p.Z >= b.LowerCorner.Z && p.Z <= b.UpperCorner.Z
}

func (b AABB3) Overlaps(o AABB3) bool {
	if b.UpperCorner.X < o.LowerCorner.X || b.LowerCorner.X > o.UpperCorner.X {
		return false
	}
	if b.UpperCorner.Y < o.LowerCorner.Y || b.LowerCorner.Y > o.UpperCorner.Y {
		return false
	}
	if b.UpperCorner.Z < o.LowerCorner.Z || b.LowerCorner.Z > o.UpperCorner.Z {
		return false
	}
	return true
}

func (b AABB3) Expanded(delta float64) AABB3 {
	return AABB3{
		LowerCorner: Vector3{b.LowerCorner.X - delta, b.LowerCorner.Y - delta, b.LowerCorner.Z - delta},
		UpperCorner: Vector3{b.UpperCorner.X + delta, b.UpperCorner.Y + delta, b.UpperCorner.Z + delta},
	}
}

func (b AABB3) Merged(o AABB3) AABB3 {
	return NewAABB3(
		Vector3{math.Min(b.LowerCorner.X, o.LowerCorner.X), math.Min(b.LowerCorner.Y, o.LowerCorner.Y), math.Min(b.LowerCorner.Z, o.LowerCorner.Z)},
		Vector3{math.Max(b.UpperCorner.X, o.UpperCorner.X), math.Max(b.UpperCorner.Y, o.UpperCorner.Y), math.Max(b.UpperCorner.Z, o.UpperCorner.Z)},
	)
}

// Ray2 is a ray in 2D: points along Origin + t*Direction for t >= 0.
type Ray2 struct {
	Origin, Direction Vector2
}

func (r Ray2) PointAt(t float64) Vector2 { return r.Origin.Add(r.Direction.Mul(t)) }

// Ray3 is a ray in 3D.
type Ray3 struct {
	Origin, Direction Vector3
}

func (r Ray3) PointAt(t float64) Vector3 { return r.Origin.Add(r.Direction.Mul(t)) }
