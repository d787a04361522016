package vecmath

import "math"

// Vector3 is a 3D point or direction.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Div(s float64) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) LengthSquared() float64 { return v.Dot(v) }
func (v Vector3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

func (v Vector3) DistanceTo(o Vector3) float64 { return v.Sub(o).Length() }

func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Div(l)
}

func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

func (v Vector3) Project(o Vector3) Vector3 {
	on := o.Normalized()
	return on.Mul(v.Dot(on))
}

func (v Vector3) Tangential(normal Vector3) Vector3 {
	return v.Sub(v.Project(normal))
}

func (v Vector3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// RotatedAroundAxis rotates v by angle radians around a unit axis, via
// Rodrigues' rotation formula.
func (v Vector3) RotatedAroundAxis(axis Vector3, angle float64) Vector3 {
	s, c := math.Sincos(angle)
	return v.Mul(c).
		Add(axis.Cross(v).Mul(s)).
		Add(axis.Mul(axis.Dot(v) * (1 - c)))
}

// Point3I is an integer lattice point, used for grid indexing.
type Point3I struct {
	X, Y, Z int
}
