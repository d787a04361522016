package collider

import (
	"github.com/san-kum/particlesim/internal/surface"
	"github.com/san-kum/particlesim/internal/vecmath"
)

// RigidBodyCollider is the only collider variant this port implements:
// a static implicit surface with zero surface velocity and no
// friction (spec.md §4.4). Restitution is a per-call parameter of
// ResolveCollision (spec.md §4.4's signature), not owned here.
type RigidBodyCollider struct {
	Surface surface.Implicit3
}

func NewRigidBodyCollider(s surface.Implicit3) *RigidBodyCollider {
	return &RigidBodyCollider{Surface: s}
}

// NewBoxCollider wraps an inward-facing box (spec.md's domain-boundary
// container, supplemented from the manual-test box-collider usage in
// original_source/src/ManualTests/manual_tests.h): particles are meant
// to stay inside bounds, so anything beyond a wall is on the
// penetrating side.
func NewBoxCollider(bounds vecmath.AABB3) *RigidBodyCollider {
	return &RigidBodyCollider{Surface: surface.NewInwardBox(bounds)}
}

func (c *RigidBodyCollider) VelocityAt(vecmath.Vector3) vecmath.Vector3 {
	return vecmath.Vector3{}
}

// Update is a no-op: this port's only geometry variant is static.
func (c *RigidBodyCollider) Update(currentTime, dt float64) {}

// ResolveCollision implements the recipe in spec.md §9/§4.4: project
// the particle outside the surface by a skin of radius, then reflect
// the velocity's component along the surface normal by -restitution,
// leaving the tangential component untouched.
func (c *RigidBodyCollider) ResolveCollision(radius, restitution float64, position, velocity *vecmath.Vector3) {
	if !surface.IsInside(c.Surface, *position) && c.Surface.SignedDistance(*position) >= radius {
		return
	}

	closest := c.Surface.ClosestPoint(*position)
	normal := c.Surface.ClosestNormal(*position)

	*position = closest.Add(normal.Mul(radius))

	surfaceVel := c.VelocityAt(*position)
	relative := velocity.Sub(surfaceVel)
	normalSpeed := relative.Dot(normal)

	if normalSpeed < 0 {
		relative = relative.Sub(normal.Mul((1 + restitution) * normalSpeed))
	}

	*velocity = surfaceVel.Add(relative)
}
