// Package collider implements Collider (spec.md §4.4): an implicit
// surface paired with collision resolution for particles that have
// penetrated it.
//
// Grounded on internal/surface's ImplicitSurface contract for the
// geometry and internal/control/none.go's no-op update-hook shape for
// the per-sub-timestep update() hook (the only collider variant this
// port needs, a static rigid body, never needs to do anything there).
package collider

import "github.com/san-kum/particlesim/internal/vecmath"

// Collider owns an implicit surface and resolves particle penetration
// against it (spec.md §4.4).
type Collider interface {
	// ResolveCollision projects *position outside the surface (with a
	// skin of radius) and updates *velocity to reflect an inelastic
	// bounce parameterized by restitution in [0,1].
	ResolveCollision(radius, restitution float64, position, velocity *vecmath.Vector3)

	// Update runs once per sub-timestep before force accumulation; a
	// no-op for static geometry.
	Update(currentTime, dt float64)

	// VelocityAt returns the surface's velocity field at a point, used
	// by ResolveCollision to account for moving colliders. The only
	// variant this port implements is static, so it is always zero.
	VelocityAt(point vecmath.Vector3) vecmath.Vector3
}
