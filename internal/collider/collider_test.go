package collider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/particlesim/internal/surface"
	"github.com/san-kum/particlesim/internal/vecmath"
)

func TestResolveCollisionProjectsOutOfFloor(t *testing.T) {
	floor := surface.NewPlane(vecmath.Vector3{}, vecmath.Vector3{Y: 1})
	c := NewRigidBodyCollider(floor)

	pos := vecmath.Vector3{Y: -0.5}
	vel := vecmath.Vector3{Y: -3}

	c.ResolveCollision(0.1, 0.5, &pos, &vel)

	assert.InDelta(t, 0.1, pos.Y, 1e-9)
	assert.Greater(t, vel.Y, 0.0, "restitution should reverse the inbound normal velocity")
}

func TestResolveCollisionLeavesTangentialVelocityUntouched(t *testing.T) {
	floor := surface.NewPlane(vecmath.Vector3{}, vecmath.Vector3{Y: 1})
	c := NewRigidBodyCollider(floor)

	pos := vecmath.Vector3{Y: -0.01}
	vel := vecmath.Vector3{X: 4, Y: -1}

	c.ResolveCollision(0.05, 0, &pos, &vel)

	assert.InDelta(t, 4.0, vel.X, 1e-9)
}

func TestResolveCollisionNoopWhenFarFromSurface(t *testing.T) {
	floor := surface.NewPlane(vecmath.Vector3{}, vecmath.Vector3{Y: 1})
	c := NewRigidBodyCollider(floor)

	pos := vecmath.Vector3{Y: 10}
	vel := vecmath.Vector3{Y: -1}

	c.ResolveCollision(0.1, 0.5, &pos, &vel)

	assert.Equal(t, 10.0, pos.Y)
	assert.Equal(t, -1.0, vel.Y)
}

func TestResolveCollisionOnSphere(t *testing.T) {
	ball := surface.NewSphere(vecmath.Vector3{}, 1.0)
	c := NewRigidBodyCollider(ball)

	pos := vecmath.Vector3{X: 0.5}
	vel := vecmath.Vector3{X: -2}

	c.ResolveCollision(0.0, 1.0, &pos, &vel)

	assert.InDelta(t, 1.0, pos.Length(), 1e-9)
	assert.Greater(t, vel.X, 0.0)
}
