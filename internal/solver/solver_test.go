package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/particlesim/internal/collider"
	"github.com/san-kum/particlesim/internal/particle"
	"github.com/san-kum/particlesim/internal/surface"
	"github.com/san-kum/particlesim/internal/vecmath"
)

func TestBaseSolverAppliesGravity(t *testing.T) {
	d := particle.New(0)
	require.NoError(t, d.AddParticles([]vecmath.Vector3{{}}, nil, nil))
	d.SetMass(1.0)

	s := NewBaseSolver(d, nil)
	s.OnInitialize()
	s.OnAdvanceSubTimeStep(1.0 / 60.0)

	assert.Less(t, d.Velocities()[0].Y, 0.0, "gravity should pull velocity negative in Y")
	assert.Less(t, d.Positions()[0].Y, 0.0)
}

func TestBaseSolverResolvesFloorCollision(t *testing.T) {
	d := particle.New(0)
	require.NoError(t, d.AddParticles([]vecmath.Vector3{{Y: 0.001}}, []vecmath.Vector3{{Y: -10}}, nil))
	d.SetMass(1.0)
	d.SetRadius(0.01)

	floor := surface.NewPlane(vecmath.Vector3{}, vecmath.Vector3{Y: 1})
	s := NewBaseSolver(d, nil)
	s.Collider = collider.NewRigidBodyCollider(floor)
	s.Restitution = 0.3

	s.OnInitialize()
	for i := 0; i < 5; i++ {
		s.OnAdvanceSubTimeStep(1.0 / 60.0)
	}

	assert.GreaterOrEqual(t, d.Positions()[0].Y, 0.0, "particle should never tunnel through the floor")
}

func TestBaseSolverWindDragOpposesRelativeVelocity(t *testing.T) {
	d := particle.New(0)
	require.NoError(t, d.AddParticles([]vecmath.Vector3{{}}, []vecmath.Vector3{{X: 5}}, nil))
	d.SetMass(1.0)

	s := NewBaseSolver(d, nil)
	s.Gravity = vecmath.Vector3{}
	s.DragCoefficient = 1.0
	s.Wind = func(vecmath.Vector3) vecmath.Vector3 { return vecmath.Vector3{} }

	s.OnInitialize()
	s.OnAdvanceSubTimeStep(1.0 / 60.0)

	assert.Less(t, d.Velocities()[0].X, 5.0, "drag should slow the particle down toward still air")
}
