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

func newChain(n int) (*particle.Data, []Spring) {
	d := particle.New(0)
	positions := make([]vecmath.Vector3, n)
	for i := 0; i < n; i++ {
		positions[i] = vecmath.Vector3{X: -float64(i)}
	}
	if err := d.AddParticles(positions, nil, nil); err != nil {
		panic(err)
	}
	d.SetMass(1.0)

	springs := make([]Spring, 0, n-1)
	for i := 0; i < n-1; i++ {
		springs = append(springs, Spring{A: i, B: i + 1, RestLength: 1, Stiffness: 500, Damping: 1})
	}
	return d, springs
}

func TestSpringMassPinnedNodeStaysAtOrigin(t *testing.T) {
	d, springs := newChain(10)
	s := NewSpringMassSolver(d, springs, []int{0})
	s.Gravity = vecmath.Vector3{Y: -9.8}
	s.DragCoefficient = 0.1
	s.Wind = func(vecmath.Vector3) vecmath.Vector3 { return vecmath.Vector3{X: 30} }

	s.OnInitialize()
	for i := 0; i < 360; i++ {
		s.OnAdvanceSubTimeStep(1.0 / 60.0)
	}

	assert.InDelta(t, 0.0, d.Positions()[0].X, 1e-9)
	assert.InDelta(t, 0.0, d.Positions()[0].Y, 1e-9)
	assert.InDelta(t, 0.0, d.Positions()[0].Z, 1e-9)
}

func TestSpringMassChainStaysAboveFloor(t *testing.T) {
	d, springs := newChain(10)
	s := NewSpringMassSolver(d, springs, []int{0})
	s.Gravity = vecmath.Vector3{Y: -9.8}
	s.DragCoefficient = 0.1
	s.Wind = func(vecmath.Vector3) vecmath.Vector3 { return vecmath.Vector3{X: 30} }
	s.Restitution = 0.3
	d.SetRadius(0)

	floor := surface.NewPlane(vecmath.Vector3{Y: -7}, vecmath.Vector3{Y: 1})
	s.Collider = collider.NewRigidBodyCollider(floor)

	s.OnInitialize()
	for i := 0; i < 360; i++ {
		s.OnAdvanceSubTimeStep(1.0 / 60.0)
		for _, p := range d.Positions() {
			require.GreaterOrEqual(t, p.Y, -7.0-1e-6, "no node should drop below the floor")
		}
	}
}

func TestSpringMassChainLengthStaysBounded(t *testing.T) {
	d, springs := newChain(10)
	s := NewSpringMassSolver(d, springs, []int{0})
	s.Gravity = vecmath.Vector3{Y: -9.8}
	s.DragCoefficient = 0.1

	s.OnInitialize()
	for i := 0; i < 60; i++ {
		s.OnAdvanceSubTimeStep(1.0 / 60.0)
	}

	totalLength := 0.0
	positions := d.Positions()
	for _, sp := range springs {
		totalLength += positions[sp.A].DistanceTo(positions[sp.B])
	}
	assert.InDelta(t, 9.0, totalLength, 4.5, "chain length should stay roughly near its rest length")
}

func TestSpringMassEnergyDissipatesWithDampingAndNoDriving(t *testing.T) {
	d, springs := newChain(3)
	d.Positions()[1] = vecmath.Vector3{X: -1.5}
	s := NewSpringMassSolver(d, springs, []int{0})
	s.Gravity = vecmath.Vector3{}
	s.DragCoefficient = 0

	s.OnInitialize()
	prevEnergy := s.KineticAndSpringEnergy()
	for i := 0; i < 200; i++ {
		s.OnAdvanceSubTimeStep(1.0 / 240.0)
		energy := s.KineticAndSpringEnergy()
		assert.LessOrEqual(t, energy, prevEnergy+1e-6, "energy should not increase without external driving")
		prevEnergy = energy
	}
}

func TestSpringMassForceIsZeroAtRestLength(t *testing.T) {
	d, springs := newChain(2)
	s := NewSpringMassSolver(d, springs, nil)
	s.Gravity = vecmath.Vector3{}

	s.AccumulateAdditionalForces(1.0 / 60.0)

	for _, f := range d.Forces() {
		assert.InDelta(t, 0.0, f.Length(), 1e-9)
	}
}
