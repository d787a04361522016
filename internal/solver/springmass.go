package solver

import (
	"github.com/san-kum/particlesim/internal/particle"
	"github.com/san-kum/particlesim/internal/vecmath"
)

// Spring connects two particle indices with a rest length, stiffness,
// and damping coefficient, grounded on the teacher's linear chain model
// in internal/physics/spring_mass.go (there expressed as a tridiagonal
// coupling of a 1D state vector; here generalized to an explicit edge
// list over 3D particle positions so the network need not be a chain).
type Spring struct {
	A, B       int
	RestLength float64
	Stiffness  float64
	Damping    float64
}

// SpringMassSolver advances a network of point masses connected by
// Springs, with an optional set of pinned (fixed-position) nodes
// (spec.md's spring-mass network and scenario E4). It implements
// Extension over a plain *particle.Data, reusing BaseSolver for
// gravity, drag, wind, and collision handling.
type SpringMassSolver struct {
	*BaseSolver
	Data    *particle.Data
	Springs []Spring
	Pinned  map[int]bool
}

// NewSpringMassSolver wires a SpringMassSolver over data and springs.
// pinned lists particle indices held fixed at their initial position.
func NewSpringMassSolver(data *particle.Data, springs []Spring, pinned []int) *SpringMassSolver {
	s := &SpringMassSolver{
		Data:    data,
		Springs: springs,
		Pinned:  make(map[int]bool, len(pinned)),
	}
	for _, i := range pinned {
		s.Pinned[i] = true
	}
	s.BaseSolver = NewBaseSolver(data, s)
	return s
}

func (s *SpringMassSolver) OnBeginAdvanceSubTimeStep(dt float64) {}

// AccumulateAdditionalForces adds each spring's stiffness force
// (proportional to the stretch beyond RestLength) plus a damping force
// proportional to the relative velocity along the spring's axis,
// applied equal and opposite to both endpoints (spec.md's spring-mass
// network, grounded on the teacher's per-node left/right neighbor
// force sum in internal/physics/spring_mass.go's Derive).
func (s *SpringMassSolver) AccumulateAdditionalForces(dt float64) {
	positions := s.Data.Positions()
	velocities := s.Data.Velocities()
	forces := s.Data.Forces()

	for _, sp := range s.Springs {
		dir := positions[sp.B].Sub(positions[sp.A])
		r := dir.Length()
		if r < 1e-12 {
			continue
		}
		unit := dir.Div(r)
		stretch := r - sp.RestLength
		springForce := unit.Mul(sp.Stiffness * stretch)

		relativeVel := velocities[sp.B].Sub(velocities[sp.A])
		dampingForce := unit.Mul(sp.Damping * relativeVel.Dot(unit))

		total := springForce.Add(dampingForce)
		forces[sp.A] = forces[sp.A].Add(total)
		forces[sp.B] = forces[sp.B].Sub(total)
	}
}

// OnEndAdvanceSubTimeStep re-fixes pinned nodes at their original
// position with zero velocity, overriding anything gravity, drag,
// springs, or collision resolution computed for them this sub-step.
func (s *SpringMassSolver) OnEndAdvanceSubTimeStep(dt float64, newPositions, newVelocities []vecmath.Vector3) {
	if len(s.Pinned) == 0 {
		return
	}
	positions := s.Data.Positions()
	for i := range newPositions {
		if s.Pinned[i] {
			newPositions[i] = positions[i]
			newVelocities[i] = vecmath.Vector3{}
		}
	}
}

// NumberOfSubTimeSteps always advances a spring-mass network in a
// single sub-step per frame; its stiff-spring stability is managed by
// the caller's choice of stiffness/frame-rate rather than an adaptive
// estimate (unlike SPHSolver, spec.md does not specify one for this
// network).
func (s *SpringMassSolver) NumberOfSubTimeSteps(timeIntervalInSeconds float64) int {
	return 1
}

// KineticAndSpringEnergy returns the network's total kinetic energy
// plus the potential energy stored in every spring's current stretch,
// used to check the energy-dissipation property of spec.md's testable
// properties.
func (s *SpringMassSolver) KineticAndSpringEnergy() float64 {
	velocities := s.Data.Velocities()
	positions := s.Data.Positions()
	mass := s.Data.Mass()

	energy := 0.0
	for _, v := range velocities {
		energy += 0.5 * mass * v.LengthSquared()
	}
	for _, sp := range s.Springs {
		stretch := positions[sp.A].DistanceTo(positions[sp.B]) - sp.RestLength
		energy += 0.5 * sp.Stiffness * stretch * stretch
	}
	return energy
}
