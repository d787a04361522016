// Package solver implements the Particle Solver and SPH Solver of
// spec.md §3/§4.7/§4.8: the begin->accumulate->integrate->collide->end
// sub-timestep pipeline, semi-implicit Euler integration, and the SPH
// specialization's adaptive sub-timestep, pressure/viscosity forces,
// and end-of-step pseudo-viscosity smoothing.
//
// Grounded on internal/integrators/euler.go's semi-implicit update
// shape for the Integrate phase and internal/integrators/rk4.go's
// scratch-buffer reuse idiom for the newPositions/newVelocities
// double-buffer, generalized from dynamo.State's flat float slice to
// per-particle vecmath.Vector3 layers. The Extension hook (this
// package's analog to animation.Physics) follows the same
// interface-as-virtual-dispatch idiom this port already uses for
// BaseAnimation, since Go has no subclassing to hang overridable
// onBeginAdvanceSubTimeStep/onEndAdvanceSubTimeStep hooks on.
package solver

import (
	"github.com/san-kum/particlesim/internal/collider"
	"github.com/san-kum/particlesim/internal/dynamo"
	"github.com/san-kum/particlesim/internal/emitter"
	"github.com/san-kum/particlesim/internal/vecmath"
)

// WindField is a spatially varying wind term: BaseSolver calls it with
// each particle's current position. A scenario that only needs a
// constant wind can ignore the argument. This generalizes spec.md
// §4.7's "wind(position)" drag term, which the core spec leaves
// under-specified as to whether wind is uniform or position-dependent.
type WindField func(vecmath.Vector3) vecmath.Vector3

// ParticleContainer is the subset of particle.Data (or sph.Data, which
// embeds it) BaseSolver needs.
type ParticleContainer interface {
	NumberOfParticles() int
	Positions() []vecmath.Vector3
	Velocities() []vecmath.Vector3
	Forces() []vecmath.Vector3
	Mass() float64
	Radius() float64
}

// Extension supplies the parts of the pipeline a concrete solver
// customizes (spec.md §4.7's "subclasses accumulate additional terms"
// and §4.8's hooks).
type Extension interface {
	OnBeginAdvanceSubTimeStep(dt float64)
	AccumulateAdditionalForces(dt float64)
	// OnEndAdvanceSubTimeStep may mutate newVelocities/newPositions in
	// place before they are committed (spec.md §4.8's pseudo-viscosity
	// smoothing blends the post-integration, post-collision velocity).
	OnEndAdvanceSubTimeStep(dt float64, newPositions, newVelocities []vecmath.Vector3)
	NumberOfSubTimeSteps(dt float64) int
}

// NoopExtension is the Extension BaseSolver uses standalone (e.g. for
// a plain particle system with no SPH forces): one sub-timestep per
// frame, nothing else to do.
type NoopExtension struct{}

func (NoopExtension) OnBeginAdvanceSubTimeStep(float64)                                 {}
func (NoopExtension) AccumulateAdditionalForces(float64)                                {}
func (NoopExtension) OnEndAdvanceSubTimeStep(float64, []vecmath.Vector3, []vecmath.Vector3) {}
func (NoopExtension) NumberOfSubTimeSteps(float64) int                                  { return 1 }

const minParallelChunk = 64

// BaseSolver implements spec.md §4.7's begin->forces->integrate->
// collide->end pipeline and spec.md §4.6's Physics hook set, so it can
// be driven directly by internal/animation.BaseAnimation.
type BaseSolver struct {
	Particles ParticleContainer
	Collider  collider.Collider
	Emitter   emitter.Emitter

	Gravity         vecmath.Vector3
	DragCoefficient float64
	Restitution     float64
	Wind            WindField

	ext Extension

	currentTime float64
}

// NewBaseSolver wires particles and ext (pass NoopExtension{} for a
// plain, non-SPH particle system). Gravity defaults to -9.8 on Y.
func NewBaseSolver(particles ParticleContainer, ext Extension) *BaseSolver {
	if ext == nil {
		ext = NoopExtension{}
	}
	return &BaseSolver{
		Particles:   particles,
		Gravity:     vecmath.Vector3{Y: -9.8},
		Restitution: 0,
		ext:         ext,
	}
}

// OnInitialize implements animation.Physics: update collider and
// emitter once at dt=0 (spec.md §4.6 default onInitialize behavior).
func (s *BaseSolver) OnInitialize() {
	if s.Collider != nil {
		s.Collider.Update(0, 0)
	}
	if s.Emitter != nil {
		s.Emitter.Update(0, 0)
	}
}

// NumberOfSubTimeSteps implements animation.Physics by delegating to
// the extension (SPHSolver overrides this with a CFL/force-based
// estimate; NoopExtension always returns 1).
func (s *BaseSolver) NumberOfSubTimeSteps(dt float64) int {
	return s.ext.NumberOfSubTimeSteps(dt)
}

// OnAdvanceSubTimeStep implements animation.Physics: the full
// begin->accumulate->integrate->collide->end pipeline of spec.md §4.7.
// The gravity/drag, integration and collision loops are fanned out via
// dynamo.ParallelFor (spec.md §5); force zeroing, the extension hooks
// and the commit copy run serially.
func (s *BaseSolver) OnAdvanceSubTimeStep(dt float64) {
	n := s.Particles.NumberOfParticles()
	forces := s.Particles.Forces()
	positions := s.Particles.Positions()
	velocities := s.Particles.Velocities()
	mass := s.Particles.Mass()
	radius := s.Particles.Radius()

	// Begin: zero forces, drive collider/emitter, let the extension
	// rebuild whatever per-frame state it needs (e.g. SPH densities).
	for i := range forces {
		forces[i] = vecmath.Vector3{}
	}
	if s.Collider != nil {
		s.Collider.Update(s.currentTime, dt)
	}
	if s.Emitter != nil {
		s.Emitter.Update(s.currentTime, dt)
	}
	s.ext.OnBeginAdvanceSubTimeStep(dt)

	// particle count and layer lengths may have changed if the
	// emitter added particles during Begin; re-fetch.
	n = s.Particles.NumberOfParticles()
	forces = s.Particles.Forces()
	positions = s.Particles.Positions()
	velocities = s.Particles.Velocities()

	// Accumulate forces: base gravity + wind drag, then the extension's terms.
	gravity := s.Gravity
	drag := s.DragCoefficient
	wind := s.Wind
	dynamo.ParallelFor(n, minParallelChunk, func(start, end int) {
		for i := start; i < end; i++ {
			f := gravity.Mul(mass)
			windVel := vecmath.Vector3{}
			if wind != nil {
				windVel = wind(positions[i])
			}
			f = f.Add(velocities[i].Sub(windVel).Mul(-drag))
			forces[i] = forces[i].Add(f)
		}
	})
	s.ext.AccumulateAdditionalForces(dt)

	// Integrate (semi-implicit Euler) into scratch buffers.
	newPositions := make([]vecmath.Vector3, n)
	newVelocities := make([]vecmath.Vector3, n)
	dynamo.ParallelFor(n, minParallelChunk, func(start, end int) {
		for i := start; i < end; i++ {
			newVelocities[i] = velocities[i].Add(forces[i].Mul(dt / mass))
			newPositions[i] = positions[i].Add(newVelocities[i].Mul(dt))
		}
	})

	// Resolve collisions.
	if s.Collider != nil {
		dynamo.ParallelFor(n, minParallelChunk, func(start, end int) {
			for i := start; i < end; i++ {
				s.Collider.ResolveCollision(radius, s.Restitution, &newPositions[i], &newVelocities[i])
			}
		})
	}

	s.ext.OnEndAdvanceSubTimeStep(dt, newPositions, newVelocities)

	copy(positions, newPositions)
	copy(velocities, newVelocities)
	s.currentTime += dt
}
