package solver

import (
	"math"

	"github.com/san-kum/particlesim/internal/sph"
	"github.com/san-kum/particlesim/internal/vecmath"
)

const (
	timeStepLimitBySpeedFactor = 0.4
	timeStepLimitByForceFactor = 0.25
)

// SPHSolver specializes BaseSolver with pressure, viscosity, and an
// adaptive sub-timestep (spec.md §4.8). It implements Extension and
// hands itself to a BaseSolver built over the same *sph.Data.
type SPHSolver struct {
	*BaseSolver
	Data *sph.Data

	EOSExponent            float64 // gamma, default 7
	NegativePressureScale  float64 // beta in [0,1], default 0
	ViscosityCoefficient   float64 // mu
	SpeedOfSound           float64 // c_s
	TimeStepLimitScale     float64
	PseudoViscosityCoeff   float64
}

// NewSPHSolver wires an SPHSolver over data with the defaults spec.md
// §6's configuration surface names.
func NewSPHSolver(data *sph.Data) *SPHSolver {
	s := &SPHSolver{
		Data:                  data,
		EOSExponent:           7,
		NegativePressureScale: 0,
		ViscosityCoefficient:  0.01,
		SpeedOfSound:          100,
		TimeStepLimitScale:    1,
		PseudoViscosityCoeff:  0.1,
	}
	s.BaseSolver = NewBaseSolver(data, s)
	return s
}

// OnBeginAdvanceSubTimeStep rebuilds the neighbor search/lists and
// updates densities before forces are accumulated (spec.md §4.8).
func (s *SPHSolver) OnBeginAdvanceSubTimeStep(dt float64) {
	h := s.Data.KernelRadius()
	s.Data.BuildNeighborSearch(h)
	s.Data.BuildNeighborLists(h)
	s.Data.UpdateDensities()
}

// AccumulateAdditionalForces adds SPH viscosity then pressure forces
// on top of BaseSolver's gravity+drag terms (spec.md §4.8).
func (s *SPHSolver) AccumulateAdditionalForces(dt float64) {
	s.Data.AccumulateViscosityForce(s.ViscosityCoefficient)
	s.Data.UpdatePressures(s.EOSExponent, s.NegativePressureScale, s.SpeedOfSound)
	s.Data.AccumulatePressureForce()
}

// OnEndAdvanceSubTimeStep applies pseudo-viscosity smoothing to the
// about-to-be-committed velocity buffer (spec.md §4.8).
func (s *SPHSolver) OnEndAdvanceSubTimeStep(dt float64, newPositions, newVelocities []vecmath.Vector3) {
	factor := dt * s.PseudoViscosityCoeff
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	s.Data.SmoothVelocitiesInPlace(newPositions, newVelocities, factor)
}

// NumberOfSubTimeSteps implements spec.md §4.8's CFL/force-based
// adaptive estimate, reading the force layer as it stood at the end of
// the previous sub-timestep (or zero, on the very first call).
func (s *SPHSolver) NumberOfSubTimeSteps(timeIntervalInSeconds float64) int {
	h := s.Data.KernelRadius()
	mass := s.Data.Mass()
	maxForce := s.Data.MaxForceMagnitude()

	timeStepLimitBySpeed := timeStepLimitBySpeedFactor * h / s.SpeedOfSound

	desired := timeStepLimitBySpeed
	if maxForce > 1e-12 {
		timeStepLimitByForce := timeStepLimitByForceFactor * math.Sqrt(h*mass/maxForce)
		desired = math.Min(timeStepLimitBySpeed, timeStepLimitByForce)
	}
	desired *= s.TimeStepLimitScale
	if desired <= 0 {
		return 1
	}

	n := int(math.Ceil(timeIntervalInSeconds / desired))
	if n < 1 {
		n = 1
	}
	return n
}
