// Package metrics reduces per-particle state to the scalar run
// metrics SPEC_FULL.md's E1/E4 scenario checks and §8 property 5
// (energy dissipation) are stated against: kinetic + potential energy,
// mean height, and particle count.
//
// Grounded on internal/metrics/energy.go's Observe/Value/Reset Metric
// shape, generalized from a single pendulum state (theta, omega) to a
// per-particle position/velocity layer pair, and backed by
// gonum/floats and gonum/stat for the reductions themselves instead of
// hand-rolled accumulation loops.
package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// Metric is the same per-frame observation contract the teacher's
// metrics package exposes: accumulate samples, read back a reduced
// value, and reset between runs.
type Metric interface {
	Name() string
	Observe(positions, velocities []vecmath.Vector3, mass, t float64)
	Value() float64
	Reset()
}

// Snapshot is a single frame's scalar readout, the row shape
// internal/store persists per frame.
type Snapshot struct {
	Frame             uint32
	Time              float64
	ParticleCount     int
	MeanHeight        float64
	KineticEnergy     float64
	PotentialEnergy   float64
}

// Compute derives one frame's Snapshot directly from the particle
// layers, using gonum for the sum, mean and minimum reductions.
func Compute(frame uint32, t float64, positions, velocities []vecmath.Vector3, mass, gravity float64) Snapshot {
	n := len(positions)
	if n == 0 {
		return Snapshot{Frame: frame, Time: t}
	}

	heights := make([]float64, n)
	speedsSq := make([]float64, n)
	for i := range positions {
		heights[i] = positions[i].Y
		speedsSq[i] = velocities[i].LengthSquared()
	}

	meanHeight := stat.Mean(heights, nil)
	totalSpeedSq := floats.Sum(speedsSq)
	kinetic := 0.5 * mass * totalSpeedSq

	minHeight := floats.Min(heights)
	potential := 0.0
	for _, h := range heights {
		potential += mass * gravity * (h - minHeight)
	}

	return Snapshot{
		Frame:           frame,
		Time:            t,
		ParticleCount:   n,
		MeanHeight:      meanHeight,
		KineticEnergy:   kinetic,
		PotentialEnergy: potential,
	}
}

// KineticEnergy is a standalone Metric wrapping Compute's kinetic term,
// for callers that only want one running series.
type KineticEnergy struct {
	mass    float64
	samples []float64
}

func NewKineticEnergy(mass float64) *KineticEnergy {
	return &KineticEnergy{mass: mass}
}

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(positions, velocities []vecmath.Vector3, mass, t float64) {
	speedsSq := make([]float64, len(velocities))
	for i, v := range velocities {
		speedsSq[i] = v.LengthSquared()
	}
	k.samples = append(k.samples, 0.5*k.mass*floats.Sum(speedsSq))
}

func (k *KineticEnergy) Value() float64 {
	if len(k.samples) == 0 {
		return 0
	}
	return k.samples[len(k.samples)-1]
}

func (k *KineticEnergy) Series() []float64 { return k.samples }

func (k *KineticEnergy) Reset() { k.samples = k.samples[:0] }
