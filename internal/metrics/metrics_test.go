package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/particlesim/internal/vecmath"
)

func TestComputeEmptyIsZeroValued(t *testing.T) {
	snap := Compute(0, 0, nil, nil, 1.0, 9.8)
	assert.Equal(t, 0, snap.ParticleCount)
	assert.Equal(t, 0.0, snap.MeanHeight)
}

func TestComputeMeanHeightAndKineticEnergy(t *testing.T) {
	positions := []vecmath.Vector3{{Y: 0}, {Y: 2}, {Y: 4}}
	velocities := []vecmath.Vector3{{X: 1}, {X: 1}, {X: 1}}

	snap := Compute(1, 1.0/60, positions, velocities, 2.0, 9.8)

	assert.InDelta(t, 2.0, snap.MeanHeight, 1e-9)
	assert.InDelta(t, 3.0, snap.KineticEnergy, 1e-9) // 0.5*2*(1+1+1)
	assert.Equal(t, 3, snap.ParticleCount)
}

func TestComputePotentialEnergyIsRelativeToMinimumHeight(t *testing.T) {
	positions := []vecmath.Vector3{{Y: -5}, {Y: -3}}
	velocities := []vecmath.Vector3{{}, {}}

	snap := Compute(0, 0, positions, velocities, 1.0, 9.8)

	assert.InDelta(t, 9.8*2, snap.PotentialEnergy, 1e-9)
}

func TestKineticEnergyMetricTracksLatestObservation(t *testing.T) {
	m := NewKineticEnergy(1.0)
	m.Observe(nil, []vecmath.Vector3{{X: 2}}, 1.0, 0)
	assert.InDelta(t, 2.0, m.Value(), 1e-9)

	m.Observe(nil, []vecmath.Vector3{{X: 4}}, 1.0, 0)
	assert.InDelta(t, 8.0, m.Value(), 1e-9)
	assert.Len(t, m.Series(), 2)

	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}
