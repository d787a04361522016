package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/particlesim/internal/particle"
	"github.com/san-kum/particlesim/internal/surface"
	"github.com/san-kum/particlesim/internal/vecmath"
)

func TestPointEmitterRateLimited(t *testing.T) {
	d := particle.New(0)
	e := NewPointEmitter(vecmath.Vector3{}, vecmath.Vector3{Y: 1}, 2.0, 0.2, 10.0, 100, 1)
	e.SetTarget(d)

	e.Update(0, 1.0/60.0)
	first := d.NumberOfParticles()
	assert.Greater(t, first, 0)

	e.Update(1.0/60.0, 1.0/60.0)
	assert.GreaterOrEqual(t, d.NumberOfParticles(), first)
}

func TestPointEmitterNilTargetIsNoop(t *testing.T) {
	e := NewPointEmitter(vecmath.Vector3{}, vecmath.Vector3{Y: 1}, 1, 0.1, 10, 10, 2)
	assert.NotPanics(t, func() { e.Update(0, 1.0/60.0) })
}

func TestPointEmitterRespectsMaxTotal(t *testing.T) {
	d := particle.New(0)
	e := NewPointEmitter(vecmath.Vector3{}, vecmath.Vector3{Y: 1}, 1, 0.1, 1000, 5, 3)
	e.SetTarget(d)

	for i := 0; i < 10; i++ {
		e.Update(float64(i), 1.0)
	}
	assert.Equal(t, 5, d.NumberOfParticles())
}

func TestVolumeEmitterFillsInsideSurface(t *testing.T) {
	d := particle.New(0)
	sph := surface.NewSphere(vecmath.Vector3{}, 1.0)
	bounds := vecmath.NewAABB3(
		vecmath.Vector3{X: -1, Y: -1, Z: 0},
		vecmath.Vector3{X: 1, Y: 1, Z: 0},
	)
	e := NewVolumeEmitter(bounds, sph, 0.2, 0, false, false, 0, 42)
	e.SetTarget(d)

	e.Update(0, 1.0/60.0)
	require.Greater(t, d.NumberOfParticles(), 0)
	for _, p := range d.Positions() {
		assert.LessOrEqual(t, sph.SignedDistance(p), 0.0)
	}
}

func TestVolumeEmitterOneShotEmitsOnce(t *testing.T) {
	d := particle.New(0)
	sph := surface.NewSphere(vecmath.Vector3{}, 1.0)
	bounds := vecmath.NewAABB3(
		vecmath.Vector3{X: -1, Y: -1, Z: 0},
		vecmath.Vector3{X: 1, Y: 1, Z: 0},
	)
	e := NewVolumeEmitter(bounds, sph, 0.2, 0, true, false, 0, 7)
	e.SetTarget(d)

	e.Update(0, 1.0/60.0)
	count := d.NumberOfParticles()
	require.Greater(t, count, 0)

	e.Update(1.0/60.0, 1.0/60.0)
	assert.Equal(t, count, d.NumberOfParticles())
}

func TestVolumeEmitterRejectsOverlap(t *testing.T) {
	d := particle.New(0)
	require.NoError(t, d.AddParticles([]vecmath.Vector3{{}}, nil, nil))

	sph := surface.NewSphere(vecmath.Vector3{}, 0.3)
	bounds := vecmath.NewAABB3(
		vecmath.Vector3{X: -0.3, Y: -0.3, Z: 0},
		vecmath.Vector3{X: 0.3, Y: 0.3, Z: 0},
	)
	e := NewVolumeEmitter(bounds, sph, 0.5, 0, true, false, 0, 9)
	e.SetTarget(d)

	e.Update(0, 1.0/60.0)
	assert.Equal(t, 1, d.NumberOfParticles(), "the single existing particle should block overlapping fill")
}
