package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/particlesim/internal/simerr"
	"github.com/san-kum/particlesim/internal/vecmath"
)

func TestNewAndResize(t *testing.T) {
	d := New(5)
	assert.Equal(t, 5, d.NumberOfParticles())
	assert.Len(t, d.Positions(), 5)
	assert.Len(t, d.Velocities(), 5)
	assert.Len(t, d.Forces(), 5)

	d.Resize(8)
	assert.Equal(t, 8, d.NumberOfParticles())
	assert.Len(t, d.Positions(), 8)
}

func TestAddScalarAndVectorLayer(t *testing.T) {
	d := New(3)
	densityIdx := d.AddScalarLayer(1000.0)
	colorIdx := d.AddVectorLayer(vecmath.Vector3{X: 1})

	for _, v := range d.ScalarLayer(densityIdx) {
		assert.Equal(t, 1000.0, v)
	}
	for _, v := range d.VectorLayer(colorIdx) {
		assert.Equal(t, vecmath.Vector3{X: 1}, v)
	}

	d.Resize(5)
	assert.Len(t, d.ScalarLayer(densityIdx), 5)
	assert.Len(t, d.VectorLayer(colorIdx), 5)
}

func TestAddParticlesGrowsAllLayers(t *testing.T) {
	d := New(0)
	densityIdx := d.AddScalarLayer(0)

	positions := []vecmath.Vector3{{X: 0}, {X: 1}, {X: 2}}
	velocities := []vecmath.Vector3{{Y: 1}, {Y: 1}, {Y: 1}}

	require.NoError(t, d.AddParticles(positions, velocities, nil))

	assert.Equal(t, 3, d.NumberOfParticles())
	assert.Equal(t, positions, d.Positions())
	assert.Equal(t, velocities, d.Velocities())
	assert.Len(t, d.ScalarLayer(densityIdx), 3)
	for _, f := range d.Forces() {
		assert.Equal(t, vecmath.Vector3{}, f)
	}
}

// TestAddParticlesInvalidArgument is spec.md §8 scenario E6: mismatched
// secondary array length fails with InvalidArgument and leaves the
// underlying data unchanged.
func TestAddParticlesInvalidArgument(t *testing.T) {
	d := New(0)
	positions := make([]vecmath.Vector3, 4)
	velocities := make([]vecmath.Vector3, 3)

	err := d.AddParticles(positions, velocities, nil)
	require.ErrorIs(t, err, simerr.ErrInvalidArgument)
	assert.Equal(t, 0, d.NumberOfParticles())
}

func TestRadiusAndMassClampNonNegative(t *testing.T) {
	d := New(1)
	d.SetRadius(-5)
	assert.Equal(t, 0.0, d.Radius())

	d.SetMass(-1)
	assert.Equal(t, 0.0, d.Mass())

	d.SetRadius(2)
	assert.Equal(t, 2.0, d.Radius())
}

func TestBuildNeighborSearchAndLists(t *testing.T) {
	d := New(0)
	require.NoError(t, d.AddParticles([]vecmath.Vector3{
		{X: 0}, {X: 0.1}, {X: 10},
	}, nil, nil))

	d.BuildNeighborSearch(1.0)
	d.BuildNeighborLists(1.0)

	lists := d.NeighborLists()
	require.Len(t, lists, 3)
	assert.Contains(t, lists[0], 1)
	assert.NotContains(t, lists[0], 0, "self must be excluded")
	assert.Empty(t, lists[2])
}
