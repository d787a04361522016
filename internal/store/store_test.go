package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/particlesim/internal/metrics"
	"github.com/san-kum/particlesim/internal/vecmath"
)

func TestSaveAndListRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Init())

	frames := []FrameSnapshot{
		{Frame: 0, Time: 0, Positions: []vecmath.Vector3{{X: 1}, {X: 2}}},
		{Frame: 1, Time: 1.0 / 60, Positions: []vecmath.Vector3{{X: 1.1}, {X: 2.1}}},
	}
	series := []metrics.Snapshot{
		{Frame: 0, Time: 0, ParticleCount: 2, MeanHeight: 0.5},
		{Frame: 1, Time: 1.0 / 60, ParticleCount: 2, MeanHeight: 0.45},
	}

	runID, err := s.Save("water_drop", 42, 60, series, frames)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	runs, err := s.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "water_drop", runs[0].Scenario)
	assert.Equal(t, 2, runs[0].FrameCount)
	assert.InDelta(t, 0.45, runs[0].Metrics["mean_height"], 1e-9)
}

func TestLoadFramesRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Init())

	frames := []FrameSnapshot{
		{Frame: 0, Time: 0, Positions: []vecmath.Vector3{{X: 1, Y: 2, Z: 3}}},
	}
	runID, err := s.Save("mass_spring", 1, 60, nil, frames)
	require.NoError(t, err)

	loaded, err := s.LoadFrames(runID)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.InDelta(t, 1.0, loaded[0].Positions[0].X, 1e-6)
	assert.InDelta(t, 2.0, loaded[0].Positions[0].Y, 1e-6)
}

func TestLoadMetricsRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Init())

	frames := []FrameSnapshot{
		{Frame: 0, Time: 0, Positions: []vecmath.Vector3{{X: 1}}},
		{Frame: 1, Time: 1.0 / 60, Positions: []vecmath.Vector3{{X: 1.1}}},
	}
	series := []metrics.Snapshot{
		{Frame: 0, Time: 0, ParticleCount: 1, KineticEnergy: 1.0},
		{Frame: 1, Time: 1.0 / 60, ParticleCount: 1, KineticEnergy: 0.9},
	}
	runID, err := s.Save("mass_spring", 1, 60, series, frames)
	require.NoError(t, err)

	loaded, err := s.LoadMetrics(runID)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.InDelta(t, 1.0, loaded[0].KineticEnergy, 1e-6)
	assert.InDelta(t, 0.9, loaded[1].KineticEnergy, 1e-6)
}

func TestListOnMissingDirReturnsEmpty(t *testing.T) {
	s := New(t.TempDir() + "/does-not-exist")
	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
