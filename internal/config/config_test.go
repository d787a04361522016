package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPresetKnownScenario(t *testing.T) {
	cfg := GetPreset("mass_spring", "chain")
	require.NotNil(t, cfg)
	assert.Equal(t, 10, cfg.SpringMass.NumNodes)
	assert.Equal(t, 500.0, cfg.SpringMass.Stiffness)
}

func TestGetPresetUnknownReturnsNil(t *testing.T) {
	assert.Nil(t, GetPreset("no_such_scenario", "default"))
	assert.Nil(t, GetPreset("mass_spring", "no_such_preset"))
}

func TestListPresets(t *testing.T) {
	names := ListPresets("point_emitter")
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "gusty")
}

func TestSaveAndLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	cfg := GetPreset("water_drop", "default")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Scenario, loaded.Scenario)
	assert.Equal(t, cfg.SPH.TargetSpacing, loaded.SPH.TargetSpacing)
}
