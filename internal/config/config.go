// Package config loads and saves particle-simulation scenario
// configuration, and carries the built-in presets exercised by
// `particlesim run <scenario> --preset <name>`.
//
// Grounded on internal/config/config.go and internal/config/presets.go,
// kept almost verbatim in shape (a flat Config struct plus a
// model-keyed Presets map) but re-keyed from pendulum/cartpole/drone
// models to the particle/fluid scenarios of SPEC_FULL.md §2
// (water_drop, point_emitter, mass_spring, sph_dam_break).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameRate   = 60.0
	DefaultFrameCount  = 120
	DefaultGravity     = -9.8
	DefaultRestitution = 0.3
)

// Config is the yaml-serializable description of one scenario run.
type Config struct {
	Scenario   string      `yaml:"scenario"`
	FrameRate  float64     `yaml:"frame_rate"`
	FrameCount int         `yaml:"frame_count"`
	Seed       int64       `yaml:"seed"`
	Gravity    Vec3        `yaml:"gravity"`
	Wind       Vec3        `yaml:"wind"`
	Drag       float64     `yaml:"drag"`
	Restitution float64    `yaml:"restitution"`
	SPH        SPHConfig   `yaml:"sph"`
	Emitter    EmitterConfig `yaml:"emitter"`
	SpringMass SpringMassConfig `yaml:"spring_mass"`
}

// Vec3 is config's yaml-friendly stand-in for vecmath.Vector3, kept
// free of a domain-package import so config has no dependency on the
// simulation core -- callers convert at the boundary.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type SPHConfig struct {
	TargetDensity        float64 `yaml:"target_density"`
	TargetSpacing        float64 `yaml:"target_spacing"`
	RelativeKernelRadius float64 `yaml:"relative_kernel_radius"`
	EOSExponent          float64 `yaml:"eos_exponent"`
	ViscosityCoefficient float64 `yaml:"viscosity_coefficient"`
	SpeedOfSound         float64 `yaml:"speed_of_sound"`
	PseudoViscosity      float64 `yaml:"pseudo_viscosity"`
}

type EmitterConfig struct {
	Origin      Vec3    `yaml:"origin"`
	Direction   Vec3    `yaml:"direction"`
	Speed       float64 `yaml:"speed"`
	SpreadAngle float64 `yaml:"spread_angle_deg"`
	MaxRate     float64 `yaml:"max_rate"`
	MaxTotal    int     `yaml:"max_total"`
}

type SpringMassConfig struct {
	NumNodes   int     `yaml:"num_nodes"`
	Stiffness  float64 `yaml:"stiffness"`
	RestLength float64 `yaml:"rest_length"`
	Damping    float64 `yaml:"damping"`
	FloorY     float64 `yaml:"floor_y"`
}

// DefaultConfig mirrors the teacher's DefaultConfig shape: a runnable
// set of values, not necessarily matching any named preset.
func DefaultConfig() *Config {
	return &Config{
		Scenario:    "sph_dam_break",
		FrameRate:   DefaultFrameRate,
		FrameCount:  DefaultFrameCount,
		Gravity:     Vec3{Y: DefaultGravity},
		Restitution: DefaultRestitution,
		SPH: SPHConfig{
			TargetDensity:        1000,
			TargetSpacing:        0.02,
			RelativeKernelRadius: 1.8,
			EOSExponent:          7,
			ViscosityCoefficient: 0.01,
			SpeedOfSound:         100,
			PseudoViscosity:      0.1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
