package config

// Presets holds named, ready-to-run configurations per scenario,
// following internal/config/presets.go's Presets map almost verbatim
// in shape (model name -> preset name -> *Config), re-keyed to
// SPEC_FULL.md's four named scenarios and E1/E2/E4's literal inputs.
var Presets = map[string]map[string]*Config{
	"water_drop": {
		// spec.md §8 E1: 2D domain [0,1]x[0,2], spacing 0.02, density 1000,
		// zero pseudo-viscosity, 120 frames at 1/60.
		"default": {
			Scenario: "water_drop", FrameRate: 60, FrameCount: 120,
			Gravity: Vec3{Y: -9.8},
			SPH: SPHConfig{
				TargetDensity: 1000, TargetSpacing: 0.02,
				RelativeKernelRadius: 1.8, EOSExponent: 7,
				ViscosityCoefficient: 0.01, SpeedOfSound: 100,
				PseudoViscosity: 0,
			},
		},
	},
	"sph_dam_break": {
		"small": {
			Scenario: "sph_dam_break", FrameRate: 60, FrameCount: 180,
			Gravity: Vec3{Y: -9.8},
			SPH: SPHConfig{
				TargetDensity: 1000, TargetSpacing: 0.03,
				RelativeKernelRadius: 1.8, EOSExponent: 7,
				ViscosityCoefficient: 0.02, SpeedOfSound: 80,
				PseudoViscosity: 0.1,
			},
		},
		"fine": {
			Scenario: "sph_dam_break", FrameRate: 60, FrameCount: 240,
			Gravity: Vec3{Y: -9.8},
			SPH: SPHConfig{
				TargetDensity: 1000, TargetSpacing: 0.015,
				RelativeKernelRadius: 1.8, EOSExponent: 7,
				ViscosityCoefficient: 0.02, SpeedOfSound: 100,
				PseudoViscosity: 0.1,
			},
		},
	},
	"point_emitter": {
		// spec.md §8 E2: emitter at (0,3), direction (0,1), speed 5,
		// spread 45deg, max-rate 100, wind (1,0), 360 frames at 1/60.
		"default": {
			Scenario: "point_emitter", FrameRate: 60, FrameCount: 360,
			Gravity: Vec3{Y: -9.8}, Wind: Vec3{X: 1},
			Emitter: EmitterConfig{
				Origin: Vec3{Y: 3}, Direction: Vec3{Y: 1},
				Speed: 5, SpreadAngle: 45, MaxRate: 100, MaxTotal: 0,
			},
		},
		"gusty": {
			Scenario: "point_emitter", FrameRate: 60, FrameCount: 360,
			Gravity: Vec3{Y: -9.8}, Wind: Vec3{X: 3},
			Emitter: EmitterConfig{
				Origin: Vec3{Y: 3}, Direction: Vec3{Y: 1},
				Speed: 6, SpreadAngle: 60, MaxRate: 150, MaxTotal: 2000,
			},
		},
	},
	"mass_spring": {
		// spec.md §8 E4: chain of 10 nodes, node 0 pinned, stiffness 500,
		// rest length 1, damping 1, drag 0.1, floor -7, restitution 0.3,
		// wind (30,0,0), 360 frames at 1/60.
		"chain": {
			Scenario: "mass_spring", FrameRate: 60, FrameCount: 360,
			Gravity: Vec3{Y: -9.8}, Wind: Vec3{X: 30}, Drag: 0.1,
			Restitution: 0.3,
			SpringMass: SpringMassConfig{
				NumNodes: 10, Stiffness: 500, RestLength: 1,
				Damping: 1, FloorY: -7,
			},
		},
		"slack": {
			Scenario: "mass_spring", FrameRate: 60, FrameCount: 360,
			Gravity: Vec3{Y: -9.8}, Drag: 0.2,
			Restitution: 0.1,
			SpringMass: SpringMassConfig{
				NumNodes: 6, Stiffness: 100, RestLength: 1.5,
				Damping: 2, FloorY: -10,
			},
		},
	},
}

// GetPreset returns a copy of the named preset so callers are free to
// tweak fields (e.g. stamping a fresh --seed) without mutating the
// shared Presets table for the rest of the process.
func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
