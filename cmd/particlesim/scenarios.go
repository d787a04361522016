package main

import (
	"fmt"

	"github.com/san-kum/particlesim/internal/animation"
	"github.com/san-kum/particlesim/internal/collider"
	"github.com/san-kum/particlesim/internal/config"
	"github.com/san-kum/particlesim/internal/emitter"
	"github.com/san-kum/particlesim/internal/particle"
	"github.com/san-kum/particlesim/internal/solver"
	"github.com/san-kum/particlesim/internal/sph"
	"github.com/san-kum/particlesim/internal/surface"
	"github.com/san-kum/particlesim/internal/vecmath"
)

// scenario bundles whatever an animation.Physics implementation needs
// to also report particle state for metrics/storage: BaseSolver (and
// everything built over it) always exposes Positions/Velocities/Mass
// this way, so a scenario is just that pair plus the driving loop.
type scenario struct {
	anim       *animation.BaseAnimation
	positions  func() []vecmath.Vector3
	velocities func() []vecmath.Vector3
	mass       func() float64
}

// buildScenario wires one of SPEC_FULL.md §2's four named scenarios
// (water_drop, point_emitter, mass_spring, sph_dam_break) from cfg,
// following cmd/dynsim/main.go's runSimulation: a switch over the
// scenario name picking model/solver construction, config fields
// supplying every tunable.
func buildScenario(cfg *config.Config) (*scenario, error) {
	switch cfg.Scenario {
	case "water_drop":
		return buildWaterDrop(cfg)
	case "sph_dam_break":
		return buildDamBreak(cfg)
	case "point_emitter":
		return buildPointEmitter(cfg)
	case "mass_spring":
		return buildMassSpring(cfg)
	default:
		return nil, fmt.Errorf("unknown scenario: %s", cfg.Scenario)
	}
}

func toVec3(v config.Vec3) vecmath.Vector3 { return vecmath.Vector3{X: v.X, Y: v.Y, Z: v.Z} }

func newSPHSolver(cfg *config.Config, data *sph.Data, source surface.Implicit3, bounds vecmath.AABB3) *solver.SPHSolver {
	data.SetTargetDensity(cfg.SPH.TargetDensity)
	data.SetTargetSpacing(cfg.SPH.TargetSpacing)
	data.SetRelativeKernelRadius(cfg.SPH.RelativeKernelRadius)

	s := solver.NewSPHSolver(data)
	s.EOSExponent = cfg.SPH.EOSExponent
	s.ViscosityCoefficient = cfg.SPH.ViscosityCoefficient
	s.SpeedOfSound = cfg.SPH.SpeedOfSound
	s.PseudoViscosityCoeff = cfg.SPH.PseudoViscosity
	s.Gravity = toVec3(cfg.Gravity)
	s.Restitution = cfg.Restitution

	seedSpacing := cfg.SPH.TargetSpacing
	seeder := emitter.NewVolumeEmitter(bounds, source, seedSpacing, 0, true, false, 0, cfg.Seed)
	seeder.SetTarget(data)
	s.Emitter = seeder
	s.Collider = collider.NewBoxCollider(bounds)

	return s
}

// buildWaterDrop implements spec.md §8 E1: a 2D domain [0,1]x[0,2], a
// source = plane y=0.5 union a sphere at the domain midpoint radius
// 0.15, inward box collider along the domain boundary.
func buildWaterDrop(cfg *config.Config) (*scenario, error) {
	bounds := vecmath.NewAABB3(vecmath.Vector3{}, vecmath.Vector3{X: 1, Y: 2})
	mid := bounds.Center()

	plane := surface.NewPlane(vecmath.Vector3{Y: 0.5}, vecmath.Vector3{Y: 1})
	ball := surface.NewSphere(mid, 0.15)
	source := surface.NewSet(plane, ball)

	data := sph.New(0)
	s := newSPHSolver(cfg, data, source, bounds)

	anim := animation.NewBaseAnimation(s, false)
	return &scenario{anim: anim, positions: data.Positions, velocities: data.Velocities, mass: data.Mass}, nil
}

// buildDamBreak seeds a rectangular block occupying the left half of a
// wider domain, the canonical SPH "dam break" initial condition.
func buildDamBreak(cfg *config.Config) (*scenario, error) {
	bounds := vecmath.NewAABB3(vecmath.Vector3{}, vecmath.Vector3{X: 2, Y: 2})
	dam := surface.NewBox(vecmath.NewAABB3(vecmath.Vector3{}, vecmath.Vector3{X: 0.8, Y: 1.2}))

	data := sph.New(0)
	s := newSPHSolver(cfg, data, dam, bounds)

	anim := animation.NewBaseAnimation(s, false)
	return &scenario{anim: anim, positions: data.Positions, velocities: data.Velocities, mass: data.Mass}, nil
}

// buildPointEmitter implements spec.md §8 E2: an emitter at (0,3)
// firing toward +y with a 45-degree spread, a constant wind, and a
// static ground plane.
func buildPointEmitter(cfg *config.Config) (*scenario, error) {
	data := particle.New(0)

	e := emitter.NewPointEmitter(
		toVec3(cfg.Emitter.Origin), toVec3(cfg.Emitter.Direction),
		cfg.Emitter.Speed, cfg.Emitter.SpreadAngle*3.141592653589793/180,
		cfg.Emitter.MaxRate, cfg.Emitter.MaxTotal, cfg.Seed,
	)
	e.SetTarget(data)

	s := solver.NewBaseSolver(data, nil)
	s.Gravity = toVec3(cfg.Gravity)
	s.Emitter = e
	wind := toVec3(cfg.Wind)
	s.Wind = func(vecmath.Vector3) vecmath.Vector3 { return wind }
	s.Collider = collider.NewRigidBodyCollider(surface.NewPlane(vecmath.Vector3{}, vecmath.Vector3{Y: 1}))

	anim := animation.NewBaseAnimation(s, true)
	return &scenario{anim: anim, positions: data.Positions, velocities: data.Velocities, mass: data.Mass}, nil
}

// buildMassSpring implements spec.md §8 E4: a chain of NumNodes point
// masses, node 0 pinned, under gravity/drag/wind with a floor collider.
func buildMassSpring(cfg *config.Config) (*scenario, error) {
	n := cfg.SpringMass.NumNodes
	if n < 2 {
		n = 2
	}
	data := particle.New(0)
	positions := make([]vecmath.Vector3, n)
	for i := 0; i < n; i++ {
		positions[i] = vecmath.Vector3{X: -float64(i)}
	}
	if err := data.AddParticles(positions, nil, nil); err != nil {
		return nil, err
	}

	springs := make([]solver.Spring, 0, n-1)
	for i := 0; i < n-1; i++ {
		springs = append(springs, solver.Spring{
			A: i, B: i + 1,
			RestLength: cfg.SpringMass.RestLength,
			Stiffness:  cfg.SpringMass.Stiffness,
			Damping:    cfg.SpringMass.Damping,
		})
	}

	s := solver.NewSpringMassSolver(data, springs, []int{0})
	s.Gravity = toVec3(cfg.Gravity)
	s.DragCoefficient = cfg.Drag
	s.Restitution = cfg.Restitution
	wind := toVec3(cfg.Wind)
	s.Wind = func(vecmath.Vector3) vecmath.Vector3 { return wind }
	s.Collider = collider.NewRigidBodyCollider(surface.NewPlane(vecmath.Vector3{Y: cfg.SpringMass.FloorY}, vecmath.Vector3{Y: 1}))

	anim := animation.NewBaseAnimation(s, true)
	return &scenario{anim: anim, positions: data.Positions, velocities: data.Velocities, mass: data.Mass}, nil
}
