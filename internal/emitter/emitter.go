// Package emitter implements Emitter (spec.md §4.5): PointEmitter and
// VolumeEmitter, both of which push new particles into a target
// particle.Data each update.
//
// Grounded on internal/physics/sph.go's DefaultState lattice-seed loop
// (the regular-tiling-plus-jitter idiom, generalized here into
// VolumeEmitter) and original_source/.../volume_particle_emitter2.cpp
// (jitter, allow-overlap via auxiliary hash grid, one-shot flag).
package emitter

import "github.com/san-kum/particlesim/internal/vecmath"

// Target is the subset of particle.Data an emitter needs: the ability
// to append new particles. Declared narrowly here (rather than
// depending on the particle package directly) so emitters stay usable
// against any particle-owning type that can grow.
type Target interface {
	AddParticles(positions, velocities, forces []vecmath.Vector3) error
	NumberOfParticles() int
}

// Emitter produces new particles into its target particle data
// (spec.md §4.5). A nil target makes Update a silent no-op (spec.md
// §4.5 "Failure").
type Emitter interface {
	Update(currentTime, dt float64)
	SetTarget(t Target)
}
