package sph

import (
	"math"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// UpdatePressures implements the equation of state in spec.md §4.8:
// p = scale * ((rho/rhoTarget)^gamma - 1), scale = rhoTarget*cs^2/gamma,
// with negative pressure scaled by negativePressureScale.
func (d *Data) UpdatePressures(eosExponent, negativePressureScale, speedOfSound float64) {
	densities := d.Densities()
	pressures := d.Pressures()
	rhoTarget := d.targetDensity
	scale := rhoTarget * speedOfSound * speedOfSound / eosExponent

	for i, rho := range densities {
		p := scale * (math.Pow(rho/rhoTarget, eosExponent) - 1)
		if p < 0 {
			p *= negativePressureScale
		}
		pressures[i] = p
	}
}

// AccumulateViscosityForce adds mu * mass^2 * sum_j (v_j-v_i)/rho_j *
// Wlaplacian_spiky(r) into the force layer, over the cached neighbor
// list (spec.md §4.8's non-pressure SPH term).
func (d *Data) AccumulateViscosityForce(viscosityCoefficient float64) {
	positions := d.Positions()
	velocities := d.Velocities()
	forces := d.Forces()
	densities := d.Densities()
	lists := d.NeighborLists()
	h := d.kernelRadius
	mass := d.Mass()

	for i := range positions {
		for _, j := range lists[i] {
			if densities[j] == 0 {
				continue
			}
			r := positions[i].DistanceTo(positions[j])
			coeff := viscosityCoefficient * mass * mass / densities[j] * spikyLaplacianScalar(r, h)
			forces[i] = forces[i].Add(velocities[j].Sub(velocities[i]).Mul(coeff))
		}
	}
}

// AccumulatePressureForce adds the symmetric pressure force
// -mass^2 * sum_j (p_i/rho_i^2 + p_j/rho_j^2) * gradWspiky(r_ij) into
// the force layer, skipping coincident pairs (spec.md §4.8's
// "guarded by a distance-positive test").
func (d *Data) AccumulatePressureForce() {
	positions := d.Positions()
	forces := d.Forces()
	densities := d.Densities()
	pressures := d.Pressures()
	lists := d.NeighborLists()
	h := d.kernelRadius
	mass := d.Mass()

	for i := range positions {
		if densities[i] == 0 {
			continue
		}
		for _, j := range lists[i] {
			if densities[j] == 0 {
				continue
			}
			dir := positions[i].Sub(positions[j])
			r := dir.Length()
			if r <= 1e-12 {
				continue
			}
			unit := dir.Div(r)
			coeff := mass * mass * (pressures[i]/(densities[i]*densities[i]) + pressures[j]/(densities[j]*densities[j]))
			forces[i] = forces[i].Sub(unit.Mul(coeff * spikyGradientScalar(r, h)))
		}
	}
}

// MaxForceMagnitude returns the largest per-particle force vector
// length currently stored, used by the adaptive sub-timestep estimate
// (spec.md §4.8).
func (d *Data) MaxForceMagnitude() float64 {
	maxF := 0.0
	for _, f := range d.Forces() {
		if l := f.Length(); l > maxF {
			maxF = l
		}
	}
	return maxF
}

// SmoothVelocitiesInPlace blends each entry of velocities toward a
// kernel-weighted neighbor average (including itself with weight
// mass/rho_i) by factor, implementing the pseudo-viscosity smoothing
// pass of spec.md §4.8's onEndAdvanceSubTimeStep. positions is the
// post-integration, post-collision position buffer paired 1:1 with
// velocities; densities and the neighbor lists are read from the
// snapshot taken in onBeginAdvanceSubTimeStep, which is a deliberate
// approximation (the neighbor structure is not rebuilt mid-step).
func (d *Data) SmoothVelocitiesInPlace(positions, velocities []vecmath.Vector3, factor float64) {
	if factor <= 0 {
		return
	}
	if factor > 1 {
		factor = 1
	}

	densities := d.Densities()
	lists := d.NeighborLists()
	h := d.kernelRadius
	mass := d.Mass()

	smoothed := make([]vecmath.Vector3, len(velocities))
	for i := range velocities {
		if densities[i] == 0 {
			smoothed[i] = velocities[i]
			continue
		}
		weightSum := mass / densities[i] * stdKernel(0, h)
		avg := velocities[i].Mul(weightSum)
		for _, j := range lists[i] {
			if densities[j] == 0 {
				continue
			}
			w := mass / densities[j] * stdKernel(positions[i].DistanceTo(positions[j]), h)
			avg = avg.Add(velocities[j].Mul(w))
			weightSum += w
		}
		if weightSum > 0 {
			avg = avg.Div(weightSum)
		} else {
			avg = velocities[i]
		}
		smoothed[i] = velocities[i].Add(avg.Sub(velocities[i]).Mul(factor))
	}
	copy(velocities, smoothed)
}
