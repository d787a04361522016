// Package particle implements ParticleSystemData (spec.md §3/§4.2): the
// owner of a particle system's position/velocity/force layers plus any
// number of extra scalar/vector attribute layers, its neighbor-search
// handle and cached neighbor lists.
//
// Grounded on internal/sim/types.go and internal/dynamo's State vector
// idiom (Clone/IsValid/Add/Sub), generalized from one flat ODE state
// vector to named built-in layers plus caller-extensible layers
// (spec.md §9's "struct of built-in fields plus two vectors of named
// layers keyed by a newtype index").
package particle

import (
	"github.com/san-kum/particlesim/internal/neighbor"
	"github.com/san-kum/particlesim/internal/simerr"
	"github.com/san-kum/particlesim/internal/vecmath"
)

// ScalarLayerIndex and VectorLayerIndex are newtype handles returned by
// AddScalarLayer/AddVectorLayer; callers hold these rather than raw ints
// (spec.md §9).
type ScalarLayerIndex int
type VectorLayerIndex int

// Data owns positions, velocities, forces and any extra layers for N
// particles. It exclusively owns its layers, its neighbor-search
// instance and its neighbor-list cache (spec.md §3 "Ownership").
type Data struct {
	n int

	vectorLayers [][]vecmath.Vector3
	scalarLayers [][]float64

	positionIdx VectorLayerIndex
	velocityIdx VectorLayerIndex
	forceIdx    VectorLayerIndex

	radius float64
	mass   float64

	search        neighbor.Search
	neighborLists [][]int
}

// New creates particle data for n particles with the three built-in
// vector layers (position, velocity, force) and default radius/mass of
// 1e-3 and 1e-3 respectively (matching the teacher's habit of small
// nonzero defaults rather than zero, which would make mass-dependent
// quantities divide by zero before a caller configures them).
func New(n int) *Data {
	d := &Data{
		radius: 1e-3,
		mass:   1e-3,
	}
	d.positionIdx = d.addVectorLayerLocked(vecmath.Vector3{})
	d.velocityIdx = d.addVectorLayerLocked(vecmath.Vector3{})
	d.forceIdx = d.addVectorLayerLocked(vecmath.Vector3{})
	d.Resize(n)
	return d
}

func (d *Data) NumberOfParticles() int { return d.n }

// Resize sets every layer's length to n. Entries beyond the old length
// are zero-initialized in every layer, built-in and user layers alike:
// a user layer's initVal from AddScalarLayer/AddVectorLayer fills only
// the entries that existed when the layer was added and is not kept
// for later growth. AddParticles grows the layers through Resize, so
// its new slots are zero too unless velocities or forces are given.
func (d *Data) Resize(n int) {
	d.n = n
	for i := range d.vectorLayers {
		d.vectorLayers[i] = resizeVectors(d.vectorLayers[i], n)
	}
	for i := range d.scalarLayers {
		d.scalarLayers[i] = resizeScalars(d.scalarLayers[i], n)
	}
}

func resizeVectors(layer []vecmath.Vector3, n int) []vecmath.Vector3 {
	if len(layer) == n {
		return layer
	}
	out := make([]vecmath.Vector3, n)
	copy(out, layer)
	return out
}

func resizeScalars(layer []float64, n int) []float64 {
	if len(layer) == n {
		return layer
	}
	out := make([]float64, n)
	copy(out, layer)
	return out
}

func (d *Data) addVectorLayerLocked(initVal vecmath.Vector3) VectorLayerIndex {
	layer := make([]vecmath.Vector3, d.n)
	for i := range layer {
		layer[i] = initVal
	}
	d.vectorLayers = append(d.vectorLayers, layer)
	return VectorLayerIndex(len(d.vectorLayers) - 1)
}

// AddScalarLayer appends a new scalar layer of length N filled with initVal.
func (d *Data) AddScalarLayer(initVal float64) ScalarLayerIndex {
	layer := make([]float64, d.n)
	for i := range layer {
		layer[i] = initVal
	}
	d.scalarLayers = append(d.scalarLayers, layer)
	return ScalarLayerIndex(len(d.scalarLayers) - 1)
}

// AddVectorLayer appends a new vector layer of length N filled with initVal.
func (d *Data) AddVectorLayer(initVal vecmath.Vector3) VectorLayerIndex {
	return d.addVectorLayerLocked(initVal)
}

func (d *Data) ScalarLayer(idx ScalarLayerIndex) []float64 { return d.scalarLayers[idx] }
func (d *Data) VectorLayer(idx VectorLayerIndex) []vecmath.Vector3 { return d.vectorLayers[idx] }

func (d *Data) Positions() []vecmath.Vector3 { return d.vectorLayers[d.positionIdx] }
func (d *Data) Velocities() []vecmath.Vector3 { return d.vectorLayers[d.velocityIdx] }
func (d *Data) Forces() []vecmath.Vector3 { return d.vectorLayers[d.forceIdx] }

func (d *Data) Radius() float64 { return d.radius }

// SetRadius clamps negative input to 0 (spec.md §3 DomainClamp).
func (d *Data) SetRadius(r float64) {
	if r < 0 {
		r = 0
	}
	d.radius = r
}

func (d *Data) Mass() float64 { return d.mass }

// SetMass clamps negative input to 0 (spec.md §3 DomainClamp).
func (d *Data) SetMass(m float64) {
	if m < 0 {
		m = 0
	}
	d.mass = m
}

// AddParticles grows every layer by len(positions). velocities and
// forces must be either empty or the same length as positions;
// mismatches fail with ErrInvalidArgument and leave the data
// unchanged (spec.md §8 scenario E6).
func (d *Data) AddParticles(positions, velocities, forces []vecmath.Vector3) error {
	if len(velocities) != 0 && len(velocities) != len(positions) {
		return simerr.ErrInvalidArgument
	}
	if len(forces) != 0 && len(forces) != len(positions) {
		return simerr.ErrInvalidArgument
	}

	old := d.n
	d.Resize(old + len(positions))

	copy(d.vectorLayers[d.positionIdx][old:], positions)
	if len(velocities) != 0 {
		copy(d.vectorLayers[d.velocityIdx][old:], velocities)
	}
	if len(forces) != 0 {
		copy(d.vectorLayers[d.forceIdx][old:], forces)
	}
	return nil
}

// SetNeighborSearch replaces the owned neighbor-search handle,
// invalidating any cached neighbor lists (spec.md §3).
func (d *Data) SetNeighborSearch(s neighbor.Search) {
	d.search = s
	d.neighborLists = nil
}

func (d *Data) NeighborSearch() neighbor.Search { return d.search }

// BuildNeighborSearch constructs a fresh parallel hash grid with
// default resolution 64 per axis and spacing 2*maxRadius, then builds
// it from the current positions (spec.md §4.2).
func (d *Data) BuildNeighborSearch(maxRadius float64) {
	res := neighbor.Resolution{X: 64, Y: 64, Z: 64}
	search := neighbor.NewParallelHashGridSearch(res, 2*maxRadius)
	search.Build(d.Positions())
	d.search = search
}

// BuildNeighborLists fills a per-particle list of neighbor indices
// (self excluded). Must be called after BuildNeighborSearch; this is
// not automatically invalidated or enforced (spec.md §4.2
// "Invariants").
func (d *Data) BuildNeighborLists(maxRadius float64) {
	lists := make([][]int, d.n)
	positions := d.Positions()
	for i, p := range positions {
		var nbrs []int
		d.search.ForEachNearby(p, maxRadius, func(j int, _ vecmath.Vector3) {
			if j != i {
				nbrs = append(nbrs, j)
			}
		})
		lists[i] = nbrs
	}
	d.neighborLists = lists
}

func (d *Data) NeighborLists() [][]int { return d.neighborLists }
