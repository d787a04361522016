// Package neighbor implements the spatial-hash neighbor search of
// spec.md §4.1: ListSearch (linear scan), HashGridSearch and
// ParallelHashGridSearch (bucketed over a uniform grid, wrapped modulo
// resolution). Grounded on internal/dynamo.ParallelFor for the
// parallel build passes and on the cell-hashing shape of
// sarat-asymmetrica-foldvedic's internal/physics/spatial_hash.go,
// generalized to the wrapped-modulo bucket keying spec.md §4.1
// requires (that teacher hashes into an unbounded Go map; this one
// needs a fixed resolution so the parallel variant can presize flat
// start/end tables).
package neighbor

import "github.com/san-kum/particlesim/internal/vecmath"

// Search is the polymorphic neighbor-search contract of spec.md §3/§4.1.
// Grid spacing must be >= 2x the maximum radius ever passed to
// ForEachNearby/HasNearby; this is a ContractMisuse per spec.md §7 and
// is never validated here -- violating it silently misses distant
// neighbors instead of erroring.
type Search interface {
	// Build replaces any prior state and records the new point set.
	Build(points []vecmath.Vector3)
	// ForEachNearby invokes cb(i, points[i]) for every point within
	// radius of origin. Callback order is unspecified.
	ForEachNearby(origin vecmath.Vector3, radius float64, cb func(i int, p vecmath.Vector3))
	// HasNearby reports whether any point lies within radius of origin.
	HasNearby(origin vecmath.Vector3, radius float64) bool
	// Clone returns an independent copy of the current search state.
	Clone() Search
}

// Appendable is implemented by HashGridSearch and ListSearch: Add
// appends a single point without a full rebuild (spec.md §4.1).
// ParallelHashGridSearch does not implement it.
type Appendable interface {
	Add(p vecmath.Vector3)
}
