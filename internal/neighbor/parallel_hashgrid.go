package neighbor

import (
	"sort"

	"github.com/san-kum/particlesim/internal/dynamo"
	"github.com/san-kum/particlesim/internal/vecmath"
)

// Sentinel marks an empty bucket in startIndexTable/endIndexTable.
// spec.md §3 specifies SIZE_MAX; Go has no unsigned array-size type, so
// this uses the largest representable int instead -- same role, same
// "never a valid index" property.
const Sentinel = int(^uint(0) >> 1)

// ParallelHashGridSearch stores one flat, key-sorted point array plus
// per-bucket [start, end) ranges, built via four passes (spec.md §4.1
// "Parallel variant — build"); passes 1 and 3 run in parallel, passes
// 2 and 4 run serially:
//
//  1. compute keys in parallel
//  2. stable-sort an index permutation by key
//  3. gather points/keys into key-sorted order in parallel
//  4. fill start/end tables from contiguous runs of equal key
//
// sortedIndices[i] is the pre-sort original index of the point now at
// position i, so callers can recover the original ordering.
type ParallelHashGridSearch struct {
	res     Resolution
	spacing float64

	sortedPoints    []vecmath.Vector3
	sortedIndices   []int
	startIndexTable []int
	endIndexTable   []int
}

func NewParallelHashGridSearch(res Resolution, spacing float64) *ParallelHashGridSearch {
	return &ParallelHashGridSearch{res: res, spacing: spacing}
}

func (g *ParallelHashGridSearch) numBuckets() int {
	return g.res.X * g.res.Y * g.res.Z
}

func (g *ParallelHashGridSearch) Build(points []vecmath.Vector3) {
	n := len(points)
	nb := g.numBuckets()

	g.startIndexTable = make([]int, nb)
	g.endIndexTable = make([]int, nb)
	for i := range g.startIndexTable {
		g.startIndexTable[i] = Sentinel
		g.endIndexTable[i] = Sentinel
	}

	if n == 0 {
		g.sortedPoints = nil
		g.sortedIndices = nil
		return
	}

	// Pass 1: compute keys in parallel.
	keys := make([]int, n)
	dynamo.ParallelFor(n, 1024, func(start, end int) {
		for i := start; i < end; i++ {
			keys[i] = keyForPoint(points[i], g.spacing, g.res)
		}
	})

	// Pass 2: stable-sort an index permutation by key.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return keys[perm[a]] < keys[perm[b]] })

	// Pass 3: gather points and keys into key-sorted order, in parallel.
	sortedPoints := make([]vecmath.Vector3, n)
	sortedKeys := make([]int, n)
	dynamo.ParallelFor(n, 1024, func(start, end int) {
		for i := start; i < end; i++ {
			sortedPoints[i] = points[perm[i]]
			sortedKeys[i] = keys[perm[i]]
		}
	})

	// Pass 4: fill start/end tables from contiguous runs of equal key.
	g.startIndexTable[sortedKeys[0]] = 0
	for i := 1; i < n; i++ {
		if sortedKeys[i] != sortedKeys[i-1] {
			g.startIndexTable[sortedKeys[i]] = i
			g.endIndexTable[sortedKeys[i-1]] = i
		}
	}
	g.endIndexTable[sortedKeys[n-1]] = n

	g.sortedPoints = sortedPoints
	g.sortedIndices = perm
}

func (g *ParallelHashGridSearch) ForEachNearby(origin vecmath.Vector3, radius float64, cb func(i int, p vecmath.Vector3)) {
	if len(g.sortedPoints) == 0 {
		return
	}
	r2 := radius * radius
	for _, k := range nearbyKeys(origin, g.spacing, g.res) {
		start := g.startIndexTable[k]
		if start == Sentinel {
			continue
		}
		end := g.endIndexTable[k]
		for i := start; i < end; i++ {
			p := g.sortedPoints[i]
			if p.Sub(origin).LengthSquared() <= r2 {
				cb(g.sortedIndices[i], p)
			}
		}
	}
}

func (g *ParallelHashGridSearch) HasNearby(origin vecmath.Vector3, radius float64) bool {
	if len(g.sortedPoints) == 0 {
		return false
	}
	r2 := radius * radius
	for _, k := range nearbyKeys(origin, g.spacing, g.res) {
		start := g.startIndexTable[k]
		if start == Sentinel {
			continue
		}
		end := g.endIndexTable[k]
		for i := start; i < end; i++ {
			if g.sortedPoints[i].Sub(origin).LengthSquared() <= r2 {
				return true
			}
		}
	}
	return false
}

func (g *ParallelHashGridSearch) Clone() Search {
	c := NewParallelHashGridSearch(g.res, g.spacing)
	c.sortedPoints = append([]vecmath.Vector3(nil), g.sortedPoints...)
	c.sortedIndices = append([]int(nil), g.sortedIndices...)
	c.startIndexTable = append([]int(nil), g.startIndexTable...)
	c.endIndexTable = append([]int(nil), g.endIndexTable...)
	return c
}

// SortedIndices exposes the build-time permutation, for callers (and
// tests) that need to recover the pre-sort ordering, per spec.md §3.
func (g *ParallelHashGridSearch) SortedIndices() []int { return g.sortedIndices }
