package neighbor

import "github.com/san-kum/particlesim/internal/vecmath"

// HashGridSearch buckets points into a uniform grid, keyed by a
// wrapped-modulo linear index (spec.md §4.1). Unlike
// ParallelHashGridSearch it stores one bucket->indices map and rebuilds
// it from scratch on every Build; Add appends without a rebuild.
type HashGridSearch struct {
	res     Resolution
	spacing float64
	points  []vecmath.Vector3
	buckets map[int][]int
}

func NewHashGridSearch(res Resolution, spacing float64) *HashGridSearch {
	return &HashGridSearch{res: res, spacing: spacing, buckets: make(map[int][]int)}
}

func (g *HashGridSearch) Build(points []vecmath.Vector3) {
	g.points = make([]vecmath.Vector3, len(points))
	copy(g.points, points)
	g.buckets = make(map[int][]int, len(points))
	for i, p := range g.points {
		k := keyForPoint(p, g.spacing, g.res)
		g.buckets[k] = append(g.buckets[k], i)
	}
}

func (g *HashGridSearch) Add(p vecmath.Vector3) {
	idx := len(g.points)
	g.points = append(g.points, p)
	k := keyForPoint(p, g.spacing, g.res)
	g.buckets[k] = append(g.buckets[k], idx)
}

func (g *HashGridSearch) ForEachNearby(origin vecmath.Vector3, radius float64, cb func(i int, p vecmath.Vector3)) {
	r2 := radius * radius
	for _, k := range nearbyKeys(origin, g.spacing, g.res) {
		for _, idx := range g.buckets[k] {
			p := g.points[idx]
			if p.Sub(origin).LengthSquared() <= r2 {
				cb(idx, p)
			}
		}
	}
}

func (g *HashGridSearch) HasNearby(origin vecmath.Vector3, radius float64) bool {
	found := false
	r2 := radius * radius
	for _, k := range nearbyKeys(origin, g.spacing, g.res) {
		for _, idx := range g.buckets[k] {
			if g.points[idx].Sub(origin).LengthSquared() <= r2 {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	return found
}

func (g *HashGridSearch) Clone() Search {
	c := NewHashGridSearch(g.res, g.spacing)
	c.points = make([]vecmath.Vector3, len(g.points))
	copy(c.points, g.points)
	c.buckets = make(map[int][]int, len(g.buckets))
	for k, v := range g.buckets {
		cp := make([]int, len(v))
		copy(cp, v)
		c.buckets[k] = cp
	}
	return c
}
