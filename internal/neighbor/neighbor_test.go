package neighbor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/particlesim/internal/vecmath"
)

func bruteForce(points []vecmath.Vector3, origin vecmath.Vector3, radius float64) map[int]bool {
	out := make(map[int]bool)
	r2 := radius * radius
	for i, p := range points {
		if p.Sub(origin).LengthSquared() <= r2 {
			out[i] = true
		}
	}
	return out
}

func randomPoints(n int, seed int64, extent float64) []vecmath.Vector3 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vecmath.Vector3, n)
	for i := range pts {
		pts[i] = vecmath.Vector3{
			X: (rng.Float64() - 0.5) * extent,
			Y: (rng.Float64() - 0.5) * extent,
			Z: (rng.Float64() - 0.5) * extent,
		}
	}
	return pts
}

func collectNearby(s Search, origin vecmath.Vector3, radius float64) map[int]bool {
	out := make(map[int]bool)
	s.ForEachNearby(origin, radius, func(i int, _ vecmath.Vector3) {
		out[i] = true
	})
	return out
}

func TestHashGridCorrectnessAgainstBruteForce(t *testing.T) {
	radius := 0.5
	spacing := 2 * radius // contract: spacing >= 2r

	for _, n := range []int{10, 1000, 5000} {
		pts := randomPoints(n, int64(n), 20)

		hash := NewHashGridSearch(Resolution{X: 16, Y: 16, Z: 16}, spacing)
		hash.Build(pts)

		parallel := NewParallelHashGridSearch(Resolution{X: 16, Y: 16, Z: 16}, spacing)
		parallel.Build(pts)

		for q := 0; q < 20; q++ {
			origin := pts[q%len(pts)]
			want := bruteForce(pts, origin, radius)

			assert.Equal(t, want, collectNearby(hash, origin, radius), "hash grid mismatch n=%d", n)
			assert.Equal(t, want, collectNearby(parallel, origin, radius), "parallel hash grid mismatch n=%d", n)
			assert.Equal(t, len(want) > 0, hash.HasNearby(origin, radius))
			assert.Equal(t, len(want) > 0, parallel.HasNearby(origin, radius))
		}
	}
}

func TestParallelHashGridBucketInvariant(t *testing.T) {
	res := Resolution{X: 8, Y: 8, Z: 8}
	spacing := 1.0
	pts := randomPoints(500, 7, 10)

	g := NewParallelHashGridSearch(res, spacing)
	g.Build(pts)

	seen := make([]bool, len(pts))
	for k := 0; k < res.X*res.Y*res.Z; k++ {
		start := g.startIndexTable[k]
		if start == Sentinel {
			continue
		}
		end := g.endIndexTable[k]
		for i := start; i < end; i++ {
			assert.Equal(t, k, keyForPoint(g.sortedPoints[i], spacing, res))
			seen[g.sortedIndices[i]] = true
		}
	}
	for i, s := range seen {
		assert.True(t, s, "point %d missing from any bucket", i)
	}

	// sortedIndices must be a permutation of 0..n-1.
	perm := append([]int(nil), g.SortedIndices()...)
	assert.Len(t, perm, len(pts))
	present := make([]bool, len(pts))
	for _, idx := range perm {
		assert.False(t, present[idx], "duplicate index %d in permutation", idx)
		present[idx] = true
	}
}

func TestParallelHashGridEmptyBuild(t *testing.T) {
	g := NewParallelHashGridSearch(Resolution{X: 4, Y: 4, Z: 4}, 1.0)
	g.Build(nil)

	called := false
	g.ForEachNearby(vecmath.Vector3{}, 100, func(int, vecmath.Vector3) { called = true })
	assert.False(t, called)
	assert.False(t, g.HasNearby(vecmath.Vector3{}, 100))
}

func TestHashGridAdd(t *testing.T) {
	g := NewHashGridSearch(Resolution{X: 8, Y: 8, Z: 8}, 1.0)
	g.Build(nil)
	g.Add(vecmath.Vector3{X: 0.1, Y: 0.1})

	assert.True(t, g.HasNearby(vecmath.Vector3{}, 0.5))
}

func TestListSearchMatchesBruteForce(t *testing.T) {
	pts := randomPoints(200, 3, 10)
	list := NewListSearch()
	list.Build(pts)

	origin := pts[0]
	want := bruteForce(pts, origin, 1.0)
	assert.Equal(t, want, collectNearby(list, origin, 1.0))
}
