package neighbor

import (
	"math"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// Resolution is the per-axis bucket count of a hash grid. A 2D grid
// sets Z to 1, which collapses the Z hashing/candidate-offset math to a
// no-op (floor/wrap of anything mod 1 is always 0).
type Resolution struct {
	X, Y, Z int
}

func bucketIndex(coord, spacing float64) int {
	return int(math.Floor(coord / spacing))
}

func wrap(i, r int) int {
	if r <= 0 {
		return 0
	}
	return ((i % r) + r) % r
}

func getBucketIndex(p vecmath.Vector3, spacing float64) vecmath.Point3I {
	return vecmath.Point3I{
		X: bucketIndex(p.X, spacing),
		Y: bucketIndex(p.Y, spacing),
		Z: bucketIndex(p.Z, spacing),
	}
}

// getKey linearizes a bucket index after wrapping it into the grid
// resolution: key = (wz*Ry + wy)*Rx + wx (spec.md §4.1's open-question
// note (a) applies this corrected linearization uniformly).
func getKey(bucket vecmath.Point3I, res Resolution) int {
	wx := wrap(bucket.X, res.X)
	wy := wrap(bucket.Y, res.Y)
	wz := wrap(bucket.Z, res.Z)
	return (wz*res.Y+wy)*res.X + wx
}

func keyForPoint(p vecmath.Vector3, spacing float64, res Resolution) int {
	return getKey(getBucketIndex(p, spacing), res)
}

// nearbyKeys enumerates the origin bucket's key plus the adjacent
// buckets selected by comparing origin to each axis midpoint
// (spec.md §4.1's "nearby-key enumeration"). Duplicate keys (possible
// under small resolutions) are returned as-is; the caller's distance
// test filters false positives.
func nearbyKeys(origin vecmath.Vector3, spacing float64, res Resolution) []int {
	originBucket := getBucketIndex(origin, spacing)

	offset := func(axis int, o float64) int {
		mid := (float64(axis) + 0.5) * spacing
		if mid <= o {
			return 1
		}
		return -1
	}

	dx := offset(originBucket.X, origin.X)
	dy := offset(originBucket.Y, origin.Y)
	dz := offset(originBucket.Z, origin.Z)

	keys := make([]int, 0, 8)
	for _, ox := range [2]int{0, dx} {
		for _, oy := range [2]int{0, dy} {
			for _, oz := range [2]int{0, dz} {
				b := vecmath.Point3I{X: originBucket.X + ox, Y: originBucket.Y + oy, Z: originBucket.Z + oz}
				keys = append(keys, getKey(b, res))
			}
		}
	}
	return keys
}
