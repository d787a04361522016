package emitter

import (
	"math"
	"math/rand"

	"github.com/san-kum/particlesim/internal/vecmath"
)

// PointEmitter emits particles from a single origin at a bounded rate
// (spec.md §3/§4.5).
type PointEmitter struct {
	Origin      vecmath.Vector3
	Direction   vecmath.Vector3 // must be a unit vector
	Speed       float64
	SpreadAngle float64 // radians, full cone/fan width
	MaxRate     float64 // particles per second
	MaxTotal    int

	target         Target
	hasFirst       bool
	firstFrameTime float64
	emittedSoFar   int

	rng *rand.Rand
}

// NewPointEmitter builds a point emitter. Angle sampling emits at most
// a few hundred particles a frame, nowhere near the volume that would
// justify trading math.Sincos's precision for a lookup table (as in
// vecmath.Vector3.RotatedAroundAxis, which this emitter's 3D branch
// calls directly and which uses exact math.Sincos itself).
func NewPointEmitter(origin, direction vecmath.Vector3, speed, spreadAngle, maxRate float64, maxTotal int, seed int64) *PointEmitter {
	return &PointEmitter{
		Origin:      origin,
		Direction:   direction.Normalized(),
		Speed:       speed,
		SpreadAngle: spreadAngle,
		MaxRate:     maxRate,
		MaxTotal:    maxTotal,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (e *PointEmitter) SetTarget(t Target) { e.target = t }

// Update implements spec.md §4.5's point-emitter recipe: stamp
// firstFrameTime on the first call, then emit enough particles to
// satisfy the rate-limited running total.
func (e *PointEmitter) Update(currentTime, dt float64) {
	if e.target == nil {
		return
	}
	if !e.hasFirst {
		e.firstFrameTime = currentTime
		e.hasFirst = true
	}

	elapsed := currentTime + dt - e.firstFrameTime
	want := int(math.Ceil(elapsed * e.MaxRate))
	// MaxTotal <= 0 means unlimited (spec.md §8 E2's "max-total
	// unlimited"); a genuine cap is always a positive count.
	if e.MaxTotal > 0 && want > e.MaxTotal {
		want = e.MaxTotal
	}
	if want <= e.emittedSoFar {
		return
	}

	n := want - e.emittedSoFar
	positions := make([]vecmath.Vector3, n)
	velocities := make([]vecmath.Vector3, n)

	is2D := e.Direction.Z == 0
	for i := 0; i < n; i++ {
		theta := (e.rng.Float64()*2 - 1) * (e.SpreadAngle / 2)
		var dir vecmath.Vector3
		if is2D {
			dir = e.rotateAroundZ(e.Direction, theta)
		} else {
			phi := e.rng.Float64() * 2 * math.Pi
			axis := e.arbitraryPerpendicular(e.Direction).RotatedAroundAxis(e.Direction, phi)
			dir = e.Direction.RotatedAroundAxis(axis, theta)
		}
		positions[i] = e.Origin
		velocities[i] = dir.Mul(e.Speed)
	}

	if err := e.target.AddParticles(positions, velocities, nil); err == nil {
		e.emittedSoFar = want
	}
}

func (e *PointEmitter) rotateAroundZ(v vecmath.Vector3, theta float64) vecmath.Vector3 {
	s, c := math.Sincos(theta)
	return vecmath.Vector3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// arbitraryPerpendicular returns some unit vector perpendicular to v,
// needed to seed the cone-sampling basis in 3D.
func (e *PointEmitter) arbitraryPerpendicular(v vecmath.Vector3) vecmath.Vector3 {
	ref := vecmath.Vector3{X: 1}
	if math.Abs(v.X) > 0.9 {
		ref = vecmath.Vector3{Y: 1}
	}
	return v.Cross(ref).Normalized()
}
