package emitter

import (
	"math"
	"math/rand"

	"github.com/san-kum/particlesim/internal/neighbor"
	"github.com/san-kum/particlesim/internal/pointgen"
	"github.com/san-kum/particlesim/internal/surface"
	"github.com/san-kum/particlesim/internal/vecmath"
)

// VolumeTarget extends Target with read access to current particle
// positions, needed for the overlap check VolumeEmitter performs when
// AllowOverlapping is false.
type VolumeTarget interface {
	Target
	Positions() []vecmath.Vector3
}

// VolumeEmitter fills a bounding region clipped to an implicit surface
// with a triangular lattice of particles (spec.md §3/§4.5).
type VolumeEmitter struct {
	Bounds           vecmath.AABB3
	Surface          surface.Implicit3
	TargetSpacing    float64
	Jitter           float64 // in [0, 1]
	OneShot          bool
	AllowOverlapping bool
	MaxTotal         int

	target       VolumeTarget
	emittedSoFar int
	emittedOnce  bool

	rng *rand.Rand
}

// NewVolumeEmitter builds a volume emitter; maxTotal <= 0 means
// unbounded (limited only by the bounds/surface/spacing combination).
func NewVolumeEmitter(bounds vecmath.AABB3, surf surface.Implicit3, targetSpacing, jitter float64, oneShot, allowOverlapping bool, maxTotal int, seed int64) *VolumeEmitter {
	return &VolumeEmitter{
		Bounds:           bounds,
		Surface:          surf,
		TargetSpacing:    targetSpacing,
		Jitter:           jitter,
		OneShot:          oneShot,
		AllowOverlapping: allowOverlapping,
		MaxTotal:         maxTotal,
		rng:              rand.New(rand.NewSource(seed)),
	}
}

func (e *VolumeEmitter) SetTarget(t Target) {
	vt, ok := t.(VolumeTarget)
	if !ok {
		e.target = nil
		return
	}
	e.target = vt
}

// Update implements spec.md §4.5's volume-emitter recipe: walk a
// triangular lattice over Bounds, jitter each candidate, accept it
// when it falls inside Surface and (unless AllowOverlapping) does not
// collide with any existing or already-accepted particle.
func (e *VolumeEmitter) Update(currentTime, dt float64) {
	if e.target == nil {
		return
	}
	if e.OneShot && e.emittedOnce {
		return
	}
	if e.MaxTotal > 0 && e.emittedSoFar >= e.MaxTotal {
		return
	}

	var aux *neighbor.HashGridSearch
	if !e.AllowOverlapping {
		res := neighbor.Resolution{X: 64, Y: 64, Z: 64}
		aux = neighbor.NewHashGridSearch(res, 2*e.TargetSpacing)
		aux.Build(e.target.Positions())
	}

	var newPositions []vecmath.Vector3
	pointgen.TriangleLattice{}.ForEachPoint3(e.Bounds, e.TargetSpacing, func(p vecmath.Vector3) bool {
		if e.MaxTotal > 0 && e.emittedSoFar+len(newPositions) >= e.MaxTotal {
			return false
		}

		candidate := p
		if e.Jitter > 0 {
			candidate = p.Add(e.randomUnitVector().Mul(0.5 * e.Jitter * e.TargetSpacing))
		}

		if e.Surface != nil && e.Surface.SignedDistance(candidate) > 0 {
			return true
		}
		if aux != nil {
			if aux.HasNearby(candidate, e.TargetSpacing) {
				return true
			}
			aux.Add(candidate)
		}

		newPositions = append(newPositions, candidate)
		return true
	})

	if len(newPositions) == 0 {
		return
	}
	if err := e.target.AddParticles(newPositions, nil, nil); err == nil {
		e.emittedSoFar += len(newPositions)
		e.emittedOnce = true
	}
}

func (e *VolumeEmitter) randomUnitVector() vecmath.Vector3 {
	theta := e.rng.Float64() * 2 * math.Pi
	z := e.rng.Float64()*2 - 1
	r := math.Sqrt(1 - z*z)
	return vecmath.Vector3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
}
