// Package animation implements the physics-animation loop of spec.md
// §3/§4.6: fixed-rate frame advancement driving a variable number of
// equal-sized sub-timesteps per frame.
//
// Grounded on internal/dynamo/doc.go's documented Simulator contract
// and internal/sim/simulator.go's Run loop (begin/step/end sequencing,
// ctx-free inner loop), regeneralized from "integrate a fixed dt" to
// "advance a frame via N adaptive sub-timesteps" and from a
// context.Context-cancellable driver to the synchronous, suspension-free
// model spec.md §5 specifies.
package animation

// Frame identifies a point in the fixed-rate frame sequence (spec.md §3).
type Frame struct {
	Index                 uint32
	TimeIntervalInSeconds float64
}

// TimeInSeconds is index * timeIntervalInSeconds.
func (f Frame) TimeInSeconds() float64 {
	return float64(f.Index) * f.TimeIntervalInSeconds
}

// Advanced returns the frame delta steps ahead, carrying the same interval.
func (f Frame) Advanced(delta uint32) Frame {
	return Frame{Index: f.Index + delta, TimeIntervalInSeconds: f.TimeIntervalInSeconds}
}

// Physics is the set of hooks a concrete solver supplies to drive one
// frame of simulation (spec.md §4.6 "Hooks"). OnInitialize is called
// once, lazily, before the first real advance.
type Physics interface {
	OnInitialize()
	OnAdvanceSubTimeStep(dt float64)
	NumberOfSubTimeSteps(dt float64) int
}

// Animation is anything driven frame-by-frame.
type Animation interface {
	Update(frame Frame)
}

// BaseAnimation drives a Physics implementation frame by frame,
// splitting each frame into N equal sub-timesteps (spec.md §4.6).
type BaseAnimation struct {
	impl                  Physics
	currentFrame          Frame
	currentTimeInSeconds  float64
	useFixedSubTimeSteps  bool
	initialized           bool
}

// NewBaseAnimation wraps impl. useFixedSubTimeSteps selects policy (a)
// from spec.md §4.6: exactly one sub-timestep per frame, of the
// frame's own interval, instead of calling NumberOfSubTimeSteps.
func NewBaseAnimation(impl Physics, useFixedSubTimeSteps bool) *BaseAnimation {
	return &BaseAnimation{impl: impl, useFixedSubTimeSteps: useFixedSubTimeSteps}
}

func (a *BaseAnimation) CurrentFrame() Frame              { return a.currentFrame }
func (a *BaseAnimation) CurrentTimeInSeconds() float64    { return a.currentTimeInSeconds }
func (a *BaseAnimation) SetUseFixedSubTimeSteps(v bool)   { a.useFixedSubTimeSteps = v }

// Update drives the simulation from the current frame index up to
// frame.Index, one frame at a time. A request at or behind the
// current frame index is a no-op once the animation has been
// initialized at least once (spec.md §3 "idempotent"/"rejects stale").
func (a *BaseAnimation) Update(frame Frame) {
	if a.initialized && frame.Index <= a.currentFrame.Index {
		return
	}
	if !a.initialized {
		a.impl.OnInitialize()
		a.initialized = true
		a.currentFrame = Frame{Index: 0, TimeIntervalInSeconds: frame.TimeIntervalInSeconds}
		a.currentTimeInSeconds = 0
	}

	for a.currentFrame.Index < frame.Index {
		a.advanceOneFrame(frame.TimeIntervalInSeconds)
	}
}

func (a *BaseAnimation) advanceOneFrame(frameDt float64) {
	n := 1
	if !a.useFixedSubTimeSteps {
		n = a.impl.NumberOfSubTimeSteps(frameDt)
		if n < 1 {
			n = 1
		}
	}
	subDt := frameDt / float64(n)
	for i := 0; i < n; i++ {
		a.impl.OnAdvanceSubTimeStep(subDt)
		a.currentTimeInSeconds += subDt
	}
	a.currentFrame = Frame{Index: a.currentFrame.Index + 1, TimeIntervalInSeconds: frameDt}
}
