package animation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/particlesim/internal/animation"
)

// fakePhysics records every hook invocation so the specs can assert on
// call counts and ordering without a real solver.
type fakePhysics struct {
	initCount     int
	subStepCount  int
	subStepDts    []float64
	fixedSubSteps int
}

func (f *fakePhysics) OnInitialize() { f.initCount++ }
func (f *fakePhysics) OnAdvanceSubTimeStep(dt float64) {
	f.subStepCount++
	f.subStepDts = append(f.subStepDts, dt)
}
func (f *fakePhysics) NumberOfSubTimeSteps(dt float64) int {
	if f.fixedSubSteps > 0 {
		return f.fixedSubSteps
	}
	return 1
}

var _ = Describe("BaseAnimation", func() {
	var phys *fakePhysics
	var anim *animation.BaseAnimation

	BeforeEach(func() {
		phys = &fakePhysics{fixedSubSteps: 2}
		anim = animation.NewBaseAnimation(phys, false)
	})

	It("initializes exactly once on the first update", func() {
		anim.Update(animation.Frame{Index: 0, TimeIntervalInSeconds: 1.0 / 60})
		anim.Update(animation.Frame{Index: 0, TimeIntervalInSeconds: 1.0 / 60})
		Expect(phys.initCount).To(Equal(1))
	})

	It("takes no sub-steps for frame 0, the initial baseline", func() {
		anim.Update(animation.Frame{Index: 0, TimeIntervalInSeconds: 1.0 / 60})
		Expect(phys.subStepCount).To(Equal(0))
	})

	It("drives N sub-timesteps per frame advanced", func() {
		anim.Update(animation.Frame{Index: 1, TimeIntervalInSeconds: 1.0 / 60})
		Expect(phys.subStepCount).To(Equal(2))
		for _, dt := range phys.subStepDts {
			Expect(dt).To(BeNumerically("~", (1.0/60)/2, 1e-12))
		}
	})

	It("is idempotent when re-called with the current frame index", func() {
		anim.Update(animation.Frame{Index: 3, TimeIntervalInSeconds: 1.0 / 60})
		countAfterFirst := phys.subStepCount
		anim.Update(animation.Frame{Index: 3, TimeIntervalInSeconds: 1.0 / 60})
		Expect(phys.subStepCount).To(Equal(countAfterFirst))
		Expect(anim.CurrentFrame().Index).To(Equal(uint32(3)))
	})

	It("rejects a stale frame index as a no-op", func() {
		anim.Update(animation.Frame{Index: 5, TimeIntervalInSeconds: 1.0 / 60})
		countAfterFive := phys.subStepCount
		anim.Update(animation.Frame{Index: 2, TimeIntervalInSeconds: 1.0 / 60})
		Expect(phys.subStepCount).To(Equal(countAfterFive))
		Expect(anim.CurrentFrame().Index).To(Equal(uint32(5)))
	})

	It("steps frame by frame when asked to jump ahead", func() {
		anim.Update(animation.Frame{Index: 4, TimeIntervalInSeconds: 1.0 / 60})
		Expect(phys.subStepCount).To(Equal(4 * 2))
		Expect(anim.CurrentFrame().Index).To(Equal(uint32(4)))
	})

	It("respects useFixedSubTimeSteps by taking exactly one step of the full frame interval", func() {
		anim = animation.NewBaseAnimation(phys, true)
		anim.Update(animation.Frame{Index: 1, TimeIntervalInSeconds: 1.0 / 30})
		Expect(phys.subStepCount).To(Equal(1))
		Expect(phys.subStepDts[0]).To(BeNumerically("~", 1.0/30, 1e-12))
	})

	It("accumulates currentTimeInSeconds across sub-steps", func() {
		anim.Update(animation.Frame{Index: 2, TimeIntervalInSeconds: 1.0 / 60})
		Expect(anim.CurrentTimeInSeconds()).To(BeNumerically("~", 2.0/60, 1e-12))
	})
})
