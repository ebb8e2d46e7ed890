package rain

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glyphrain/internal/host"
)

func zeros(n int) []float64 { return make([]float64, n) }

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

var _ = Describe("Renderer", func() {
	var (
		h    *host.Manual
		surf *recordingSurface
		r    *Renderer
	)

	BeforeEach(func() {
		h = host.NewManual(800, 600)
		surf = &recordingSurface{}
		r = New(Options{Random: fixedRandom(0.5)})
	})

	Context("when mounted on an 800x600 viewport", func() {
		BeforeEach(func() { r.Mount(surf, h) })

		It("sizes the surface to the viewport", func() {
			Expect(surf.width).To(Equal(800))
			Expect(surf.height).To(Equal(600))
		})

		It("starts with 41 zeroed columns", func() {
			Expect(r.Columns().Positions()).To(Equal(zeros(41)))
			Expect(r.State()).To(Equal(Running))
			Expect(h.Listeners()).To(Equal(1))
		})

		It("advances every column by one cell on the first tick", func() {
			h.Step()
			Expect(r.Columns().Positions()).To(Equal(filled(41, 20)))
			Expect(surf.count("text")).To(Equal(41))
		})

		It("rebuilds the columns synchronously on resize", func() {
			h.Step()
			h.Step()
			h.Resize(400, 600)

			Expect(surf.width).To(Equal(400))
			Expect(r.Columns().Positions()).To(Equal(zeros(21)))

			surf.ops = nil
			h.Step()
			Expect(surf.count("text")).To(Equal(21))
			for _, o := range surf.ops {
				if o.kind == "text" {
					Expect(o.y).To(BeZero())
				}
			}
			Expect(r.Columns().Positions()).To(Equal(filled(21, 20)))
		})

		It("stops drawing after unmount and drops the resize listener", func() {
			h.Step()
			drawn := len(surf.ops)
			r.Unmount()
			r.Unmount()

			Expect(r.State()).To(Equal(Cancelled))
			Expect(h.Listeners()).To(BeZero())
			Expect(h.Step()).To(BeFalse())
			Expect(surf.ops).To(HaveLen(drawn))
		})

		It("ignores a second mount", func() {
			other := &recordingSurface{}
			r.Mount(other, h)
			h.Step()
			Expect(other.ops).To(BeEmpty())
			Expect(h.Listeners()).To(Equal(1))
		})
	})

	It("issues no draw calls when unmounted before the first tick", func() {
		r.Mount(surf, h)
		r.Unmount()

		Expect(h.Step()).To(BeFalse())
		Expect(surf.ops).To(BeEmpty())
		Expect(h.Listeners()).To(BeZero())
		Expect(r.Frames()).To(BeZero())
	})

	It("stays inert without a surface", func() {
		r.Mount(nil, h)
		Expect(h.Pending()).To(BeFalse())
		Expect(h.Listeners()).To(BeZero())
		Expect(r.Unmount).NotTo(Panic())
		Expect(r.State()).To(Equal(Idle))

		r.Mount(surf, h)
		Expect(h.Pending()).To(BeFalse())
		Expect(surf.ops).To(BeEmpty())
	})

	It("tolerates unmount before mount", func() {
		Expect(r.Unmount).NotTo(Panic())
		Expect(r.State()).To(Equal(Idle))
	})

	It("reproduces the same reset sequence for the same seed", func() {
		run := func() resetLog {
			var log resetLog
			hh := host.NewManual(640, 480)
			rr := New(Options{Random: rand.New(rand.NewSource(99)), Observer: &log})
			rr.Mount(&recordingSurface{}, hh)
			_, err := hh.StepN(context.Background(), 800)
			Expect(err).NotTo(HaveOccurred())
			rr.Unmount()
			return log
		}
		first := run()
		Expect(first).NotTo(BeEmpty())
		Expect(run()).To(Equal(first))
	})
})
