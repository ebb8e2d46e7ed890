package rain

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glyphrain/internal/host"
)

var _ = Describe("Driver", func() {
	var (
		h      *host.Manual
		ticks  int
		driver *Driver
	)

	BeforeEach(func() {
		h = host.NewManual(800, 600)
		ticks = 0
		driver = NewDriver(h, func() { ticks++ })
	})

	It("starts idle without requesting frames", func() {
		Expect(driver.State()).To(Equal(Idle))
		Expect(h.Pending()).To(BeFalse())
	})

	It("runs one tick per host frame once started", func() {
		Expect(driver.Start()).To(BeTrue())
		Expect(driver.State()).To(Equal(Running))

		for i := 0; i < 3; i++ {
			Expect(h.Step()).To(BeTrue())
		}
		Expect(ticks).To(Equal(3))
		Expect(driver.Frames()).To(BeNumerically("==", 3))
		Expect(h.Pending()).To(BeTrue())
	})

	It("refuses a second start", func() {
		driver.Start()
		Expect(driver.Start()).To(BeFalse())
	})

	It("stops ticking after cancel and withdraws the pending frame", func() {
		driver.Start()
		h.Step()
		driver.Cancel()

		Expect(driver.State()).To(Equal(Cancelled))
		Expect(h.Pending()).To(BeFalse())
		Expect(h.Step()).To(BeFalse())
		Expect(ticks).To(Equal(1))
	})

	It("treats repeated cancel as a no-op", func() {
		driver.Start()
		driver.Cancel()
		Expect(driver.Cancel).NotTo(Panic())
		Expect(driver.State()).To(Equal(Cancelled))
		Expect(ticks).To(BeZero())
	})

	It("ignores cancel while idle and can still be started", func() {
		driver.Cancel()
		Expect(driver.State()).To(Equal(Idle))
		Expect(h.Pending()).To(BeFalse())

		Expect(driver.Start()).To(BeTrue())
		Expect(driver.State()).To(Equal(Running))
		Expect(h.Step()).To(BeTrue())
		Expect(ticks).To(Equal(1))
	})

	It("cannot be restarted once cancelled", func() {
		driver.Start()
		driver.Cancel()
		Expect(driver.Start()).To(BeFalse())
		Expect(h.Pending()).To(BeFalse())
	})

	It("does not re-arm when a tick cancels the driver", func() {
		driver = NewDriver(h, func() {
			ticks++
			driver.Cancel()
		})
		driver.Start()
		h.Step()

		Expect(ticks).To(Equal(1))
		Expect(h.Pending()).To(BeFalse())
	})

	It("ignores a frame that fires after cancel", func() {
		var fire func()
		sched := schedulerFunc(func(fn func()) func() {
			fire = fn
			return func() {}
		})
		driver = NewDriver(sched, func() { ticks++ })
		driver.Start()
		driver.Cancel()

		fire()
		Expect(ticks).To(BeZero())
	})

	DescribeTable("state names",
		func(s State, name string) {
			Expect(s.String()).To(Equal(name))
		},
		Entry("idle", Idle, "idle"),
		Entry("running", Running, "running"),
		Entry("cancelled", Cancelled, "cancelled"),
		Entry("unknown", State(9), "unknown"),
	)
})

// schedulerFunc ignores cancellation so late frames can be simulated.
type schedulerFunc func(fn func()) func()

func (f schedulerFunc) RequestFrame(fn func()) func() { return f(fn) }
