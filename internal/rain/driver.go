package rain

// Scheduler is the host's display-refresh hook. RequestFrame arranges for
// fn to run once on the next refresh; the returned func withdraws the
// request if it has not fired yet.
type Scheduler interface {
	RequestFrame(fn func()) (cancel func())
}

type State int

const (
	Idle State = iota
	Running
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Driver invokes tick once per host frame until cancelled.
// Idle -> Running -> Cancelled; there is no way back from Cancelled.
type Driver struct {
	sched   Scheduler
	tick    func()
	state   State
	pending func()
	frames  uint64
}

func NewDriver(sched Scheduler, tick func()) *Driver {
	return &Driver{sched: sched, tick: tick}
}

// Start moves an idle driver to Running and requests the first frame.
// It reports whether the transition happened.
func (d *Driver) Start() bool {
	if d.state != Idle {
		return false
	}
	d.state = Running
	d.arm()
	return true
}

// Cancel stops a running driver for good. On an idle or already
// cancelled driver it is a no-op.
func (d *Driver) Cancel() {
	if d.state != Running {
		return
	}
	d.state = Cancelled
	if d.pending != nil {
		d.pending()
		d.pending = nil
	}
}

func (d *Driver) State() State { return d.state }

// Frames returns the number of ticks run so far.
func (d *Driver) Frames() uint64 { return d.frames }

func (d *Driver) arm() {
	d.pending = d.sched.RequestFrame(d.fire)
}

func (d *Driver) fire() {
	d.pending = nil
	if d.state != Running {
		return
	}
	d.tick()
	d.frames++
	if d.state == Running {
		d.arm()
	}
}
