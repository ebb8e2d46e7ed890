// Package host provides a caller-driven rain.Host for headless runs and tests.
package host

import "context"

// Manual delivers frames only when the caller asks. All methods must be
// called from one goroutine.
type Manual struct {
	width, height int
	pending       func()
	seq           uint64
	listeners     map[uint64]func(int, int)
	nextID        uint64
	fired         uint64
}

func NewManual(width, height int) *Manual {
	return &Manual{
		width:     width,
		height:    height,
		listeners: make(map[uint64]func(int, int)),
	}
}

func (m *Manual) Viewport() (int, int) { return m.width, m.height }

// RequestFrame replaces any outstanding request.
func (m *Manual) RequestFrame(fn func()) func() {
	m.seq++
	seq := m.seq
	m.pending = fn
	return func() {
		if m.seq == seq {
			m.pending = nil
		}
	}
}

func (m *Manual) OnResize(fn func(int, int)) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// Step fires the pending frame, if any, and reports whether one ran.
func (m *Manual) Step() bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	m.fired++
	fn()
	return true
}

// StepN fires up to n frames. It stops early when no frame is pending or
// ctx is done, and returns the number of frames fired.
func (m *Manual) StepN(ctx context.Context, n int) (int, error) {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		default:
		}
		if !m.Step() {
			return i, nil
		}
	}
	return n, nil
}

// Resize updates the viewport and notifies every listener synchronously.
func (m *Manual) Resize(width, height int) {
	m.width, m.height = width, height
	for _, fn := range m.listeners {
		fn(width, height)
	}
}

func (m *Manual) Pending() bool { return m.pending != nil }

func (m *Manual) Listeners() int { return len(m.listeners) }

// Fired returns the number of frames delivered so far.
func (m *Manual) Fired() uint64 { return m.fired }
