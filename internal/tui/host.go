package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is delivered once per display refresh for the request tagged Seq.
type FrameMsg struct {
	Seq uint64
	At  time.Time
}

// TeaHost implements rain.Host on top of the Bubble Tea update loop. It is
// only touched from Update, so it needs no locking.
type TeaHost struct {
	interval     time.Duration
	cellW, cellH int
	width        int
	height       int

	seq     uint64
	pending func()
	issued  bool

	listeners map[uint64]func(int, int)
	nextID    uint64
}

func NewTeaHost(fps, cellW, cellH int) *TeaHost {
	if fps <= 0 {
		fps = 60
	}
	return &TeaHost{
		interval:  time.Second / time.Duration(fps),
		cellW:     cellW,
		cellH:     cellH,
		listeners: make(map[uint64]func(int, int)),
	}
}

// SetTerminalSize records the terminal size without notifying listeners.
func (h *TeaHost) SetTerminalSize(cols, rows int) {
	h.width, h.height = cols*h.cellW, rows*h.cellH
}

func (h *TeaHost) Viewport() (int, int) { return h.width, h.height }

func (h *TeaHost) RequestFrame(fn func()) func() {
	h.seq++
	seq := h.seq
	h.pending = fn
	h.issued = false
	return func() {
		if h.seq == seq {
			h.pending = nil
		}
	}
}

func (h *TeaHost) OnResize(fn func(int, int)) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

// Cmd returns the tick command for the outstanding frame request, once.
func (h *TeaHost) Cmd() tea.Cmd {
	if h.pending == nil || h.issued {
		return nil
	}
	h.issued = true
	seq := h.seq
	return tea.Tick(h.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Seq: seq, At: t}
	})
}

// HandleFrame runs the pending callback if msg belongs to it. Stale ticks
// from cancelled or superseded requests are dropped.
func (h *TeaHost) HandleFrame(msg FrameMsg) bool {
	if msg.Seq != h.seq || h.pending == nil {
		return false
	}
	fn := h.pending
	h.pending = nil
	fn()
	return true
}

// HandleResize converts the terminal size to pixels and notifies listeners
// before returning, so the next frame sees the new state.
func (h *TeaHost) HandleResize(msg tea.WindowSizeMsg) {
	h.SetTerminalSize(msg.Width, msg.Height)
	for _, fn := range h.listeners {
		fn(h.width, h.height)
	}
}

func (h *TeaHost) Listeners() int { return len(h.listeners) }
