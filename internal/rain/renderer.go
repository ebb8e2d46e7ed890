package rain

import (
	"image/color"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Host is everything the renderer needs from whoever mounts it.
type Host interface {
	Scheduler
	Viewport() (width, height int)
	OnResize(fn func(width, height int)) (remove func())
}

type Options struct {
	GlyphBase  rune
	Resample   bool
	Background color.Color
	Accent     color.Color
	Random     RandomSource
	Observer   ResetObserver
	Logger     *log.Entry
}

// Renderer ties the palette, column store, resize coordinator, compositor
// and driver to one surface for one mount.
type Renderer struct {
	palette Palette
	store   *ColumnStore
	coord   *ResizeCoordinator
	comp    *Compositor
	driver  *Driver
	surface Surface
	unsub   func()
	mounted bool
	log     *log.Entry
}

func New(opts Options) *Renderer {
	if opts.GlyphBase == 0 {
		opts.GlyphBase = DefaultGlyphBase
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.Accent == nil {
		opts.Accent = color.NRGBA{G: 0xff, A: 0xff}
	}
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewSource(rand.Int63()))
	}
	if opts.Logger == nil {
		opts.Logger = log.NewEntry(log.StandardLogger())
	}

	p := NewPalette(opts.GlyphBase)
	store := NewColumnStore(p)
	comp := NewCompositor(opts.Random, p, opts.Background, opts.Accent)
	comp.Resample = opts.Resample
	comp.Observer = opts.Observer

	return &Renderer{
		palette: p,
		store:   store,
		coord:   NewResizeCoordinator(store),
		comp:    comp,
		log:     opts.Logger.WithField("component", "rain"),
	}
}

// Mount sizes the surface to the host viewport, initializes the columns,
// subscribes to resizes and starts the frame loop. A nil surface leaves
// the renderer inert. Mounting twice is ignored.
func (r *Renderer) Mount(s Surface, h Host) {
	if r.mounted || r.driver != nil {
		r.log.Debug("mount ignored: renderer already used")
		return
	}
	r.driver = NewDriver(h, r.tick)
	if s == nil {
		r.log.Debug("no surface, animation disabled")
		return
	}
	r.surface = s
	r.mounted = true

	w, hh := h.Viewport()
	r.resize(w, hh)
	r.unsub = h.OnResize(r.resize)
	r.driver.Start()
	r.log.WithFields(log.Fields{"width": w, "height": hh, "columns": r.coord.Columns()}).Debug("mounted")
}

// Unmount cancels the frame loop and removes the resize listener. It is
// safe to call more than once, and before Mount.
func (r *Renderer) Unmount() {
	if r.driver != nil {
		r.driver.Cancel()
	}
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
	if r.mounted {
		r.log.WithField("frames", r.driver.Frames()).Debug("unmounted")
	}
	r.surface = nil
	r.mounted = false
}

func (r *Renderer) resize(width, height int) {
	if r.surface != nil {
		r.surface.SetSize(width, height)
	}
	r.coord.Resize(width, height)
}

func (r *Renderer) tick() {
	r.comp.Draw(r.surface, r.coord.Viewport(), r.store)
}

func (r *Renderer) Palette() Palette { return r.palette }

func (r *Renderer) Columns() *ColumnStore { return r.store }

func (r *Renderer) Viewport() Viewport { return r.coord.Viewport() }

// State reports the driver state; Idle before Mount.
func (r *Renderer) State() State {
	if r.driver == nil {
		return Idle
	}
	return r.driver.State()
}

// Frames returns the number of ticks driven so far.
func (r *Renderer) Frames() uint64 {
	if r.driver == nil {
		return 0
	}
	return r.driver.Frames()
}
