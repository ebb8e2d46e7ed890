package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/glyphrain/internal/rain"
	"github.com/san-kum/glyphrain/internal/viz"
)

// Config for the desktop window host.
type Config struct {
	Width, Height int
	FPS           int
	FontPath      string
	Theme         viz.Theme
	Header        viz.Header
	ShowHeader    bool
}

// Window is a rain.Host backed by a raylib window. Frames and resizes are
// delivered from the raylib main loop, on the goroutine that called Run.
type Window struct {
	cfg       Config
	surface   *Surface
	pending   func()
	seq       uint64
	listeners map[uint64]func(int, int)
	nextID    uint64
	log       *log.Entry
}

func NewWindow(cfg Config, logger *log.Entry) *Window {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Window{
		cfg:       cfg,
		listeners: make(map[uint64]func(int, int)),
		log:       logger.WithField("component", "gui"),
	}
}

func (w *Window) Viewport() (int, int) { return rl.GetScreenWidth(), rl.GetScreenHeight() }

func (w *Window) RequestFrame(fn func()) func() {
	w.seq++
	seq := w.seq
	w.pending = fn
	return func() {
		if w.seq == seq {
			w.pending = nil
		}
	}
}

func (w *Window) OnResize(fn func(int, int)) func() {
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() { delete(w.listeners, id) }
}

// notifyResize tells every listener about the new window size before the
// next frame is drawn.
func (w *Window) notifyResize(width, height int) {
	for _, fn := range w.listeners {
		fn(width, height)
	}
}

// initWindow opens a resizable window at the configured size and rate.
func (w *Window) initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w.cfg.Width), int32(w.cfg.Height), w.cfg.Header.Title)
	rl.SetTargetFPS(int32(w.cfg.FPS))
	rl.SetExitKey(0)
}

// loadFont bakes the palette glyphs into the font atlas. Without a font
// path raylib's built-in font is used, which only covers ASCII.
func loadFont(path string, glyphs []rune) rl.Font {
	if path == "" {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(path, 32, glyphs, int32(len(glyphs)))
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window, mounts r and blocks until the window is closed.
func (w *Window) Run(r *rain.Renderer) {
	w.initWindow()
	defer rl.CloseWindow()

	font := loadFont(w.cfg.FontPath, r.Palette())
	w.surface = NewSurface(font, w.cfg.Theme.BackgroundColor())
	defer w.surface.Unload()

	r.Mount(w.surface, w)
	defer r.Unmount()
	w.log.WithField("size", [2]int{w.cfg.Width, w.cfg.Height}).Info("window open")

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		if rl.IsKeyPressed(rl.KeyH) {
			w.cfg.ShowHeader = !w.cfg.ShowHeader
		}
		if rl.IsWindowResized() {
			w.notifyResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		w.frame()
		w.draw(font)
	}
}

func (w *Window) frame() {
	fn := w.pending
	if fn == nil {
		return
	}
	w.pending = nil
	rl.BeginTextureMode(w.surface.Target)
	fn()
	rl.EndTextureMode()
}

func (w *Window) draw(font rl.Font) {
	rl.BeginDrawing()
	rl.ClearBackground(w.surface.Background)
	w.surface.Present()
	if w.cfg.ShowHeader {
		w.drawHeader(font)
	}
	rl.EndDrawing()
}

func (w *Window) drawHeader(font rl.Font) {
	width := float32(rl.GetScreenWidth())
	titleSize, tagSize := float32(48), float32(22)

	title := w.cfg.Header.Title
	ts := rl.MeasureTextEx(font, title, titleSize, 2)
	rl.DrawTextEx(font, title, rl.NewVector2((width-ts.X)/2, 80), titleSize, 2, toRL(viz.ToColor(w.cfg.Theme.Title)))

	tag := w.cfg.Header.Tagline
	gs := rl.MeasureTextEx(font, tag, tagSize, 1)
	rl.DrawTextEx(font, tag, rl.NewVector2((width-gs.X)/2, 80+ts.Y+16), tagSize, 1, toRL(viz.ToColor(w.cfg.Theme.Text)))
}
