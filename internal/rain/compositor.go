package rain

import "image/color"

const (
	FadeAlpha      = 0.1
	FontSize       = 15
	ThresholdBase  = 100.0
	ThresholdRange = 10000.0

	// fadeAlpha8 is FadeAlpha on a 0-255 scale, rounded.
	fadeAlpha8 = 26
)

// RandomSource yields values in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ResetObserver is told about every column reset.
type ResetObserver interface {
	OnReset(frame uint64, column int, position float64)
}

// Compositor paints one frame and advances the column state.
type Compositor struct {
	Random   RandomSource
	Fade     color.NRGBA
	Accent   color.Color
	Resample bool
	Palette  Palette
	Observer ResetObserver

	frame uint64
}

// NewCompositor returns a compositor that fades toward background at
// FadeAlpha and draws glyphs in accent.
func NewCompositor(rnd RandomSource, p Palette, background, accent color.Color) *Compositor {
	r, g, b, _ := background.RGBA()
	return &Compositor{
		Random:  rnd,
		Palette: p,
		Fade:    color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: fadeAlpha8},
		Accent:  accent,
	}
}

// Draw runs one tick. An unavailable surface skips the tick entirely and
// leaves the column state untouched. It returns the number of resets.
func (c *Compositor) Draw(s Surface, vp Viewport, store *ColumnStore) int {
	if !surfaceAvailable(s) {
		return 0
	}
	c.frame++

	s.FillRect(0, 0, float64(vp.Width), float64(vp.Height), c.Fade)
	s.SetFillColor(c.Accent)
	s.SetFont(FontSize)

	resets := 0
	for i := 0; i < store.Len(); i++ {
		x := float64(i * CellWidth)
		y := store.Get(i)
		s.FillText(store.Glyph(i), x, y)

		// the threshold is rolled again on every frame for every column
		threshold := ThresholdBase + c.Random.Float64()*ThresholdRange
		if y > threshold {
			store.Set(i, 0)
			if c.Resample && len(c.Palette) > 0 {
				store.setGlyph(i, c.Palette[int(c.Random.Float64()*float64(len(c.Palette)))%len(c.Palette)])
			}
			if c.Observer != nil {
				c.Observer.OnReset(c.frame, i, y)
			}
			resets++
			continue
		}
		store.Set(i, y+CellHeight)
	}
	return resets
}

// Frames returns how many frames were actually drawn.
func (c *Compositor) Frames() uint64 { return c.frame }
