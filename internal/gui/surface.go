package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface draws into a render texture that is never cleared between
// frames, so translucent fills accumulate into trails.
type Surface struct {
	Target     rl.RenderTexture2D
	Font       rl.Font
	Background rl.Color

	width, height int
	fill          rl.Color
	fontSize      float32
	loaded        bool
	detached      bool
}

func NewSurface(font rl.Font, background color.Color) *Surface {
	return &Surface{Font: font, Background: toRL(background), fill: rl.White}
}

// SetSize recreates the render texture; previous content is lost.
func (s *Surface) SetSize(width, height int) {
	if s.loaded {
		rl.UnloadRenderTexture(s.Target)
	}
	s.width, s.height = width, height
	s.Target = rl.LoadRenderTexture(int32(width), int32(height))
	s.loaded = true

	rl.BeginTextureMode(s.Target)
	rl.ClearBackground(s.Background)
	rl.EndTextureMode()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toRL(c))
}

func (s *Surface) SetFillColor(c color.Color) { s.fill = toRL(c) }

func (s *Surface) SetFont(px int) { s.fontSize = float32(px) }

// FillText treats y as the baseline; raylib positions glyphs by their top
// edge.
func (s *Surface) FillText(r rune, x, y float64) {
	pos := rl.NewVector2(float32(x), float32(y)-s.fontSize)
	rl.DrawTextCodepoint(s.Font, r, pos, s.fontSize, s.fill)
}

func (s *Surface) Available() bool { return s.loaded && !s.detached }

// Present draws the accumulated texture to the window. Render textures are
// stored upside down, hence the negative source height.
func (s *Surface) Present() {
	if !s.loaded {
		return
	}
	src := rl.NewRectangle(0, 0, float32(s.width), -float32(s.height))
	rl.DrawTextureRec(s.Target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

// Unload releases the texture and detaches the surface.
func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.Target)
		s.loaded = false
	}
	s.detached = true
}

func toRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
