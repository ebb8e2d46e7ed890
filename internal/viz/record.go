package viz

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	recordCharW = 8
	recordCharH = 16
	shades      = 32
)

// Recorder captures CellSurface frames as paletted images. Each lit cell
// becomes a block in its glyph color, quantized to a ramp between the
// theme background and accent.
type Recorder struct {
	Delay   int // hundredths of a second per frame
	palette color.Palette
	frames  []*image.Paletted
}

func NewRecorder(t Theme, delay int) *Recorder {
	bg, err := colorful.Hex(string(t.Background))
	if err != nil {
		bg = colorful.Color{}
	}
	fg, err := colorful.Hex(string(t.Accent))
	if err != nil {
		fg = colorful.Color{R: 1, G: 1, B: 1}
	}
	pal := make(color.Palette, shades)
	for i := range pal {
		c := bg.BlendRgb(fg, float64(i)/float64(shades-1)).Clamped()
		r, g, b := c.RGB255()
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	if delay <= 0 {
		delay = 2
	}
	return &Recorder{Delay: delay, palette: pal}
}

// Capture appends the current surface contents as a frame.
func (r *Recorder) Capture(s *CellSurface) {
	img := image.NewPaletted(image.Rect(0, 0, s.Width*recordCharW, s.Height*recordCharH), r.palette)
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			cell := s.Grid[row][col]
			if cell.Glyph == ' ' {
				continue
			}
			r8, g8, b8 := cell.Color.Clamped().RGB255()
			idx := uint8(r.palette.Index(color.RGBA{R: r8, G: g8, B: b8, A: 0xff}))
			baseX, baseY := col*recordCharW, row*recordCharH
			// leave a one pixel gutter so neighbouring glyphs stay distinct
			for py := 1; py < recordCharH-1; py++ {
				for px := 1; px < recordCharW-1; px++ {
					img.SetColorIndex(baseX+px, baseY+py, idx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) Frames() int { return len(r.frames) }

// Encode writes all captured frames as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}
