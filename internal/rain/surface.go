package rain

import "image/color"

// Surface is the drawing target. Its methods mirror a 2D canvas context:
// coordinates are pixels, FillText draws at a baseline.
type Surface interface {
	SetSize(width, height int)
	FillRect(x, y, w, h float64, c color.Color)
	SetFillColor(c color.Color)
	SetFont(px int)
	FillText(r rune, x, y float64)
}

// availability is implemented by surfaces that can be detached from their host.
type availability interface {
	Available() bool
}

func surfaceAvailable(s Surface) bool {
	if s == nil {
		return false
	}
	if a, ok := s.(availability); ok {
		return a.Available()
	}
	return true
}
