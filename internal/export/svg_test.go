package export

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/glyphrain/internal/viz"
)

func TestSurfaceToSVGNil(t *testing.T) {
	if got := SurfaceToSVG(nil, 8); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestSurfaceToSVG(t *testing.T) {
	s := viz.NewCellSurface(10, 20, color.Black)
	s.SetSize(40, 40)
	s.SetFillColor(color.RGBA{G: 0xff, A: 0xff})
	// baseline at 40 lands on the second row
	s.FillText('Ж', 0, 40)
	s.FillText('<', 10, 40)

	out := SurfaceToSVG(s, 8)
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if n := strings.Count(out, "<text "); n != 2 {
		t.Errorf("expected 2 text elements, got %d", n)
	}
	if !strings.Contains(out, ">Ж</text>") {
		t.Error("missing glyph")
	}
	if !strings.Contains(out, "&lt;</text>") {
		t.Error("glyph not escaped")
	}
	if !strings.Contains(out, `fill="#00ff00"`) {
		t.Error("missing glyph color")
	}
	if !strings.Contains(out, `width="32" height="32"`) {
		t.Errorf("unexpected dimensions:\n%s", out)
	}
}

func TestCountsToSVG(t *testing.T) {
	if got := CountsToSVG([]float64{1}, 100, 50, "#fff"); got != "" {
		t.Errorf("single point should produce nothing, got %q", got)
	}

	out := CountsToSVG([]float64{0, 2, 1, 4}, 300, 100, "#00ff41")
	if !strings.Contains(out, `stroke="#00ff41"`) {
		t.Error("missing stroke color")
	}
	if n := strings.Count(out, " L"); n != 3 {
		t.Errorf("expected 3 line segments, got %d", n)
	}
	if !strings.Contains(out, "M0.0,100.0") {
		t.Errorf("path should start at the bottom left:\n%s", out)
	}
}

func TestCountsToSVGFlat(t *testing.T) {
	out := CountsToSVG([]float64{0, 0, 0}, 100, 50, "#fff")
	if strings.Contains(out, "NaN") {
		t.Error("flat series produced NaN")
	}
}
