package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/glyphrain/internal/viz"
)

// SurfaceToSVG converts the current contents of a cell surface to a static
// SVG image, one text element per lit cell. Each cell is scale pixels per
// terminal column and twice that per row.
func SurfaceToSVG(s *viz.CellSurface, scale float64) string {
	if s == nil {
		return ""
	}
	if scale <= 0 {
		scale = 8
	}

	cellW := scale
	cellH := scale * 2
	width := float64(s.Width) * cellW
	height := float64(s.Height) * cellH

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.1f">
`, width, height, width, height, s.Background.Clamped().Hex(), cellH*0.75))

	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			cell := s.Grid[row][col]
			if cell.Glyph == ' ' {
				continue
			}
			// text y is the baseline, so anchor at the bottom of the cell
			x := float64(col) * cellW
			y := float64(row+1)*cellH - cellH*0.2
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x, y, cell.Color.Clamped().Hex(), html.EscapeString(string(cell.Glyph))))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CountsToSVG plots per-frame reset counts as a polyline.
func CountsToSVG(counts []float64, width, height int, strokeColor string) string {
	if len(counts) < 2 {
		return ""
	}

	maxY := counts[0]
	for _, c := range counts {
		if c > maxY {
			maxY = c
		}
	}
	if maxY == 0 {
		maxY = 1
	}
	// headroom
	maxY *= 1.1
	stepX := float64(width) / float64(len(counts)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, c := range counts {
		x := float64(i) * stepX
		y := float64(height) - c/maxY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
