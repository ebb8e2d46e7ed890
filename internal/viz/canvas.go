package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one terminal character position.
type Cell struct {
	Glyph rune
	Color colorful.Color
}

// fadeFloor is the RGB distance below which a fading glyph is considered gone.
const fadeFloor = 0.02

// CellSurface is a terminal-backed drawing surface. Pixel coordinates are
// mapped onto a grid of CellW x CellH pixel cells.
type CellSurface struct {
	Width, Height int
	CellW, CellH  int
	Background    colorful.Color
	Grid          [][]Cell

	fill     colorful.Color
	font     int
	detached bool
}

func NewCellSurface(cellW, cellH int, background color.Color) *CellSurface {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	bg, _ := colorful.MakeColor(background)
	return &CellSurface{CellW: cellW, CellH: cellH, Background: bg, fill: bg}
}

// SetSize reallocates the grid to cover width x height pixels. Existing
// content is discarded.
func (c *CellSurface) SetSize(width, height int) {
	c.Width = ceilDiv(width, c.CellW)
	c.Height = ceilDiv(height, c.CellH)
	c.Grid = make([][]Cell, c.Height)
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, c.Width)
	}
	c.Clear()
}

// Clear resets every cell to a blank background cell.
func (c *CellSurface) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = Cell{Glyph: ' ', Color: c.Background}
		}
	}
}

// FillRect blends every cell touched by the rectangle toward col by its
// alpha. Glyphs that fade into the fill color are dropped.
func (c *CellSurface) FillRect(x, y, w, h float64, col color.Color) {
	target, alpha := splitAlpha(col)
	if alpha == 0 {
		return
	}
	x0, y0 := clamp(int(x)/c.CellW, 0, c.Width), clamp(int(y)/c.CellH, 0, c.Height)
	x1, y1 := clamp(ceilDiv(int(x+w), c.CellW), 0, c.Width), clamp(ceilDiv(int(y+h), c.CellH), 0, c.Height)
	for row := y0; row < y1; row++ {
		for cx := x0; cx < x1; cx++ {
			cell := &c.Grid[row][cx]
			cell.Color = cell.Color.BlendRgb(target, alpha)
			if cell.Glyph != ' ' && cell.Color.DistanceRgb(target) < fadeFloor {
				cell.Glyph = ' '
				cell.Color = target
			}
		}
	}
}

func (c *CellSurface) SetFillColor(col color.Color) {
	c.fill, _ = splitAlpha(col)
}

func (c *CellSurface) SetFont(px int) { c.font = px }

func (c *CellSurface) Font() int { return c.font }

// FillText draws r with its baseline at y, so the glyph occupies the cell
// row above the baseline. Glyphs outside the grid are dropped.
func (c *CellSurface) FillText(r rune, x, y float64) {
	if x < 0 || y < 0 {
		return
	}
	col := int(x) / c.CellW
	row := int(y)/c.CellH - 1
	if row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = Cell{Glyph: r, Color: c.fill}
}

// Available reports whether the surface is still attached to a host.
func (c *CellSurface) Available() bool { return !c.detached }

// Detach marks the surface unavailable; later draw calls from a stale
// renderer are skipped by the compositor.
func (c *CellSurface) Detach() { c.detached = true }

// String returns the glyphs without color.
func (c *CellSurface) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		for _, cell := range row {
			b.WriteRune(cell.Glyph)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Lines renders each row with its glyph colors. Runs of equal color share
// one style.
func (c *CellSurface) Lines() []string {
	lines := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		var b strings.Builder
		var run strings.Builder
		runHex := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Render(run.String()))
			}
			run.Reset()
		}
		for _, cell := range row {
			hex := ""
			if cell.Glyph != ' ' {
				hex = cell.Color.Clamped().Hex()
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(cell.Glyph)
		}
		flush()
		lines[i] = b.String()
	}
	return lines
}

// Render joins Lines with newlines.
func (c *CellSurface) Render() string {
	return strings.Join(c.Lines(), "\n")
}

// Lit returns the number of cells currently showing a glyph.
func (c *CellSurface) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell.Glyph != ' ' {
				n++
			}
		}
	}
	return n
}

func splitAlpha(col color.Color) (colorful.Color, float64) {
	_, _, _, a := col.RGBA()
	if a == 0 {
		return colorful.Color{}, 0
	}
	c, _ := colorful.MakeColor(col)
	return c, float64(a) / 0xffff
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
