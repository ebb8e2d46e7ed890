package rain

// PaletteSize is the number of contiguous code points in a palette.
const PaletteSize = 128

// DefaultGlyphBase is the first code point of the default palette (Cyrillic block).
const DefaultGlyphBase rune = 0x0400

// Palette is a fixed run of contiguous code points shared by every column.
type Palette []rune

// NewPalette returns PaletteSize contiguous code points starting at base.
func NewPalette(base rune) Palette {
	p := make(Palette, PaletteSize)
	for i := range p {
		p[i] = base + rune(i)
	}
	return p
}

// Glyph returns the glyph assigned to column i.
func (p Palette) Glyph(i int) rune {
	if len(p) == 0 {
		return ' '
	}
	return p[i%len(p)]
}
