package rain

// Column is the mutable record for one vertical slot.
type Column struct {
	Position float64
	Glyph    rune
}

// ColumnStore owns the per-column state. It is mutated from a single
// goroutine only: the resize path replaces it, the compositor advances it.
type ColumnStore struct {
	palette Palette
	cols    []Column
}

func NewColumnStore(p Palette) *ColumnStore {
	return &ColumnStore{palette: p}
}

// Init replaces the column slice with n zeroed columns. Nothing carries
// over from the previous slice.
func (s *ColumnStore) Init(n int) {
	if n < 0 {
		n = 0
	}
	cols := make([]Column, n)
	for i := range cols {
		cols[i].Glyph = s.palette.Glyph(i)
	}
	s.cols = cols
}

func (s *ColumnStore) Len() int { return len(s.cols) }

// Get panics when i is outside [0, Len()).
func (s *ColumnStore) Get(i int) float64 { return s.cols[i].Position }

// Set panics when i is outside [0, Len()).
func (s *ColumnStore) Set(i int, pos float64) { s.cols[i].Position = pos }

func (s *ColumnStore) Glyph(i int) rune { return s.cols[i].Glyph }

func (s *ColumnStore) setGlyph(i int, r rune) { s.cols[i].Glyph = r }

// Positions returns a copy of every column position.
func (s *ColumnStore) Positions() []float64 {
	out := make([]float64, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.Position
	}
	return out
}
