package rain

import (
	"fmt"
	"image/color"
)

type op struct {
	kind string
	r    rune
	x, y float64
	w, h float64
	c    color.Color
	px   int
}

type recordingSurface struct {
	ops      []op
	width    int
	height   int
	detached bool
}

func (s *recordingSurface) SetSize(w, h int) { s.width, s.height = w, h }

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.ops = append(s.ops, op{kind: "rect", x: x, y: y, w: w, h: h, c: c})
}

func (s *recordingSurface) SetFillColor(c color.Color) {
	s.ops = append(s.ops, op{kind: "fill", c: c})
}

func (s *recordingSurface) SetFont(px int) {
	s.ops = append(s.ops, op{kind: "font", px: px})
}

func (s *recordingSurface) FillText(r rune, x, y float64) {
	s.ops = append(s.ops, op{kind: "text", r: r, x: x, y: y})
}

func (s *recordingSurface) Available() bool { return !s.detached }

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, o := range s.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

// fixedRandom returns the same value forever.
type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

// seqRandom replays values in order and panics when exhausted.
type seqRandom struct {
	vals []float64
	i    int
}

func (s *seqRandom) Float64() float64 {
	if s.i >= len(s.vals) {
		panic(fmt.Sprintf("seqRandom exhausted after %d draws", s.i))
	}
	v := s.vals[s.i]
	s.i++
	return v
}

type resetEvent struct {
	frame  uint64
	column int
	pos    float64
}

type resetLog []resetEvent

func (l *resetLog) OnReset(frame uint64, column int, pos float64) {
	*l = append(*l, resetEvent{frame, column, pos})
}
