// Package trace runs the renderer headless and records when columns reset.
package trace

import (
	"context"
	"image/color"

	"github.com/pkg/errors"

	"github.com/san-kum/glyphrain/internal/host"
	"github.com/san-kum/glyphrain/internal/rain"
)

var ErrNoFrames = errors.New("trace: frame count must be positive")

// Event is one column reset.
type Event struct {
	Frame    uint64  `json:"frame"`
	Column   int     `json:"column"`
	Position float64 `json:"position"`
}

// Recorder implements rain.ResetObserver.
type Recorder struct {
	Events []Event
	frames int
	cols   int
}

func (r *Recorder) OnReset(frame uint64, column int, position float64) {
	r.Events = append(r.Events, Event{Frame: frame, Column: column, Position: position})
}

// Frames is the number of frames the run drew.
func (r *Recorder) Frames() int { return r.frames }

// Columns is the column count at the end of the run.
func (r *Recorder) Columns() int { return r.cols }

// Counts returns resets per frame, indexed from frame 1.
func (r *Recorder) Counts() []float64 {
	counts := make([]float64, r.frames)
	for _, e := range r.Events {
		if i := int(e.Frame) - 1; i >= 0 && i < len(counts) {
			counts[i]++
		}
	}
	return counts
}

type Summary struct {
	Frames                  int     `json:"frames"`
	Columns                 int     `json:"columns"`
	Resets                  int     `json:"resets"`
	MeanResetPosition       float64 `json:"mean_reset_position"`
	MeanFramesBetweenResets float64 `json:"mean_frames_between_resets"`
}

func (r *Recorder) Summary() Summary {
	s := Summary{Frames: r.frames, Columns: r.cols, Resets: len(r.Events)}
	if len(r.Events) == 0 {
		return s
	}
	last := make(map[int]uint64)
	var pos, gap float64
	for _, e := range r.Events {
		pos += e.Position
		gap += float64(e.Frame - last[e.Column])
		last[e.Column] = e.Frame
	}
	s.MeanResetPosition = pos / float64(len(r.Events))
	s.MeanFramesBetweenResets = gap / float64(len(r.Events))
	return s
}

// RunConfig describes a headless run.
type RunConfig struct {
	Options rain.Options
	Width   int
	Height  int
	Frames  int
	// Surface defaults to one that discards all drawing.
	Surface rain.Surface
	// AfterFrame is called after every frame with the 1-based frame number.
	AfterFrame func(frame int)
}

// Run mounts a renderer on a manual host, steps it cfg.Frames times and
// unmounts it. Any observer already in cfg.Options is replaced.
func Run(ctx context.Context, cfg RunConfig) (*Recorder, error) {
	if cfg.Frames <= 0 {
		return nil, ErrNoFrames
	}
	rec := &Recorder{}
	cfg.Options.Observer = rec
	surface := cfg.Surface
	if surface == nil {
		surface = discard{}
	}

	h := host.NewManual(cfg.Width, cfg.Height)
	r := rain.New(cfg.Options)
	r.Mount(surface, h)
	defer r.Unmount()

	n, err := drive(ctx, h, cfg.Frames, cfg.AfterFrame)
	rec.frames, rec.cols = n, r.Columns().Len()
	return rec, err
}

// drive steps h up to frames times and returns how many frames actually
// fired. It stops early when the host has no frame pending.
func drive(ctx context.Context, h *host.Manual, frames int, after func(int)) (int, error) {
	for i := 1; i <= frames; i++ {
		fired, err := h.StepN(ctx, 1)
		if err != nil {
			return i - 1, errors.Wrapf(err, "trace stopped at frame %d", i)
		}
		if fired == 0 {
			return i - 1, nil
		}
		if after != nil {
			after(i)
		}
	}
	return frames, nil
}

type discard struct{}

func (discard) SetSize(int, int)                                         {}
func (discard) FillRect(float64, float64, float64, float64, color.Color) {}
func (discard) SetFillColor(color.Color)                                 {}
func (discard) SetFont(int)                                              {}
func (discard) FillText(rune, float64, float64)                          {}
