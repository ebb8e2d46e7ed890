package trace

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Meta identifies the run an export came from.
type Meta struct {
	Seed   int64 `json:"seed"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
}

// WriteCSV writes one row per reset event.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "column", "position"}); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, e := range r.Events {
		row := []string{
			strconv.FormatUint(e.Frame, 10),
			strconv.Itoa(e.Column),
			strconv.FormatFloat(e.Position, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

type export struct {
	Meta    Meta    `json:"meta"`
	Summary Summary `json:"summary"`
	Events  []Event `json:"events"`
}

// WriteJSON writes the run metadata, summary and events as one document.
func (r *Recorder) WriteJSON(w io.Writer, meta Meta) error {
	events := r.Events
	if events == nil {
		events = []Event{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(export{Meta: meta, Summary: r.Summary(), Events: events}), "encode json")
}
