package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/algoviz/internal/step"
)

type FrameData struct {
	Values      []int          `json:"values"`
	Highlighted []int          `json:"highlighted,omitempty"`
	Colors      map[int]string `json:"colors,omitempty"`
}

// Trace is the JSON document for one recorded run.
type Trace struct {
	Algorithm string             `json:"algorithm"`
	Input     []int              `json:"input"`
	State     string             `json:"state"`
	Steps     int                `json:"steps"`
	Frames    []FrameData        `json:"frames"`
	Final     []int              `json:"final"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func NewTrace(algorithm string, input []int, frames []step.Frame, o step.Outcome) Trace {
	data := Trace{
		Algorithm: algorithm,
		Input:     input,
		State:     o.State.String(),
		Steps:     len(frames),
		Frames:    make([]FrameData, len(frames)),
		Final:     o.Values,
		Metrics:   o.Metrics,
	}
	if data.Input == nil {
		data.Input = []int{}
	}
	if data.Final == nil {
		data.Final = []int{}
	}

	for i, f := range frames {
		fd := FrameData{Values: f.Values, Highlighted: f.Highlighted}
		if len(f.Colors) > 0 {
			fd.Colors = make(map[int]string, len(f.Colors))
			for idx, c := range f.Colors {
				fd.Colors[idx] = string(c)
			}
		}
		data.Frames[i] = fd
	}
	return data
}

func WriteJSON(w io.Writer, t Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func ExportJSON(path string, t Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, t)
}
