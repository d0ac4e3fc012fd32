// Package replay drives the chart state machine from a YAML gesture script, without a terminal.
// Scripts can express input a terminal cannot produce, such as two-finger pinches.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/dataset"
)

// Script is the decoded YAML document.
//
//	bounds: {left: 0, width: 100}
//	steps:
//	  - pointer_down: 2018-03-05
//	  - pointer_move: 2018-09-03
//	  - pointer_up: true
//	  - wheel: {delta: -1, x: 50}
//	  - touch: [{x: 40, y: 0}, {x: 60, y: 0}]
//	  - overview: {start: 10, end: 40}
//	  - reset: true
type Script struct {
	ZoomFactor float64      `yaml:"zoom_factor,omitempty"`
	Bounds     chart.Bounds `yaml:"bounds"`
	Steps      []Step       `yaml:"steps"`
}

type Step struct {
	PointerDown  *string        `yaml:"pointer_down,omitempty"`
	PointerMove  *string        `yaml:"pointer_move,omitempty"`
	PointerUp    bool           `yaml:"pointer_up,omitempty"`
	PointerLeave bool           `yaml:"pointer_leave,omitempty"`
	Wheel        *WheelStep     `yaml:"wheel,omitempty"`
	Touch        *[]chart.Point `yaml:"touch,omitempty"`
	Overview     *OverviewStep  `yaml:"overview,omitempty"`
	Reset        bool           `yaml:"reset,omitempty"`
}

type WheelStep struct {
	Delta float64 `yaml:"delta"`
	X     float64 `yaml:"x"`
}

type OverviewStep struct {
	Start *int `yaml:"start,omitempty"`
	End   *int `yaml:"end,omitempty"`
}

var ErrAmbiguousStep = errors.New("replay: step must set exactly one action")

// Kind names the action a step carries.
func (s Step) Kind() (string, error) {
	var kinds []string
	if s.PointerDown != nil {
		kinds = append(kinds, "pointer_down")
	}
	if s.PointerMove != nil {
		kinds = append(kinds, "pointer_move")
	}
	if s.PointerUp {
		kinds = append(kinds, "pointer_up")
	}
	if s.PointerLeave {
		kinds = append(kinds, "pointer_leave")
	}
	if s.Wheel != nil {
		kinds = append(kinds, "wheel")
	}
	if s.Touch != nil {
		kinds = append(kinds, "touch")
	}
	if s.Overview != nil {
		kinds = append(kinds, "overview")
	}
	if s.Reset {
		kinds = append(kinds, "reset")
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("%w, got %v", ErrAmbiguousStep, kinds)
	}
	return kinds[0], nil
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("replay: empty script")
		}
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if s.Bounds.Width == 0 {
		s.Bounds.Width = 100
	}
	for i, step := range s.Steps {
		if _, err := step.Kind(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Result is the observable state after one step.
type Result struct {
	Step        int              `json:"step"`
	Kind        string           `json:"kind"`
	Changed     bool             `json:"changed"`
	Viewport    *chart.Viewport  `json:"viewport,omitempty"`
	Selection   *chart.Selection `json:"selection,omitempty"`
	PinchActive bool             `json:"pinchActive"`
	FirstLabel  string           `json:"firstLabel,omitempty"`
	LastLabel   string           `json:"lastLabel,omitempty"`
}

// Run applies every step to a fresh state over d and records the result of each.
func Run(s *Script, d *dataset.Dataset) ([]Result, error) {
	var opts []chart.InterpreterOption
	if s.ZoomFactor != 0 {
		opts = append(opts, chart.WithZoomFactor(s.ZoomFactor))
	}
	state := chart.NewState(d)
	in := chart.NewInterpreter(state, opts...)
	bridge := chart.NewBridge(state)

	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		kind, err := step.Kind()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		var changed bool
		switch kind {
		case "pointer_down":
			in.PointerDown(*step.PointerDown)
		case "pointer_move":
			in.PointerMove(*step.PointerMove)
		case "pointer_up":
			changed = in.PointerUp()
		case "pointer_leave":
			changed = in.PointerLeave()
		case "wheel":
			changed = in.Wheel(step.Wheel.Delta, step.Wheel.X, s.Bounds)
		case "touch":
			changed = in.Touch(*step.Touch, s.Bounds)
		case "overview":
			changed = bridge.OverviewChanged(chart.BrushChange{Start: step.Overview.Start, End: step.Overview.End})
		case "reset":
			changed = state.Reset()
		}

		res := Result{Step: i + 1, Kind: kind, Changed: changed, PinchActive: in.PinchActive()}
		if v, ok := state.Viewport(); ok {
			res.Viewport = &v
			res.FirstLabel = d.Label(v.Left)
			res.LastLabel = d.Label(v.Right)
		}
		if sel, ok := in.Selection(); ok {
			res.Selection = &sel
		}
		results = append(results, res)
	}
	return results, nil
}
