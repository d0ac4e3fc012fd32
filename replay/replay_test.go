package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/dataset"
)

const scenario = `
bounds: {left: 0, width: 100}
steps:
  - pointer_down: 2018-03-12
  - pointer_move: 2018-10-08
  - pointer_up: true
  - reset: true
  - wheel: {delta: -1, x: 50}
  - touch: [{x: 40, y: 0}, {x: 60, y: 0}]
  - touch: [{x: 30, y: 0}, {x: 70, y: 0}]
  - touch: [{x: 30, y: 0}]
  - overview: {start: 3}
`

func weather(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Generate(dataset.DefaultGenerateOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d
}

func TestRunScenario(t *testing.T) {
	script, err := Parse(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := weather(t)
	results, err := Run(script, d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 9 {
		t.Fatalf("got %d results, want 9", len(results))
	}

	last := d.Len() - 1
	want := []struct {
		kind    string
		changed bool
		vp      chart.Viewport
		pinch   bool
	}{
		{"pointer_down", false, chart.Viewport{Left: 0, Right: last}, false},
		{"pointer_move", false, chart.Viewport{Left: 0, Right: last}, false},
		{"pointer_up", true, chart.Viewport{Left: 10, Right: 40}, false},
		{"reset", true, chart.Viewport{Left: 0, Right: last}, false},
		{"wheel", true, chart.Viewport{Left: 16, Right: 317}, false},
		{"touch", false, chart.Viewport{Left: 16, Right: 317}, true},
		{"touch", true, chart.Viewport{Left: 31, Right: 301}, true},
		{"touch", false, chart.Viewport{Left: 31, Right: 301}, false},
		{"overview", true, chart.Viewport{Left: 3, Right: last}, false},
	}
	for i, w := range want {
		r := results[i]
		if r.Kind != w.kind || r.Changed != w.changed || r.PinchActive != w.pinch {
			t.Errorf("step %d: got kind=%s changed=%v pinch=%v, want %s %v %v", i+1, r.Kind, r.Changed, r.PinchActive, w.kind, w.changed, w.pinch)
		}
		if r.Viewport == nil || *r.Viewport != w.vp {
			t.Errorf("step %d: viewport = %v, want %s", i+1, r.Viewport, w.vp)
		}
	}

	if results[1].Selection == nil || results[1].Selection.Cursor != 40 {
		t.Errorf("selection after move = %+v", results[1].Selection)
	}
	if results[2].FirstLabel != "2018-03-12" || results[2].LastLabel != "2018-10-08" {
		t.Errorf("labels after drag = %s..%s", results[2].FirstLabel, results[2].LastLabel)
	}
}

func TestParseRejectsAmbiguousStep(t *testing.T) {
	_, err := Parse(strings.NewReader("steps:\n  - {pointer_up: true, reset: true}\n"))
	if !errors.Is(err, ErrAmbiguousStep) {
		t.Fatalf("err = %v, want ErrAmbiguousStep", err)
	}
	_, err = Parse(strings.NewReader("steps:\n  - {}\n"))
	if !errors.Is(err, ErrAmbiguousStep) {
		t.Fatalf("empty step err = %v, want ErrAmbiguousStep", err)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse(strings.NewReader("steps:\n  - {pinch: 3}\n")); err == nil {
		t.Fatal("unknown step field should be rejected")
	}
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatal("empty script should be rejected")
	}
}

func TestParseFileDefaultsBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - reset: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if s.Bounds.Width != 100 {
		t.Errorf("default width = %g, want 100", s.Bounds.Width)
	}
}

func TestRunOnEmptyDataset(t *testing.T) {
	script, err := Parse(strings.NewReader(scenario))
	if err != nil {
		t.Fatal(err)
	}
	results, err := Run(script, dataset.Empty("v"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range results {
		if r.Changed || r.Viewport != nil {
			t.Fatalf("step %d changed an empty dataset: %+v", r.Step, r)
		}
	}
}
