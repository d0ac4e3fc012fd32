// Package chart is the viewport/selection state machine behind the zoomable chart.
//
// State owns the committed Viewport. Two producers feed it: the Interpreter (drag, wheel and
// pinch gestures on the main plot) and the Bridge (the overview strip). Neither producer reads the
// other; renderers read State and the Interpreter's Selection and never write back.
//
// Everything here runs on the Bubble Tea update goroutine, so nothing is locked.
package chart

import (
	"fmt"

	"github.com/andareed/siftly-chart/dataset"
	"github.com/andareed/siftly-chart/logging"
)

type Viewport struct {
	Left  int
	Right int
}

func (v Viewport) Width() int { return v.Right - v.Left }

func (v Viewport) String() string { return fmt.Sprintf("[%d, %d]", v.Left, v.Right) }

// Contains reports whether index i is inside the viewport.
func (v Viewport) Contains(i int) bool { return i >= v.Left && i <= v.Right }

// FullViewport is the viewport covering every point of an n-point dataset.
func FullViewport(n int) Viewport {
	return Viewport{Left: 0, Right: max(n-1, 0)}
}

// ValidFor reports whether v satisfies 0 <= Left < Right <= n-1.
func (v Viewport) ValidFor(n int) bool {
	return v.Left >= 0 && v.Left < v.Right && v.Right <= n-1
}

// State is the single owner of the committed viewport.
type State struct {
	data     *dataset.Dataset
	viewport Viewport
	// version bumps on every committed change; renderers use it to skip work.
	version uint64
}

func NewState(d *dataset.Dataset) *State {
	s := &State{}
	s.SetDataset(d)
	return s
}

// SetDataset replaces the dataset and resets the viewport to the full range.
func (s *State) SetDataset(d *dataset.Dataset) {
	if d == nil {
		d = dataset.Empty()
	}
	s.data = d
	s.viewport = FullViewport(d.Len())
	s.version++
	logging.Debugf("chart: dataset loaded n=%d viewport=%s", d.Len(), s.viewport)
}

func (s *State) Dataset() *dataset.Dataset { return s.data }

func (s *State) Len() int { return s.data.Len() }

// Viewport returns the committed viewport; ok is false while the dataset is empty.
func (s *State) Viewport() (Viewport, bool) {
	if s.data.Len() == 0 {
		return Viewport{}, false
	}
	return s.viewport, true
}

func (s *State) Version() uint64 { return s.version }

// Reset shows the whole dataset again. It leaves selections and gesture sessions alone.
func (s *State) Reset() bool {
	if s.data.Len() == 0 {
		return false
	}
	full := FullViewport(s.data.Len())
	changed := full != s.viewport
	s.viewport = full
	if changed {
		s.version++
	}
	logging.Debugf("chart: reset viewport=%s", s.viewport)
	return changed
}

// commit installs v if it satisfies the viewport invariant. It reports whether the viewport changed.
func (s *State) commit(v Viewport, source string) bool {
	n := s.data.Len()
	if n == 0 {
		return false
	}
	if !v.ValidFor(n) {
		logging.Debugf("chart: %s rejected %s (n=%d)", source, v, n)
		return false
	}
	if v == s.viewport {
		return false
	}
	logging.Debugf("chart: %s commit %s -> %s", source, s.viewport, v)
	s.viewport = v
	s.version++
	return true
}
