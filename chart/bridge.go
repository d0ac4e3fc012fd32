package chart

import "github.com/andareed/siftly-chart/logging"

// BrushChange is what the overview control reports when the user moves it. Nil ends default to
// the dataset edges.
type BrushChange struct {
	Start *int
	End   *int
}

// Range is a convenience for building a BrushChange with both ends set.
func Range(start, end int) BrushChange {
	return BrushChange{Start: &start, End: &end}
}

// Bridge connects the overview control to State. It overwrites the viewport directly; it never
// consults the Interpreter.
type Bridge struct {
	state *State
}

func NewBridge(state *State) *Bridge {
	return &Bridge{state: state}
}

// OverviewChanged applies a range reported by the overview control.
// It reports whether the viewport changed.
func (b *Bridge) OverviewChanged(c BrushChange) bool {
	n := b.state.Len()
	if n == 0 {
		return false
	}
	next := FullViewport(n)
	if c.Start != nil {
		next.Left = *c.Start
	}
	if c.End != nil {
		next.Right = *c.End
	}
	logging.Debugf("chart: overview reported %s", next)
	return b.state.commit(next, "overview")
}

// OverviewRange is the range the overview control should display.
func (b *Bridge) OverviewRange() (Viewport, bool) {
	return b.state.Viewport()
}
