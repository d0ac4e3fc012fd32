package chart

import (
	"math"

	"github.com/andareed/siftly-chart/logging"
)

// Point is a pointer or touch contact position in screen units.
type Point struct {
	X float64
	Y float64
}

// gestureSession lives for one continuous two-contact interaction.
type gestureSession struct {
	lastDistance float64
	hasDistance  bool
}

// Interpreter turns pointer, wheel and touch input into viewport commits on a State.
// It exclusively owns the drag Selection and the pinch session.
type Interpreter struct {
	state      *State
	drag       dragState
	selection  *Selection
	pinch      *gestureSession
	zoomFactor float64
}

type InterpreterOption func(*Interpreter)

// WithZoomFactor overrides DefaultZoomFactor. Non-positive values are ignored.
func WithZoomFactor(f float64) InterpreterOption {
	return func(in *Interpreter) {
		if f > 0 && !math.IsInf(f, 0) {
			in.zoomFactor = f
		}
	}
}

func NewInterpreter(state *State, opts ...InterpreterOption) *Interpreter {
	in := &Interpreter{
		state:      state,
		zoomFactor: DefaultZoomFactor,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Interpreter) ZoomFactor() float64 { return in.zoomFactor }

// Selecting reports whether a drag is in progress.
func (in *Interpreter) Selecting() bool { return in.drag == dragSelecting }

// Selection returns the in-progress drag selection, if any.
func (in *Interpreter) Selection() (Selection, bool) {
	if in.selection == nil {
		return Selection{}, false
	}
	return *in.selection, true
}

// PinchActive reports whether a two-contact session is open.
func (in *Interpreter) PinchActive() bool { return in.pinch != nil }

// region Drag

// PointerDown starts a selection at the point whose label matches. Unknown labels are ignored.
func (in *Interpreter) PointerDown(label string) {
	if in.state.Len() == 0 {
		return
	}
	i, ok := in.state.Dataset().IndexOf(label)
	if !ok {
		logging.Debugf("chart: pointer-down on unknown label %q ignored", label)
		return
	}
	in.selection = &Selection{Anchor: i}
	in.drag = dragSelecting
	logging.Debugf("chart: drag %s anchor=%d", in.drag, i)
}

// PointerMove extends the selection while dragging.
func (in *Interpreter) PointerMove(label string) {
	if in.drag != dragSelecting || in.selection == nil {
		return
	}
	j, ok := in.state.Dataset().IndexOf(label)
	if !ok {
		return
	}
	in.selection.Cursor = j
	in.selection.HasCursor = true
}

// PointerUp commits the selection, if it has both ends, and returns to idle.
// It reports whether the viewport changed.
func (in *Interpreter) PointerUp() bool {
	return in.endDrag("pointer-up")
}

// PointerLeave behaves like PointerUp: leaving the plot ends the drag.
func (in *Interpreter) PointerLeave() bool {
	return in.endDrag("pointer-leave")
}

func (in *Interpreter) endDrag(source string) bool {
	sel := in.selection
	in.selection = nil
	in.drag = dragIdle

	if sel == nil {
		return false
	}
	lo, hi, ok := sel.Bounds()
	if !ok {
		logging.Debugf("chart: %s without movement, no commit", source)
		return false
	}
	return in.state.commit(Viewport{Left: lo, Right: hi}, source)
}

// endregion

// region Zoom

// Wheel zooms around x. A negative delta zooms in, anything else zooms out.
func (in *Interpreter) Wheel(delta, x float64, bounds Bounds) bool {
	direction := ZoomOut
	if delta < 0 {
		direction = ZoomIn
	}
	return in.zoomAt(direction, x, bounds, "wheel")
}

// Touch handles a touch update carrying the currently active contacts. Exactly two contacts
// drive a pinch; fewer end the pinch session; more are ignored.
func (in *Interpreter) Touch(contacts []Point, bounds Bounds) bool {
	switch {
	case len(contacts) < 2:
		if in.pinch != nil {
			logging.Debugf("chart: pinch session ended (%d contacts)", len(contacts))
		}
		in.pinch = nil
		return false
	case len(contacts) > 2:
		return false
	}

	a, b := contacts[0], contacts[1]
	distance := math.Hypot(a.X-b.X, a.Y-b.Y)
	midX := (a.X + b.X) / 2

	if in.pinch == nil {
		in.pinch = &gestureSession{}
		logging.Debugf("chart: pinch session started")
	}
	session := in.pinch

	if !session.hasDistance {
		session.lastDistance = distance
		session.hasDistance = true
		return false
	}

	direction := ZoomOut
	if distance > session.lastDistance {
		direction = ZoomIn
	}
	session.lastDistance = distance
	return in.zoomAt(direction, midX, bounds, "pinch")
}

func (in *Interpreter) zoomAt(direction int, x float64, bounds Bounds, source string) bool {
	v, ok := in.state.Viewport()
	if !ok {
		return false
	}
	pct, ok := bounds.Fraction(x)
	if !ok {
		logging.Debugf("chart: %s ignored, plot has no width", source)
		return false
	}
	next, ok := Zoom(v, in.state.Len(), direction, pct, in.zoomFactor)
	if !ok {
		logging.Debugf("chart: %s degenerate zoom from %s rejected", source, v)
		return false
	}
	return in.state.commit(next, source)
}

// endregion
