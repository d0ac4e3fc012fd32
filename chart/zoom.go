package chart

import "math"

// DefaultZoomFactor is the share of the visible width removed (or added) per zoom step.
const DefaultZoomFactor = 0.1

const (
	ZoomIn  = 1
	ZoomOut = -1
)

// Bounds is the on-screen horizontal extent of the plot, in the same units as pointer X.
type Bounds struct {
	Left  float64
	Width float64
}

// Fraction maps x to its clamped position across the bounds, 0 at the left edge and 1 at the right.
func (b Bounds) Fraction(x float64) (float64, bool) {
	if b.Width <= 0 || math.IsNaN(x) {
		return 0, false
	}
	return clampFloat((x-b.Left)/b.Width, 0, 1), true
}

// Zoom computes a zoom-to-cursor step. The width change is split between the two edges in
// proportion to pct so the point under the cursor stays put. ok is false when the result would
// collapse or invert the window.
func Zoom(v Viewport, n int, direction int, pct, factor float64) (Viewport, bool) {
	if n == 0 || direction == 0 {
		return v, false
	}
	amount := float64(v.Width()) * factor * float64(direction)
	pct = clampFloat(pct, 0, 1)

	next := Viewport{
		Left:  clampInt(v.Left+int(math.Floor(amount*pct)), 0, n-1),
		Right: clampInt(v.Right-int(math.Ceil(amount*(1-pct))), 0, n-1),
	}
	if next.Left >= next.Right {
		return v, false
	}
	return next, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
