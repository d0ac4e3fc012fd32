package chart

import "github.com/andareed/siftly-chart/dataset"

// RenderInput is everything a rendered chart depends on. It is comparable, so it doubles as the
// cache key.
type RenderInput struct {
	Data         *dataset.Dataset
	Viewport     Viewport
	HasViewport  bool
	Selection    Selection
	HasSelection bool
}

// Snapshot captures the current render inputs from the two state owners.
func Snapshot(s *State, in *Interpreter) RenderInput {
	ri := RenderInput{Data: s.Dataset()}
	ri.Viewport, ri.HasViewport = s.Viewport()
	if in != nil {
		ri.Selection, ri.HasSelection = in.Selection()
	}
	return ri
}

// Overlay is the reference area drawn over a selection in progress.
type Overlay struct {
	Lo int
	Hi int
}

// RenderModel is what a renderer needs to draw one frame.
type RenderModel struct {
	Viewport   Viewport
	Empty      bool
	Series     []string
	Points     []dataset.DataPoint
	YMin       float64
	YMax       float64
	FirstLabel string
	LastLabel  string
	Overlay    *Overlay
	Total      int
}

// Render is a pure function of its input.
func Render(in RenderInput) RenderModel {
	if in.Data == nil || in.Data.Len() == 0 || !in.HasViewport {
		return RenderModel{Empty: true}
	}
	v := in.Viewport
	rm := RenderModel{
		Viewport:   v,
		Series:     in.Data.Series(),
		Points:     in.Data.Slice(v.Left, v.Right),
		FirstLabel: in.Data.Label(v.Left),
		LastLabel:  in.Data.Label(v.Right),
		Total:      in.Data.Len(),
	}
	if lo, hi, ok := in.Data.ValueRange(v.Left, v.Right); ok {
		rm.YMin, rm.YMax = lo, hi
	}
	if rm.YMin == rm.YMax {
		rm.YMin--
		rm.YMax++
	}
	if in.HasSelection {
		if lo, hi, ok := in.Selection.Bounds(); ok {
			rm.Overlay = &Overlay{Lo: lo, Hi: hi}
		}
	}
	return rm
}

// RenderCache memoizes Render on the last input seen.
type RenderCache struct {
	key    RenderInput
	model  RenderModel
	filled bool
	Hits   int
	Misses int
}

func (c *RenderCache) Get(in RenderInput) RenderModel {
	if c.filled && c.key == in {
		c.Hits++
		return c.model
	}
	c.Misses++
	c.key = in
	c.model = Render(in)
	c.filled = true
	return c.model
}

// Invalidate forces the next Get to re-render.
func (c *RenderCache) Invalidate() {
	c.filled = false
}
