package main

import "github.com/andareed/siftly-chart/chart"

type mode int

const (
	modeView mode = iota
	modeDialog
)

// pointerTarget is the screen region a mouse press landed in.
type pointerTarget int

const (
	targetNone pointerTarget = iota
	targetPlot
	targetBrush
)

// plotGeometry places the plot area on screen. It is refreshed every time the chart is drawn.
type plotGeometry struct {
	top    int
	height int
	bounds chart.Bounds
}

func (g plotGeometry) contains(x, y int) bool {
	if g.bounds.Width <= 0 {
		return false
	}
	fx := float64(x)
	return y >= g.top && y < g.top+g.height &&
		fx >= g.bounds.Left && fx <= g.bounds.Left+g.bounds.Width
}

type uiState struct {
	mode       mode
	noticeMsg  string
	noticeType string
	noticeSeq  int

	plot  plotGeometry
	brush brushUI

	pressed pointerTarget
	lastDir string
}
