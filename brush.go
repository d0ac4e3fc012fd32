package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/dataset"
	"github.com/andareed/siftly-chart/logging"
)

const (
	brushHeight  = 2 // sparkline row + scrubber row
	brushPadding = 2
	brushMinBar  = 10
)

var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type brushDrag int

const (
	brushIdle brushDrag = iota
	brushMove
	brushLeftEdge
	brushRightEdge
)

// brushUI is the overview strip: a miniature of the full dataset with the visible window marked.
type brushUI struct {
	top      int // screen row of the sparkline
	barLeft  int // screen column of the first bar cell
	barWidth int
	n        int

	drag brushDrag
	grab int // index offset between the pointer and the window's left edge while moving
}

func (b brushUI) active() bool { return b.barWidth >= brushMinBar && b.n > 1 }

func (b brushUI) contains(x, y int) bool {
	return b.active() && y >= b.top && y < b.top+brushHeight &&
		x >= b.barLeft && x < b.barLeft+b.barWidth
}

// posOf maps a dataset index to a bar cell.
func (b brushUI) posOf(i int) int {
	if b.n <= 1 || b.barWidth <= 1 {
		return 0
	}
	return clamp(int(math.Round(float64(b.barWidth-1)*float64(i)/float64(b.n-1))), 0, b.barWidth-1)
}

// indexAt maps a screen column to the nearest dataset index.
func (b brushUI) indexAt(x int) int {
	if b.n <= 1 || b.barWidth <= 1 {
		return 0
	}
	col := clamp(x-b.barLeft, 0, b.barWidth-1)
	return clamp(int(math.Round(float64(col)*float64(b.n-1)/float64(b.barWidth-1))), 0, b.n-1)
}

// brushStep is the keyboard nudge for a window: a tenth of its width, at least one point.
func brushStep(v chart.Viewport) int {
	return max(1, v.Width()/10)
}

// shiftWindow moves v by delta, keeping its width and staying inside [0, n-1].
func shiftWindow(v chart.Viewport, n, delta int) chart.Viewport {
	w := v.Width()
	left := clamp(v.Left+delta, 0, max(n-1-w, 0))
	return chart.Viewport{Left: left, Right: left + w}
}

// resizeWindow grows (delta > 0) or shrinks (delta < 0) v on both sides.
func resizeWindow(v chart.Viewport, n, delta int) (chart.Viewport, bool) {
	next := chart.Viewport{
		Left:  clamp(v.Left-delta, 0, n-1),
		Right: clamp(v.Right+delta, 0, n-1),
	}
	if next.Left >= next.Right {
		return v, false
	}
	return next, true
}

// region Keyboard

func (m *model) nudgeBrush(delta int) bool {
	v, ok := m.data.bridge.OverviewRange()
	if !ok {
		return false
	}
	next := shiftWindow(v, m.data.state.Len(), delta*brushStep(v))
	return m.data.bridge.OverviewChanged(chart.Range(next.Left, next.Right))
}

func (m *model) resizeBrush(sign int) bool {
	v, ok := m.data.bridge.OverviewRange()
	if !ok {
		return false
	}
	next, ok := resizeWindow(v, m.data.state.Len(), sign*brushStep(v))
	if !ok {
		return false
	}
	return m.data.bridge.OverviewChanged(chart.Range(next.Left, next.Right))
}

// endregion

// region Mouse

func (m *model) brushPress(x int) bool {
	b := &m.ui.brush
	v, ok := m.data.bridge.OverviewRange()
	if !ok {
		return false
	}
	i := b.indexAt(x)
	col := x - b.barLeft
	switch {
	case col == b.posOf(v.Left):
		b.drag = brushLeftEdge
	case col == b.posOf(v.Right):
		b.drag = brushRightEdge
	case v.Contains(i):
		b.drag = brushMove
		b.grab = i - v.Left
	default:
		// Jump: centre the window on the pointer, then keep moving it.
		b.drag = brushMove
		b.grab = v.Width() / 2
		return m.brushMoveTo(x)
	}
	logging.Debugf("brush: press col=%d drag=%d", col, b.drag)
	return false
}

func (m *model) brushMoveTo(x int) bool {
	b := &m.ui.brush
	v, ok := m.data.bridge.OverviewRange()
	if !ok || b.drag == brushIdle {
		return false
	}
	n := m.data.state.Len()
	i := b.indexAt(x)

	next := v
	switch b.drag {
	case brushMove:
		next = shiftWindow(v, n, (i-b.grab)-v.Left)
	case brushLeftEdge:
		next.Left = min(i, v.Right-1)
	case brushRightEdge:
		next.Right = max(i, v.Left+1)
	}
	if next == v {
		return false
	}
	return m.data.bridge.OverviewChanged(chart.Range(next.Left, next.Right))
}

func (m *model) brushRelease() {
	m.ui.brush.drag = brushIdle
	m.ui.brush.grab = 0
}

// endregion

// region View

// brushView renders the overview strip and records its on-screen placement.
func (m *model) brushView(width, top int) string {
	d := m.data.state.Dataset()
	b := &m.ui.brush
	b.top = top
	b.n = d.Len()

	v, ok := m.data.bridge.OverviewRange()
	if !ok {
		b.barWidth = 0
		return brushArea.Width(width).Render("\n")
	}

	minLabel := d.Label(0)
	maxLabel := d.Label(d.Len() - 1)
	barWidth := width - len(minLabel) - len(maxLabel) - brushPadding*2
	b.barLeft = appMarginLeft + len(minLabel) + brushPadding
	b.barWidth = barWidth
	if !b.active() {
		b.barWidth = 0
		return brushArea.Width(width).Render(fmt.Sprintf("Window: %s - %s\n", d.Label(v.Left), d.Label(v.Right)))
	}

	gap := strings.Repeat(" ", brushPadding)
	spark := sparkline(d, barWidth)
	startPos, endPos := b.posOf(v.Left), b.posOf(v.Right)

	sparkLine := strings.Repeat(" ", len(minLabel)) + gap +
		sparkOutStyle.Render(string(spark[:startPos])) +
		sparkInStyle.Render(string(spark[startPos:endPos+1])) +
		sparkOutStyle.Render(string(spark[endPos+1:]))

	scrubber := minLabel + gap + scrubberBar(barWidth, startPos, endPos) + gap + maxLabel
	return lipgloss.JoinVertical(lipgloss.Left, sparkLine, scrubber)
}

// scrubberBar draws the window as [====] on a ---- track.
func scrubberBar(width, startPos, endPos int) string {
	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '-'
	}
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos && i < width; i++ {
		bar[i] = '='
	}
	if startPos >= 0 && startPos < width {
		bar[startPos] = '['
	}
	if endPos >= 0 && endPos < width {
		bar[endPos] = ']'
	}
	return string(bar)
}

// sparkline buckets the first series of d into width block characters.
func sparkline(d *dataset.Dataset, width int) []rune {
	out := make([]rune, width)
	for i := range out {
		out[i] = ' '
	}
	n := d.Len()
	if n == 0 || width <= 0 || len(d.Series()) == 0 {
		return out
	}
	all := d.Slice(0, n-1)
	lo, hi := all[0].Values[0], all[0].Values[0]
	for _, p := range all {
		lo = math.Min(lo, p.Values[0])
		hi = math.Max(hi, p.Values[0])
	}
	span := hi - lo

	for col := 0; col < width; col++ {
		from := col * n / width
		to := max(from, (col+1)*n/width-1)
		sum, count := 0.0, 0
		for _, p := range d.Slice(from, min(to, n-1)) {
			sum += p.Values[0]
			count++
		}
		if count == 0 {
			continue
		}
		level := 0
		if span > 0 {
			level = int((sum/float64(count) - lo) / span * float64(len(sparkBlocks)-1))
		}
		out[col] = sparkBlocks[clamp(level, 0, len(sparkBlocks)-1)]
	}
	return out
}

// endregion
