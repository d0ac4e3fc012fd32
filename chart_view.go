package main

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-chart/chart"
)

const (
	minChartHeight = 4
	minChartWidth  = 20
)

// fallbackSeriesColors are used for series the config does not name.
var fallbackSeriesColors = []string{"#8ecae6", "#ffb703", "#fb8500", "#219ebc"}

func (m *model) seriesStyle(i int, series string) lipgloss.Style {
	fallback := fallbackSeriesColors[i%len(fallbackSeriesColors)]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.SeriesColor(series, fallback)))
}

// buildChart draws rm onto a fresh linechart of w x h cells.
func (m *model) buildChart(rm chart.RenderModel, w, h int) linechart.Model {
	minX, maxX := float64(rm.Viewport.Left), float64(rm.Viewport.Right)
	if maxX <= minX {
		maxX = minX + 1
	}
	lc := linechart.New(w, h, minX, maxX, rm.YMin, rm.YMax)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = axisLabelStyle
	lc.XLabelFormatter = func(_ int, v float64) string {
		return m.data.state.Dataset().Label(int(math.Round(v)))
	}
	lc.YLabelFormatter = func(_ int, v float64) string {
		return fmt.Sprintf("%.1f", v)
	}
	lc.SetXStep(m.cfg.Chart.XSteps)
	lc.SetYStep(m.cfg.Chart.YSteps)
	lc.DrawXYAxisAndLabel()

	for si, series := range rm.Series {
		style := m.seriesStyle(si, series)
		for pi := 1; pi < len(rm.Points); pi++ {
			prev, cur := rm.Points[pi-1], rm.Points[pi]
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: float64(prev.Index), Y: prev.Values[si]},
				canvas.Float64Point{X: float64(cur.Index), Y: cur.Values[si]},
				style,
			)
		}
	}

	if rm.Overlay != nil {
		for _, edge := range []int{rm.Overlay.Lo, rm.Overlay.Hi} {
			lc.DrawRuneLineWithStyle(
				canvas.Float64Point{X: float64(edge), Y: rm.YMin},
				canvas.Float64Point{X: float64(edge), Y: rm.YMax},
				'┊', overlayStyle,
			)
		}
	}
	return lc
}

// chartView renders the main plot and records where its graph area landed on screen.
func (m *model) chartView(width, height, top int) string {
	if width < minChartWidth || height < minChartHeight {
		m.ui.plot = plotGeometry{}
		return lipgloss.NewStyle().Width(width).Height(max(height, 0)).Render("terminal too small")
	}
	rm := m.data.renderModel()
	if rm.Empty {
		m.ui.plot = plotGeometry{}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, emptyStyle.Render("no data"))
	}

	lc := m.buildChart(rm, width, height)
	m.ui.plot = geometryFor(lc.Origin().X, lc.GraphWidth(), lc.GraphHeight(), m.cfg.Chart.YSteps > 0, top)
	return lc.View()
}

// geometryFor converts linechart layout into screen coordinates. The graph area starts one column
// right of the Y axis when the axis is drawn.
func geometryFor(originX, graphWidth, graphHeight int, yAxis bool, top int) plotGeometry {
	left := appMarginLeft
	if yAxis {
		left += originX + 1
	}
	return plotGeometry{
		top:    top,
		height: graphHeight,
		bounds: chart.Bounds{Left: float64(left), Width: float64(max(graphWidth-1, 0))},
	}
}

// indexAt maps a screen column inside the plot to the nearest dataset index in the viewport.
func indexAt(x int, bounds chart.Bounds, v chart.Viewport) int {
	pct, ok := bounds.Fraction(float64(x))
	if !ok {
		return v.Left
	}
	return v.Left + int(math.Round(pct*float64(v.Width())))
}
