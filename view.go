package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-chart/logging"
)

const (
	headerHeight = 1
	footerHeight = 2
)

type screenLayout struct {
	contentW int
	chartTop int
	chartH   int
	brushTop int
}

func (m *model) layout() screenLayout {
	contentW := max(m.terminalWidth-2*appMarginLeft, 0)
	chartTop := appMarginTop + headerHeight
	chartH := max(m.terminalHeight-2*appMarginTop-headerHeight-brushHeight-footerHeight, 0)
	return screenLayout{
		contentW: contentW,
		chartTop: chartTop,
		chartH:   chartH,
		brushTop: chartTop + chartH,
	}
}

// refreshLayout re-renders so mouse geometry is current before the next event arrives.
func (m *model) refreshLayout() {
	m.render()
}

func (m *model) headerView(width int) string {
	title := titleStyle.Render("siftly-chart")
	desc := rangeStyle.Render(m.viewportLabel())
	if m.zoomed() {
		desc += " " + resetStyle.Render("(r to reset)")
	}
	left := title + "  " + desc

	var legend []string
	for i, series := range m.data.state.Dataset().Series() {
		legend = append(legend, m.seriesStyle(i, series).Render(legendMarker)+" "+legendStyle.Render(series))
	}
	right := strings.Join(legend, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncatePlain(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	styles := defaultFooterStyles()
	act := m.currentActivity()

	st := footerState{
		Mode:       act,
		FileName:   m.InitialPath,
		RangeLabel: m.viewportLabel(),
		Total:      m.data.state.Len(),
		Legend:     activityHints(act),
	}
	if v, ok := m.data.state.Viewport(); ok {
		st.Visible = v.Width() + 1
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if sel, ok := m.data.interpreter.Selection(); ok && st.StatusMessage == "" {
		d := m.data.state.Dataset()
		if lo, hi, ok := sel.Bounds(); ok {
			st.StatusMessage = fmt.Sprintf("Selecting %s - %s", d.Label(lo), d.Label(hi))
		} else {
			st.StatusMessage = "Selecting from " + d.Label(sel.Anchor)
		}
	}

	if logging.IsDebugMode() {
		v, _ := m.data.state.Viewport()
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%s ver=%d plot=%.0f+%.0f cache=%d/%d",
			m.terminalWidth, m.terminalHeight, v, m.data.state.Version(),
			m.ui.plot.bounds.Left, m.ui.plot.bounds.Width,
			m.data.cache.Hits, m.data.cache.Misses,
		)
		st.Legend = st.Legend + " |" + debug
	}

	return renderFooter(width, st, styles)
}

func (m *model) render() string {
	l := m.layout()
	parts := []string{
		m.headerView(l.contentW),
		m.chartView(l.contentW, l.chartH, l.chartTop),
		m.brushView(l.contentW, l.brushTop),
		m.footerView(l.contentW),
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	return m.render()
}
