package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-chart/logging"
)

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if m.ui.plot.contains(x, y) {
				m.wheel(msg.Button, x)
			}
		case tea.MouseButtonLeft:
			switch {
			case m.ui.plot.contains(x, y):
				m.ui.pressed = targetPlot
				m.data.interpreter.PointerDown(m.labelAt(x))
			case m.ui.brush.contains(x, y):
				m.ui.pressed = targetBrush
				m.brushPress(x)
			}
		}

	case tea.MouseActionMotion:
		switch m.ui.pressed {
		case targetPlot:
			if !m.ui.plot.contains(x, y) {
				m.ui.pressed = targetNone
				if m.data.interpreter.PointerLeave() {
					logging.Debugf("mouse: drag left the plot, zoomed to %s", m.viewportLabel())
				}
				return m, nil
			}
			m.data.interpreter.PointerMove(m.labelAt(x))
		case targetBrush:
			m.brushMoveTo(x)
		}

	case tea.MouseActionRelease:
		switch m.ui.pressed {
		case targetPlot:
			if m.data.interpreter.PointerUp() {
				logging.Debugf("mouse: zoomed to selection %s", m.viewportLabel())
			}
		case targetBrush:
			m.brushRelease()
		}
		m.ui.pressed = targetNone
	}
	return m, nil
}

func (m *model) wheel(button tea.MouseButton, x int) bool {
	// Wheel up reads as a negative delta, like a browser's deltaY.
	delta := 1.0
	if button == tea.MouseButtonWheelUp {
		delta = -1
	}
	if m.cfg.Chart.InvertWheel {
		delta = -delta
	}
	return m.data.interpreter.Wheel(delta, float64(x), m.ui.plot.bounds)
}

// labelAt returns the label of the data point under screen column x.
func (m *model) labelAt(x int) string {
	v, ok := m.data.state.Viewport()
	if !ok {
		return ""
	}
	return m.data.state.Dataset().Label(indexAt(x, m.ui.plot.bounds, v))
}
