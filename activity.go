package main

import "github.com/andareed/siftly-chart/dialogs"

// Activity is what the footer's mode pill shows.
type Activity int

const (
	ActNormal Activity = iota
	ActSelecting
	ActBrush
	ActZoomed
	ActSave
	ActExport
	ActHelp
)

func (m *model) currentActivity() Activity {
	if m.ui.mode == modeDialog && m.activeDialog != nil {
		switch d := m.activeDialog.(type) {
		case *dialogs.PathPrompt:
			if d.Purpose() == dialogs.PurposeExport {
				return ActExport
			}
			return ActSave
		case *dialogs.Help:
			return ActHelp
		}
	}
	switch {
	case m.data.interpreter.Selecting():
		return ActSelecting
	case m.ui.brush.drag != brushIdle:
		return ActBrush
	case m.zoomed():
		return ActZoomed
	}
	return ActNormal
}

func activityLabel(a Activity) string {
	switch a {
	case ActSelecting:
		return "SELECT"
	case ActBrush:
		return "OVERVIEW"
	case ActZoomed:
		return "ZOOMED"
	case ActSave:
		return "SAVE"
	case ActExport:
		return "EXPORT"
	case ActHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// activityHints is the footer legend for the current activity.
func activityHints(a Activity) string {
	switch a {
	case ActSelecting:
		return "release: zoom to selection   leave plot: commit"
	case ActBrush:
		return "drag: move window   edges: resize"
	case ActSave, ActExport:
		return "enter: confirm   esc: cancel"
	case ActHelp:
		return "esc: close"
	case ActZoomed:
		return "(? help · r reset zoom · +/- zoom · [ ] move · e export)"
	default:
		return "(? help · drag to zoom · wheel zoom · +/- zoom · s save)"
	}
}
