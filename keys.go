package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/andareed/siftly-chart/dialogs"
)

type Keymap struct {
	Quit         key.Binding
	ResetZoom    key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	BrushLeft    key.Binding
	BrushRight   key.Binding
	BrushGrow    key.Binding
	BrushShrink  key.Binding
	OpenHelp     key.Binding
	SaveToFile   key.Binding
	ExportToFile key.Binding
	CopyRange    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ResetZoom: key.NewBinding(
		key.WithKeys("r", "0"),
		key.WithHelp("r", "reset zoom"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in at centre"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out at centre"),
	),
	BrushLeft: key.NewBinding(
		key.WithKeys("[", "left", "h"),
		key.WithHelp("[/←", "move window left"),
	),
	BrushRight: key.NewBinding(
		key.WithKeys("]", "right", "l"),
		key.WithHelp("]/→", "move window right"),
	),
	BrushGrow: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "widen window"),
	),
	BrushShrink: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "narrow window"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save snapshot"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export visible range"),
	),
	CopyRange: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy visible range"),
	),
}

// mouseHelp documents gestures; the keys are never matched.
var mouseHelp = []key.Binding{
	key.NewBinding(key.WithHelp("drag", "select a range to zoom into")),
	key.NewBinding(key.WithHelp("wheel", "zoom around the pointer")),
	key.NewBinding(key.WithHelp("drag strip", "move or resize the overview window")),
}

func (k Keymap) HelpSections() []dialogs.HelpSection {
	return []dialogs.HelpSection{
		{Title: "Zoom", Bindings: []key.Binding{k.ResetZoom, k.ZoomIn, k.ZoomOut}},
		{Title: "Overview", Bindings: []key.Binding{k.BrushLeft, k.BrushRight, k.BrushGrow, k.BrushShrink}},
		{Title: "Mouse", Bindings: mouseHelp},
		{Title: "File", Bindings: []key.Binding{k.SaveToFile, k.ExportToFile, k.CopyRange, k.Quit}},
	}
}
