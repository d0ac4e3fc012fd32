package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-chart/logging"
)

// Purpose says what the chosen path will be used for.
type Purpose int

const (
	PurposeSave Purpose = iota
	PurposeExport
)

func (p Purpose) verb() string {
	if p == PurposeExport {
		return "Export"
	}
	return "Save"
}

// --- Messages ---------------------------------------------------------------

type (
	PathConfirmedMsg struct {
		Purpose Purpose
		Path    string
	}
	PathCanceledMsg struct{ Purpose Purpose }
)

// PathPrompt asks for a file path to save a snapshot to or export the visible range to.
type PathPrompt struct {
	purpose Purpose
	input   textinput.Model
	visible bool
	lastDir string
}

func NewPathPrompt(purpose Purpose, defaultName, lastDir string) *PathPrompt {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = purpose.verb() + " as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &PathPrompt{purpose: purpose, input: ti, visible: true, lastDir: lastDir}
}

func (d *PathPrompt) Purpose() Purpose { return d.purpose }

func (d *PathPrompt) Init() tea.Cmd { return d.input.Focus() }

func (d *PathPrompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolve(d.input.Value())
			if path == "" {
				return d, nil
			}
			logging.Debugf("PathPrompt(%s): confirmed %q", d.purpose.verb(), path)
			purpose := d.purpose
			return d, func() tea.Msg { return PathConfirmedMsg{Purpose: purpose, Path: path} }
		case "esc":
			logging.Debugf("PathPrompt(%s): canceled", d.purpose.verb())
			purpose := d.purpose
			return d, func() tea.Msg { return PathCanceledMsg{Purpose: purpose} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve falls back to the placeholder and puts bare file names in lastDir.
func (d *PathPrompt) resolve(val string) string {
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d *PathPrompt) View() string {
	if !d.visible {
		return ""
	}
	help := lipgloss.NewStyle().
		Faint(true).
		Render(fmt.Sprintf("enter to %s • esc to cancel", d.purpose.verb()))

	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *PathPrompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *PathPrompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *PathPrompt) Focus() tea.Cmd  { return d.input.Focus() }
func (d *PathPrompt) Blur()           { d.input.Blur() }
func (d *PathPrompt) IsVisible() bool { return d.visible }
