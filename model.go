package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/clipboard"
	"github.com/andareed/siftly-chart/config"
	"github.com/andareed/siftly-chart/dataset"
	"github.com/andareed/siftly-chart/dialogs"
	"github.com/andareed/siftly-chart/logging"
)

type model struct {
	cfg  *config.Config
	data dataState
	ui   uiState

	activeDialog dialogs.Dialog

	ready          bool
	terminalWidth  int
	terminalHeight int

	InitialPath string
}

func newModel(d *dataset.Dataset, cfg *config.Config) *model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := &model{
		cfg:  cfg,
		data: newDataState(d, chart.WithZoomFactor(cfg.Chart.ZoomFactor)),
	}
	m.ui.lastDir = config.ExpandHome(cfg.UI.ExportDir)
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-chart: initialised with %d points", m.data.state.Len())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.refreshLayout()
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case dialogs.PathConfirmedMsg:
		m.closeDialog()
		return m, m.writeFile(msg.Purpose, msg.Path)

	case dialogs.PathCanceledMsg:
		m.closeDialog()
		return m, nil

	case tea.KeyMsg:
		if m.ui.mode == modeDialog {
			return m.updateDialog(msg)
		}
		return m.handleViewKey(msg)

	case tea.MouseMsg:
		if m.ui.mode == modeDialog {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.ResetZoom):
		if m.data.state.Reset() {
			logging.Debugf("keys: zoom reset to %s", m.viewportLabel())
			return m, m.startNotice("Zoom reset", "info", noticeDuration)
		}
	case key.Matches(msg, Keys.ZoomIn):
		m.zoomAtCentre(chart.ZoomIn)
	case key.Matches(msg, Keys.ZoomOut):
		m.zoomAtCentre(chart.ZoomOut)
	case key.Matches(msg, Keys.BrushLeft):
		m.nudgeBrush(-1)
	case key.Matches(msg, Keys.BrushRight):
		m.nudgeBrush(1)
	case key.Matches(msg, Keys.BrushGrow):
		m.resizeBrush(1)
	case key.Matches(msg, Keys.BrushShrink):
		m.resizeBrush(-1)
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(Keys.HelpSections()...))
	case key.Matches(msg, Keys.SaveToFile):
		return m, m.openDialog(dialogs.NewPathPrompt(dialogs.PurposeSave, defaultSaveName(m), m.ui.lastDir))
	case key.Matches(msg, Keys.ExportToFile):
		return m, m.openDialog(dialogs.NewPathPrompt(dialogs.PurposeExport, defaultExportName(m), m.ui.lastDir))
	case key.Matches(msg, Keys.CopyRange):
		return m, m.copyVisible()
	}
	return m, nil
}

// zoomAtCentre is the keyboard equivalent of one wheel notch over the middle of the plot.
func (m *model) zoomAtCentre(direction int) bool {
	b := m.ui.plot.bounds
	delta := 1.0
	if direction == chart.ZoomIn {
		delta = -1
	}
	return m.data.interpreter.Wheel(delta, b.Left+b.Width/2, b)
}

func (m *model) zoomed() bool {
	v, ok := m.data.state.Viewport()
	return ok && v != chart.FullViewport(m.data.state.Len())
}

// region Dialogs

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	m.ui.mode = modeDialog
	d.Show()
	return d.Focus()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
		m.activeDialog.Blur()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
}

func (m *model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog == nil {
		m.ui.mode = modeView
		return m, nil
	}
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	if !d.IsVisible() {
		m.closeDialog()
	}
	return m, cmd
}

// endregion

// region Files

func (m *model) writeFile(purpose dialogs.Purpose, path string) tea.Cmd {
	path = config.ExpandHome(path)
	var err error
	verb := "Saved"
	switch purpose {
	case dialogs.PurposeExport:
		verb = "Exported"
		err = ExportVisible(m, path)
	default:
		err = SaveSnapshot(m, path)
	}
	if err != nil {
		return m.startNotice(fmt.Sprintf("%s failed: %v", strings.ToLower(verb), err), "error", 2*noticeDuration)
	}
	m.ui.lastDir = filepath.Dir(path)
	return m.startNotice(fmt.Sprintf("%s %s", verb, filepath.Base(path)), "success", noticeDuration)
}

func (m *model) copyVisible() tea.Cmd {
	v, ok := m.data.state.Viewport()
	if !ok {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	var buf bytes.Buffer
	if err := dataset.WriteDelimited(&buf, m.data.state.Dataset(), v.Left, v.Right, '\t'); err != nil {
		return m.startNotice(fmt.Sprintf("copy failed: %v", err), "error", noticeDuration)
	}
	method, err := clipboard.Copy(buf.String())
	if err != nil {
		return m.startNotice(fmt.Sprintf("copy failed: %v", err), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %d points (%s)", v.Width()+1, method), "success", noticeDuration)
}

func defaultSaveName(m *model) string {
	return baseName(m.InitialPath, "chart") + ".json"
}

func defaultExportName(m *model) string {
	name := baseName(m.InitialPath, "chart")
	if v, ok := m.data.state.Viewport(); ok {
		d := m.data.state.Dataset()
		name = fmt.Sprintf("%s_%s_%s", name, d.Label(v.Left), d.Label(v.Right))
	}
	return name + ".csv"
}

func baseName(path, fallback string) string {
	if path == "" {
		return fallback
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".zst")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// endregion

// viewportLabel is the range description shown in the header: "<left label> - <right label>".
func (m *model) viewportLabel() string {
	v, ok := m.data.state.Viewport()
	if !ok {
		return ""
	}
	d := m.data.state.Dataset()
	return d.Label(v.Left) + " - " + d.Label(v.Right)
}
