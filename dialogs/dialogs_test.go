package dialogs

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestPathPromptConfirmUsesLastDir(t *testing.T) {
	d := NewPathPrompt(PurposeExport, "range.csv", "/tmp/charts")

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	msg, ok := cmd().(PathConfirmedMsg)
	if !ok {
		t.Fatalf("got %T, want PathConfirmedMsg", cmd())
	}
	if msg.Purpose != PurposeExport || msg.Path != filepath.Join("/tmp/charts", "range.csv") {
		t.Errorf("msg = %+v", msg)
	}
}

func TestPathPromptKeepsExplicitDirectories(t *testing.T) {
	d := NewPathPrompt(PurposeSave, "", "/tmp/charts")
	if got := d.resolve("out/snap.json"); got != "out/snap.json" {
		t.Errorf("resolve = %q", got)
	}
	if got := d.resolve(""); got != "" {
		t.Errorf("blank input without placeholder should resolve to empty, got %q", got)
	}
}

func TestPathPromptCancel(t *testing.T) {
	d := NewPathPrompt(PurposeSave, "snap.json", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(PathCanceledMsg); !ok {
		t.Fatalf("esc should cancel, got %T", cmd())
	}
	if !strings.Contains(d.View(), "Save as:") {
		t.Errorf("view should show the save prompt:\n%s", d.View())
	}
}

func TestHelpClosesOnEsc(t *testing.T) {
	h := NewHelpDialog(HelpSection{
		Title:    "Zoom",
		Bindings: []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset zoom"))},
	})
	if !strings.Contains(h.View(), "reset zoom") {
		t.Fatalf("help view missing binding:\n%s", h.View())
	}
	h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if h.IsVisible() {
		t.Fatal("esc should hide help")
	}
	if h.View() != "" {
		t.Error("hidden help should render nothing")
	}
}
