package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color("236")). // match the overlay
	Padding(1, 2).
	Width(64)

var helpSectionStyle = lipgloss.NewStyle().Bold(true)

// HelpSection groups bindings under a heading.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// Help lists key bindings and mouse gestures.
type Help struct {
	visible  bool
	sections []HelpSection
}

// NewHelpDialog creates a new help dialog showing the given sections.
func NewHelpDialog(sections ...HelpSection) *Help {
	return &Help{
		visible:  true,
		sections: sections,
	}
}

func (d *Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}

	var blocks []string
	for _, s := range d.sections {
		lines := []string{helpSectionStyle.Render(s.Title)}
		for _, b := range s.Bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-14s %s", h.Key, h.Desc))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", strings.Join(blocks, "\n\n"), hint))
}

func (d *Help) Show() { d.visible = true }

func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd  { return nil }
func (d *Help) Blur()           {}
func (d *Help) IsVisible() bool { return d.visible }
