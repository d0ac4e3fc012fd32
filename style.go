package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	appMarginTop  = 1
	appMarginLeft = 2

	headerTextFGColor = "#e0e0e0"
	dimTextFGColor    = "#a0a0a0"
	overlayFGColor    = "#f5c542"
	sparkInFGColor    = "#e0e0e0"
	sparkOutFGColor   = "#5a5a5a"
)

// plainOutput disables the footer's raw colour sequences (--no-color).
var plainOutput bool

// usePlainColors switches lipgloss to the Ascii profile and turns off raw footer colours.
func usePlainColors() {
	plainOutput = true
	lipgloss.SetColorProfile(termenv.Ascii)
}

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(appMarginTop, appMarginLeft)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(headerTextFGColor))
	rangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(dimTextFGColor))
	resetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(overlayFGColor)).Underline(true)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(dimTextFGColor))
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)

	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	axisLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overlayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(overlayFGColor))

	brushArea     = lipgloss.NewStyle().Foreground(lipgloss.Color(dimTextFGColor))
	sparkInStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(sparkInFGColor))
	sparkOutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(sparkOutFGColor))

	legendMarker = "●"
)
