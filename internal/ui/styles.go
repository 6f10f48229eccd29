package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors, picked once at startup from the terminal background.
var (
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorAccent    lipgloss.Color

	ColorSuccess lipgloss.Color
	ColorError   lipgloss.Color
	ColorInfo    lipgloss.Color

	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color
	ColorTextDim   lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorSurface   lipgloss.Color
)

// initializeColors sets up adaptive colors based on terminal background.
// GLAMOUR_STYLE forces a theme, matching the markdown renderer.
func initializeColors() {
	switch os.Getenv("GLAMOUR_STYLE") {
	case "light":
		setLightThemeColors()
		return
	case "dark":
		setDarkThemeColors()
		return
	}

	if lipgloss.HasDarkBackground() {
		setDarkThemeColors()
	} else {
		setLightThemeColors()
	}
}

func setDarkThemeColors() {
	ColorPrimary = lipgloss.Color("205")
	ColorSecondary = lipgloss.Color("33")
	ColorAccent = lipgloss.Color("214")

	ColorSuccess = lipgloss.Color("10")
	ColorError = lipgloss.Color("9")
	ColorInfo = lipgloss.Color("12")

	ColorText = lipgloss.Color("252")
	ColorTextMuted = lipgloss.Color("244")
	ColorTextDim = lipgloss.Color("240")
	ColorBorder = lipgloss.Color("238")
	ColorSurface = lipgloss.Color("236")
}

func setLightThemeColors() {
	ColorPrimary = lipgloss.Color("125")
	ColorSecondary = lipgloss.Color("24")
	ColorAccent = lipgloss.Color("130")

	ColorSuccess = lipgloss.Color("22")
	ColorError = lipgloss.Color("160")
	ColorInfo = lipgloss.Color("24")

	ColorText = lipgloss.Color("232")
	ColorTextMuted = lipgloss.Color("240")
	ColorTextDim = lipgloss.Color("244")
	ColorBorder = lipgloss.Color("248")
	ColorSurface = lipgloss.Color("254")
}

// Component styles. Built in initializeStyles so they pick up the adaptive
// colors.
var (
	StyleTitle    lipgloss.Style
	StyleSubtitle lipgloss.Style
	StyleText     lipgloss.Style
	StyleMuted    lipgloss.Style
	StyleDim      lipgloss.Style

	StyleTabActive   lipgloss.Style
	StyleTabInactive lipgloss.Style

	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleLoading lipgloss.Style

	StyleFormLabel    lipgloss.Style
	StyleFieldError   lipgloss.Style
	StyleFormHelp     lipgloss.Style
	StyleContentBox   lipgloss.Style
	StyleContainer    lipgloss.Style
	StyleSourceLink   lipgloss.Style
	StyleStatusBanner lipgloss.Style
)

func initializeStyles() {
	StyleTitle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	StyleSubtitle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	StyleText = lipgloss.NewStyle().Foreground(ColorText)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorTextMuted)
	StyleDim = lipgloss.NewStyle().Foreground(ColorTextDim)

	StyleTabActive = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 2)

	StyleTabInactive = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 2)

	StyleSuccess = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true).
		Padding(0, 1)

	StyleError = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true).
		Padding(0, 1)

	StyleLoading = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Italic(true).
		Padding(0, 1)

	StyleFormLabel = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	StyleFieldError = lipgloss.NewStyle().
		Foreground(ColorError).
		PaddingLeft(2)

	StyleFormHelp = lipgloss.NewStyle().
		Foreground(ColorTextDim).
		Italic(true).
		Padding(0, 3)

	StyleContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 2).
		MarginTop(1).
		MarginBottom(1)

	StyleContainer = lipgloss.NewStyle().Padding(1, 2)

	StyleSourceLink = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		PaddingLeft(2)

	StyleStatusBanner = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Padding(0, 1)
}
