// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

// Parchment palette.
const (
	colorTan      lipgloss.Color = "#c19a6b"
	colorWalnut   lipgloss.Color = "#8f6d4e"
	colorBurlwood lipgloss.Color = "#deb887"
	colorGold     lipgloss.Color = "#b8860b"
	colorGray     lipgloss.Color = "#999999"
	colorCream    lipgloss.Color = "#fdf6e3"
	colorError    lipgloss.Color = "#c0392b"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTan)

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBurlwood)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorWalnut).
			Padding(0, 1)

	focusedInputStyle = inputStyle.BorderForeground(colorGold)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(colorCream)

	fetchButtonStyle  = buttonStyle.Background(colorTan)
	searchButtonStyle = buttonStyle.Background(colorWalnut)
	clearButtonStyle  = buttonStyle.Background(colorGray)

	focusedButtonStyle = lipgloss.NewStyle().Underline(true).Reverse(true)

	loadingStyle = lipgloss.NewStyle().Foreground(colorGray)

	errorBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(colorError).
				Padding(0, 2)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBurlwood)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBurlwood).
			Padding(0, 1)

	cardYearStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTan)

	cardTextStyle = lipgloss.NewStyle().Foreground(colorCream)

	mutedStyle = lipgloss.NewStyle().Foreground(colorGray)
)
