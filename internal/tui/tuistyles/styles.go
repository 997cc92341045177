// Package tuistyles centralizes colors and lipgloss styles shared by the
// TUI model and its components.
package tuistyles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary    = lipgloss.Color("39")  // blue
	ColorSecondary  = lipgloss.Color("141") // purple
	ColorAccent     = lipgloss.Color("214") // orange
	ColorSuccess    = lipgloss.Color("42")  // green
	ColorDanger     = lipgloss.Color("196") // red
	ColorInfo       = lipgloss.Color("117") // light blue
	ColorForeground = lipgloss.Color("252")
	ColorMuted      = lipgloss.Color("241")
	ColorBorder     = lipgloss.Color("238")
)

// ChartLineColors is the palette cycled through for chart series, in
// legend order.
var ChartLineColors = []lipgloss.Color{
	lipgloss.Color("39"),  // blue
	lipgloss.Color("214"), // orange
	lipgloss.Color("42"),  // green
	lipgloss.Color("196"), // red
	lipgloss.Color("141"), // purple
	lipgloss.Color("226"), // yellow
	lipgloss.Color("51"),  // cyan
	lipgloss.Color("213"), // pink
}

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)
