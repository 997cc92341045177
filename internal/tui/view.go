package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/statax/statax/internal/tui/components"
	"github.com/statax/statax/internal/tui/tuistyles"
)

// View renders the full screen: state picker and range controls on the
// left, the chart on the right, a status bar and an optional error banner
// underneath.
func (m Model) View() string {
	left := m.renderLeftColumn()
	right := m.renderChart()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var sb strings.Builder
	sb.WriteString(tuistyles.TitleStyle.Render("statax"))
	sb.WriteString(tuistyles.SubtitleStyle.Render("  state income tax comparison"))
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(tuistyles.ErrorStyle.Render("error: " + m.err.Error()))
		sb.WriteString(tuistyles.SubtitleStyle.Render("  (esc to dismiss)"))
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderStatusBar())

	return tuistyles.AppStyle.Render(sb.String())
}

func (m Model) renderLeftColumn() string {
	var sb strings.Builder

	sb.WriteString(m.picker.Render())
	sb.WriteString("\n")

	controlsHeader := tuistyles.SubtitleStyle
	if m.focus == PaneControls {
		controlsHeader = tuistyles.TitleStyle
	}
	sb.WriteString(controlsHeader.Render("Income Range"))
	sb.WriteString("\n")
	for _, s := range m.sliders {
		sb.WriteString(s.Render())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(tuistyles.ParameterLabelStyle.Render("Filing: "))
	sb.WriteString(tuistyles.ParameterValueStyle.Render(string(m.status)))
	sb.WriteString("\n")

	style := tuistyles.BorderStyle
	if m.focus == PaneStates || m.focus == PaneControls {
		style = tuistyles.ActiveBorderStyle
	}
	return style.Render(sb.String())
}

func (m Model) renderChart() string {
	if m.chart == nil {
		return tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render("Calculating…"))
	}

	chartWidth := m.width - 44
	if chartWidth < 40 {
		chartWidth = 40
	}
	chartHeight := m.height - 14
	if chartHeight < 8 {
		chartHeight = 8
	}

	chart := components.NewLineChart(m.chart.Title).
		WithLabels(m.chart.Labels).
		WithSize(chartWidth, chartHeight)

	for i, series := range m.chart.Series {
		color := tuistyles.ChartLineColors[i%len(tuistyles.ChartLineColors)]
		chart.AddLine(series.StateName, series.FloatPoints(), color)
	}

	return tuistyles.BorderStyle.Render(chart.Render())
}

func (m Model) renderStatusBar() string {
	bindings := []struct{ keys, desc string }{
		{"tab", "pane"},
		{"space", "toggle"},
		{"a/n", "all/none"},
		{"←→", "adjust"},
		{"f", "filing"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s",
			tuistyles.StatusKeyStyle.Render(b.keys),
			tuistyles.StatusBarStyle.Render(b.desc)))
	}
	return strings.Join(parts, tuistyles.StatusBarStyle.Render(" • "))
}
