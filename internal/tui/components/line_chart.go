package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/statax/statax/internal/tui/tuistyles"
)

// ChartLine is a single line in the chart: one state's tax across the
// sampled income range.
type ChartLine struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// LineChart draws tax-by-income lines for the selected states with a
// per-state legend.
type LineChart struct {
	Title      string
	Lines      []ChartLine
	Labels     []string // X-axis labels, one per sample point
	Width      int
	Height     int
	ShowLegend bool
}

// NewLineChart creates an empty chart with default dimensions.
func NewLineChart(title string) *LineChart {
	return &LineChart{
		Title:      title,
		Width:      64,
		Height:     16,
		ShowLegend: true,
	}
}

// AddLine appends a series; the color is assigned by the caller so the
// legend and any external display agree.
func (c *LineChart) AddLine(name string, points []float64, color lipgloss.Color) *LineChart {
	c.Lines = append(c.Lines, ChartLine{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels.
func (c *LineChart) WithLabels(labels []string) *LineChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions.
func (c *LineChart) WithSize(width, height int) *LineChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart.
func (c *LineChart) Render() string {
	if len(c.Lines) == 0 || c.pointCount() == 0 {
		return tuistyles.InfoStyle.Render("No states selected")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.valueBounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.ShowLegend {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

func (c *LineChart) pointCount() int {
	count := 0
	for _, line := range c.Lines {
		if len(line.Points) > count {
			count = len(line.Points)
		}
	}
	return count
}

// valueBounds finds the value range across all lines, padded so the top
// line does not hug the frame. Tax charts are anchored at zero.
func (c *LineChart) valueBounds() (float64, float64) {
	maxVal := 0.0
	for _, line := range c.Lines {
		for _, p := range line.Points {
			if p > maxVal {
				maxVal = p
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1 // all-zero series (no-tax states) still need a scale
	}
	return 0, maxVal * 1.05
}

// renderGrid plots every line onto a rune grid and frames it with axes.
func (c *LineChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	plotWidth := c.Width - yAxisWidth
	if plotWidth < 8 {
		plotWidth = 8
	}

	type cell struct {
		ch    rune
		color lipgloss.Color
	}
	grid := make([][]cell, c.Height)
	for y := range grid {
		grid[y] = make([]cell, plotWidth)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' '}
		}
	}

	toX := func(i, n int) int {
		if n <= 1 {
			return 0
		}
		return i * (plotWidth - 1) / (n - 1)
	}
	toY := func(v float64) int {
		y := c.Height - 1 - int((v-minVal)/(maxVal-minVal)*float64(c.Height-1))
		if y < 0 {
			y = 0
		}
		if y >= c.Height {
			y = c.Height - 1
		}
		return y
	}

	for li, line := range c.Lines {
		mark := seriesMark(li)
		prevX, prevY := -1, -1
		for i, p := range line.Points {
			x := toX(i, len(line.Points))
			y := toY(p)
			if prevX >= 0 {
				c.connect(prevX, prevY, x, y, func(cx, cy int) {
					if grid[cy][cx].ch == ' ' {
						grid[cy][cx] = cell{ch: mark, color: line.Color}
					}
				})
			}
			grid[y][x] = cell{ch: mark, color: line.Color}
			prevX, prevY = x, y
		}
	}

	var out strings.Builder
	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	for y, row := range grid {
		yValue := maxVal - float64(y)/float64(c.Height-1)*(maxVal-minVal)
		out.WriteString(axisStyle.Width(yAxisWidth).Align(lipgloss.Right).Render(formatAxisValue(yValue)))
		out.WriteString(" │ ")
		for _, cl := range row {
			if cl.ch == ' ' {
				out.WriteByte(' ')
				continue
			}
			out.WriteString(lipgloss.NewStyle().Foreground(cl.color).Render(string(cl.ch)))
		}
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", plotWidth))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		out.WriteString(c.renderXAxisLabels(yAxisWidth, plotWidth))
	}

	return out.String()
}

// connect visits the grid cells between two plotted points (Bresenham).
func (c *LineChart) connect(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		visit(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels spaces up to five labels under the axis.
func (c *LineChart) renderXAxisLabels(yAxisWidth, plotWidth int) string {
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	maxLabels := 5
	step := len(c.Labels) / maxLabels
	if step == 0 {
		step = 1
	}

	var out strings.Builder
	out.WriteString(strings.Repeat(" ", yAxisWidth+3))
	spacing := plotWidth / maxLabels
	for i := 0; i < len(c.Labels); i += step {
		label := c.Labels[i]
		if i > 0 {
			pad := spacing - len(c.Labels[i-step])
			if pad < 1 {
				pad = 1
			}
			out.WriteString(strings.Repeat(" ", pad))
		}
		out.WriteString(labelStyle.Render(label))
	}
	return out.String()
}

// renderLegend lists each line's mark, color and name.
func (c *LineChart) renderLegend() string {
	items := make([]string, 0, len(c.Lines))
	for i, line := range c.Lines {
		mark := lipgloss.NewStyle().Foreground(line.Color).Render(string(seriesMark(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(line.Name)
		items = append(items, fmt.Sprintf("%s %s", mark, name))
	}
	return tuistyles.SubtitleStyle.Render("Legend: ") + strings.Join(items, "  ")
}

// seriesMark cycles plot characters so overlapping lines stay readable
// even without color.
func seriesMark(index int) rune {
	marks := []rune{'●', '■', '▲', '♦', '○', '□', '△', '◇'}
	return marks[index%len(marks)]
}

// formatAxisValue formats a dollar value for the Y axis.
func formatAxisValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}
