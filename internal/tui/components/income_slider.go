package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/statax/statax/internal/tui/tuistyles"
)

// IncomeSlider is an adjustable dollar-amount control with a visual
// slider bar. Values snap to Step and clamp to [Min, Max].
type IncomeSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Width     int
	IsFocused bool
}

// NewIncomeSlider creates a slider over the given bounds.
func NewIncomeSlider(label string, value, min, max, step float64) *IncomeSlider {
	return &IncomeSlider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 26,
	}
}

// SetFocused sets the focus state.
func (s *IncomeSlider) SetFocused(focused bool) *IncomeSlider {
	s.IsFocused = focused
	return s
}

// Increment raises the value by one step, capped at Max.
func (s *IncomeSlider) Increment() {
	if v := s.Value + s.Step; v <= s.Max {
		s.Value = v
	} else {
		s.Value = s.Max
	}
}

// Decrement lowers the value by one step, floored at Min.
func (s *IncomeSlider) Decrement() {
	if v := s.Value - s.Step; v >= s.Min {
		s.Value = v
	} else {
		s.Value = s.Min
	}
}

// SetValue sets the value directly, clamping to the bounds.
func (s *IncomeSlider) SetValue(value float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, value))
}

// Percentage returns the value's position within the range.
func (s *IncomeSlider) Percentage() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Render returns the label, current value and slider bar on one line.
func (s *IncomeSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := labelStyle.Width(6).Render(s.Label)
	value := valueStyle.Width(10).Render(formatAxisValue(s.Value))

	return fmt.Sprintf("%s %s %s", label, value, s.renderBar())
}

// renderBar draws the track with the thumb at the current position.
func (s *IncomeSlider) renderBar() string {
	filled := int(math.Round(float64(s.Width) * s.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > s.Width {
		filled = s.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if s.IsFocused {
		thumbStyle = lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if rest := s.Width - filled; rest > 1 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", rest-1)))
	}
	bar.WriteString("]")
	return bar.String()
}
