// Package tui is the interactive terminal front end: a multi-select state
// picker, income-range sliders, a filing-status toggle and a live line
// chart of tax owed across the income range.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/statax/statax/internal/calculation"
	"github.com/statax/statax/internal/config"
	"github.com/statax/statax/internal/domain"
	"github.com/statax/statax/internal/output"
	"github.com/statax/statax/internal/tui/components"
)

// Pane identifies which region of the screen has keyboard focus.
type Pane int

const (
	PaneStates Pane = iota
	PaneControls
)

// Slider indices within Model.sliders.
const (
	sliderMin = iota
	sliderMax
	sliderStep
	sliderCount
)

// Model is the entire application state.
type Model struct {
	engine *calculation.Engine

	picker    *components.StatePicker
	sliders   [sliderCount]*components.IncomeSlider
	sliderIdx int
	status    domain.FilingStatus

	chart *output.ChartData
	err   error

	focus  Pane
	width  int
	height int
}

// NewModel builds the application model from a chart configuration.
func NewModel(engine *calculation.Engine, cfg *config.ChartConfig) Model {
	minVal, _ := cfg.IncomeRange.Min.Float64()
	maxVal, _ := cfg.IncomeRange.Max.Float64()
	stepVal, _ := cfg.IncomeRange.Step.Float64()

	m := Model{
		engine: engine,
		picker: components.NewStatePicker(engine.Data.StateNames(), cfg.States),
		status: cfg.FilingStatus,
		focus:  PaneStates,
		width:  100,
		height: 30,
	}
	m.sliders[sliderMin] = components.NewIncomeSlider("Min", minVal, 0, 1000000, 5000)
	m.sliders[sliderMax] = components.NewIncomeSlider("Max", maxVal, 0, 2000000, 5000)
	m.sliders[sliderStep] = components.NewIncomeSlider("Step", stepVal, 1000, 50000, 1000)
	m.picker.IsFocused = true
	return m
}

// Init kicks off the first chart calculation.
func (m Model) Init() tea.Cmd {
	return m.recalculateCmd()
}

// recalculateCmd computes a fresh chart dataset off the current controls.
// Slider values are finite by construction, but the earned-income guard
// stays in front of every float conversion.
func (m Model) recalculateCmd() tea.Cmd {
	states := m.picker.Selected()
	status := m.status
	minVal := m.sliders[sliderMin].Value
	maxVal := m.sliders[sliderMax].Value
	stepVal := m.sliders[sliderStep].Value
	engine := m.engine

	return func() tea.Msg {
		if !calculation.IsValidEarnedIncome(minVal) || !calculation.IsValidEarnedIncome(maxVal) {
			return ErrorMsg{Err: &domain.InvalidIncomeError{Income: decimal.Zero, Reason: "income bounds must be non-negative finite numbers"}}
		}

		data, err := output.BuildChartData(engine, output.ChartRequest{
			MinIncome:    decimal.NewFromFloat(minVal),
			MaxIncome:    decimal.NewFromFloat(maxVal),
			Step:         decimal.NewFromFloat(stepVal),
			States:       states,
			FilingStatus: status,
		})
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ChartReadyMsg{Data: data}
	}
}
