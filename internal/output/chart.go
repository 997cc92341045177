// Package output builds chart datasets from the calculation engine and
// writes them as console tables, CSV or JSON for downstream renderers.
package output

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/statax/statax/internal/calculation"
	"github.com/statax/statax/internal/domain"
)

// ChartRequest describes one chart: an income range and the states to
// plot over it.
type ChartRequest struct {
	MinIncome    decimal.Decimal
	MaxIncome    decimal.Decimal
	Step         decimal.Decimal
	States       []string
	FilingStatus domain.FilingStatus
}

// ChartSeries is one state's line: tax owed at each sampled income, in
// sample order.
type ChartSeries struct {
	StateName string            `json:"stateName"`
	Points    []decimal.Decimal `json:"points"`
}

// ChartData is the dataset surface chart renderers consume: shared X-axis
// labels plus one series per state. It is fully consistent by
// construction; a failed build yields no dataset at all.
type ChartData struct {
	Title   string            `json:"title"`
	Incomes []decimal.Decimal `json:"incomes"`
	Labels  []string          `json:"labels"`
	Series  []ChartSeries     `json:"series"`
}

// BuildChartData samples the income range and computes one series per
// requested state, in request order. Degenerate ranges follow the range
// generator's rules (empty or single-point chart, not an error); any
// invalid state or filing status aborts the whole build.
func BuildChartData(engine *calculation.Engine, req ChartRequest) (*ChartData, error) {
	incomes := calculation.GenerateIncomeRange(req.MinIncome, req.MaxIncome, req.Step)

	labels := make([]string, len(incomes))
	for i, income := range incomes {
		labels[i] = FormatIncomeLabel(income)
	}

	series := make([]ChartSeries, 0, len(req.States))
	for _, state := range req.States {
		points, err := engine.CalculateTaxForIncomes(incomes, state, req.FilingStatus)
		if err != nil {
			return nil, err
		}
		series = append(series, ChartSeries{StateName: state, Points: points})
	}

	return &ChartData{
		Title:   fmt.Sprintf("State Income Tax by Income (%s)", req.FilingStatus),
		Incomes: incomes,
		Labels:  labels,
		Series:  series,
	}, nil
}

// FloatPoints converts a series to float64 for plotting front ends that
// draw in floats.
func (s *ChartSeries) FloatPoints() []float64 {
	points := make([]float64, len(s.Points))
	for i, p := range s.Points {
		points[i], _ = p.Float64()
	}
	return points
}

// FormatIncomeLabel formats an income for a chart axis, e.g. "$50K".
func FormatIncomeLabel(income decimal.Decimal) string {
	v, _ := income.Float64()
	switch {
	case math.Abs(v) >= 1000000:
		return fmt.Sprintf("$%.1fM", v/1000000)
	case math.Abs(v) >= 1000:
		return fmt.Sprintf("$%.0fK", v/1000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
