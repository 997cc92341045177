package output

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statax/statax/internal/calculation"
	"github.com/statax/statax/internal/domain"
)

func TestBuildChartData(t *testing.T) {
	data, err := BuildChartData(calculation.NewEngine(), ChartRequest{
		MinIncome:    decimal.Zero,
		MaxIncome:    decimal.NewFromInt(100000),
		Step:         decimal.NewFromInt(10000),
		States:       []string{"Colorado", "Texas"},
		FilingStatus: domain.FilingSingle,
	})
	require.NoError(t, err)

	assert.Equal(t, "State Income Tax by Income (single)", data.Title)
	require.Len(t, data.Incomes, 11)
	require.Len(t, data.Labels, 11)
	require.Len(t, data.Series, 2)

	assert.Equal(t, "$0", data.Labels[0])
	assert.Equal(t, "$50K", data.Labels[5])
	assert.Equal(t, "$100K", data.Labels[10])

	assert.Equal(t, "Colorado", data.Series[0].StateName, "Series follow request order")
	assert.Equal(t, "Texas", data.Series[1].StateName)
	require.Len(t, data.Series[0].Points, 11, "Every series spans every sampled income")

	for i, p := range data.Series[1].Points {
		assert.True(t, p.IsZero(), "Texas should owe nothing at point %d", i)
	}
	assert.True(t, data.Series[0].Points[5].Equal(decimal.NewFromFloat(1590.60)),
		"Colorado at 50k should owe $1,590.60, got %s", data.Series[0].Points[5])
}

func TestBuildChartData_DegenerateRange(t *testing.T) {
	data, err := BuildChartData(calculation.NewEngine(), ChartRequest{
		MinIncome:    decimal.NewFromInt(100000),
		MaxIncome:    decimal.NewFromInt(50000),
		Step:         decimal.NewFromInt(10000),
		States:       []string{"Colorado"},
		FilingStatus: domain.FilingSingle,
	})
	require.NoError(t, err, "A degenerate range is an empty chart, not an error")

	assert.Empty(t, data.Incomes)
	assert.Empty(t, data.Labels)
	require.Len(t, data.Series, 1)
	assert.Empty(t, data.Series[0].Points)
}

func TestBuildChartData_NoStates(t *testing.T) {
	data, err := BuildChartData(calculation.NewEngine(), ChartRequest{
		MinIncome:    decimal.Zero,
		MaxIncome:    decimal.NewFromInt(50000),
		Step:         decimal.NewFromInt(10000),
		FilingStatus: domain.FilingSingle,
	})
	require.NoError(t, err)

	assert.Len(t, data.Incomes, 6)
	assert.Empty(t, data.Series)
}

func TestBuildChartData_Errors(t *testing.T) {
	data, err := BuildChartData(calculation.NewEngine(), ChartRequest{
		MinIncome:    decimal.Zero,
		MaxIncome:    decimal.NewFromInt(50000),
		Step:         decimal.NewFromInt(10000),
		States:       []string{"Colorado", "Atlantis"},
		FilingStatus: domain.FilingSingle,
	})
	require.Error(t, err, "Any bad state aborts the whole build")
	assert.Nil(t, data, "No partial dataset on failure")

	var notFound *domain.StateNotFoundError
	assert.True(t, errors.As(err, &notFound))

	data, err = BuildChartData(calculation.NewEngine(), ChartRequest{
		MinIncome:    decimal.Zero,
		MaxIncome:    decimal.NewFromInt(50000),
		Step:         decimal.NewFromInt(10000),
		States:       []string{"Colorado"},
		FilingStatus: domain.FilingStatus("Bogus"),
	})
	require.Error(t, err)
	assert.Nil(t, data)
}

func TestChartSeries_FloatPoints(t *testing.T) {
	series := ChartSeries{
		StateName: "Colorado",
		Points:    []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(1590.60)},
	}

	points := series.FloatPoints()
	require.Len(t, points, 2)
	assert.Equal(t, 0.0, points[0])
	assert.InDelta(t, 1590.60, points[1], 1e-9)
}

func TestFormatIncomeLabel(t *testing.T) {
	tests := []struct {
		income int64
		want   string
	}{
		{0, "$0"},
		{500, "$500"},
		{1000, "$1K"},
		{50000, "$50K"},
		{999999, "$1000K"},
		{1000000, "$1.0M"},
		{2500000, "$2.5M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatIncomeLabel(decimal.NewFromInt(tt.income)), "income %d", tt.income)
	}
}
