package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statax/statax/internal/calculation"
	"github.com/statax/statax/internal/domain"
)

func buildTestChartData(t *testing.T) *ChartData {
	t.Helper()
	data, err := BuildChartData(calculation.NewEngine(), ChartRequest{
		MinIncome:    decimal.Zero,
		MaxIncome:    decimal.NewFromInt(100000),
		Step:         decimal.NewFromInt(50000),
		States:       []string{"Colorado", "Texas"},
		FilingStatus: domain.FilingSingle,
	})
	require.NoError(t, err)
	return data
}

func TestWriteChart_Console(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportGenerator().WriteChart(&buf, buildTestChartData(t), "console"))

	out := buf.String()
	assert.Contains(t, out, "State Income Tax by Income (single)")
	assert.Contains(t, out, "Income")
	assert.Contains(t, out, "Colorado")
	assert.Contains(t, out, "Texas")
	assert.Contains(t, out, "$50K")
	assert.Contains(t, out, "$1,590.60", "Colorado at 50k")
}

func TestWriteChart_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportGenerator().WriteChart(&buf, buildTestChartData(t), "csv"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "Header plus three income rows")

	assert.Equal(t, []string{"Income", "Colorado", "Texas"}, records[0])
	assert.Equal(t, []string{"0.00", "0.00", "0.00"}, records[1])
	assert.Equal(t, []string{"50000.00", "1590.60", "0.00"}, records[2])
	assert.Equal(t, "100000.00", records[3][0])
}

func TestWriteChart_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportGenerator().WriteChart(&buf, buildTestChartData(t), "json"))

	var decoded ChartData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "State Income Tax by Income (single)", decoded.Title)
	require.Len(t, decoded.Series, 2)
	assert.Equal(t, "Colorado", decoded.Series[0].StateName)
	require.Len(t, decoded.Series[0].Points, 3)
}

func TestWriteChart_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportGenerator().WriteChart(&buf, buildTestChartData(t), "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Zero(t, buf.Len(), "Nothing should be written on failure")
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "Texas", truncateName("Texas", 15))
	assert.Equal(t, "North Dakota", truncateName("North Dakota", 15))
	assert.Equal(t, "A very long ...", truncateName("A very long state name", 15))
}
