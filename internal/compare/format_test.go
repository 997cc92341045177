package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statax/statax/internal/domain"
)

func buildTestComparison(t *testing.T) *ComparisonSet {
	t.Helper()
	compSet, err := newTestCompareEngine().Compare(decimal.NewFromInt(100000),
		[]string{"Colorado", "California", "Texas"}, domain.FilingSingle)
	require.NoError(t, err)
	return compSet
}

func TestTableFormatter_Format(t *testing.T) {
	out := (&TableFormatter{}).Format(buildTestComparison(t))

	assert.Contains(t, out, "STATE INCOME TAX COMPARISON")
	assert.Contains(t, out, "Income:        $100,000.00")
	assert.Contains(t, out, "Filing Status: single")
	assert.Contains(t, out, "Colorado")
	assert.Contains(t, out, "California")
	assert.Contains(t, out, "Texas")
	assert.Contains(t, out, "#1 (lowest)")
	assert.Contains(t, out, "RECOMMENDATIONS")
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	out := (&TableFormatter{}).FormatCompact(buildTestComparison(t))

	assert.Contains(t, out, "$100,000.00 (single):")
	assert.Contains(t, out, "Colorado $3791")
	assert.Contains(t, out, "Texas $0")
	assert.Contains(t, out, " | ")
}

func TestTableFormatter_FormatDecimal(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "0", tf.formatDecimal(decimal.Zero))
	assert.Equal(t, "9500", tf.formatDecimal(decimal.NewFromInt(9500)))
	assert.Equal(t, "12.5K", tf.formatDecimal(decimal.NewFromInt(12500)))
	assert.Equal(t, "1.25M", tf.formatDecimal(decimal.NewFromInt(1250000)))
}

func TestTableFormatter_Truncate(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "Texas", tf.truncate("Texas", 20))
	assert.Equal(t, "District of Colu...", tf.truncate("District of Columbia X", 19))
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(buildTestComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err, "Output should parse back as CSV")
	require.Len(t, records, 4, "Header plus one row per state")

	assert.Equal(t, []string{
		"State", "Income", "Filing Status", "Tax Owed",
		"Effective Rate", "Marginal Rate", "Rank", "Diff From Lowest",
	}, records[0])

	assert.Equal(t, "Colorado", records[1][0])
	assert.Equal(t, "100000.00", records[1][1])
	assert.Equal(t, "single", records[1][2])
	assert.Equal(t, "3790.60", records[1][3])

	assert.Equal(t, "Texas", records[3][0])
	assert.Equal(t, "0.00", records[3][3])
	assert.Equal(t, "1", records[3][6])
	assert.Equal(t, "0.00", records[3][7])
}

func TestJSONFormatter_Format(t *testing.T) {
	compSet := buildTestComparison(t)

	out, err := (&JSONFormatter{}).Format(compSet)
	require.NoError(t, err)

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), "Output should round-trip")
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "Texas", decoded.Results[2].StateName)
	assert.True(t, decoded.Income.Equal(decimal.NewFromInt(100000)))

	pretty, err := (&JSONFormatter{Pretty: true}).Format(compSet)
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  ", "Pretty output should be indented")
}
