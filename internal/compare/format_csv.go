package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV.
type CSVFormatter struct{}

// Format generates CSV output for a comparison set.
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"State",
		"Income",
		"Filing Status",
		"Tax Owed",
		"Effective Rate",
		"Marginal Rate",
		"Rank",
		"Diff From Lowest",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for i := range compSet.Results {
		if err := writer.Write(cf.formatRow(compSet, &compSet.Results[i])); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one state's entry as a CSV row.
func (cf *CSVFormatter) formatRow(compSet *ComparisonSet, result *StateResult) []string {
	return []string{
		result.StateName,
		compSet.Income.StringFixed(2),
		string(compSet.FilingStatus),
		result.Result.TaxOwed.StringFixed(2),
		result.Result.EffectiveRate.StringFixed(4),
		result.Result.MarginalRate.StringFixed(4),
		fmt.Sprintf("%d", result.Rank),
		result.DiffFromLowest.StringFixed(2),
	}
}
