package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/statax/statax/internal/domain"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing states at one income.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("STATE INCOME TAX COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Income:        %s\n", domain.FormatUSD(compSet.Income)))
	sb.WriteString(fmt.Sprintf("Filing Status: %s\n", compSet.FilingStatus))
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "State",
		numWidth, "Tax Owed",
		numWidth, "Effective",
		numWidth, "Marginal",
		numWidth, "Rank"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i := range compSet.Results {
		sb.WriteString(tf.formatRow(&compSet.Results[i], nameWidth, numWidth))
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single state row.
func (tf *TableFormatter) formatRow(result *StateResult, nameWidth, numWidth int) string {
	rankStr := fmt.Sprintf("#%d", result.Rank)
	if result.Rank == 1 {
		rankStr += " (lowest)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(result.StateName, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.Result.TaxOwed),
		numWidth, domain.FormatPercent(result.Result.EffectiveRate),
		numWidth, domain.FormatPercent(result.Result.MarginalRate),
		numWidth, rankStr)
}

// formatDecimal formats a decimal for display (in thousands/millions).
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// truncate truncates a string to maxLen.
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary of the comparison.
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s (%s): ", domain.FormatUSD(compSet.Income), compSet.FilingStatus))

	for i := range compSet.Results {
		if i > 0 {
			sb.WriteString(" | ")
		}
		r := &compSet.Results[i]
		sb.WriteString(fmt.Sprintf("%s $%s", r.StateName, tf.formatDecimal(r.Result.TaxOwed)))
	}

	return sb.String()
}
