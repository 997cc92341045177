package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/statax/statax/internal/domain"
)

// ReportGenerator writes chart datasets in various formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// WriteChart writes chart data to w in the requested format.
func (rg *ReportGenerator) WriteChart(w io.Writer, data *ChartData, format string) error {
	switch format {
	case "console":
		return rg.writeConsole(w, data)
	case "csv":
		return rg.writeCSV(w, data)
	case "json":
		return rg.writeJSON(w, data)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeConsole renders the dataset as an aligned income-by-state table.
func (rg *ReportGenerator) writeConsole(w io.Writer, data *ChartData) error {
	var sb strings.Builder

	sb.WriteString(data.Title + "\n")
	sb.WriteString(strings.Repeat("=", 12+16*len(data.Series)) + "\n")

	sb.WriteString(fmt.Sprintf("%-12s", "Income"))
	for _, s := range data.Series {
		sb.WriteString(fmt.Sprintf(" %15s", truncateName(s.StateName, 15)))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 12+16*len(data.Series)) + "\n")

	for i := range data.Incomes {
		sb.WriteString(fmt.Sprintf("%-12s", data.Labels[i]))
		for _, s := range data.Series {
			sb.WriteString(fmt.Sprintf(" %15s", domain.FormatUSD(s.Points[i])))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCSV emits one row per income with a column per state.
func (rg *ReportGenerator) writeCSV(w io.Writer, data *ChartData) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, len(data.Series)+1)
	header = append(header, "Income")
	for _, s := range data.Series {
		header = append(header, s.StateName)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range data.Incomes {
		row := make([]string, 0, len(data.Series)+1)
		row = append(row, data.Incomes[i].StringFixed(2))
		for _, s := range data.Series {
			row = append(row, s.Points[i].StringFixed(2))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeJSON emits the dataset exactly as chart renderers consume it.
func (rg *ReportGenerator) writeJSON(w io.Writer, data *ChartData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func truncateName(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
