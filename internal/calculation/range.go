package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// GenerateIncomeRange produces the evenly spaced income sample points for
// a chart series: min, min+step, ... up to and including max when it lands
// on a step boundary, otherwise up to the largest value <= max.
//
// Degenerate inputs are valid, not errors, because callers pass transient
// UI states straight through: max < min yields an empty sequence, and a
// zero or negative step yields just [min]. The sequence is eagerly
// materialized since chart consumers need random access and length.
func GenerateIncomeRange(min, max, step decimal.Decimal) []decimal.Decimal {
	if max.LessThan(min) {
		return []decimal.Decimal{}
	}
	if step.LessThanOrEqual(decimal.Zero) {
		return []decimal.Decimal{min}
	}

	count := max.Sub(min).Div(step).IntPart() + 1
	incomes := make([]decimal.Decimal, 0, count)
	for v := min; v.LessThanOrEqual(max); v = v.Add(step) {
		incomes = append(incomes, v)
	}
	return incomes
}

// IsValidEarnedIncome reports whether a raw numeric value is acceptable as
// earned income: a finite, non-negative real number. It rejects negative
// amounts, NaN and ±Inf at the UI boundary before they reach the engine,
// and before any decimal.NewFromFloat conversion, which panics on
// non-finite input.
func IsValidEarnedIncome(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}
