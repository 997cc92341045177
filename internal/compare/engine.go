package compare

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/statax/statax/internal/calculation"
	"github.com/statax/statax/internal/domain"
)

// CompareEngine orchestrates multi-state comparison on top of the
// calculation engine.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a new comparison engine.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare computes tax for each state at the given income and derives
// ranks, deltas and recommendations. State order in Results follows the
// input; any unresolvable state or invalid input aborts the whole
// comparison with the engine's error.
func (ce *CompareEngine) Compare(income decimal.Decimal, stateNames []string, status domain.FilingStatus) (*ComparisonSet, error) {
	comparisons, err := ce.CalcEngine.CalculateTaxComparison(income, stateNames, status)
	if err != nil {
		return nil, err
	}

	results := make([]StateResult, len(comparisons))
	for i, c := range comparisons {
		results[i] = StateResult{StateName: c.StateName, Result: c.Result}
	}

	rankResults(results)

	compSet := &ComparisonSet{
		Income:       income,
		FilingStatus: status,
		Results:      results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// rankResults assigns burden ranks (1 = lowest tax owed) and the delta
// from the lowest-burden state, leaving the slice in input order.
func rankResults(results []StateResult) {
	if len(results) == 0 {
		return
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return results[order[a]].Result.TaxOwed.LessThan(results[order[b]].Result.TaxOwed)
	})

	lowest := results[order[0]].Result.TaxOwed
	for rank, idx := range order {
		results[idx].Rank = rank + 1
		results[idx].DiffFromLowest = results[idx].Result.TaxOwed.Sub(lowest)
	}
}

// GenerateRecommendations creates display recommendations from a
// comparison set.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.Results) < 2 {
		return recommendations
	}

	low := compSet.Lowest()
	high := compSet.Highest()

	if low != nil && high != nil && compSet.Spread().IsPositive() {
		recommendations = append(recommendations,
			"Lowest Burden: "+low.StateName+" owes "+domain.FormatUSD(compSet.Spread())+
				" less than "+high.StateName+" at this income")
	}

	zeroTax := []string{}
	for _, r := range compSet.Results {
		if r.Result.TaxOwed.IsZero() {
			zeroTax = append(zeroTax, r.StateName)
		}
	}
	if len(zeroTax) > 0 && len(zeroTax) < len(compSet.Results) {
		recommendations = append(recommendations,
			"No Tax Owed: "+joinNames(zeroTax)+" at "+domain.FormatUSD(compSet.Income))
	}

	return recommendations
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		out := names[0]
		for _, n := range names[1 : len(names)-1] {
			out += ", " + n
		}
		return out + " and " + names[len(names)-1]
	}
}
