// Package compare builds multi-state tax comparisons at a single income
// point and renders them as console tables, CSV or JSON.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/statax/statax/internal/domain"
)

// StateResult is one state's entry in a comparison, with display metrics
// derived relative to the rest of the set.
type StateResult struct {
	StateName string                      `json:"stateName"`
	Result    domain.TaxCalculationResult `json:"result"`

	// Rank orders states by tax owed, 1 = lowest burden. Ties share the
	// burden ordering of their first appearance in the input.
	Rank int `json:"rank"`
	// DiffFromLowest is tax owed minus the lowest tax owed in the set.
	DiffFromLowest decimal.Decimal `json:"diffFromLowest"`
}

// ComparisonSet is a complete multi-state comparison at one income point.
// Results preserve the caller's state order; Rank carries the burden
// ordering.
type ComparisonSet struct {
	Income          decimal.Decimal     `json:"income"`
	FilingStatus    domain.FilingStatus `json:"filingStatus"`
	Results         []StateResult       `json:"results"`
	Recommendations []string            `json:"recommendations"`
}

// Lowest returns the entry with the smallest tax owed, or nil for an
// empty set.
func (cs *ComparisonSet) Lowest() *StateResult {
	return cs.byRank(1)
}

// Highest returns the entry with the largest tax owed, or nil for an
// empty set.
func (cs *ComparisonSet) Highest() *StateResult {
	return cs.byRank(len(cs.Results))
}

func (cs *ComparisonSet) byRank(rank int) *StateResult {
	for i := range cs.Results {
		if cs.Results[i].Rank == rank {
			return &cs.Results[i]
		}
	}
	return nil
}

// Spread returns the difference in tax owed between the highest and
// lowest burden states in the set.
func (cs *ComparisonSet) Spread() decimal.Decimal {
	high := cs.Highest()
	low := cs.Lowest()
	if high == nil || low == nil {
		return decimal.Zero
	}
	return high.Result.TaxOwed.Sub(low.Result.TaxOwed)
}
