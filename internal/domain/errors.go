package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The three error types below cover every failure the calculation core can
// produce. All are input-validation failures raised synchronously at the
// point of detection; there is nothing transient to retry. Callers branch
// on the concrete type with errors.As rather than parsing messages.

// InvalidIncomeError indicates an income that is not a non-negative finite
// number (negative decimals here; NaN and ±Inf are rejected earlier at the
// float boundary, see calculation.IsValidEarnedIncome).
type InvalidIncomeError struct {
	Income decimal.Decimal
	Reason string
}

func (e *InvalidIncomeError) Error() string {
	return fmt.Sprintf("invalid income %s: %s", e.Income.String(), e.Reason)
}

// InvalidFilingStatusError indicates a filing status outside the two
// recognized values.
type InvalidFilingStatusError struct {
	Value string
}

func (e *InvalidFilingStatusError) Error() string {
	return fmt.Sprintf("invalid filing status %q: must be %q or %q", e.Value, FilingSingle, FilingMarried)
}

// StateNotFoundError indicates a state name with no entry in the tax table.
// Name echoes the exact (possibly empty) name supplied by the caller.
type StateNotFoundError struct {
	Name string
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("state %q not found in tax table", e.Name)
}
