// Package calculation implements the state income tax engine: single-point
// calculations, batch series over an income range, and multi-state
// comparison at one income. Every operation is a pure function over its
// inputs and the read-only tax table, so concurrent callers need no
// coordination.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/statax/statax/internal/domain"
	"github.com/statax/statax/internal/taxdata"
)

// TaxDataSource resolves state names to tax profiles. taxdata.Store is the
// production implementation; tests substitute reduced tables.
type TaxDataSource interface {
	StateProfile(name string) (*domain.StateTaxProfile, error)
	StateNames() []string
}

// Logger lets callers surface engine diagnostics without binding the
// engine to a logging implementation.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output. It is the default.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Engine performs state income tax calculations against a tax data source.
type Engine struct {
	Data   TaxDataSource
	Logger Logger
}

// NewEngine creates an engine backed by the compiled-in 50-state table.
func NewEngine() *Engine {
	return NewEngineWithData(taxdata.Default())
}

// NewEngineWithData creates an engine over an explicit data source.
func NewEngineWithData(data TaxDataSource) *Engine {
	return &Engine{
		Data:   data,
		Logger: NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// CalculateTax computes owed tax, effective rate and marginal rate for one
// (income, state, filing status) triple.
//
// Validation runs first, in a fixed order with first failure winning:
// income (non-negative), filing status (recognized value), state name
// (present in the table). Taxable income is income minus the schedule's
// standard deduction and personal exemption, floored at zero; the state's
// dependent deduction is deliberately not applied (dependents are
// filer-supplied and outside the single-filer path). The bracket walk is
// the standard marginal algorithm: each bracket taxes only the slice of
// taxable income between its threshold and the next.
//
// Results are deterministic, monotone in income, and satisfy
// 0 <= taxOwed <= income and 0 <= effectiveRate <= marginalRate <= 1.
func (e *Engine) CalculateTax(income decimal.Decimal, stateName string, status domain.FilingStatus) (domain.TaxCalculationResult, error) {
	if income.IsNegative() {
		return domain.TaxCalculationResult{}, &domain.InvalidIncomeError{Income: income, Reason: "income must be non-negative"}
	}
	if !status.Valid() {
		return domain.TaxCalculationResult{}, &domain.InvalidFilingStatusError{Value: string(status)}
	}
	profile, err := e.Data.StateProfile(stateName)
	if err != nil {
		return domain.TaxCalculationResult{}, err
	}

	schedule, err := profile.Schedule(status)
	if err != nil {
		return domain.TaxCalculationResult{}, err
	}

	taxableIncome := income.Sub(schedule.StandardDeduction).Sub(schedule.PersonalExemption)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	taxOwed, marginalRate := applyBrackets(taxableIncome, schedule.Brackets)

	effectiveRate := decimal.Zero
	if income.IsPositive() {
		effectiveRate = taxOwed.Div(income)
	}

	e.Logger.Debugf("calculated tax: state=%s status=%s income=%s owed=%s",
		stateName, status, income.StringFixed(2), taxOwed.StringFixed(2))

	return domain.TaxCalculationResult{
		Income:        income,
		TaxOwed:       taxOwed,
		EffectiveRate: effectiveRate,
		MarginalRate:  marginalRate,
	}, nil
}

// applyBrackets walks a sorted bracket list and returns the total tax plus
// the rate of the bracket containing the last taxable dollar. For zero
// taxable income the marginal rate is the first bracket's rate.
func applyBrackets(taxableIncome decimal.Decimal, brackets []domain.TaxBracket) (decimal.Decimal, decimal.Decimal) {
	taxOwed := decimal.Zero
	marginalRate := brackets[0].Rate

	for i, b := range brackets {
		if taxableIncome.LessThanOrEqual(b.Threshold) && i > 0 {
			break
		}
		upper := taxableIncome
		if i+1 < len(brackets) && brackets[i+1].Threshold.LessThan(upper) {
			upper = brackets[i+1].Threshold
		}
		portion := upper.Sub(b.Threshold)
		if portion.IsPositive() {
			taxOwed = taxOwed.Add(portion.Mul(b.Rate))
		}
		// The bracket reached, not exceeded, supplies the marginal rate.
		if taxableIncome.GreaterThan(b.Threshold) || i == 0 {
			marginalRate = b.Rate
		}
	}

	return taxOwed, marginalRate
}

// CalculateTaxForIncomes vectorizes CalculateTax over a sequence of
// incomes for one state and filing status, returning owed tax in input
// order. An empty input yields an empty output. Any invalid element or an
// invalid state/status aborts the whole batch with no partial results: a
// chart dataset must be fully consistent or not rendered at all.
func (e *Engine) CalculateTaxForIncomes(incomes []decimal.Decimal, stateName string, status domain.FilingStatus) ([]decimal.Decimal, error) {
	taxes := make([]decimal.Decimal, 0, len(incomes))
	for _, income := range incomes {
		result, err := e.CalculateTax(income, stateName, status)
		if err != nil {
			return nil, err
		}
		taxes = append(taxes, result.TaxOwed)
	}
	return taxes, nil
}

// CalculateTaxComparison computes tax for several states at one income
// point, one entry per input state name, in input order. An empty name
// list yields an empty result; any unresolvable state aborts the whole
// comparison.
func (e *Engine) CalculateTaxComparison(income decimal.Decimal, stateNames []string, status domain.FilingStatus) ([]domain.StateTaxComparison, error) {
	comparisons := make([]domain.StateTaxComparison, 0, len(stateNames))
	for _, name := range stateNames {
		result, err := e.CalculateTax(income, name, status)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, domain.StateTaxComparison{
			StateName: name,
			Result:    result,
		})
	}
	return comparisons, nil
}
