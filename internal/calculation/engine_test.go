package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statax/statax/internal/domain"
	"github.com/statax/statax/internal/taxdata"
)

var noTaxStates = []string{
	"Alaska", "Florida", "Nevada", "New Hampshire", "South Dakota",
	"Tennessee", "Texas", "Washington", "Wyoming",
}

var bothStatuses = []domain.FilingStatus{domain.FilingSingle, domain.FilingMarried}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Data, "Should initialize data source")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &testLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Nil should restore no-op logger")
}

func TestCalculateTax_ZeroIncome(t *testing.T) {
	engine := NewEngine()

	for _, state := range taxdata.Default().StateNames() {
		for _, status := range bothStatuses {
			result, err := engine.CalculateTax(decimal.Zero, state, status)
			require.NoError(t, err, "State %s should calculate at zero income", state)

			assert.True(t, result.TaxOwed.IsZero(), "%s/%s should owe nothing at zero income", state, status)
			assert.True(t, result.EffectiveRate.IsZero(), "%s/%s effective rate should be zero at zero income", state, status)
			assert.True(t, result.Income.IsZero(), "Result should echo the input income")
		}
	}
}

func TestCalculateTax_NoTaxStates(t *testing.T) {
	engine := NewEngine()
	incomes := []int64{0, 10000, 50000, 100000, 1000000, 5000000}

	for _, state := range noTaxStates {
		for _, status := range bothStatuses {
			for _, income := range incomes {
				result, err := engine.CalculateTax(decimal.NewFromInt(income), state, status)
				require.NoError(t, err)

				assert.True(t, result.TaxOwed.IsZero(),
					"%s should owe nothing at %d, got %s", state, income, result.TaxOwed)
			}
		}
	}
}

func TestCalculateTax_Monotonicity(t *testing.T) {
	engine := NewEngine()
	states := []string{"California", "Colorado", "New York", "Alabama", "Mississippi", "Texas"}

	for _, state := range states {
		for _, status := range bothStatuses {
			prev := decimal.Zero
			for income := int64(0); income <= 500000; income += 7500 {
				result, err := engine.CalculateTax(decimal.NewFromInt(income), state, status)
				require.NoError(t, err)

				assert.True(t, result.TaxOwed.GreaterThanOrEqual(prev),
					"%s/%s tax should not decrease: income %d owed %s, previous %s",
					state, status, income, result.TaxOwed, prev)
				prev = result.TaxOwed
			}
		}
	}
}

func TestCalculateTax_Boundedness(t *testing.T) {
	engine := NewEngine()
	one := decimal.NewFromInt(1)
	incomes := []int64{0, 1, 999, 25000, 100000, 2000000}

	for _, state := range taxdata.Default().StateNames() {
		for _, status := range bothStatuses {
			for _, income := range incomes {
				in := decimal.NewFromInt(income)
				result, err := engine.CalculateTax(in, state, status)
				require.NoError(t, err)

				assert.False(t, result.TaxOwed.IsNegative(), "%s: tax owed must be non-negative", state)
				assert.True(t, result.TaxOwed.LessThanOrEqual(in), "%s: tax owed must not exceed income", state)
				assert.False(t, result.EffectiveRate.IsNegative(), "%s: effective rate must be non-negative", state)
				assert.True(t, result.EffectiveRate.LessThanOrEqual(result.MarginalRate),
					"%s at %d: effective %s must not exceed marginal %s",
					state, income, result.EffectiveRate, result.MarginalRate)
				assert.True(t, result.MarginalRate.LessThanOrEqual(one), "%s: marginal rate must not exceed 1", state)
			}
		}
	}
}

func TestCalculateTax_FlatTaxConvergence(t *testing.T) {
	engine := NewEngine()

	result, err := engine.CalculateTax(decimal.NewFromInt(1000000), "Colorado", domain.FilingSingle)
	require.NoError(t, err)

	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.044)),
		"Colorado marginal rate should be 4.4%%, got %s", result.MarginalRate)

	gap := result.MarginalRate.Sub(result.EffectiveRate)
	assert.True(t, gap.LessThan(decimal.NewFromFloat(0.01)),
		"Effective rate should converge to marginal at $1M, gap %s", gap)
}

func TestCalculateTax_KnownValue(t *testing.T) {
	engine := NewEngine()

	// Colorado single: (50000 - 13850 standard deduction) * 4.4%
	result, err := engine.CalculateTax(decimal.NewFromInt(50000), "Colorado", domain.FilingSingle)
	require.NoError(t, err)

	assert.True(t, result.TaxOwed.Equal(decimal.NewFromFloat(1590.60)),
		"Colorado single at 50k should owe $1,590.60, got %s", result.TaxOwed)
	assert.True(t, result.EffectiveRate.Equal(decimal.NewFromFloat(0.031812)),
		"Effective rate should be 3.1812%%, got %s", result.EffectiveRate)
}

func TestCalculateTax_ProgressiveBrackets(t *testing.T) {
	engine := NewEngine()

	// Alabama single, income 14500: taxable = 14500 - 3000 - 1500 = 10000.
	// 500*2% + 2500*4% + 7000*5% = 10 + 100 + 350.
	result, err := engine.CalculateTax(decimal.NewFromInt(14500), "Alabama", domain.FilingSingle)
	require.NoError(t, err)

	assert.True(t, result.TaxOwed.Equal(decimal.NewFromInt(460)),
		"Alabama single at 14.5k should owe $460, got %s", result.TaxOwed)
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.05)),
		"Last taxable dollar should fall in the 5%% bracket, got %s", result.MarginalRate)
}

func TestCalculateTax_MarginalRateAtZeroTaxable(t *testing.T) {
	engine := NewEngine()

	// Income fully absorbed by deduction and exemption: marginal rate is
	// the first bracket's rate.
	result, err := engine.CalculateTax(decimal.NewFromInt(4000), "Alabama", domain.FilingSingle)
	require.NoError(t, err)

	assert.True(t, result.TaxOwed.IsZero(), "Nothing taxable, nothing owed")
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.02)),
		"Marginal rate at zero taxable should be the first bracket's, got %s", result.MarginalRate)
}

func TestCalculateTax_Determinism(t *testing.T) {
	engine := NewEngine()
	income := decimal.NewFromFloat(123456.78)

	first, err := engine.CalculateTax(income, "California", domain.FilingMarried)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.CalculateTax(income, "California", domain.FilingMarried)
		require.NoError(t, err)
		assert.Equal(t, first, again, "Repeated calls must return identical results")
	}
}

func TestCalculateTax_InvalidIncome(t *testing.T) {
	engine := NewEngine()

	_, err := engine.CalculateTax(decimal.NewFromInt(-1000), "Colorado", domain.FilingSingle)
	require.Error(t, err)

	var invalidIncome *domain.InvalidIncomeError
	assert.True(t, errors.As(err, &invalidIncome), "Should be InvalidIncomeError, got %T", err)
}

func TestCalculateTax_StateNotFound(t *testing.T) {
	engine := NewEngine()

	_, err := engine.CalculateTax(decimal.NewFromInt(50000), "NotAState", domain.FilingSingle)
	require.Error(t, err)

	var notFound *domain.StateNotFoundError
	require.True(t, errors.As(err, &notFound), "Should be StateNotFoundError, got %T", err)
	assert.Equal(t, "NotAState", notFound.Name, "Error should echo the raw name")
	assert.Contains(t, err.Error(), "NotAState", "Message should contain the supplied name")

	_, err = engine.CalculateTax(decimal.NewFromInt(50000), "", domain.FilingSingle)
	require.True(t, errors.As(err, &notFound), "Empty name should also be StateNotFoundError")
	assert.Equal(t, "", notFound.Name, "Empty name should be echoed as-is")
}

func TestCalculateTax_InvalidFilingStatus(t *testing.T) {
	engine := NewEngine()

	_, err := engine.CalculateTax(decimal.NewFromInt(50000), "Colorado", domain.FilingStatus("Bogus"))
	require.Error(t, err)

	var invalidStatus *domain.InvalidFilingStatusError
	assert.True(t, errors.As(err, &invalidStatus), "Should be InvalidFilingStatusError, got %T", err)
}

func TestCalculateTax_ValidationOrder(t *testing.T) {
	engine := NewEngine()

	// Income is checked first, then filing status, then state.
	_, err := engine.CalculateTax(decimal.NewFromInt(-1), "NotAState", domain.FilingStatus("Bogus"))
	var invalidIncome *domain.InvalidIncomeError
	assert.True(t, errors.As(err, &invalidIncome), "Negative income should win over other failures")

	_, err = engine.CalculateTax(decimal.NewFromInt(1), "NotAState", domain.FilingStatus("Bogus"))
	var invalidStatus *domain.InvalidFilingStatusError
	assert.True(t, errors.As(err, &invalidStatus), "Filing status should be checked before state")
}

func TestCalculateTaxForIncomes(t *testing.T) {
	engine := NewEngine()

	incomes := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(25000),
		decimal.NewFromInt(50000),
		decimal.NewFromInt(100000),
	}

	taxes, err := engine.CalculateTaxForIncomes(incomes, "Colorado", domain.FilingSingle)
	require.NoError(t, err)
	require.Len(t, taxes, 4, "Output length should match input")

	assert.True(t, taxes[0].IsZero(), "First element should be zero")
	for i := 1; i < len(taxes); i++ {
		assert.True(t, taxes[i].GreaterThanOrEqual(taxes[i-1]),
			"Series should be non-decreasing at index %d", i)
	}
}

func TestCalculateTaxForIncomes_Empty(t *testing.T) {
	engine := NewEngine()

	taxes, err := engine.CalculateTaxForIncomes(nil, "Colorado", domain.FilingSingle)
	require.NoError(t, err)
	assert.Empty(t, taxes, "Empty input should yield empty output, not an error")
}

func TestCalculateTaxForIncomes_FailFast(t *testing.T) {
	engine := NewEngine()

	incomes := []decimal.Decimal{decimal.NewFromInt(1000), decimal.NewFromInt(-5), decimal.NewFromInt(2000)}
	taxes, err := engine.CalculateTaxForIncomes(incomes, "Colorado", domain.FilingSingle)

	require.Error(t, err, "An invalid element should abort the batch")
	assert.Nil(t, taxes, "No partial results on failure")

	taxes, err = engine.CalculateTaxForIncomes([]decimal.Decimal{decimal.NewFromInt(1)}, "NotAState", domain.FilingSingle)
	require.Error(t, err)
	assert.Nil(t, taxes, "Unknown state should abort the batch")
}

func TestCalculateTaxComparison(t *testing.T) {
	engine := NewEngine()

	states := []string{"Colorado", "California", "Texas"}
	comparisons, err := engine.CalculateTaxComparison(decimal.NewFromInt(100000), states, domain.FilingSingle)
	require.NoError(t, err)
	require.Len(t, comparisons, 3)

	for i, state := range states {
		assert.Equal(t, state, comparisons[i].StateName, "Results must preserve input order")
	}
	assert.True(t, comparisons[2].Result.TaxOwed.IsZero(), "Texas should owe nothing")
}

func TestCalculateTaxComparison_EdgeCases(t *testing.T) {
	engine := NewEngine()

	comparisons, err := engine.CalculateTaxComparison(decimal.NewFromInt(100000), nil, domain.FilingSingle)
	require.NoError(t, err)
	assert.Empty(t, comparisons, "Empty state list should yield empty result")

	comparisons, err = engine.CalculateTaxComparison(decimal.NewFromInt(100000), []string{"Colorado", "Atlantis"}, domain.FilingSingle)
	require.Error(t, err, "Unknown state should abort the comparison")
	assert.Nil(t, comparisons, "No partial results on failure")

	var notFound *domain.StateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Atlantis", notFound.Name)
}

// testLogger records that it was called; used for the logger seam only.
type testLogger struct {
	debugCalls int
}

func (l *testLogger) Debugf(format string, args ...any) { l.debugCalls++ }
func (l *testLogger) Infof(format string, args ...any)  {}
func (l *testLogger) Warnf(format string, args ...any)  {}
func (l *testLogger) Errorf(format string, args ...any) {}
