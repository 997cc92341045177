package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilingStatus identifies which bracket schedule applies to a filer.
type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

// Valid reports whether the filing status is one of the two recognized values.
func (fs FilingStatus) Valid() bool {
	return fs == FilingSingle || fs == FilingMarried
}

// String returns the canonical lowercase form.
func (fs FilingStatus) String() string {
	return string(fs)
}

// ParseFilingStatus converts user-supplied text into a FilingStatus.
// Accepts case-insensitive input and the common "married filing jointly"
// spellings used by tax tables.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "s":
		return FilingSingle, nil
	case "married", "m", "mfj", "married filing jointly", "joint":
		return FilingMarried, nil
	default:
		return "", &InvalidFilingStatusError{Value: s}
	}
}

// UnmarshalYAML implements yaml.Unmarshaler so configuration files can
// spell the status loosely ("Single", "MFJ", ...).
func (fs *FilingStatus) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseFilingStatus(raw)
	if err != nil {
		return err
	}
	*fs = parsed
	return nil
}

// TaxBracket represents one marginal rate segment of a progressive schedule.
// The bracket applies to taxable income above Threshold, up to the next
// bracket's threshold (or without bound for the last bracket).
type TaxBracket struct {
	Threshold decimal.Decimal `json:"threshold" yaml:"threshold"`
	Rate      decimal.Decimal `json:"rate" yaml:"rate"`
}

// FilingStatusSchedule holds the deduction, exemption and bracket list for
// one filing status within a state.
//
// Brackets are sorted ascending by threshold with the first threshold at
// zero, and rates are non-decreasing. That is a data-quality invariant of
// the compiled-in table, not something the calculation engine enforces.
type FilingStatusSchedule struct {
	FilingStatus      FilingStatus    `json:"filingStatus" yaml:"filing_status"`
	StandardDeduction decimal.Decimal `json:"standardDeduction" yaml:"standard_deduction"`
	PersonalExemption decimal.Decimal `json:"personalExemption" yaml:"personal_exemption"`
	Brackets          []TaxBracket    `json:"brackets" yaml:"brackets"`
}

// StateTaxProfile is the full per-state record: one schedule per filing
// status plus the per-dependent deduction amount.
//
// DependentDeduction is reference data surfaced to consumers; it is not
// applied inside the single-filer calculation because the number of
// dependents is filer-supplied, not derivable from income.
type StateTaxProfile struct {
	Name               string               `json:"name" yaml:"name"`
	DependentDeduction decimal.Decimal      `json:"dependentDeduction" yaml:"dependent_deduction"`
	Single             FilingStatusSchedule `json:"single" yaml:"single"`
	Married            FilingStatusSchedule `json:"married" yaml:"married"`
}

// Schedule returns the schedule for the given filing status.
func (p *StateTaxProfile) Schedule(status FilingStatus) (*FilingStatusSchedule, error) {
	switch status {
	case FilingSingle:
		return &p.Single, nil
	case FilingMarried:
		return &p.Married, nil
	default:
		return nil, &InvalidFilingStatusError{Value: string(status)}
	}
}

// TaxCalculationResult is the output of a single-point tax calculation.
// Income reflects the exact input back to the caller.
type TaxCalculationResult struct {
	Income        decimal.Decimal `json:"income"`
	TaxOwed       decimal.Decimal `json:"taxOwed"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	MarginalRate  decimal.Decimal `json:"marginalRate"`
}

// StateTaxComparison pairs a state name with its calculation result for
// point-in-time comparison displays.
type StateTaxComparison struct {
	StateName string               `json:"stateName"`
	Result    TaxCalculationResult `json:"result"`
}

// FormatUSD renders a decimal dollar amount for display, e.g. "$12,345.67".
func FormatUSD(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]
	var grouped strings.Builder
	for i, ch := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(ch)
	}

	out := "$" + grouped.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent renders a rate (0.044) as a percentage string ("4.40%").
func FormatPercent(rate decimal.Decimal) string {
	return fmt.Sprintf("%s%%", rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
}
