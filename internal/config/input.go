// Package config loads and validates chart configuration files.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/statax/statax/internal/domain"
)

// IncomeRangeConfig describes the sampled income axis of a chart.
// Degenerate values (max < min, step <= 0) are deliberately legal; the
// range generator defines their behavior, so transient UI states can be
// saved and reloaded without tripping validation.
type IncomeRangeConfig struct {
	Min  decimal.Decimal `yaml:"min"`
	Max  decimal.Decimal `yaml:"max"`
	Step decimal.Decimal `yaml:"step"`
}

// ChartConfig is the persisted shape of one chart: which states to plot,
// over which income range, for which filing status.
type ChartConfig struct {
	IncomeRange  IncomeRangeConfig   `yaml:"income_range"`
	States       []string            `yaml:"states"`
	FilingStatus domain.FilingStatus `yaml:"filing_status"`
	Format       string              `yaml:"format"`
}

// DefaultChartConfig returns the configuration used when no file is
// supplied.
func DefaultChartConfig() *ChartConfig {
	return &ChartConfig{
		IncomeRange: IncomeRangeConfig{
			Min:  decimal.Zero,
			Max:  decimal.NewFromInt(200000),
			Step: decimal.NewFromInt(10000),
		},
		States:       []string{"California", "Colorado", "New York", "Texas"},
		FilingStatus: domain.FilingSingle,
		Format:       "console",
	}
}

// StateResolver is the slice of the tax data source validation needs.
type StateResolver interface {
	StateProfile(name string) (*domain.StateTaxProfile, error)
}

// InputParser handles parsing of chart configuration files.
type InputParser struct {
	Resolver StateResolver
}

// NewInputParser creates a parser validating against the given resolver.
func NewInputParser(resolver StateResolver) *InputParser {
	return &InputParser{Resolver: resolver}
}

// LoadFromFile loads a chart configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*ChartConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := DefaultChartConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateChartConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateChartConfig validates a loaded configuration. Range degeneracy
// is not an error; unknown states, negative bounds, an unrecognized
// filing status and unknown output formats are.
func (ip *InputParser) ValidateChartConfig(config *ChartConfig) error {
	if config.IncomeRange.Min.IsNegative() {
		return fmt.Errorf("income_range.min must be non-negative, got %s", config.IncomeRange.Min)
	}
	if config.IncomeRange.Max.IsNegative() {
		return fmt.Errorf("income_range.max must be non-negative, got %s", config.IncomeRange.Max)
	}

	if !config.FilingStatus.Valid() {
		return &domain.InvalidFilingStatusError{Value: string(config.FilingStatus)}
	}

	for _, state := range config.States {
		if _, err := ip.Resolver.StateProfile(state); err != nil {
			return fmt.Errorf("unknown state in config: %w", err)
		}
	}

	switch config.Format {
	case "console", "csv", "json":
	default:
		return fmt.Errorf("unsupported format %q: must be console, csv or json", config.Format)
	}

	return nil
}
