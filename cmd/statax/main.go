package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/statax/statax/internal/calculation"
	"github.com/statax/statax/internal/compare"
	"github.com/statax/statax/internal/config"
	"github.com/statax/statax/internal/domain"
	"github.com/statax/statax/internal/output"
	"github.com/statax/statax/internal/taxdata"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "statax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "statax",
	Short: "US state income tax comparison calculator",
	Long:  "Compare state personal income tax burdens across income levels, filing statuses and states",
}

// newEngine builds the calculation engine honoring the --verbose flag.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

// parseIncomeArg converts a CLI income argument, rejecting NaN/Inf and
// negatives before any decimal conversion.
func parseIncomeArg(raw string) (decimal.Decimal, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("income must be a number, got %q", raw)
	}
	if !calculation.IsValidEarnedIncome(v) {
		return decimal.Decimal{}, fmt.Errorf("income must be a non-negative finite number, got %q", raw)
	}
	return decimal.NewFromFloat(v), nil
}

func parseStatusFlag(cmd *cobra.Command) (domain.FilingStatus, error) {
	raw, _ := cmd.Flags().GetString("status")
	return domain.ParseFilingStatus(raw)
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [income]",
	Short: "Calculate tax for one state at one income",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		income, err := parseIncomeArg(args[0])
		if err != nil {
			return err
		}
		status, err := parseStatusFlag(cmd)
		if err != nil {
			return err
		}
		state, _ := cmd.Flags().GetString("state")

		result, err := newEngine(cmd).CalculateTax(income, state, status)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "State:          %s\n", state)
		fmt.Fprintf(os.Stdout, "Income:         %s\n", domain.FormatUSD(result.Income))
		fmt.Fprintf(os.Stdout, "Tax Owed:       %s\n", domain.FormatUSD(result.TaxOwed))
		fmt.Fprintf(os.Stdout, "Effective Rate: %s\n", domain.FormatPercent(result.EffectiveRate))
		fmt.Fprintf(os.Stdout, "Marginal Rate:  %s\n", domain.FormatPercent(result.MarginalRate))
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [income]",
	Short: "Compare tax across several states at one income",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		income, err := parseIncomeArg(args[0])
		if err != nil {
			return err
		}
		status, err := parseStatusFlag(cmd)
		if err != nil {
			return err
		}
		states, _ := cmd.Flags().GetStringSlice("states")
		format, _ := cmd.Flags().GetString("format")

		compSet, err := compare.NewCompareEngine(newEngine(cmd)).Compare(income, states, status)
		if err != nil {
			return err
		}

		switch format {
		case "table":
			fmt.Fprint(os.Stdout, (&compare.TableFormatter{}).Format(compSet))
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, out)
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, out)
		default:
			return fmt.Errorf("unsupported format %q: must be table, csv or json", format)
		}
		return nil
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export tax-by-income chart series for a set of states",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadChartConfig(cmd)
		if err != nil {
			return err
		}

		data, err := output.BuildChartData(newEngine(cmd), output.ChartRequest{
			MinIncome:    cfg.IncomeRange.Min,
			MaxIncome:    cfg.IncomeRange.Max,
			Step:         cfg.IncomeRange.Step,
			States:       cfg.States,
			FilingStatus: cfg.FilingStatus,
		})
		if err != nil {
			return err
		}

		return output.NewReportGenerator().WriteChart(os.Stdout, data, cfg.Format)
	},
}

// loadChartConfig resolves chart settings: a --config YAML file when
// given, defaults otherwise, with individual flags overriding either.
func loadChartConfig(cmd *cobra.Command) (*config.ChartConfig, error) {
	var cfg *config.ChartConfig

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		parsed, err := config.NewInputParser(taxdata.Default()).LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	} else {
		cfg = config.DefaultChartConfig()
	}

	if cmd.Flags().Changed("states") {
		cfg.States, _ = cmd.Flags().GetStringSlice("states")
	}
	if cmd.Flags().Changed("status") {
		status, err := parseStatusFlag(cmd)
		if err != nil {
			return nil, err
		}
		cfg.FilingStatus = status
	}
	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	for _, f := range []struct {
		name   string
		target *decimal.Decimal
	}{
		{"min", &cfg.IncomeRange.Min},
		{"max", &cfg.IncomeRange.Max},
		{"step", &cfg.IncomeRange.Step},
	} {
		if cmd.Flags().Changed(f.name) {
			v, _ := cmd.Flags().GetFloat64(f.name)
			// A negative or zero step is a degenerate range, not an error,
			// but non-finite values must never reach decimal conversion.
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return nil, fmt.Errorf("--%s must be a finite number", f.name)
			case f.name != "step" && !calculation.IsValidEarnedIncome(v):
				return nil, fmt.Errorf("--%s must be a non-negative finite number", f.name)
			}
			*f.target = decimal.NewFromFloat(v)
		}
	}

	return cfg, nil
}

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List all states in the tax table",
	Run: func(cmd *cobra.Command, args []string) {
		store := taxdata.Default()
		for _, name := range store.StateNames() {
			profile, err := store.StateProfile(name)
			if err != nil {
				continue
			}
			top := profile.Single.Brackets[len(profile.Single.Brackets)-1].Rate
			fmt.Fprintf(os.Stdout, "%-16s top rate %s\n", name, domain.FormatPercent(top))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	calculateCmd.Flags().String("state", "", "State name (e.g. \"Colorado\")")
	calculateCmd.Flags().String("status", "single", "Filing status: single or married")
	_ = calculateCmd.MarkFlagRequired("state")

	compareCmd.Flags().StringSlice("states", nil, "Comma-separated state names")
	compareCmd.Flags().String("status", "single", "Filing status: single or married")
	compareCmd.Flags().String("format", "table", "Output format: table, csv or json")
	_ = compareCmd.MarkFlagRequired("states")

	chartCmd.Flags().String("config", "", "Chart configuration YAML file")
	chartCmd.Flags().StringSlice("states", nil, "Comma-separated state names")
	chartCmd.Flags().String("status", "single", "Filing status: single or married")
	chartCmd.Flags().String("format", "console", "Output format: console, csv or json")
	chartCmd.Flags().Float64("min", 0, "Income range minimum")
	chartCmd.Flags().Float64("max", 200000, "Income range maximum")
	chartCmd.Flags().Float64("step", 10000, "Income range step")

	rootCmd.AddCommand(calculateCmd, compareCmd, chartCmd, statesCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
