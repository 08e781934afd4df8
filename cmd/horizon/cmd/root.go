package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mattphotonman/Financial/internal/calculation"
	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the horizon command tree.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Every flag can also be set through a
// HORIZON_* environment variable, e.g. HORIZON_MAX_YEARS=50; flags win over env.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HORIZON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "horizon",
		Short: "Retirement horizon calculator",
		Long: `horizon estimates how many years a retirement fund lasts.

Savings are built by a fixed yearly contribution, grown at the real rate
(1 + market return) / (1 + inflation), and then drawn down by a fixed yearly
withdrawal. All amounts are in present-day currency.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("market-return", domain.DefaultMarketReturn.String(), "Nominal yearly market return (0.04 = 4%)")
	pf.String("inflation-rate", domain.DefaultInflationRate.String(), "Yearly inflation rate (0.035 = 3.5%)")
	pf.Int("max-years", domain.DefaultMaxYears, "Maximum number of withdrawal years simulated")
	pf.BoolP("verbose", "v", false, "Log the accumulation and every withdrawal year")

	rootCmd.AddCommand(
		newComputeCmd(v),
		newRunCmd(v),
		newSweepCmd(v),
		newSolveCmd(v),
		newExampleCmd(v),
	)
	return rootCmd
}

// assumptionOverrides collects the assumption flags that were set explicitly,
// either on the command line or through the environment.
func assumptionOverrides(v *viper.Viper) (domain.AssumptionOverrides, error) {
	var overrides domain.AssumptionOverrides
	if v.IsSet("market-return") {
		d, err := decimal.NewFromString(strings.TrimSpace(v.GetString("market-return")))
		if err != nil {
			return overrides, fmt.Errorf("invalid market-return: %w", err)
		}
		overrides.MarketReturn = &d
	}
	if v.IsSet("inflation-rate") {
		d, err := decimal.NewFromString(strings.TrimSpace(v.GetString("inflation-rate")))
		if err != nil {
			return overrides, fmt.Errorf("invalid inflation-rate: %w", err)
		}
		overrides.InflationRate = &d
	}
	if v.IsSet("max-years") {
		n := v.GetInt("max-years")
		overrides.MaxYears = &n
	}
	return overrides, nil
}

// newEngine returns an engine logging to w; verbose enables per-year debug output.
func newEngine(v *viper.Viper, w io.Writer) *calculation.HorizonEngine {
	level := slog.LevelInfo
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	engine := calculation.NewHorizonEngine()
	engine.SetLogger(calculation.NewSlogLogger(logger))
	engine.Debug = v.GetBool("verbose")
	return engine
}
