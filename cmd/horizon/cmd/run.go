package cmd

import (
	"fmt"
	"os"

	"github.com/mattphotonman/Financial/internal/config"
	"github.com/mattphotonman/Financial/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run every scenario of a YAML configuration",
		Long: `Run loads a configuration file, projects each scenario and reports the results.

Assumption flags set on the command line or in the environment replace the
file's global assumptions; per-scenario assumptions still take precedence.
With --output-dir the report is written to a timestamped file instead of stdout.`,
		Example: `  horizon run --config scenarios.yaml
  horizon run --config scenarios.yaml --format all --output-dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(v.GetString("config"))
			if err != nil {
				return err
			}

			overrides, err := assumptionOverrides(v)
			if err != nil {
				return err
			}
			if overrides.MarketReturn != nil {
				cfg.GlobalAssumptions.MarketReturn = overrides.MarketReturn
			}
			if overrides.InflationRate != nil {
				cfg.GlobalAssumptions.InflationRate = overrides.InflationRate
			}
			if overrides.MaxYears != nil {
				cfg.GlobalAssumptions.MaxYears = overrides.MaxYears
			}
			if err := parser.ValidateConfiguration(cfg); err != nil {
				return err
			}

			results, err := newEngine(v, cmd.ErrOrStderr()).RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			dir := v.GetString("output-dir")
			if dir == "" {
				return output.Render(cmd.OutOrStdout(), v.GetString("format"), results)
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			files, err := output.GenerateReport(results, v.GetString("format"), dir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
			}
			return nil
		},
	}
	runCmd.Flags().StringP("config", "c", "", "Path to the YAML configuration")
	runCmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, csv, detailed-csv, json, yaml, all)")
	runCmd.Flags().StringP("output-dir", "o", "", "Write the report to a file in this directory")
	_ = runCmd.MarkFlagRequired("config")
	return runCmd
}
