package cmd

import (
	"github.com/mattphotonman/Financial/internal/config"
	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/mattphotonman/Financial/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newComputeCmd(v *viper.Viper) *cobra.Command {
	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the retirement horizon of a single savings plan",
		Example: `  horizon compute --years-contributing 30 --contribution 60000 --withdrawal 90000
  horizon compute --withdrawal 60,000 --market-return 0.07 --inflation-rate 0.03 --format console`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := planFromFlags(v)
			if err != nil {
				return err
			}
			overrides, err := assumptionOverrides(v)
			if err != nil {
				return err
			}
			cfg := &domain.Configuration{
				GlobalAssumptions: overrides,
				Scenarios:         []domain.Scenario{{Name: v.GetString("name"), Plan: plan}},
			}
			if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
				return err
			}

			results, err := newEngine(v, cmd.ErrOrStderr()).RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), v.GetString("format"), results)
		},
	}
	addPlanFlags(computeCmd.Flags())
	computeCmd.Flags().String("name", "Savings plan", "Scenario name shown in the report")
	computeCmd.Flags().StringP("format", "f", "console-lite", "Output format (console, console-lite, csv, detailed-csv, json, yaml)")
	return computeCmd
}
