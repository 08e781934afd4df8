package cmd

import (
	"fmt"

	"github.com/mattphotonman/Financial/internal/calculation"
	"github.com/mattphotonman/Financial/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSolveCmd(v *viper.Viper) *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the yearly contribution needed to sustain a target horizon",
		Long: `Solve searches for the smallest yearly contribution, to the cent, for which the
plan sustains at least --target-years of withdrawals. The --contribution flag is ignored.`,
		Example: `  horizon solve --years-contributing 30 --withdrawal 90000 --target-years 25`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := planFromFlags(v)
			if err != nil {
				return err
			}
			assumptions, err := assumptionsFromFlags(v)
			if err != nil {
				return err
			}

			target := v.GetInt("target-years")
			contribution, err := calculation.RequiredContribution(plan, assumptions, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Required yearly contribution: %s over %d years sustains %s/yr for %d years\n",
				output.FormatCurrency(contribution),
				plan.YearsContributing,
				output.FormatCurrency(plan.YearlyWithdrawal),
				target)
			return nil
		},
	}
	addPlanFlags(solveCmd.Flags())
	solveCmd.Flags().Int("target-years", 30, "Number of withdrawal years to sustain")
	return solveCmd
}
