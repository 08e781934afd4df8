package cmd

import (
	"github.com/mattphotonman/Financial/internal/calculation"
	"github.com/mattphotonman/Financial/internal/output"
	money "github.com/mattphotonman/Financial/pkg/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSweepCmd(v *viper.Viper) *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Tabulate the horizon over a range of yearly withdrawals",
		Example: `  horizon sweep --from 50000 --to 120000 --step 10000`,
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

			var bounds [3]money.Money
			for i, name := range []string{"from", "to", "step"} {
				if bounds[i], err = money.NewMoneyFromString(v.GetString(name)); err != nil {
					return err
				}
			}

			points, err := calculation.SweepWithdrawals(plan, assumptions, bounds[0].Decimal, bounds[1].Decimal, bounds[2].Decimal)
			if err != nil {
				return err
			}
			data, err := output.FormatSweep(points, v.GetString("format"))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addPlanFlags(sweepCmd.Flags())
	sweepCmd.Flags().String("from", "40000", "First yearly withdrawal")
	sweepCmd.Flags().String("to", "120000", "Last yearly withdrawal")
	sweepCmd.Flags().String("step", "10000", "Withdrawal increment")
	sweepCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json, yaml)")
	return sweepCmd
}
