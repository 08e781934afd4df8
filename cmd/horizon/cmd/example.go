package cmd

import (
	"fmt"

	"github.com/mattphotonman/Financial/internal/config"
	"github.com/mattphotonman/Financial/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExampleCmd(v *viper.Viper) *cobra.Command {
	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := v.GetString("file")
			if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), filename); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
	exampleCmd.Flags().String("file", "example_config.yaml", "Destination file")
	return exampleCmd
}
