package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testforge.dev/pkg/testforge/internal/adapter"
	"testforge.dev/pkg/testforge/internal/controller"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the report of a previous batch run",
		Long:  "Display the per-file outcome report saved by the last batch run in the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportPath := fsAdapter.JoinPath(viper.GetString(outputFlagName), adapter.ReportFileName)

			report, err := reportStore.Load(reportPath)
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd)

			return ui.DisplaySummary(cmd.Context(), report)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
