package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testforge.dev/pkg/testforge/internal/controller"
	"testforge.dev/pkg/testforge/internal/domain"
	m "testforge.dev/pkg/testforge/internal/model"
)

var batchPlainFlag bool

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Generate tests for every source file in a directory",
		Long: `Discover source files under a directory and generate tests for each of
them in order. Individual failures are recorded in the batch report and
never abort the remaining files. The report is saved into the output
directory and can be shown again with 'testforge view'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGenerator(); err != nil {
				return err
			}

			runner := batchRunner
			if runner == nil {
				var ui controller.UI
				if !batchPlainFlag && controller.IsTTY(os.Stdout) {
					ui = controller.NewTUI(cmd.OutOrStdout())
				} else {
					ui = controller.NewSimpleUI(cmd)
				}

				runner = domain.NewBatchRunner(fsAdapter, reportStore, generator, ui)
			}

			_, err := runner.GenerateForDirectory(cmd.Context(), domain.BatchArgs{
				Dir:       m.Path(args[0]),
				OutputDir: m.Path(viper.GetString(outputFlagName)),
				Framework: viper.GetString(frameworkConfigKey),
				Recursive: !viper.GetBool(topLevelConfigKey),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
			})

			return err
		},
	}

	cmd.Flags().Bool(topLevelFlagName, viper.GetBool(topLevelConfigKey), "only scan the top-level directory, skip subdirectories")
	bindFlagToConfig(cmd.Flags().Lookup(topLevelFlagName), topLevelConfigKey)

	cmd.Flags().BoolVar(&batchPlainFlag, "plain", false, "plain output even on a terminal")

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
