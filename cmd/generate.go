package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testforge.dev/pkg/testforge/internal/domain"
	m "testforge.dev/pkg/testforge/internal/model"
)

var generateStdoutFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate tests for a single source file",
		Long: `Generate unit tests for one source file. The result is written to the
output directory under a derived name (test_<stem>), or to stdout with
--stdout. Fails fast: a missing file or a failed assistant call aborts
the command without partial output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGenerator(); err != nil {
				return err
			}

			source := m.Path(args[0])
			framework := viper.GetString(frameworkConfigKey)

			text, err := generator.GenerateTests(cmd.Context(), source, framework)
			if err != nil {
				return err
			}

			if generateStdoutFlag {
				cmd.Print(text)
				return nil
			}

			outputDir := m.Path(viper.GetString(outputFlagName))
			if err := fsAdapter.MkdirAll(outputDir, 0o750); err != nil {
				return fmt.Errorf("%w: create output directory %s: %v", m.ErrWrite, outputDir, err)
			}

			outPath := fsAdapter.JoinPath(string(outputDir), domain.TestFileName(source))
			if err := fsAdapter.WriteFile(outPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("%w: %s: %v", m.ErrWrite, outPath, err)
			}

			cmd.Printf("Tests written to %s\n", outPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&generateStdoutFlag, "stdout", false, "print the generated tests instead of writing a file")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
