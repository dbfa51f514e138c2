// Package cmd provides the root command and CLI setup for testforge.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"testforge.dev/pkg/testforge/internal/adapter"
	"testforge.dev/pkg/testforge/internal/domain"
	m "testforge.dev/pkg/testforge/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore

// generator and batchRunner are built lazily from the resolved configuration;
// tests inject mocks by assigning them before calling a command.
var generator domain.Generator
var batchRunner domain.BatchRunner

// outputDirFlag is a root-level flag shared by commands that write or read
// generated tests.
var outputDirFlag string

// frameworkFlag names the test framework requested from the assistant.
var frameworkFlag string

// excludePatterns is a root-level flag that filters files for batch mode.
var excludePatterns []string

// maxTurnsFlag bounds the assistant session.
var maxTurnsFlag int

// backendFlag selects the assistant backend.
var backendFlag string

// verboseFlag switches the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const rootLongDescription = `Testforge generates unit tests for the source files of a project by
delegating the actual test writing to an external AI coding assistant.
It reads a source file, builds an instruction prompt and hands it to the
assistant under a bounded turn budget and a read/write capability
allow-list, then writes the returned test text next to your project.

Single files are handled by 'generate'; whole directories by 'batch',
which keeps going when individual files fail and reports every outcome.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testforge",
		Short: "AI-assisted unit test generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated test files",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&frameworkFlag, frameworkFlagName, "f", viper.GetString(frameworkConfigKey), "test framework the assistant should target")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(frameworkFlagName), frameworkConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().IntVar(&maxTurnsFlag, maxTurnsFlagName, viper.GetInt(maxTurnsConfigKey), "maximum assistant interaction turns per file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(maxTurnsFlagName), maxTurnsConfigKey)

	cmd.PersistentFlags().StringVar(&backendFlag, backendFlagName, viper.GetString(backendConfigKey), "assistant backend (claude|openai)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(backendFlagName), backendConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildAssistant resolves the configured backend into a client.
func buildAssistant() (adapter.AssistantClient, error) {
	backend := viper.GetString(backendConfigKey)

	switch backend {
	case "claude":
		return adapter.NewClaudeCLIClient(viper.GetString(binaryConfigKey), adapter.SessionOptions{
			WorkDir:        m.Path(viper.GetString(workdirConfigKey)),
			MaxTurns:       viper.GetInt(maxTurnsConfigKey),
			AllowedTools:   viper.GetStringSlice(toolsConfigKey),
			PermissionMode: viper.GetString(permissionConfigKey),
		}), nil

	case "openai":
		return adapter.NewOpenAIAssistant(os.Getenv("OPENAI_API_KEY"), viper.GetString(openAIModelConfigKey))

	default:
		return nil, fmt.Errorf("unknown assistant backend %q", backend)
	}
}

// ensureGenerator builds the single-file generator unless a test injected one.
func ensureGenerator() error {
	if generator != nil {
		return nil
	}

	assistant, err := buildAssistant()
	if err != nil {
		return err
	}

	generator = domain.NewGenerator(fsAdapter, assistant)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
