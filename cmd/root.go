// Package cmd provides the root command and CLI setup for ifbound.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ifbound.dev/pkg/ifbound/internal/adapter"
	"ifbound.dev/pkg/ifbound/internal/controller"
	"ifbound.dev/pkg/ifbound/internal/domain"
	m "ifbound.dev/pkg/ifbound/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var frontends *adapter.FrontendRegistry
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for every command.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	frontends = adapter.NewDefaultFrontendRegistry()
	workflow = domain.NewWorkflow(fsAdapter, frontends, ui, openRecordStore)
}

func openRecordStore(ctx context.Context, path string) (adapter.RecordStore, error) {
	return adapter.NewSQLiteRecordStore(ctx, path)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./lib    scan multiple directories (not recursive)
  - main.c         scan a single file

Go (.go) and C (.c, .h) sources are recognised. Files matched by the
.gitignore of a scanned directory are skipped.`

const rootLongDescription = `ifbound records the line range of every branch of every if statement
in your sources. For each file with at least one branch it writes a
companion file next to it (<file>.ifi) with one line per branch:

    <file> <start line> <end line>

` + pathPatternsHelp

const scanLongDescription = `Write companion files for the given paths (default: current directory).

` + pathPatternsHelp

const showLongDescription = `Show the companion files stored for the given paths.

With --index the records are read from a sqlite index written by
"scan --index" instead; without paths every indexed source is shown.
With --statements the sources are parsed again and the line range of every
whole if statement, else-if links included, is shown next to its file.
Nothing is written.

` + pathPatternsHelp

const checkLongDescription = `Recompute the branch boundaries of the given paths and compare them with
the stored companion files. Exits with an error when any companion is out
of date.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ifbound",
		Short: "Record the line ranges of if/else branches",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level, including the text of every branch")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
