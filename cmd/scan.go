package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ifbound.dev/pkg/ifbound/internal/domain"
)

var scanParallelFlag int
var scanIndexFlag string
var scanDryRunFlag bool

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Write companion files with branch boundaries",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Threads: viper.GetInt(scanParallelConfigKey),
				Index:   viper.GetString(indexPathConfigKey),
				DryRun:  scanDryRunFlag,
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&scanParallelFlag, parallelFlagName, "p", viper.GetInt(scanParallelConfigKey), "number of files parsed in parallel (0 = number of CPUs)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), scanParallelConfigKey)

	cmd.Flags().StringVar(&scanIndexFlag, indexFlagName, viper.GetString(indexPathConfigKey), "also store records in this sqlite database")
	bindFlagToConfig(cmd.Flags().Lookup(indexFlagName), indexPathConfigKey)

	cmd.Flags().BoolVarP(&scanDryRunFlag, dryRunFlagName, "n", false, "report branches without writing companion files")
}
