package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ifbound.dev/pkg/ifbound/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report companion files that are out of date",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Threads: viper.GetInt(scanParallelConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
