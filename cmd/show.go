package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ifbound.dev/pkg/ifbound/internal/domain"
	m "ifbound.dev/pkg/ifbound/internal/model"
)

var showFormatFlag string
var showIndexFlag string
var showStatementsFlag bool

const statementsFlagName = "statements"

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [paths...]",
		Short: "Show stored companion files or if statement extents",
		Long:  showLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := m.ParseOutputFormat(viper.GetString(showFormatConfigKey))
			if err != nil {
				return err
			}

			return workflow.Show(cmd.Context(), domain.ShowArgs{
				Paths:      parsePaths(args),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				Format:     format,
				Index:      showIndexFlag,
				Statements: showStatementsFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&showFormatFlag, formatFlagName, "f", viper.GetString(showFormatConfigKey), "output format: table, yaml, json or raw")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), showFormatConfigKey)

	cmd.Flags().StringVar(&showIndexFlag, indexFlagName, "", "read records from this sqlite index instead of companion files")
	cmd.Flags().BoolVarP(&showStatementsFlag, statementsFlagName, "s", false, "show the extent of every if statement instead of its branches")

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
